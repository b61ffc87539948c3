package errs

var (
	SystemError      = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 501002, Msg: "非法输入"}
	EmployeeNotFound = ErrorCode{Code: 501003, Msg: "员工不存在"}
	DuplicateEmail   = ErrorCode{Code: 501004, Msg: "邮箱已被占用"}
	PermissionDenied = ErrorCode{Code: 501005, Msg: "无权访问"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
