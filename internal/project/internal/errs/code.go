package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 502002, Msg: "非法输入"}
	ProjectNotFound  = ErrorCode{Code: 502003, Msg: "项目不存在"}
	EmployeeNotFound = ErrorCode{Code: 502004, Msg: "员工不存在"}
	AlreadyAssigned  = ErrorCode{Code: 502005, Msg: "员工已被分配到该项目"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
