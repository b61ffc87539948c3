package errs

var (
	SystemError        = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 503002, Msg: "非法输入"}
	AssessmentNotFound = ErrorCode{Code: 503003, Msg: "考核记录不存在"}
	StateConflict      = ErrorCode{Code: 503004, Msg: "考核状态不允许该操作"}
	PermissionDenied   = ErrorCode{Code: 503005, Msg: "无权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
