package errs

var (
	SystemError       = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 504002, Msg: "非法输入"}
	InvalidCredential = ErrorCode{Code: 504003, Msg: "用户名或密码不正确"}
	UserNotFound      = ErrorCode{Code: 504004, Msg: "用户不存在"}
	DuplicateUsername = ErrorCode{Code: 504005, Msg: "用户名已被占用"}
	PermissionDenied  = ErrorCode{Code: 504006, Msg: "无权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
