package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCredentialResult = ginx.Result{
		Code: errs.InvalidCredential.Code,
		Msg:  errs.InvalidCredential.Msg,
	}
	duplicateUsernameResult = ginx.Result{
		Code: errs.DuplicateUsername.Code,
		Msg:  errs.DuplicateUsername.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)

func invalidInputResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  err.Error(),
	}
}

func notFoundResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  err.Error(),
	}
}
