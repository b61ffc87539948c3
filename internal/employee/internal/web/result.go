package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/employee/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
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
		Code: errs.EmployeeNotFound.Code,
		Msg:  err.Error(),
	}
}
