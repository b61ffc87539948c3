package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/assessment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
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
		Code: errs.AssessmentNotFound.Code,
		Msg:  err.Error(),
	}
}

func stateConflictResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.StateConflict.Code,
		Msg:  err.Error(),
	}
}
