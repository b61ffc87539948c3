package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/project/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	alreadyAssignedResult = ginx.Result{
		Code: errs.AlreadyAssigned.Code,
		Msg:  errs.AlreadyAssigned.Msg,
	}
)

func invalidInputResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  err.Error(),
	}
}

func projectNotFoundResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.ProjectNotFound.Code,
		Msg:  err.Error(),
	}
}

func employeeNotFoundResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.EmployeeNotFound.Code,
		Msg:  err.Error(),
	}
}
