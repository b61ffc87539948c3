package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/notification/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func notFoundResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.NotificationNotFound.Code,
		Msg:  err.Error(),
	}
}
