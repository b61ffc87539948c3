package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.UserService
	logger *elog.Component
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/admin/login", ginx.B[AdminLoginReq](h.AdminLogin))
	g.POST("/employee/login", ginx.B[EmployeeLoginReq](h.EmployeeLogin))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/admin/create", ginx.BS[CreateAdminReq](h.CreateAdmin))
}

func (h *Handler) AdminLogin(ctx *ginx.Context, req AdminLoginReq) (ginx.Result, error) {
	a, err := h.svc.AdminLogin(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredential) {
		return invalidCredentialResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, a.ID).
		SetJwtData(map[string]string{
			"role":      "admin",
			"adminRole": a.Role.String(),
			"name":      a.FullName(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAdmin(a),
	}, nil
}

func (h *Handler) EmployeeLogin(ctx *ginx.Context, req EmployeeLoginReq) (ginx.Result, error) {
	e, err := h.svc.EmployeeLogin(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredential) {
		return invalidCredentialResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, e.ID).
		SetJwtData(map[string]string{
			"role": "employee",
			"name": e.FullName(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: EmployeeProfile{
			ID:       e.ID,
			FullName: e.FullName(),
			Email:    e.Email,
			Position: e.Position,
			Avatar:   e.Avatar,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrUserNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAdmin(a),
	}, nil
}

// CreateAdmin 只有 super_admin 能创建管理员账号
func (h *Handler) CreateAdmin(ctx *ginx.Context, req CreateAdminReq, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("adminRole").StringOrDefault("") != "super_admin" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非超级管理员创建账号 uid: %d", sess.Claims().Uid)
	}
	id, err := h.svc.CreateAdmin(ctx, req.Admin.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrDuplicateUsername):
		return duplicateUsernameResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}
