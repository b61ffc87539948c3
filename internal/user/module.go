package user

import (
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/service"
	"github.com/ecodeclub/talent/internal/user/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.UserService
type Admin = domain.Admin
type Role = domain.Role

const (
	RoleAdmin      = domain.RoleAdmin
	RoleSuperAdmin = domain.RoleSuperAdmin
)

var ErrInvalidCredential = service.ErrInvalidCredential
