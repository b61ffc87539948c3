package web

import (
	"time"

	"github.com/ecodeclub/talent/internal/user/internal/domain"
)

type AdminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmployeeLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminReq struct {
	Admin Admin `json:"admin"`
}

type Admin struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
	// Password 只入不出
	Password    string   `json:"password,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	LastLogin   string   `json:"lastLogin,omitempty"`
}

type EmployeeProfile struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (a Admin) toDomain() domain.Admin {
	return domain.Admin{
		ID:          a.ID,
		Username:    a.Username,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Password:    a.Password,
		Role:        domain.Role(a.Role),
		Permissions: a.Permissions,
		Avatar:      a.Avatar,
	}
}

func newAdmin(a domain.Admin) Admin {
	res := Admin{
		ID:          a.ID,
		Username:    a.Username,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		FullName:    a.FullName(),
		Email:       a.Email,
		Role:        a.Role.String(),
		Permissions: a.Permissions,
		Avatar:      a.Avatar,
	}
	if a.LastLogin > 0 {
		res.LastLogin = time.UnixMilli(a.LastLogin).Format(time.DateTime)
	}
	return res
}
