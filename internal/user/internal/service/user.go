package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/repository"
	"github.com/ecodeclub/talent/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredential 登录失败统一对外口径，不区分用户不存在和密码错误
	ErrInvalidCredential = errors.New("用户名或密码不正确")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrDuplicateUsername = dao.ErrDuplicateUsername
	ErrInvalidInput      = errors.New("非法输入")
)

const minPasswordLen = 6

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed=true UserService
type UserService interface {
	// AdminLogin 管理员用户名密码登录，成功会刷新最近登录时间
	AdminLogin(ctx context.Context, username, password string) (domain.Admin, error)
	// EmployeeLogin 员工用邮箱密码登录
	EmployeeLogin(ctx context.Context, email, password string) (employee.Employee, error)
	// CreateAdmin 创建管理员账号，调用方负责校验发起人是 super_admin
	CreateAdmin(ctx context.Context, a domain.Admin) (int64, error)
	Profile(ctx context.Context, id int64) (domain.Admin, error)
}

type userService struct {
	repo     repository.AdminRepo
	staffSvc employee.Service
	logger   *elog.Component
}

func NewUserService(repo repository.AdminRepo, staffSvc employee.Service) UserService {
	return &userService{
		repo:     repo,
		staffSvc: staffSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *userService) AdminLogin(ctx context.Context, username, password string) (domain.Admin, error) {
	a, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Admin{}, ErrInvalidCredential
	}
	if err != nil {
		return domain.Admin{}, err
	}
	if !a.Active {
		return domain.Admin{}, ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return domain.Admin{}, ErrInvalidCredential
	}
	a.LastLogin = time.Now().UnixMilli()
	// 登录时间刷新失败不拦登录
	if err := s.repo.UpdateLastLogin(ctx, a.ID, a.LastLogin); err != nil {
		s.logger.Error("刷新管理员登录时间失败", elog.FieldErr(err))
	}
	return a, nil
}

func (s *userService) EmployeeLogin(ctx context.Context, email, password string) (employee.Employee, error) {
	e, err := s.staffSvc.VerifyPassword(ctx, email, password)
	if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrInvalidInput) {
		return employee.Employee{}, ErrInvalidCredential
	}
	return e, err
}

func (s *userService) CreateAdmin(ctx context.Context, a domain.Admin) (int64, error) {
	if a.Username == "" {
		return 0, fmt.Errorf("%w: username 不能为空", ErrInvalidInput)
	}
	if len(a.Password) < minPasswordLen {
		return 0, fmt.Errorf("%w: password 至少 %d 位", ErrInvalidInput, minPasswordLen)
	}
	if a.Role == "" {
		a.Role = domain.RoleAdmin
	}
	if !a.Role.Valid() {
		return 0, fmt.Errorf("%w: role 取值非法 %q", ErrInvalidInput, a.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	a.Password = string(hash)
	a.Active = true
	return s.repo.Create(ctx, a)
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.Admin, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Admin{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return a, err
}
