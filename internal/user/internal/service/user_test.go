package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/talent/internal/employee"
	evcmocks "github.com/ecodeclub/talent/internal/employee/mocks"
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	admin   domain.Admin
	findErr error
	created *domain.Admin
}

func (f *fakeRepo) Create(ctx context.Context, a domain.Admin) (int64, error) {
	f.created = &a
	return 1, nil
}

func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	return f.admin, f.findErr
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (domain.Admin, error) {
	return f.admin, f.findErr
}

func (f *fakeRepo) UpdateLastLogin(ctx context.Context, id int64, at int64) error {
	return nil
}

func TestUserService_AdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		repo     *fakeRepo
		password string

		wantErr error
	}{
		{
			name: "登录成功",
			repo: &fakeRepo{
				admin: domain.Admin{
					ID:       1,
					Username: "admin",
					Password: string(hash),
					Role:     domain.RoleSuperAdmin,
					Active:   true,
				},
			},
			password: "right-password",
		},
		{
			name: "密码错误",
			repo: &fakeRepo{
				admin: domain.Admin{
					Username: "admin",
					Password: string(hash),
					Active:   true,
				},
			},
			password: "wrong-password",
			wantErr:  ErrInvalidCredential,
		},
		{
			name: "用户不存在同样口径",
			repo: &fakeRepo{
				findErr: gorm.ErrRecordNotFound,
			},
			password: "right-password",
			wantErr:  ErrInvalidCredential,
		},
		{
			name: "账号已停用",
			repo: &fakeRepo{
				admin: domain.Admin{
					Username: "admin",
					Password: string(hash),
					Active:   false,
				},
			},
			password: "right-password",
			wantErr:  ErrInvalidCredential,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewUserService(tc.repo, nil)
			a, err := svc.AdminLogin(context.Background(), "admin", tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, int64(1), a.ID)
				assert.NotZero(t, a.LastLogin)
			}
		})
	}
}

func TestUserService_EmployeeLogin(t *testing.T) {
	t.Run("登录成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().VerifyPassword(gomock.Any(), "alice@example.com", "secret").
			Return(employee.Employee{ID: 1, Email: "alice@example.com"}, nil)

		svc := NewUserService(&fakeRepo{}, staffSvc)
		e, err := svc.EmployeeLogin(context.Background(), "alice@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, int64(1), e.ID)
	})

	t.Run("员工不存在和密码错误同样口径", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().VerifyPassword(gomock.Any(), "nobody@example.com", "secret").
			Return(employee.Employee{}, employee.ErrEmployeeNotFound)
		staffSvc.EXPECT().VerifyPassword(gomock.Any(), "alice@example.com", "wrong").
			Return(employee.Employee{}, employee.ErrInvalidInput)

		svc := NewUserService(&fakeRepo{}, staffSvc)
		_, err := svc.EmployeeLogin(context.Background(), "nobody@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredential)
		_, err = svc.EmployeeLogin(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})
}

func TestUserService_CreateAdmin(t *testing.T) {
	testCases := []struct {
		name  string
		admin domain.Admin

		wantErr  error
		wantRole domain.Role
	}{
		{
			name: "默认角色 admin",
			admin: domain.Admin{
				Username: "ops",
				Password: "secret-123",
			},
			wantRole: domain.RoleAdmin,
		},
		{
			name: "指定 super_admin",
			admin: domain.Admin{
				Username: "boss",
				Password: "secret-123",
				Role:     domain.RoleSuperAdmin,
			},
			wantRole: domain.RoleSuperAdmin,
		},
		{
			name: "缺用户名",
			admin: domain.Admin{
				Password: "secret-123",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "密码太短",
			admin: domain.Admin{
				Username: "ops",
				Password: "123",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "角色非法",
			admin: domain.Admin{
				Username: "ops",
				Password: "secret-123",
				Role:     domain.Role("root"),
			},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewUserService(repo, nil)
			id, err := svc.CreateAdmin(context.Background(), tc.admin)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, int64(1), id)
			require.NotNil(t, repo.created)
			assert.Equal(t, tc.wantRole, repo.created.Role)
			assert.True(t, repo.created.Active)
			// 密码必须已经被 bcrypt 处理
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(repo.created.Password), []byte(tc.admin.Password)))
		})
	}
}
