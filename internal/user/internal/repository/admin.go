package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/repository/dao"
)

type AdminRepo interface {
	Create(ctx context.Context, a domain.Admin) (int64, error)
	FindByUsername(ctx context.Context, username string) (domain.Admin, error)
	FindByID(ctx context.Context, id int64) (domain.Admin, error)
	UpdateLastLogin(ctx context.Context, id int64, at int64) error
}

type adminRepo struct {
	dao dao.AdminDAO
}

func NewAdminRepo(d dao.AdminDAO) AdminRepo {
	return &adminRepo{
		dao: d,
	}
}

func (r *adminRepo) Create(ctx context.Context, a domain.Admin) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	a, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Admin{}, err
	}
	return r.toDomain(a), nil
}

func (r *adminRepo) FindByID(ctx context.Context, id int64) (domain.Admin, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, err
	}
	return r.toDomain(a), nil
}

func (r *adminRepo) UpdateLastLogin(ctx context.Context, id int64, at int64) error {
	return r.dao.UpdateLastLogin(ctx, id, at)
}

func (r *adminRepo) toEntity(a domain.Admin) dao.Admin {
	return dao.Admin{
		ID:          a.ID,
		Username:    a.Username,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Password:    a.Password,
		Role:        a.Role.String(),
		Permissions: sqlx.JsonColumn[[]string]{Val: a.Permissions, Valid: true},
		Avatar:      a.Avatar,
		IsActive:    a.Active,
		LastLogin:   a.LastLogin,
	}
}

func (r *adminRepo) toDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		ID:          a.ID,
		Username:    a.Username,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Password:    a.Password,
		Role:        domain.Role(a.Role),
		Permissions: a.Permissions.Val,
		Avatar:      a.Avatar,
		Active:      a.IsActive,
		LastLogin:   a.LastLogin,
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}
