package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/project/internal/domain"
	"github.com/ecodeclub/talent/internal/project/internal/repository/dao"
)

type ProjectRepo interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	Update(ctx context.Context, p domain.Project) error
	FindByID(ctx context.Context, id int64) (domain.Project, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Project, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Deactivate(ctx context.Context, id int64) error
	// UpdateStaffing 在行锁里重放 fn，fn 拿到的是项目的最新状态
	UpdateStaffing(ctx context.Context, id int64, fn func(p *domain.Project) error) error
	AddComment(ctx context.Context, id int64, comment domain.Comment) error
	Stats(ctx context.Context) (domain.ProjectStats, error)
}

type Filter struct {
	Status   string
	Priority string
	Category string
	Keyword  string
}

type projectRepo struct {
	dao dao.ProjectDAO
}

func NewProjectRepo(d dao.ProjectDAO) ProjectRepo {
	return &projectRepo{
		dao: d,
	}
}

func (r *projectRepo) Create(ctx context.Context, p domain.Project) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *projectRepo) Update(ctx context.Context, p domain.Project) error {
	return r.dao.Update(ctx, r.toEntity(p))
}

func (r *projectRepo) FindByID(ctx context.Context, id int64) (domain.Project, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(p), nil
}

func (r *projectRepo) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Project, error) {
	ps, err := r.dao.List(ctx, dao.Filter(f), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepo) Count(ctx context.Context, f Filter) (int64, error) {
	return r.dao.Count(ctx, dao.Filter(f))
}

func (r *projectRepo) Deactivate(ctx context.Context, id int64) error {
	return r.dao.Deactivate(ctx, id)
}

func (r *projectRepo) UpdateStaffing(ctx context.Context, id int64, fn func(p *domain.Project) error) error {
	return r.dao.UpdateStaffingLocked(ctx, id, func(entity dao.Project) (dao.Project, error) {
		p := r.toDomain(entity)
		if err := fn(&p); err != nil {
			return dao.Project{}, err
		}
		entity.Status = p.Status.String()
		entity.AssignedEmployees = assignmentsColumn(slice.Map(p.Assignees,
			func(idx int, src domain.Assignment) dao.Assignment {
				return dao.Assignment(src)
			}))
		return entity, nil
	})
}

func (r *projectRepo) AddComment(ctx context.Context, id int64, comment domain.Comment) error {
	return r.dao.AddComment(ctx, id, dao.Comment(comment))
}

func (r *projectRepo) Stats(ctx context.Context) (domain.ProjectStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.ProjectStats{}, err
	}
	return domain.ProjectStats{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		AvgBudget:  stats.AvgBudget,
		Categories: slice.Map(stats.Categories, func(idx int, src dao.CategoryCount) domain.CategoryCount {
			return domain.CategoryCount(src)
		}),
	}, nil
}

func (r *projectRepo) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		ID:      p.ID,
		Title:   p.Title,
		Desc:    p.Desc,
		Company: p.Company,
		Requirements: requirementsColumn(slice.Map(p.Requirements,
			func(idx int, src domain.Requirement) dao.Requirement {
				return dao.Requirement(src)
			})),
		Budget:    p.Budget,
		Duration:  p.Duration,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    p.Status.String(),
		AssignedEmployees: assignmentsColumn(slice.Map(p.Assignees,
			func(idx int, src domain.Assignment) dao.Assignment {
				return dao.Assignment(src)
			})),
		Priority: p.Priority,
		Category: p.Category,
		Comments: sqlx.JsonColumn[[]dao.Comment]{Val: slice.Map(p.Comments,
			func(idx int, src domain.Comment) dao.Comment {
				return dao.Comment(src)
			}), Valid: true},
		IsActive: p.Active,
	}
}

func (r *projectRepo) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID:      p.ID,
		Title:   p.Title,
		Desc:    p.Desc,
		Company: p.Company,
		Requirements: slice.Map(p.Requirements.Val, func(idx int, src dao.Requirement) domain.Requirement {
			return domain.Requirement(src)
		}),
		Budget:    p.Budget,
		Duration:  p.Duration,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    domain.Status(p.Status),
		Assignees: slice.Map(p.AssignedEmployees.Val, func(idx int, src dao.Assignment) domain.Assignment {
			return domain.Assignment(src)
		}),
		Priority: p.Priority,
		Category: p.Category,
		Comments: slice.Map(p.Comments.Val, func(idx int, src dao.Comment) domain.Comment {
			return domain.Comment(src)
		}),
		Active: p.IsActive,
		Ctime:  p.Ctime,
		Utime:  p.Utime,
	}
}

func requirementsColumn(reqs []dao.Requirement) sqlx.JsonColumn[[]dao.Requirement] {
	return sqlx.JsonColumn[[]dao.Requirement]{Val: reqs, Valid: true}
}

func assignmentsColumn(as []dao.Assignment) sqlx.JsonColumn[[]dao.Assignment] {
	return sqlx.JsonColumn[[]dao.Assignment]{Val: as, Valid: true}
}
