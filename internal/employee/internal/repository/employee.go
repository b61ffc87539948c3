package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/employee/internal/domain"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/cache"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e domain.Employee) (int64, error)
	Update(ctx context.Context, e domain.Employee) error
	FindByID(ctx context.Context, id int64) (domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (domain.Employee, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Employee, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// ActivePool 匹配引擎用的候选池快照，优先走缓存
	ActivePool(ctx context.Context) ([]domain.Employee, error)
	Deactivate(ctx context.Context, id int64) error
	UpdateSkills(ctx context.Context, id int64, skills []domain.Skill) error
	UpdatePerformance(ctx context.Context, id int64, score int) error
	AddProjectRecord(ctx context.Context, id int64, record domain.ProjectRecord) error
	CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error
	Stats(ctx context.Context) (domain.EmployeeStats, error)
}

type Filter struct {
	Department   string
	Position     string
	Availability string
	Keyword      string
}

type employeeRepo struct {
	dao    dao.EmployeeDAO
	cache  cache.EmployeeCache
	logger *elog.Component
}

func NewEmployeeRepo(d dao.EmployeeDAO, c cache.EmployeeCache) EmployeeRepo {
	return &employeeRepo{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *employeeRepo) Create(ctx context.Context, e domain.Employee) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(e))
	if err != nil {
		return 0, err
	}
	r.evictPool(ctx)
	return id, nil
}

func (r *employeeRepo) Update(ctx context.Context, e domain.Employee) error {
	err := r.dao.Update(ctx, r.toEntity(e))
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) FindByID(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	return r.toDomain(e), nil
}

func (r *employeeRepo) FindByEmail(ctx context.Context, email string) (domain.Employee, error) {
	e, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Employee{}, err
	}
	return r.toDomain(e), nil
}

func (r *employeeRepo) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Employee, error) {
	es, err := r.dao.List(ctx, dao.Filter(f), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Employee) domain.Employee {
		return r.toDomain(src)
	}), nil
}

func (r *employeeRepo) Count(ctx context.Context, f Filter) (int64, error) {
	return r.dao.Count(ctx, dao.Filter(f))
}

func (r *employeeRepo) ActivePool(ctx context.Context) ([]domain.Employee, error) {
	pool, err := r.cache.GetPool(ctx)
	if err == nil {
		return pool, nil
	}
	es, err := r.dao.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	pool = slice.Map(es, func(idx int, src dao.Employee) domain.Employee {
		return r.toDomain(src)
	})
	if err := r.cache.SetPool(ctx, pool); err != nil {
		r.logger.Error("回填候选池缓存失败", elog.FieldErr(err))
	}
	return pool, nil
}

func (r *employeeRepo) Deactivate(ctx context.Context, id int64) error {
	err := r.dao.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) UpdateSkills(ctx context.Context, id int64, skills []domain.Skill) error {
	err := r.dao.UpdateSkills(ctx, id, slice.Map(skills, func(idx int, src domain.Skill) dao.Skill {
		return dao.Skill(src)
	}))
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) UpdatePerformance(ctx context.Context, id int64, score int) error {
	err := r.dao.UpdatePerformance(ctx, id, score)
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) AddProjectRecord(ctx context.Context, id int64, record domain.ProjectRecord) error {
	err := r.dao.AddProjectRecord(ctx, id, dao.ProjectRecord(record))
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error {
	err := r.dao.CloseProjectRecord(ctx, id, pid, endDate)
	if err != nil {
		return err
	}
	r.evictPool(ctx)
	return nil
}

func (r *employeeRepo) Stats(ctx context.Context) (domain.EmployeeStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.EmployeeStats{}, err
	}
	return domain.EmployeeStats{
		Total:          stats.Total,
		Available:      stats.Available,
		Busy:           stats.Busy,
		AvgPerformance: stats.AvgPerformance,
		Departments: slice.Map(stats.Departments, func(idx int, src dao.DepartmentCount) domain.DepartmentCount {
			return domain.DepartmentCount(src)
		}),
	}, nil
}

// evictPool 缓存失效失败只记日志，候选池本身容忍过期数据
func (r *employeeRepo) evictPool(ctx context.Context) {
	if err := r.cache.DelPool(ctx); err != nil {
		r.logger.Error("清理候选池缓存失败", elog.FieldErr(err))
	}
}

func (r *employeeRepo) toEntity(e domain.Employee) dao.Employee {
	return dao.Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate,
		Password:   e.Password,
		Skills: skillsColumn(slice.Map(e.Skills, func(idx int, src domain.Skill) dao.Skill {
			return dao.Skill(src)
		})),
		PerformanceScore: e.PerformanceScore,
		Projects: recordsColumn(slice.Map(e.Projects, func(idx int, src domain.ProjectRecord) dao.ProjectRecord {
			return dao.ProjectRecord(src)
		})),
		Availability: e.Availability.String(),
		Avatar:       e.Avatar,
		Bio:          e.Bio,
		Strengths:    sqlx.JsonColumn[[]string]{Val: e.Strengths, Valid: true},
		Weaknesses:   sqlx.JsonColumn[[]string]{Val: e.Weaknesses, Valid: true},
		IsActive:     e.Active,
	}
}

func (r *employeeRepo) toDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate,
		Password:   e.Password,
		Skills: slice.Map(e.Skills.Val, func(idx int, src dao.Skill) domain.Skill {
			return domain.Skill(src)
		}),
		PerformanceScore: e.PerformanceScore,
		Projects: slice.Map(e.Projects.Val, func(idx int, src dao.ProjectRecord) domain.ProjectRecord {
			return domain.ProjectRecord(src)
		}),
		Availability: domain.Availability(e.Availability),
		Avatar:       e.Avatar,
		Bio:          e.Bio,
		Strengths:    e.Strengths.Val,
		Weaknesses:   e.Weaknesses.Val,
		Active:       e.IsActive,
		Ctime:        e.Ctime,
		Utime:        e.Utime,
	}
}

func skillsColumn(skills []dao.Skill) sqlx.JsonColumn[[]dao.Skill] {
	return sqlx.JsonColumn[[]dao.Skill]{Val: skills, Valid: true}
}

func recordsColumn(records []dao.ProjectRecord) sqlx.JsonColumn[[]dao.ProjectRecord] {
	return sqlx.JsonColumn[[]dao.ProjectRecord]{Val: records, Valid: true}
}
