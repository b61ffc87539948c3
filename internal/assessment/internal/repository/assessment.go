package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
)

type AssessmentRepo interface {
	Create(ctx context.Context, a domain.Assessment) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Assessment, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Assessment, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// UpdateLocked 在行锁里重放 fn，fn 拿到的是记录的最新状态
	UpdateLocked(ctx context.Context, id int64, fn func(a *domain.Assessment) error) error
	Deactivate(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.AssessmentStats, error)
	ApprovedAverages(ctx context.Context) (map[int64]float64, error)
}

type Filter struct {
	EmployeeID int64
	ProjectID  int64
	Status     string
}

type assessmentRepo struct {
	dao dao.AssessmentDAO
}

func NewAssessmentRepo(d dao.AssessmentDAO) AssessmentRepo {
	return &assessmentRepo{
		dao: d,
	}
}

func (r *assessmentRepo) Create(ctx context.Context, a domain.Assessment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *assessmentRepo) FindByID(ctx context.Context, id int64) (domain.Assessment, error) {
	entity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Assessment{}, err
	}
	return r.toDomain(entity)
}

func (r *assessmentRepo) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Assessment, error) {
	entities, err := r.dao.List(ctx, dao.Filter(f), offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Assessment, 0, len(entities))
	for _, entity := range entities {
		a, err := r.toDomain(entity)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (r *assessmentRepo) Count(ctx context.Context, f Filter) (int64, error) {
	return r.dao.Count(ctx, dao.Filter(f))
}

func (r *assessmentRepo) UpdateLocked(ctx context.Context, id int64, fn func(a *domain.Assessment) error) error {
	return r.dao.UpdateLocked(ctx, id, func(entity dao.Assessment) (dao.Assessment, error) {
		a, err := r.toDomain(entity)
		if err != nil {
			return dao.Assessment{}, err
		}
		if err := fn(&a); err != nil {
			return dao.Assessment{}, err
		}
		updated := r.toEntity(a)
		updated.Ctime = entity.Ctime
		return updated, nil
	})
}

func (r *assessmentRepo) Deactivate(ctx context.Context, id int64) error {
	return r.dao.Deactivate(ctx, id)
}

func (r *assessmentRepo) Stats(ctx context.Context) (domain.AssessmentStats, error) {
	stats, err := r.dao.Stats(ctx)
	if err != nil {
		return domain.AssessmentStats{}, err
	}
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for _, sc := range stats.ByStatus {
		byStatus[sc.Status] = sc.Count
	}
	return domain.AssessmentStats{
		Total:      stats.Total,
		ByStatus:   byStatus,
		AvgOverall: stats.AvgOverall,
		AvgByCategory: map[string]float64{
			"technicalSkills": stats.Categories.TechnicalSkills,
			"communication":   stats.Categories.Communication,
			"leadership":      stats.Categories.Leadership,
			"problemSolving":  stats.Categories.ProblemSolving,
			"teamwork":        stats.Categories.Teamwork,
			"adaptability":    stats.Categories.Adaptability,
			"timeManagement":  stats.Categories.TimeManagement,
			"creativity":      stats.Categories.Creativity,
		},
	}, nil
}

func (r *assessmentRepo) ApprovedAverages(ctx context.Context) (map[int64]float64, error) {
	avgs, err := r.dao.ApprovedAverages(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]float64, len(avgs))
	for _, avg := range avgs {
		res[avg.EmployeeID] = avg.AvgOverall
	}
	return res, nil
}

func (r *assessmentRepo) toEntity(a domain.Assessment) dao.Assessment {
	return dao.Assessment{
		ID:              a.ID,
		SN:              a.SN,
		EmployeeID:      a.EmployeeID,
		AssessorID:      a.AssessorID,
		ProjectID:       a.ProjectID,
		Date:            a.Date,
		TechnicalSkills: a.Scores.Get("technicalSkills"),
		Communication:   a.Scores.Get("communication"),
		Leadership:      a.Scores.Get("leadership"),
		ProblemSolving:  a.Scores.Get("problemSolving"),
		Teamwork:        a.Scores.Get("teamwork"),
		Adaptability:    a.Scores.Get("adaptability"),
		TimeManagement:  a.Scores.Get("timeManagement"),
		Creativity:      a.Scores.Get("creativity"),
		OverallScore:    a.Scores.Overall(),
		Recommendations: sqlx.JsonColumn[[]string]{Val: a.Recommendations, Valid: true},
		Comments:        a.Comments,
		Status:          a.Status.String(),
		IsActive:        a.Active,
	}
}

func (r *assessmentRepo) toDomain(entity dao.Assessment) (domain.Assessment, error) {
	scores, err := domain.NewScores(map[string]float64{
		"technicalSkills": entity.TechnicalSkills,
		"communication":   entity.Communication,
		"leadership":      entity.Leadership,
		"problemSolving":  entity.ProblemSolving,
		"teamwork":        entity.Teamwork,
		"adaptability":    entity.Adaptability,
		"timeManagement":  entity.TimeManagement,
		"creativity":      entity.Creativity,
	})
	if err != nil {
		return domain.Assessment{}, err
	}
	return domain.Assessment{
		ID:              entity.ID,
		SN:              entity.SN,
		EmployeeID:      entity.EmployeeID,
		AssessorID:      entity.AssessorID,
		ProjectID:       entity.ProjectID,
		Date:            entity.Date,
		Scores:          scores,
		Recommendations: entity.Recommendations.Val,
		Comments:        entity.Comments,
		Status:          domain.Status(entity.Status),
		Active:          entity.IsActive,
		Ctime:           entity.Ctime,
		Utime:           entity.Utime,
	}, nil
}
