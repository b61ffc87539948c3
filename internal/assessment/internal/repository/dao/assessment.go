package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type AssessmentDAO interface {
	Insert(ctx context.Context, a Assessment) (int64, error)
	FindByID(ctx context.Context, id int64) (Assessment, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Assessment, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// UpdateLocked 行锁下读出记录交给 fn 修改后整行写回，
	// 同一条考核的更新和状态推进因此是串行的
	UpdateLocked(ctx context.Context, id int64, fn func(a Assessment) (Assessment, error)) error
	// Deactivate 软删除，任何状态都允许
	Deactivate(ctx context.Context, id int64) error
	Stats(ctx context.Context) (Stats, error)
	// ApprovedAverages 每个员工已批准考核的总分均值，绩效同步任务用
	ApprovedAverages(ctx context.Context) ([]EmployeeAverage, error)
}

type Filter struct {
	EmployeeID int64
	ProjectID  int64
	Status     string
}

type assessmentDAO struct {
	db *egorm.Component
}

func NewAssessmentDAO(db *egorm.Component) AssessmentDAO {
	return &assessmentDAO{
		db: db,
	}
}

func (d *assessmentDAO) Insert(ctx context.Context, a Assessment) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	return a.ID, err
}

func (d *assessmentDAO) FindByID(ctx context.Context, id int64) (Assessment, error) {
	var a Assessment
	err := d.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&a).Error
	return a, err
}

func (d *assessmentDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Assessment, error) {
	var as []Assessment
	err := d.query(ctx, f).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&as).Error
	return as, err
}

func (d *assessmentDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := d.query(ctx, f).Count(&count).Error
	return count, err
}

func (d *assessmentDAO) query(ctx context.Context, f Filter) *gorm.DB {
	builder := d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ?", true)
	if f.EmployeeID > 0 {
		builder = builder.Where("employee_id = ?", f.EmployeeID)
	}
	if f.ProjectID > 0 {
		builder = builder.Where("project_id = ?", f.ProjectID)
	}
	if f.Status != "" {
		builder = builder.Where("status = ?", f.Status)
	}
	return builder
}

func (d *assessmentDAO) UpdateLocked(ctx context.Context, id int64, fn func(a Assessment) (Assessment, error)) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Assessment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", id, true).
			First(&a).Error
		if err != nil {
			return err
		}
		a, err = fn(a)
		if err != nil {
			return err
		}
		a.Utime = time.Now().UnixMilli()
		return tx.Save(&a).Error
	})
}

func (d *assessmentDAO) Deactivate(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Assessment{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active": false,
			"utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type Stats struct {
	Total      int64
	ByStatus   []StatusCount
	AvgOverall float64
	Categories CategoryAverages
}

type StatusCount struct {
	Status string
	Count  int64
}

// CategoryAverages 字段顺序和对外契约的维度顺序一致
type CategoryAverages struct {
	TechnicalSkills float64
	Communication   float64
	Leadership      float64
	ProblemSolving  float64
	Teamwork        float64
	Adaptability    float64
	TimeManagement  float64
	Creativity      float64
}

type EmployeeAverage struct {
	EmployeeID int64
	AvgOverall float64
}

func (d *assessmentDAO) Stats(ctx context.Context) (Stats, error) {
	var res Stats
	err := d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ?", true).
		Count(&res.Total).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ?", true).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&res.ByStatus).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ?", true).
		Select("COALESCE(AVG(overall_score), 0)").
		Scan(&res.AvgOverall).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ?", true).
		Select("COALESCE(AVG(technical_skills), 0) AS technical_skills, " +
			"COALESCE(AVG(communication), 0) AS communication, " +
			"COALESCE(AVG(leadership), 0) AS leadership, " +
			"COALESCE(AVG(problem_solving), 0) AS problem_solving, " +
			"COALESCE(AVG(teamwork), 0) AS teamwork, " +
			"COALESCE(AVG(adaptability), 0) AS adaptability, " +
			"COALESCE(AVG(time_management), 0) AS time_management, " +
			"COALESCE(AVG(creativity), 0) AS creativity").
		Scan(&res.Categories).Error
	return res, err
}

func (d *assessmentDAO) ApprovedAverages(ctx context.Context) ([]EmployeeAverage, error) {
	var res []EmployeeAverage
	err := d.db.WithContext(ctx).Model(&Assessment{}).
		Where("is_active = ? AND status = ?", true, "approved").
		Select("employee_id, AVG(overall_score) AS avg_overall").
		Group("employee_id").
		Scan(&res).Error
	return res, err
}
