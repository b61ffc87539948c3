package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ProjectDAO interface {
	Insert(ctx context.Context, p Project) (int64, error)
	Update(ctx context.Context, p Project) error
	FindByID(ctx context.Context, id int64) (Project, error)
	// List 只返回未删除的项目
	List(ctx context.Context, f Filter, offset, limit int) ([]Project, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Deactivate(ctx context.Context, id int64) error
	// UpdateStaffingLocked 在行锁保护下读出项目，交给 fn 修改人员分配与状态后写回。
	// 同一个项目的分配操作因此是串行的，fn 返回错误则整个事务回滚
	UpdateStaffingLocked(ctx context.Context, id int64, fn func(p Project) (Project, error)) error
	AddComment(ctx context.Context, id int64, comment Comment) error
	Stats(ctx context.Context) (Stats, error)
}

// Filter 列表页的筛选条件，零值字段不参与过滤
type Filter struct {
	Status   string
	Priority string
	Category string
	Keyword  string
}

type projectDAO struct {
	db *egorm.Component
}

func NewProjectDAO(db *egorm.Component) ProjectDAO {
	return &projectDAO{
		db: db,
	}
}

func (d *projectDAO) Insert(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.ID, err
}

func (d *projectDAO) Update(ctx context.Context, p Project) error {
	res := d.db.WithContext(ctx).Model(&Project{}).
		Where("id = ? AND is_active = ?", p.ID, true).
		Updates(map[string]any{
			"title":        p.Title,
			"desc":         p.Desc,
			"company":      p.Company,
			"requirements": p.Requirements,
			"budget":       p.Budget,
			"duration":     p.Duration,
			"start_date":   p.StartDate,
			"end_date":     p.EndDate,
			"status":       p.Status,
			"priority":     p.Priority,
			"category":     p.Category,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *projectDAO) FindByID(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := d.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error
	return p, err
}

func (d *projectDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Project, error) {
	var ps []Project
	err := d.query(ctx, f).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&ps).Error
	return ps, err
}

func (d *projectDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := d.query(ctx, f).Count(&count).Error
	return count, err
}

func (d *projectDAO) query(ctx context.Context, f Filter) *gorm.DB {
	builder := d.db.WithContext(ctx).Model(&Project{}).
		Where("is_active = ?", true)
	if f.Status != "" {
		builder = builder.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		builder = builder.Where("priority = ?", f.Priority)
	}
	if f.Category != "" {
		builder = builder.Where("category = ?", f.Category)
	}
	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		builder = builder.Where(
			"title LIKE ? OR company LIKE ? OR category LIKE ?",
			like, like, like)
	}
	return builder
}

func (d *projectDAO) Deactivate(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Project{}).
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

func (d *projectDAO) UpdateStaffingLocked(ctx context.Context, id int64, fn func(p Project) (Project, error)) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", id, true).
			First(&p).Error
		if err != nil {
			return err
		}
		p, err = fn(p)
		if err != nil {
			return err
		}
		return tx.Model(&Project{}).Where("id = ?", id).
			Updates(map[string]any{
				"assigned_employees": p.AssignedEmployees,
				"status":             p.Status,
				"utime":              time.Now().UnixMilli(),
			}).Error
	})
}

func (d *projectDAO) AddComment(ctx context.Context, id int64, comment Comment) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", id, true).
			First(&p).Error
		if err != nil {
			return err
		}
		comments := p.Comments.Val
		comments = append(comments, comment)
		return tx.Model(&Project{}).Where("id = ?", id).
			Updates(map[string]any{
				"comments": sqlx.JsonColumn[[]Comment]{Val: comments, Valid: true},
				"utime":    time.Now().UnixMilli(),
			}).Error
	})
}

type Stats struct {
	Total      int64
	Open       int64
	InProgress int64
	Completed  int64
	AvgBudget  float64
	Categories []CategoryCount
}

type CategoryCount struct {
	Category string
	Count    int64
}

func (d *projectDAO) Stats(ctx context.Context) (Stats, error) {
	var res Stats
	err := d.db.WithContext(ctx).Model(&Project{}).
		Where("is_active = ?", true).
		Count(&res.Total).Error
	if err != nil {
		return Stats{}, err
	}
	counts := []struct {
		status string
		dst    *int64
	}{
		{"open", &res.Open},
		{"in-progress", &res.InProgress},
		{"completed", &res.Completed},
	}
	for _, c := range counts {
		err = d.db.WithContext(ctx).Model(&Project{}).
			Where("is_active = ? AND status = ?", true, c.status).
			Count(c.dst).Error
		if err != nil {
			return Stats{}, err
		}
	}
	err = d.db.WithContext(ctx).Model(&Project{}).
		Where("is_active = ?", true).
		Select("COALESCE(AVG(budget), 0)").
		Scan(&res.AvgBudget).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Project{}).
		Where("is_active = ?", true).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&res.Categories).Error
	return res, err
}
