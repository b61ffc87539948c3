package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrDuplicateEmail 邮箱唯一索引冲突
var ErrDuplicateEmail = errors.New("邮箱已被占用")

type EmployeeDAO interface {
	Insert(ctx context.Context, e Employee) (int64, error)
	Update(ctx context.Context, e Employee) error
	FindByID(ctx context.Context, id int64) (Employee, error)
	FindByEmail(ctx context.Context, email string) (Employee, error)
	// List 只返回未停用的员工
	List(ctx context.Context, f Filter, offset, limit int) ([]Employee, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// ListActive 候选池快照，按 id 升序，保证匹配排序的平局顺序可复现
	ListActive(ctx context.Context) ([]Employee, error)
	Deactivate(ctx context.Context, id int64) error
	UpdateSkills(ctx context.Context, id int64, skills []Skill) error
	UpdatePerformance(ctx context.Context, id int64, score int) error
	AddProjectRecord(ctx context.Context, id int64, record ProjectRecord) error
	CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error
	Stats(ctx context.Context) (Stats, error)
}

// Filter 列表页的筛选条件，零值字段不参与过滤
type Filter struct {
	Department   string
	Position     string
	Availability string
	Keyword      string
}

type employeeDAO struct {
	db *egorm.Component
}

func NewEmployeeDAO(db *egorm.Component) EmployeeDAO {
	return &employeeDAO{
		db: db,
	}
}

func (d *employeeDAO) Insert(ctx context.Context, e Employee) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	err := d.db.WithContext(ctx).Create(&e).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateEmail
		}
	}
	return e.ID, err
}

func (d *employeeDAO) Update(ctx context.Context, e Employee) error {
	return d.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ? AND is_active = ?", e.ID, true).
		Updates(map[string]any{
			"first_name":   e.FirstName,
			"last_name":    e.LastName,
			"phone":        e.Phone,
			"position":     e.Position,
			"department":   e.Department,
			"skills":       e.Skills,
			"availability": e.Availability,
			"avatar":       e.Avatar,
			"bio":          e.Bio,
			"strengths":    e.Strengths,
			"weaknesses":   e.Weaknesses,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *employeeDAO) FindByID(ctx context.Context, id int64) (Employee, error) {
	var e Employee
	err := d.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&e).Error
	return e, err
}

func (d *employeeDAO) FindByEmail(ctx context.Context, email string) (Employee, error) {
	var e Employee
	err := d.db.WithContext(ctx).
		Where("email = ?", email).
		First(&e).Error
	return e, err
}

func (d *employeeDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Employee, error) {
	var es []Employee
	err := d.query(ctx, f).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&es).Error
	return es, err
}

func (d *employeeDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := d.query(ctx, f).Count(&count).Error
	return count, err
}

func (d *employeeDAO) query(ctx context.Context, f Filter) *gorm.DB {
	builder := d.db.WithContext(ctx).Model(&Employee{}).
		Where("is_active = ?", true)
	if f.Department != "" {
		builder = builder.Where("department = ?", f.Department)
	}
	if f.Position != "" {
		builder = builder.Where("position = ?", f.Position)
	}
	if f.Availability != "" {
		builder = builder.Where("availability = ?", f.Availability)
	}
	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		builder = builder.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR position LIKE ?",
			like, like, like, like)
	}
	return builder
}

func (d *employeeDAO) ListActive(ctx context.Context) ([]Employee, error) {
	var es []Employee
	err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&es).Error
	return es, err
}

func (d *employeeDAO) Deactivate(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&Employee{}).
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

func (d *employeeDAO) UpdateSkills(ctx context.Context, id int64, skills []Skill) error {
	res := d.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"skills": skillColumn(skills),
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *employeeDAO) UpdatePerformance(ctx context.Context, id int64, score int) error {
	return d.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"performance_score": score,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

// AddProjectRecord 读改写在同一事务里，并用行锁保证同一个员工的修改串行化
func (d *employeeDAO) AddProjectRecord(ctx context.Context, id int64, record ProjectRecord) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&e).Error
		if err != nil {
			return err
		}
		records := e.Projects.Val
		records = append(records, record)
		return tx.Model(&Employee{}).Where("id = ?", id).
			Updates(map[string]any{
				"projects": recordColumn(records),
				"utime":    time.Now().UnixMilli(),
			}).Error
	})
}

func (d *employeeDAO) CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&e).Error
		if err != nil {
			return err
		}
		records := e.Projects.Val
		for i := range records {
			if records[i].ProjectID == pid && records[i].Active {
				records[i].Active = false
				records[i].EndDate = endDate
			}
		}
		return tx.Model(&Employee{}).Where("id = ?", id).
			Updates(map[string]any{
				"projects": recordColumn(records),
				"utime":    time.Now().UnixMilli(),
			}).Error
	})
}

type Stats struct {
	Total          int64
	Available      int64
	Busy           int64
	AvgPerformance float64
	Departments    []DepartmentCount
}

type DepartmentCount struct {
	Department string
	Count      int64
}

func (d *employeeDAO) Stats(ctx context.Context) (Stats, error) {
	var res Stats
	db := d.db.WithContext(ctx).Model(&Employee{})
	err := db.Where("is_active = ?", true).Count(&res.Total).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Employee{}).
		Where("is_active = ? AND availability = ?", true, "available").
		Count(&res.Available).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Employee{}).
		Where("is_active = ? AND availability = ?", true, "busy").
		Count(&res.Busy).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Employee{}).
		Where("is_active = ?", true).
		Select("COALESCE(AVG(performance_score), 0)").
		Scan(&res.AvgPerformance).Error
	if err != nil {
		return Stats{}, err
	}
	err = d.db.WithContext(ctx).Model(&Employee{}).
		Where("is_active = ?", true).
		Select("department, COUNT(*) AS count").
		Group("department").
		Scan(&res.Departments).Error
	return res, err
}
