package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrDuplicateUsername 用户名唯一索引冲突
var ErrDuplicateUsername = errors.New("用户名已被占用")

type AdminDAO interface {
	Insert(ctx context.Context, a Admin) (int64, error)
	FindByUsername(ctx context.Context, username string) (Admin, error)
	FindByID(ctx context.Context, id int64) (Admin, error)
	UpdateLastLogin(ctx context.Context, id int64, at int64) error
}

type adminDAO struct {
	db *egorm.Component
}

func NewAdminDAO(db *egorm.Component) AdminDAO {
	return &adminDAO{
		db: db,
	}
}

func (d *adminDAO) Insert(ctx context.Context, a Admin) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateUsername
		}
	}
	return a.ID, err
}

func (d *adminDAO) FindByUsername(ctx context.Context, username string) (Admin, error) {
	var a Admin
	err := d.db.WithContext(ctx).
		Where("username = ?", username).
		First(&a).Error
	return a, err
}

func (d *adminDAO) FindByID(ctx context.Context, id int64) (Admin, error) {
	var a Admin
	err := d.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	return a, err
}

func (d *adminDAO) UpdateLastLogin(ctx context.Context, id int64, at int64) error {
	return d.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_login": at,
			"utime":      at,
		}).Error
}
