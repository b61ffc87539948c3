package dao

import "github.com/ecodeclub/ekit/sqlx"

type Admin struct {
	ID          int64                     `gorm:"primaryKey,autoIncrement"`
	Username    string                    `gorm:"type:varchar(128);uniqueIndex:unq_admin_username"`
	FirstName   string                    `gorm:"type:varchar(128)"`
	LastName    string                    `gorm:"type:varchar(128)"`
	Email       string                    `gorm:"type:varchar(256)"`
	Password    string                    `gorm:"type:varchar(128)"`
	Role        string                    `gorm:"type:varchar(16);comment:admin/super_admin"`
	Permissions sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Avatar      string                    `gorm:"type:varchar(512)"`
	IsActive    bool
	LastLogin   int64
	Ctime       int64
	Utime       int64
}
