package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (int64, error)
	// List 按创建时间倒序，只看自己的
	List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	Count(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// MarkRead 带 uid 条件，防止标记别人的通知
	MarkRead(ctx context.Context, id int64, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationDAO struct {
	db *egorm.Component
}

func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &notificationDAO{
		db: db,
	}
}

func (d *notificationDAO) Insert(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := d.db.WithContext(ctx).Create(&n).Error
	return n.ID, err
}

func (d *notificationDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var ns []Notification
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&ns).Error
	return ns, err
}

func (d *notificationDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

func (d *notificationDAO) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Count(&count).Error
	return count, err
}

func (d *notificationDAO) MarkRead(ctx context.Context, id int64, uid int64) error {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *notificationDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		}).Error
}
