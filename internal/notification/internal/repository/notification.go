package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
)

type NotificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	Count(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id int64, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationRepo struct {
	dao dao.NotificationDAO
}

func NewNotificationRepo(d dao.NotificationDAO) NotificationRepo {
	return &notificationRepo{
		dao: d,
	}
}

func (r *notificationRepo) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Insert(ctx, dao.Notification{
		UID:      n.UID,
		UserType: n.UserType,
		Biz:      n.Biz,
		Title:    n.Title,
		Message:  n.Message,
		Read:     n.Read,
	})
}

func (r *notificationRepo) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return domain.Notification{
			ID:       src.ID,
			UID:      src.UID,
			UserType: src.UserType,
			Biz:      src.Biz,
			Title:    src.Title,
			Message:  src.Message,
			Read:     src.Read,
			Ctime:    src.Ctime,
			Utime:    src.Utime,
		}
	}), nil
}

func (r *notificationRepo) Count(ctx context.Context, uid int64) (int64, error) {
	return r.dao.Count(ctx, uid)
}

func (r *notificationRepo) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return r.dao.UnreadCount(ctx, uid)
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64, uid int64) error {
	return r.dao.MarkRead(ctx, id, uid)
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, uid int64) error {
	return r.dao.MarkAllRead(ctx, uid)
}
