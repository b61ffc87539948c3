package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("通知不存在")

//go:generate mockgen -source=./notification.go -package=notificationmocks -destination=../../mocks/notification.mock.go -typed=true NotificationService
type NotificationService interface {
	// Create 消费人事动态事件时落库
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id int64, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationService struct {
	repo repository.NotificationRepo
}

func NewNotificationService(repo repository.NotificationRepo) NotificationService {
	return &notificationService{
		repo: repo,
	}
}

func (s *notificationService) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	count, err := s.repo.Count(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	ns, err := s.repo.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return ns, count, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *notificationService) MarkRead(ctx context.Context, id int64, uid int64) error {
	err := s.repo.MarkRead(ctx, id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotificationNotFound, id)
	}
	return err
}

func (s *notificationService) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
