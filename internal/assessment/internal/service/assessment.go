package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/event"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"
)

var (
	ErrAssessmentNotFound = errors.New("考核记录不存在")
	ErrEmployeeNotFound   = employee.ErrEmployeeNotFound
	ErrStateConflict      = domain.ErrStateConflict
	ErrInvalidInput       = errors.New("非法输入")
)

//go:generate mockgen -source=./assessment.go -package=assessmentmocks -destination=../../mocks/assessment.mock.go -typed=true AssessmentService
type AssessmentService interface {
	// Create 新建考核，落库前统一推导总分，初始状态 draft
	Create(ctx context.Context, a domain.Assessment) (int64, error)
	// Update 只有 draft/submitted 状态的考核还能改
	Update(ctx context.Context, id int64, scores domain.Scores, recommendations []string, comments string) error
	// Advance 单步推进状态机
	Advance(ctx context.Context, id int64, to domain.Status) error
	Detail(ctx context.Context, id int64) (domain.Assessment, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Assessment, int64, error)
	// Delete 软删除，任何状态都允许
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.AssessmentStats, error)
	// SyncPerformance 把已批准考核的总分均值回写到员工绩效分
	SyncPerformance(ctx context.Context) (int, error)
}

type Filter = repository.Filter

type assessmentService struct {
	repo     repository.AssessmentRepo
	staffSvc employee.Service
	producer event.StaffingEventProducer
	logger   *elog.Component
}

func NewAssessmentService(repo repository.AssessmentRepo,
	staffSvc employee.Service,
	producer event.StaffingEventProducer) AssessmentService {
	return &assessmentService{
		repo:     repo,
		staffSvc: staffSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *assessmentService) Create(ctx context.Context, a domain.Assessment) (int64, error) {
	if a.EmployeeID <= 0 {
		return 0, fmt.Errorf("%w: employeeId 不能为空", ErrInvalidInput)
	}
	// 被考核的员工必须存在
	if _, err := s.staffSvc.Detail(ctx, a.EmployeeID); err != nil {
		return 0, err
	}
	a.SN = shortuuid.New()
	a.Status = domain.StatusDraft
	a.Active = true
	if a.Date == 0 {
		a.Date = time.Now().UnixMilli()
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return 0, err
	}
	s.notifySubmitted(ctx, a.EmployeeID, fmt.Sprintf("你有一份新的考核记录，总分 %d（%s）",
		a.Scores.Overall(), a.Scores.Level()))
	return id, nil
}

func (s *assessmentService) Update(ctx context.Context, id int64, scores domain.Scores,
	recommendations []string, comments string) error {
	err := s.repo.UpdateLocked(ctx, id, func(a *domain.Assessment) error {
		return a.Update(scores, recommendations, comments)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrAssessmentNotFound, id)
	}
	return err
}

func (s *assessmentService) Advance(ctx context.Context, id int64, to domain.Status) error {
	switch to {
	case domain.StatusSubmitted, domain.StatusReviewed, domain.StatusApproved:
	default:
		return fmt.Errorf("%w: 目标状态非法 %q", ErrInvalidInput, to)
	}
	err := s.repo.UpdateLocked(ctx, id, func(a *domain.Assessment) error {
		return a.Advance(to)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrAssessmentNotFound, id)
	}
	return err
}

func (s *assessmentService) Detail(ctx context.Context, id int64) (domain.Assessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Assessment{}, fmt.Errorf("%w: id %d", ErrAssessmentNotFound, id)
	}
	return a, err
}

func (s *assessmentService) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Assessment, int64, error) {
	count, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	as, err := s.repo.List(ctx, f, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return as, count, nil
}

func (s *assessmentService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrAssessmentNotFound, id)
	}
	return err
}

func (s *assessmentService) Stats(ctx context.Context) (domain.AssessmentStats, error) {
	return s.repo.Stats(ctx)
}

func (s *assessmentService) SyncPerformance(ctx context.Context) (int, error) {
	avgs, err := s.repo.ApprovedAverages(ctx)
	if err != nil {
		return 0, err
	}
	var synced int
	for id, avg := range avgs {
		err := s.staffSvc.UpdatePerformance(ctx, id, int(math.Round(avg)))
		if err != nil {
			// 单个员工失败不中断整批
			s.logger.Error("回写员工绩效分失败",
				elog.FieldErr(err),
				elog.Int64("employee", id))
			continue
		}
		synced++
	}
	return synced, nil
}

func (s *assessmentService) notifySubmitted(ctx context.Context, employeeID int64, msg string) {
	evt := event.StaffingEvent{
		UID:      employeeID,
		UserType: "employee",
		Biz:      event.BizAssessmentSubmitted,
		Title:    "考核记录",
		Message:  msg,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送考核事件失败", elog.FieldErr(err))
	}
}
