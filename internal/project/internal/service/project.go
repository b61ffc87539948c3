package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/project/internal/domain"
	"github.com/ecodeclub/talent/internal/project/internal/event"
	"github.com/ecodeclub/talent/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("项目不存在")
	ErrEmployeeNotFound = employee.ErrEmployeeNotFound
	ErrAlreadyAssigned  = domain.ErrAlreadyAssigned
	ErrInvalidInput     = errors.New("非法输入")
)

//go:generate mockgen -source=./project.go -package=projectmocks -destination=../../mocks/project.mock.go -typed=true ProjectService
type ProjectService interface {
	// Save 新建或者更新项目，返回项目 id。
	// 更新不会触碰人员分配和评论，那两块只能走专门的操作
	Save(ctx context.Context, p domain.Project) (int64, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Project, int64, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
	// Delete 软删除
	Delete(ctx context.Context, id int64) error
	// Matches 对整个候选池打分排序，已经分配到本项目的员工不出现在结果里
	Matches(ctx context.Context, id int64) ([]domain.MatchResult, error)
	MatchExplanation(ctx context.Context, id int64, employeeID int64) (string, error)
	Assign(ctx context.Context, id int64, employeeID int64, role string) error
	Unassign(ctx context.Context, id int64, employeeID int64) error
	AddComment(ctx context.Context, id int64, text, author string) error
	Stats(ctx context.Context) (domain.ProjectStats, error)
}

type Filter = repository.Filter

type projectService struct {
	repo     repository.ProjectRepo
	staffSvc employee.Service
	producer event.StaffingEventProducer
	logger   *elog.Component
}

func NewProjectService(repo repository.ProjectRepo,
	staffSvc employee.Service,
	producer event.StaffingEventProducer) ProjectService {
	return &projectService{
		repo:     repo,
		staffSvc: staffSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *projectService) Save(ctx context.Context, p domain.Project) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	if p.ID == 0 {
		if p.Status == "" {
			p.Status = domain.StatusOpen
		}
		p.Active = true
		return s.repo.Create(ctx, p)
	}
	err := s.repo.Update(ctx, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id %d", ErrProjectNotFound, p.ID)
	}
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *projectService) validate(p domain.Project) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title 不能为空", ErrInvalidInput)
	}
	switch p.Status {
	case "", domain.StatusOpen, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
	default:
		return fmt.Errorf("%w: status 取值非法 %q", ErrInvalidInput, p.Status)
	}
	for _, r := range p.Requirements {
		if r.Skill == "" {
			return fmt.Errorf("%w: requirement.skill 不能为空", ErrInvalidInput)
		}
	}
	return nil
}

func (s *projectService) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Project, int64, error) {
	count, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	ps, err := s.repo.List(ctx, f, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return ps, count, nil
}

func (s *projectService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Project{}, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return p, err
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return err
}

func (s *projectService) Matches(ctx context.Context, id int64) ([]domain.MatchResult, error) {
	var (
		p    domain.Project
		pool []employee.Employee
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		p, err = s.Detail(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		pool, err = s.staffSvc.ActivePool(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	candidates := slice.Map(pool, func(idx int, src employee.Employee) domain.Candidate {
		return s.toCandidate(src)
	})
	results := domain.MatchEmployees(p.Requirements, candidates)
	// 先打分后过滤，已分配的员工不影响其他人的名次
	filtered := make([]domain.MatchResult, 0, len(results))
	for _, res := range results {
		if p.IsAssigned(res.Candidate.ID) {
			continue
		}
		filtered = append(filtered, res)
	}
	return filtered, nil
}

func (s *projectService) MatchExplanation(ctx context.Context, id int64, employeeID int64) (string, error) {
	p, err := s.Detail(ctx, id)
	if err != nil {
		return "", err
	}
	e, err := s.staffSvc.Detail(ctx, employeeID)
	if err != nil {
		return "", err
	}
	return domain.ExplainMatch(p.Requirements, s.toCandidate(e)), nil
}

func (s *projectService) Assign(ctx context.Context, id int64, employeeID int64, role string) error {
	e, err := s.staffSvc.Detail(ctx, employeeID)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	var title string
	err = s.repo.UpdateStaffing(ctx, id, func(p *domain.Project) error {
		title = p.Title
		return p.Assign(employeeID, role, now)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	if err != nil {
		return err
	}
	// 项目侧已经提交，员工侧的履历和通知失败只记日志
	err = s.staffSvc.AddProjectRecord(ctx, employeeID, employee.ProjectRecord{
		ProjectID: id,
		Role:      role,
		StartDate: now,
		Active:    true,
	})
	if err != nil {
		s.logger.Error("同步员工项目履历失败",
			elog.FieldErr(err),
			elog.Int64("employee", employeeID),
			elog.Int64("project", id))
	}
	s.notifyAssignment(ctx, e.ID, fmt.Sprintf("你已被分配到项目「%s」，角色：%s", title, role))
	return nil
}

func (s *projectService) Unassign(ctx context.Context, id int64, employeeID int64) error {
	var title string
	err := s.repo.UpdateStaffing(ctx, id, func(p *domain.Project) error {
		title = p.Title
		if !p.Unassign(employeeID) {
			return fmt.Errorf("%w: id %d", ErrEmployeeNotFound, employeeID)
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	if err != nil {
		return err
	}
	err = s.staffSvc.CloseProjectRecord(ctx, employeeID, id, time.Now().UnixMilli())
	if err != nil {
		s.logger.Error("关闭员工项目履历失败",
			elog.FieldErr(err),
			elog.Int64("employee", employeeID),
			elog.Int64("project", id))
	}
	s.notifyAssignment(ctx, employeeID, fmt.Sprintf("你已被移出项目「%s」", title))
	return nil
}

func (s *projectService) AddComment(ctx context.Context, id int64, text, author string) error {
	if text == "" {
		return fmt.Errorf("%w: text 不能为空", ErrInvalidInput)
	}
	err := s.repo.AddComment(ctx, id, domain.Comment{
		Text:   text,
		Author: author,
		Ctime:  time.Now().UnixMilli(),
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return err
}

func (s *projectService) Stats(ctx context.Context) (domain.ProjectStats, error) {
	return s.repo.Stats(ctx)
}

func (s *projectService) toCandidate(e employee.Employee) domain.Candidate {
	return domain.Candidate{
		ID:               e.ID,
		Name:             e.FullName(),
		Email:            e.Email,
		Position:         e.Position,
		Availability:     e.Availability.String(),
		PerformanceScore: e.PerformanceScore,
		Skills: slice.Map(e.Skills, func(idx int, src employee.Skill) domain.CandidateSkill {
			return domain.CandidateSkill{
				Name:  src.Name,
				Level: src.Level,
			}
		}),
		ActiveProjects: e.ActiveProjects(),
	}
}

func (s *projectService) notifyAssignment(ctx context.Context, employeeID int64, msg string) {
	evt := event.StaffingEvent{
		UID:      employeeID,
		UserType: "employee",
		Biz:      event.BizProjectAssignment,
		Title:    "项目分配变更",
		Message:  msg,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送项目分配事件失败", elog.FieldErr(err))
	}
}
