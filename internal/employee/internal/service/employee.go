package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/talent/internal/employee/internal/domain"
	"github.com/ecodeclub/talent/internal/employee/internal/event"
	"github.com/ecodeclub/talent/internal/employee/internal/repository"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
	ErrDuplicateEmail   = dao.ErrDuplicateEmail
	// ErrInvalidInput 带字段名的校验失败
	ErrInvalidInput = errors.New("非法输入")
)

const minPasswordLen = 6

//go:generate mockgen -source=./employee.go -package=evcmocks -destination=../../mocks/employee.mock.go -typed=true EmployeeService
type EmployeeService interface {
	// Save 新建或者更新员工档案，返回员工 id。
	// 新建时密码会被 bcrypt 处理，更新时不碰密码和绩效
	Save(ctx context.Context, e domain.Employee) (int64, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Employee, int64, error)
	Detail(ctx context.Context, id int64) (domain.Employee, error)
	// Delete 软删除，之后不再出现在候选池里
	Delete(ctx context.Context, id int64) error
	UpdateSkills(ctx context.Context, id int64, skills []domain.Skill) error
	Stats(ctx context.Context) (domain.EmployeeStats, error)
	// ActivePool 匹配引擎的候选池快照，按员工 id 升序
	ActivePool(ctx context.Context) ([]domain.Employee, error)
	// VerifyPassword 员工登录校验，成功返回员工档案
	VerifyPassword(ctx context.Context, email, password string) (domain.Employee, error)
	AddProjectRecord(ctx context.Context, id int64, record domain.ProjectRecord) error
	CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error
	UpdatePerformance(ctx context.Context, id int64, score int) error
}

type Filter = repository.Filter

type employeeService struct {
	repo     repository.EmployeeRepo
	producer event.StaffingEventProducer
	logger   *elog.Component
}

func NewEmployeeService(repo repository.EmployeeRepo,
	producer event.StaffingEventProducer) EmployeeService {
	return &employeeService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *employeeService) Save(ctx context.Context, e domain.Employee) (int64, error) {
	if err := s.validate(e); err != nil {
		return 0, err
	}
	e.Skills = domain.NormalizeSkills(e.Skills)
	if e.ID == 0 {
		if len(e.Password) < minPasswordLen {
			return 0, fmt.Errorf("%w: password 至少 %d 位", ErrInvalidInput, minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		e.Password = string(hash)
		e.Active = true
		return s.repo.Create(ctx, e)
	}
	err := s.repo.Update(ctx, e)
	if err != nil {
		return 0, err
	}
	s.notifyUpdated(ctx, e.ID, "员工档案已更新")
	return e.ID, nil
}

func (s *employeeService) validate(e domain.Employee) error {
	if e.Availability != "" && !e.Availability.Valid() {
		return fmt.Errorf("%w: availability 取值非法 %q", ErrInvalidInput, e.Availability)
	}
	for _, sk := range e.Skills {
		if sk.Name == "" {
			return fmt.Errorf("%w: skill.name 不能为空", ErrInvalidInput)
		}
		if sk.Level < domain.SkillLevelMin || sk.Level > domain.SkillLevelMax {
			return fmt.Errorf("%w: 技能 %s 的等级必须在 %d-%d 之间",
				ErrInvalidInput, sk.Name, domain.SkillLevelMin, domain.SkillLevelMax)
		}
	}
	return nil
}

func (s *employeeService) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Employee, int64, error) {
	count, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	es, err := s.repo.List(ctx, f, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return es, count, nil
}

func (s *employeeService) Detail(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Employee{}, fmt.Errorf("%w: id %d", ErrEmployeeNotFound, id)
	}
	return e, err
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrEmployeeNotFound, id)
	}
	return err
}

func (s *employeeService) UpdateSkills(ctx context.Context, id int64, skills []domain.Skill) error {
	for _, sk := range skills {
		if sk.Name == "" {
			return fmt.Errorf("%w: skill.name 不能为空", ErrInvalidInput)
		}
		if sk.Level < domain.SkillLevelMin || sk.Level > domain.SkillLevelMax {
			return fmt.Errorf("%w: 技能 %s 的等级必须在 %d-%d 之间",
				ErrInvalidInput, sk.Name, domain.SkillLevelMin, domain.SkillLevelMax)
		}
	}
	err := s.repo.UpdateSkills(ctx, id, domain.NormalizeSkills(skills))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrEmployeeNotFound, id)
	}
	if err != nil {
		return err
	}
	s.notifyUpdated(ctx, id, "员工技能已更新")
	return nil
}

func (s *employeeService) Stats(ctx context.Context) (domain.EmployeeStats, error) {
	return s.repo.Stats(ctx)
}

func (s *employeeService) ActivePool(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ActivePool(ctx)
}

func (s *employeeService) VerifyPassword(ctx context.Context, email, password string) (domain.Employee, error) {
	e, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Employee{}, fmt.Errorf("%w: email %s", ErrEmployeeNotFound, email)
	}
	if err != nil {
		return domain.Employee{}, err
	}
	if !e.Active {
		return domain.Employee{}, fmt.Errorf("%w: 账号已被停用", ErrEmployeeNotFound)
	}
	err = bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("%w: 密码不正确", ErrInvalidInput)
	}
	return e, nil
}

func (s *employeeService) AddProjectRecord(ctx context.Context, id int64, record domain.ProjectRecord) error {
	return s.repo.AddProjectRecord(ctx, id, record)
}

func (s *employeeService) CloseProjectRecord(ctx context.Context, id int64, pid int64, endDate int64) error {
	return s.repo.CloseProjectRecord(ctx, id, pid, endDate)
}

func (s *employeeService) UpdatePerformance(ctx context.Context, id int64, score int) error {
	return s.repo.UpdatePerformance(ctx, id, score)
}

// notifyUpdated 发事件失败不影响主流程
func (s *employeeService) notifyUpdated(ctx context.Context, id int64, msg string) {
	evt := event.StaffingEvent{
		UID:      id,
		UserType: "employee",
		Biz:      event.BizEmployeeUpdate,
		Title:    "档案变更",
		Message:  msg,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送员工变更事件失败", elog.FieldErr(err))
	}
}
