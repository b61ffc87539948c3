package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/talent/internal/employee"
	evcmocks "github.com/ecodeclub/talent/internal/employee/mocks"
	"github.com/ecodeclub/talent/internal/project/internal/domain"
	"github.com/ecodeclub/talent/internal/project/internal/event"
	"github.com/ecodeclub/talent/internal/project/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRepo 只实现测试用到的方法，其余走内嵌接口直接 panic
type fakeRepo struct {
	repository.ProjectRepo
	project domain.Project
	findErr error

	staffingErr error
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (domain.Project, error) {
	return f.project, f.findErr
}

func (f *fakeRepo) UpdateStaffing(ctx context.Context, id int64, fn func(p *domain.Project) error) error {
	if f.staffingErr != nil {
		return f.staffingErr
	}
	return fn(&f.project)
}

type fakeProducer struct {
	events []event.StaffingEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.StaffingEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func TestProjectService_Matches(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffSvc := evcmocks.NewMockEmployeeService(ctrl)
	pool := []employee.Employee{
		{
			ID:           1,
			FirstName:    "Alice",
			LastName:     "Zhang",
			Availability: employee.AvailabilityBusy,
			Skills: []employee.Skill{
				{Name: "Python", Level: 5},
			},
		},
		{
			ID:           2,
			FirstName:    "Bob",
			LastName:     "Li",
			Availability: employee.AvailabilityBusy,
			Skills: []employee.Skill{
				{Name: "Python", Level: 10},
			},
		},
		{
			ID:           3,
			FirstName:    "Carol",
			LastName:     "Wang",
			Availability: employee.AvailabilityBusy,
			Skills: []employee.Skill{
				{Name: "Python", Level: 8},
			},
		},
	}
	staffSvc.EXPECT().ActivePool(gomock.Any()).Return(pool, nil)

	repo := &fakeRepo{
		project: domain.Project{
			ID: 10,
			Requirements: []domain.Requirement{
				{Skill: "Python", Level: 10},
			},
			// 员工 2 已在项目里，打分照常参与，结果里被过滤
			Assignees: []domain.Assignment{
				{EmployeeID: 2},
			},
		},
	}
	svc := NewProjectService(repo, staffSvc, &fakeProducer{})

	res, err := svc.Matches(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(3), res[0].Candidate.ID)
	assert.Equal(t, 80, res[0].MatchScore)
	assert.Equal(t, int64(1), res[1].Candidate.ID)
	assert.Equal(t, 50, res[1].MatchScore)
}

func TestProjectService_Assign(t *testing.T) {
	t.Run("正常分配", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().Detail(gomock.Any(), int64(1)).
			Return(employee.Employee{ID: 1, FirstName: "Alice", LastName: "Zhang"}, nil)
		staffSvc.EXPECT().AddProjectRecord(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, record employee.ProjectRecord) error {
				assert.Equal(t, int64(10), record.ProjectID)
				assert.Equal(t, "Developer", record.Role)
				assert.True(t, record.Active)
				return nil
			})

		repo := &fakeRepo{
			project: domain.Project{
				ID:     10,
				Title:  "内部工具重构",
				Status: domain.StatusOpen,
			},
		}
		producer := &fakeProducer{}
		svc := NewProjectService(repo, staffSvc, producer)

		err := svc.Assign(context.Background(), 10, 1, "Developer")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, repo.project.Status)
		require.Len(t, producer.events, 1)
		assert.Equal(t, event.BizProjectAssignment, producer.events[0].Biz)
		assert.Equal(t, int64(1), producer.events[0].UID)
	})

	t.Run("重复分配", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().Detail(gomock.Any(), int64(1)).
			Return(employee.Employee{ID: 1}, nil)

		repo := &fakeRepo{
			project: domain.Project{
				ID:     10,
				Status: domain.StatusInProgress,
				Assignees: []domain.Assignment{
					{EmployeeID: 1},
				},
			},
		}
		producer := &fakeProducer{}
		svc := NewProjectService(repo, staffSvc, producer)

		err := svc.Assign(context.Background(), 10, 1, "Developer")
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
		assert.Empty(t, producer.events)
	})

	t.Run("员工不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().Detail(gomock.Any(), int64(99)).
			Return(employee.Employee{}, employee.ErrEmployeeNotFound)

		svc := NewProjectService(&fakeRepo{}, staffSvc, &fakeProducer{})

		err := svc.Assign(context.Background(), 10, 99, "Developer")
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestProjectService_Unassign(t *testing.T) {
	t.Run("移出最后一人回退到 open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().CloseProjectRecord(gomock.Any(), int64(1), int64(10), gomock.Any()).
			Return(nil)

		repo := &fakeRepo{
			project: domain.Project{
				ID:     10,
				Title:  "内部工具重构",
				Status: domain.StatusInProgress,
				Assignees: []domain.Assignment{
					{EmployeeID: 1},
				},
			},
		}
		producer := &fakeProducer{}
		svc := NewProjectService(repo, staffSvc, producer)

		err := svc.Unassign(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOpen, repo.project.Status)
		assert.Empty(t, repo.project.Assignees)
		require.Len(t, producer.events, 1)
	})

	t.Run("员工不在项目里", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)

		repo := &fakeRepo{
			project: domain.Project{
				ID:     10,
				Status: domain.StatusInProgress,
			},
		}
		svc := NewProjectService(repo, staffSvc, &fakeProducer{})

		err := svc.Unassign(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestProjectService_Save_Validate(t *testing.T) {
	svc := NewProjectService(&fakeRepo{}, nil, &fakeProducer{})
	testCases := []struct {
		name    string
		project domain.Project
	}{
		{
			name:    "缺标题",
			project: domain.Project{},
		},
		{
			name: "状态非法",
			project: domain.Project{
				Title:  "测试",
				Status: "paused",
			},
		},
		{
			name: "要求缺技能名",
			project: domain.Project{
				Title: "测试",
				Requirements: []domain.Requirement{
					{Level: 5},
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tc.project)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
