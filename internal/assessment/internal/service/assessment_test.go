package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/event"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/employee"
	evcmocks "github.com/ecodeclub/talent/internal/employee/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRepo 只实现测试用到的方法，其余走内嵌接口直接 panic
type fakeRepo struct {
	repository.AssessmentRepo
	assessment domain.Assessment
	created    *domain.Assessment
	avgs       map[int64]float64
}

func (f *fakeRepo) Create(ctx context.Context, a domain.Assessment) (int64, error) {
	f.created = &a
	return 1, nil
}

func (f *fakeRepo) UpdateLocked(ctx context.Context, id int64, fn func(a *domain.Assessment) error) error {
	return fn(&f.assessment)
}

func (f *fakeRepo) ApprovedAverages(ctx context.Context) (map[int64]float64, error) {
	return f.avgs, nil
}

type fakeProducer struct {
	events []event.StaffingEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.StaffingEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func mustScores(t *testing.T, v float64) domain.Scores {
	t.Helper()
	raw := make(map[string]float64, len(domain.Categories))
	for _, cat := range domain.Categories {
		raw[cat] = v
	}
	s, err := domain.NewScores(raw)
	require.NoError(t, err)
	return s
}

func TestAssessmentService_Create(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().Detail(gomock.Any(), int64(1)).
			Return(employee.Employee{ID: 1}, nil)

		repo := &fakeRepo{}
		producer := &fakeProducer{}
		svc := NewAssessmentService(repo, staffSvc, producer)

		id, err := svc.Create(context.Background(), domain.Assessment{
			EmployeeID: 1,
			AssessorID: 100,
			Scores:     mustScores(t, 8),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		require.NotNil(t, repo.created)
		assert.Equal(t, domain.StatusDraft, repo.created.Status)
		assert.True(t, repo.created.Active)
		assert.NotEmpty(t, repo.created.SN)
		assert.NotZero(t, repo.created.Date)
		require.Len(t, producer.events, 1)
		assert.Equal(t, event.BizAssessmentSubmitted, producer.events[0].Biz)
		assert.Contains(t, producer.events[0].Message, "80")
	})

	t.Run("缺员工 id", func(t *testing.T) {
		svc := NewAssessmentService(&fakeRepo{}, nil, &fakeProducer{})
		_, err := svc.Create(context.Background(), domain.Assessment{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("员工不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staffSvc := evcmocks.NewMockEmployeeService(ctrl)
		staffSvc.EXPECT().Detail(gomock.Any(), int64(99)).
			Return(employee.Employee{}, employee.ErrEmployeeNotFound)

		svc := NewAssessmentService(&fakeRepo{}, staffSvc, &fakeProducer{})
		_, err := svc.Create(context.Background(), domain.Assessment{EmployeeID: 99})
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestAssessmentService_Advance(t *testing.T) {
	testCases := []struct {
		name string
		from domain.Status
		to   domain.Status

		wantErr error
	}{
		{
			name: "draft 提交",
			from: domain.StatusDraft,
			to:   domain.StatusSubmitted,
		},
		{
			name:    "跳步被拒",
			from:    domain.StatusDraft,
			to:      domain.StatusApproved,
			wantErr: ErrStateConflict,
		},
		{
			name:    "目标状态非法",
			from:    domain.StatusDraft,
			to:      domain.Status("archived"),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "不能推进回 draft",
			from:    domain.StatusSubmitted,
			to:      domain.StatusDraft,
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{
				assessment: domain.Assessment{ID: 1, Status: tc.from},
			}
			svc := NewAssessmentService(repo, nil, &fakeProducer{})
			err := svc.Advance(context.Background(), 1, tc.to)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.to, repo.assessment.Status)
			} else {
				assert.Equal(t, tc.from, repo.assessment.Status)
			}
		})
	}
}

func TestAssessmentService_Update_Frozen(t *testing.T) {
	repo := &fakeRepo{
		assessment: domain.Assessment{ID: 1, Status: domain.StatusApproved},
	}
	svc := NewAssessmentService(repo, nil, &fakeProducer{})
	err := svc.Update(context.Background(), 1, mustScores(t, 5), nil, "")
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestAssessmentService_SyncPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	staffSvc := evcmocks.NewMockEmployeeService(ctrl)
	// 85.4 四舍五入成 85，第二个员工失败不中断整批
	staffSvc.EXPECT().UpdatePerformance(gomock.Any(), int64(1), 85).Return(nil)
	staffSvc.EXPECT().UpdatePerformance(gomock.Any(), int64(2), 70).
		Return(errors.New("db down"))

	repo := &fakeRepo{
		avgs: map[int64]float64{
			1: 85.4,
			2: 70,
		},
	}
	svc := NewAssessmentService(repo, staffSvc, &fakeProducer{})
	synced, err := svc.SyncPerformance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
}
