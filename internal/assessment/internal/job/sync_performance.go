package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPerformanceJob)(nil)

// SyncPerformanceJob 定时把已批准考核的总分均值回写到员工绩效分
type SyncPerformanceJob struct {
	svc    service.AssessmentService
	logger *elog.Component
}

func NewSyncPerformanceJob(svc service.AssessmentService) *SyncPerformanceJob {
	return &SyncPerformanceJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *SyncPerformanceJob) Name() string {
	return "SyncPerformanceJob"
}

func (j *SyncPerformanceJob) Run(ctx context.Context) error {
	synced, err := j.svc.SyncPerformance(ctx)
	if err != nil {
		return fmt.Errorf("同步员工绩效分: %w", err)
	}
	j.logger.Info("员工绩效分同步完成", elog.Int("synced", synced))
	return nil
}
