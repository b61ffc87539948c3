package assessment

import (
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/job"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
)

type Module struct {
	Svc     Service
	Hdl     *Handler
	SyncJob *SyncPerformanceJob
}

type Handler = web.Handler
type Service = service.AssessmentService
type SyncPerformanceJob = job.SyncPerformanceJob
type Assessment = domain.Assessment
type Scores = domain.Scores
type Status = domain.Status

const (
	StatusDraft     = domain.StatusDraft
	StatusSubmitted = domain.StatusSubmitted
	StatusReviewed  = domain.StatusReviewed
	StatusApproved  = domain.StatusApproved
)

var (
	NewScores             = domain.NewScores
	ErrAssessmentNotFound = service.ErrAssessmentNotFound
	ErrStateConflict      = service.ErrStateConflict
)
