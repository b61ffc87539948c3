package project

import (
	"github.com/ecodeclub/talent/internal/project/internal/domain"
	"github.com/ecodeclub/talent/internal/project/internal/service"
	"github.com/ecodeclub/talent/internal/project/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.ProjectService
type Project = domain.Project
type Requirement = domain.Requirement
type Assignment = domain.Assignment
type MatchResult = domain.MatchResult
type Status = domain.Status

const (
	StatusOpen       = domain.StatusOpen
	StatusInProgress = domain.StatusInProgress
	StatusCompleted  = domain.StatusCompleted
	StatusCancelled  = domain.StatusCancelled
)

var (
	ErrProjectNotFound = service.ErrProjectNotFound
	ErrAlreadyAssigned = service.ErrAlreadyAssigned
)
