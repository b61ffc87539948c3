package employee

import (
	"github.com/ecodeclub/talent/internal/employee/internal/domain"
	"github.com/ecodeclub/talent/internal/employee/internal/service"
	"github.com/ecodeclub/talent/internal/employee/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.EmployeeService
type Employee = domain.Employee
type Skill = domain.Skill
type ProjectRecord = domain.ProjectRecord
type Availability = domain.Availability

const (
	AvailabilityAvailable   = domain.AvailabilityAvailable
	AvailabilityBusy        = domain.AvailabilityBusy
	AvailabilityUnavailable = domain.AvailabilityUnavailable
)

var (
	ErrEmployeeNotFound = service.ErrEmployeeNotFound
	ErrInvalidInput     = service.ErrInvalidInput
)
