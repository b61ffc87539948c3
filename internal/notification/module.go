package notification

import (
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/event"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/ecodeclub/talent/internal/notification/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	Consumer *StaffingEventConsumer
}

type Handler = web.Handler
type Service = service.NotificationService
type Notification = domain.Notification
type StaffingEventConsumer = event.StaffingEventConsumer
