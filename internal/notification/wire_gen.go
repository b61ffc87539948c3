// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/event"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/ecodeclub/talent/internal/notification/internal/web"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ) (*Module, error) {
	notificationDAO := InitNotificationDAO(db)
	notificationRepo := repository.NewNotificationRepo(notificationDAO)
	notificationService := service.NewNotificationService(notificationRepo)
	handler := web.NewHandler(notificationService)
	staffingEventConsumer, err := event.NewStaffingEventConsumer(notificationService, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Svc:      notificationService,
		Hdl:      handler,
		Consumer: staffingEventConsumer,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitNotificationDAO(db *egorm.Component) dao.NotificationDAO {
	InitTableOnce(db)
	return dao.NewNotificationDAO(db)
}
