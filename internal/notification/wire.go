//go:build wireinject

package notification

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/event"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/ecodeclub/talent/internal/notification/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitNotificationDAO,
		repository.NewNotificationRepo,
		service.NewNotificationService,
		event.NewStaffingEventConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
