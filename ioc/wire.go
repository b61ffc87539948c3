//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/project"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		employee.InitModule,
		project.InitModule,
		assessment.InitModule,
		user.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*employee.Module), "Hdl"),
		wire.FieldsOf(new(*project.Module), "Hdl"),
		wire.FieldsOf(new(*assessment.Module), "Hdl", "SyncJob"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
