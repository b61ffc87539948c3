// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/project"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	cache := InitCache(cmdable)
	mq := InitMQ()
	module, err := employee.InitModule(db, cache, mq)
	if err != nil {
		return nil, err
	}
	userModule, err := user.InitModule(db, module)
	if err != nil {
		return nil, err
	}
	handler := userModule.Hdl
	webHandler := module.Hdl
	projectModule, err := project.InitModule(db, mq, module)
	if err != nil {
		return nil, err
	}
	handler2 := projectModule.Hdl
	assessmentModule, err := assessment.InitModule(db, mq, module)
	if err != nil {
		return nil, err
	}
	handler3 := assessmentModule.Hdl
	notificationModule, err := notification.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	handler4 := notificationModule.Hdl
	component := initGinxServer(provider, handler, webHandler, handler2, handler3, handler4)
	syncPerformanceJob := assessmentModule.SyncJob
	v := initCronJobs(syncPerformanceJob)
	v2 := initMQConsumers(notificationModule)
	app := &App{
		Web:       component,
		Crons:     v,
		Consumers: v2,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)
