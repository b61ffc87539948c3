//go:build wireinject

package project

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/project/internal/event"
	"github.com/ecodeclub/talent/internal/project/internal/repository"
	"github.com/ecodeclub/talent/internal/project/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/project/internal/service"
	"github.com/ecodeclub/talent/internal/project/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, q mq.MQ, em *employee.Module) (*Module, error) {
	wire.Build(
		InitProjectDAO,
		repository.NewProjectRepo,
		event.NewStaffingEventProducer,
		wire.FieldsOf(new(*employee.Module), "Svc"),
		service.NewProjectService,
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

func InitProjectDAO(db *egorm.Component) dao.ProjectDAO {
	InitTableOnce(db)
	return dao.NewProjectDAO(db)
}
