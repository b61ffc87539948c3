// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package project

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/project/internal/event"
	"github.com/ecodeclub/talent/internal/project/internal/repository"
	"github.com/ecodeclub/talent/internal/project/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/project/internal/service"
	"github.com/ecodeclub/talent/internal/project/internal/web"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, em *employee.Module) (*Module, error) {
	projectDAO := InitProjectDAO(db)
	projectRepo := repository.NewProjectRepo(projectDAO)
	employeeService := em.Svc
	staffingEventProducer, err := event.NewStaffingEventProducer(q)
	if err != nil {
		return nil, err
	}
	projectService := service.NewProjectService(projectRepo, employeeService, staffingEventProducer)
	handler := web.NewHandler(projectService)
	module := &Module{
		Svc: projectService,
		Hdl: handler,
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

func InitProjectDAO(db *egorm.Component) dao.ProjectDAO {
	InitTableOnce(db)
	return dao.NewProjectDAO(db)
}
