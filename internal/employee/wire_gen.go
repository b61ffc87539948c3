// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package employee

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/employee/internal/event"
	"github.com/ecodeclub/talent/internal/employee/internal/repository"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/cache"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/employee/internal/service"
	"github.com/ecodeclub/talent/internal/employee/internal/web"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, q mq.MQ) (*Module, error) {
	employeeDAO := InitEmployeeDAO(db)
	employeeCache := cache.NewEmployeeCache(ec)
	employeeRepo := repository.NewEmployeeRepo(employeeDAO, employeeCache)
	staffingEventProducer, err := event.NewStaffingEventProducer(q)
	if err != nil {
		return nil, err
	}
	employeeService := service.NewEmployeeService(employeeRepo, staffingEventProducer)
	handler := web.NewHandler(employeeService)
	module := &Module{
		Svc: employeeService,
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

func InitEmployeeDAO(db *egorm.Component) dao.EmployeeDAO {
	InitTableOnce(db)
	return dao.NewEmployeeDAO(db)
}
