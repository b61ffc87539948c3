//go:build wireinject

package employee

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/employee/internal/event"
	"github.com/ecodeclub/talent/internal/employee/internal/repository"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/cache"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/employee/internal/service"
	"github.com/ecodeclub/talent/internal/employee/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		InitEmployeeDAO,
		cache.NewEmployeeCache,
		repository.NewEmployeeRepo,
		event.NewStaffingEventProducer,
		service.NewEmployeeService,
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

func InitEmployeeDAO(db *egorm.Component) dao.EmployeeDAO {
	InitTableOnce(db)
	return dao.NewEmployeeDAO(db)
}
