//go:build wireinject

package user

import (
	"sync"

	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/user/internal/repository"
	"github.com/ecodeclub/talent/internal/user/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/user/internal/service"
	"github.com/ecodeclub/talent/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, em *employee.Module) (*Module, error) {
	wire.Build(
		InitAdminDAO,
		repository.NewAdminRepo,
		wire.FieldsOf(new(*employee.Module), "Svc"),
		service.NewUserService,
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

func InitAdminDAO(db *egorm.Component) dao.AdminDAO {
	InitTableOnce(db)
	return dao.NewAdminDAO(db)
}
