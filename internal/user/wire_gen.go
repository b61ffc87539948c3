// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package user

import (
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/user/internal/repository"
	"github.com/ecodeclub/talent/internal/user/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/user/internal/service"
	"github.com/ecodeclub/talent/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, em *employee.Module) (*Module, error) {
	adminDAO := InitAdminDAO(db)
	adminRepo := repository.NewAdminRepo(adminDAO)
	employeeService := em.Svc
	userService := service.NewUserService(adminRepo, employeeService)
	handler := web.NewHandler(userService)
	module := &Module{
		Svc: userService,
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

func InitAdminDAO(db *egorm.Component) dao.AdminDAO {
	InitTableOnce(db)
	return dao.NewAdminDAO(db)
}
