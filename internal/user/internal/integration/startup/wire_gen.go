// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ecodeclub/talent/internal/user"
)

// Injectors from wire.go:

func InitModule(em *employee.Module) (*user.Module, error) {
	db := testioc.InitDB()
	module, err := user.InitModule(db, em)
	if err != nil {
		return nil, err
	}
	return module, nil
}
