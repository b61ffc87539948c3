// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*employee.Module, error) {
	db := testioc.InitDB()
	cache := testioc.InitCache()
	mq := testioc.InitMQ()
	module, err := employee.InitModule(db, cache, mq)
	if err != nil {
		return nil, err
	}
	return module, nil
}
