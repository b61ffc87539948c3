// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*notification.Module, error) {
	db := testioc.InitDB()
	mq := testioc.InitMQ()
	module, err := notification.InitModule(db, mq)
	if err != nil {
		return nil, err
	}
	return module, nil
}
