// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule(em *employee.Module) (*assessment.Module, error) {
	db := testioc.InitDB()
	mq := testioc.InitMQ()
	module, err := assessment.InitModule(db, mq, em)
	if err != nil {
		return nil, err
	}
	return module, nil
}
