//go:build wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/employee"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(em *employee.Module) (*assessment.Module, error) {
	wire.Build(assessment.InitModule, testioc.InitDB, testioc.InitMQ)
	return new(assessment.Module), nil
}
