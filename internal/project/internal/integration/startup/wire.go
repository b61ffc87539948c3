//go:build wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/project"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(em *employee.Module) (*project.Module, error) {
	wire.Build(project.InitModule, testioc.InitDB, testioc.InitMQ)
	return new(project.Module), nil
}
