//go:build wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/employee"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*employee.Module, error) {
	wire.Build(employee.InitModule, testioc.BaseSet)
	return new(employee.Module), nil
}
