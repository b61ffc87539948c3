//go:build wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/user"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(em *employee.Module) (*user.Module, error) {
	wire.Build(user.InitModule, testioc.InitDB)
	return new(user.Module), nil
}
