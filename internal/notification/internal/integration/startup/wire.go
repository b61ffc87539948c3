//go:build wireinject

package startup

import (
	"github.com/ecodeclub/talent/internal/notification"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*notification.Module, error) {
	wire.Build(notification.InitModule, testioc.InitDB, testioc.InitMQ)
	return new(notification.Module), nil
}
