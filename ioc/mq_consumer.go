package ioc

import (
	"github.com/ecodeclub/talent/internal/notification"
)

func initMQConsumers(nm *notification.Module) []Consumer {
	return []Consumer{
		nm.Consumer,
	}
}
