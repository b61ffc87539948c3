package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/pkg/mqx"
)

type StaffingEventProducer interface {
	Produce(ctx context.Context, evt StaffingEvent) error
}

func NewStaffingEventProducer(q mq.MQ) (StaffingEventProducer, error) {
	return mqx.NewGeneralProducer[StaffingEvent](q, StaffingTopic)
}
