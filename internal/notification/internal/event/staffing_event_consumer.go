package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

const StaffingTopic = "staffing_events"

// StaffingEvent 和各模块 producer 侧的定义保持一致
type StaffingEvent struct {
	UID      int64  `json:"uid"`
	UserType string `json:"userType"`
	Biz      string `json:"biz"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

type StaffingEventConsumer struct {
	svc      service.NotificationService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewStaffingEventConsumer(svc service.NotificationService, q mq.MQ) (*StaffingEventConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(StaffingTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &StaffingEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *StaffingEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费人事动态事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *StaffingEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt StaffingEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.Create(ctx, domain.Notification{
		UID:      evt.UID,
		UserType: evt.UserType,
		Biz:      evt.Biz,
		Title:    evt.Title,
		Message:  evt.Message,
	})
	if err != nil {
		c.logger.Error("落库站内通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.UID),
			elog.String("biz", evt.Biz),
		)
	}
	return err
}
