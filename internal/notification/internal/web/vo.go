package web

import (
	"time"

	"github.com/ecodeclub/talent/internal/notification/internal/domain"
)

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Notification struct {
	ID      int64  `json:"id"`
	Biz     string `json:"biz,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	Read    bool   `json:"read"`
	Ctime   string `json:"ctime,omitempty"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications,omitempty"`
	Total         int64          `json:"total,omitempty"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:      n.ID,
		Biz:     n.Biz,
		Title:   n.Title,
		Message: n.Message,
		Read:    n.Read,
		Ctime:   time.UnixMilli(n.Ctime).Format(time.DateTime),
	}
}
