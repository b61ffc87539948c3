package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 通知只能看自己的，uid 一律取会话
type Handler struct {
	svc service.NotificationService
}

func NewHandler(svc service.NotificationService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/read", ginx.BS[IDReq](h.MarkRead))
	g.POST("/read-all", ginx.S(h.MarkAllRead))
	g.POST("/unread-count", ginx.S(h.UnreadCount))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	ns, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NotificationList{
			Total: total,
			Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
				return newNotification(src)
			}),
		},
	}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx, req.ID, sess.Claims().Uid)
	if errors.Is(err, service.ErrNotificationNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkAllRead(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	count, err := h.svc.UnreadCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: count,
	}, nil
}
