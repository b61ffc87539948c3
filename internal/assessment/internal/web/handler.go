package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.AssessmentService
	logger *elog.Component
}

func NewHandler(svc service.AssessmentService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assessments")
	g.POST("/save", ginx.S(h.Permission), ginx.BS[SaveReq](h.Save))
	g.POST("/submit", ginx.S(h.Permission), ginx.B[IDReq](h.Submit))
	g.POST("/review", ginx.S(h.Permission), ginx.B[IDReq](h.Review))
	g.POST("/approve", ginx.S(h.Permission), ginx.B[IDReq](h.Approve))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/delete", ginx.S(h.Permission), ginx.B[IDReq](h.Delete))
	g.POST("/stats", ginx.S(h.Permission), ginx.W(h.Stats))
}

// Permission 考核的写操作只放行管理员会话
func (h *Handler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != "admin" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非管理员访问考核接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	scores, err := domain.NewScores(req.Scores)
	if err != nil {
		return invalidInputResult(err), nil
	}
	if req.ID > 0 {
		err = h.svc.Update(ctx, req.ID, scores, req.Recommendations, req.Comments)
		switch {
		case errors.Is(err, service.ErrStateConflict):
			return stateConflictResult(err), nil
		case errors.Is(err, service.ErrAssessmentNotFound):
			return notFoundResult(err), nil
		case err != nil:
			return systemErrorResult, err
		}
		return ginx.Result{
			Data: req.ID,
		}, nil
	}
	a := domain.Assessment{
		EmployeeID:      req.EmployeeID,
		AssessorID:      sess.Claims().Uid,
		ProjectID:       req.ProjectID,
		Scores:          scores,
		Recommendations: req.Recommendations,
		Comments:        req.Comments,
	}
	if t, err := time.Parse(time.DateOnly, req.Date); err == nil {
		a.Date = t.UnixMilli()
	}
	id, err := h.svc.Create(ctx, a)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrEmployeeNotFound):
		return notFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.advance(ctx, req.ID, domain.StatusSubmitted)
}

func (h *Handler) Review(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.advance(ctx, req.ID, domain.StatusReviewed)
}

func (h *Handler) Approve(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.advance(ctx, req.ID, domain.StatusApproved)
}

func (h *Handler) advance(ctx *ginx.Context, id int64, to domain.Status) (ginx.Result, error) {
	err := h.svc.Advance(ctx, id, to)
	switch {
	case errors.Is(err, service.ErrStateConflict):
		return stateConflictResult(err), nil
	case errors.Is(err, service.ErrAssessmentNotFound):
		return notFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// Detail 管理员可以看所有考核，员工只能看自己的
func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrAssessmentNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if !h.adminOrOwner(sess, a.EmployeeID) {
		return permissionDeniedResult, nil
	}
	return ginx.Result{
		Data: newAssessment(a),
	}, nil
}

// List 员工固定只能查自己的考核，管理员不受限制
func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != "admin" {
		req.EmployeeID = sess.Claims().Uid
	}
	as, total, err := h.svc.List(ctx, service.Filter{
		EmployeeID: req.EmployeeID,
		ProjectID:  req.ProjectID,
		Status:     req.Status,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AssessmentList{
			Total: total,
			Assessments: slice.Map(as, func(idx int, src domain.Assessment) Assessment {
				return newAssessment(src)
			}),
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if errors.Is(err, service.ErrAssessmentNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Stats{
			Total:         stats.Total,
			ByStatus:      stats.ByStatus,
			AvgOverall:    stats.AvgOverall,
			AvgByCategory: stats.AvgByCategory,
		},
	}, nil
}

func (h *Handler) adminOrOwner(sess session.Session, employeeID int64) bool {
	if sess.Claims().Get("role").StringOrDefault("") == "admin" {
		return true
	}
	return sess.Claims().Uid == employeeID
}
