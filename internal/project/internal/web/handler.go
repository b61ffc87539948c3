package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/project/internal/domain"
	"github.com/ecodeclub/talent/internal/project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.ProjectService
	logger *elog.Component
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/save", ginx.S(h.Permission), ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/delete", ginx.S(h.Permission), ginx.B[IDReq](h.Delete))
	g.POST("/matches", ginx.S(h.Permission), ginx.B[IDReq](h.Matches))
	g.POST("/match-explanation", ginx.S(h.Permission), ginx.B[ExplanationReq](h.MatchExplanation))
	g.POST("/assign", ginx.S(h.Permission), ginx.B[AssignReq](h.Assign))
	g.POST("/unassign", ginx.S(h.Permission), ginx.B[UnassignReq](h.Unassign))
	g.POST("/comment", ginx.BS[CommentReq](h.AddComment))
	g.POST("/stats", ginx.S(h.Permission), ginx.W(h.Stats))
}

// Permission 人员调度相关接口只放行管理员会话
func (h *Handler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != "admin" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非管理员访问项目管理接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Project.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx, service.Filter{
		Status:   req.Status,
		Priority: req.Priority,
		Category: req.Category,
		Keyword:  req.Keyword,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Total: total,
			Projects: slice.Map(ps, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrProjectNotFound) {
		return projectNotFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(p),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if errors.Is(err, service.ErrProjectNotFound) {
		return projectNotFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Matches(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	matches, err := h.svc.Matches(ctx, req.ID)
	if errors.Is(err, service.ErrProjectNotFound) {
		return projectNotFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(matches, func(idx int, src domain.MatchResult) Match {
			return newMatch(src)
		}),
	}, nil
}

func (h *Handler) MatchExplanation(ctx *ginx.Context, req ExplanationReq) (ginx.Result, error) {
	explanation, err := h.svc.MatchExplanation(ctx, req.ID, req.EmployeeID)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult(err), nil
	case errors.Is(err, service.ErrEmployeeNotFound):
		return employeeNotFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Explanation{
			Explanation: explanation,
		},
	}, nil
}

func (h *Handler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	err := h.svc.Assign(ctx, req.ID, req.EmployeeID, req.Role)
	switch {
	case errors.Is(err, service.ErrAlreadyAssigned):
		return alreadyAssignedResult, nil
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult(err), nil
	case errors.Is(err, service.ErrEmployeeNotFound):
		return employeeNotFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Unassign(ctx *ginx.Context, req UnassignReq) (ginx.Result, error) {
	err := h.svc.Unassign(ctx, req.ID, req.EmployeeID)
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult(err), nil
	case errors.Is(err, service.ErrEmployeeNotFound):
		return employeeNotFoundResult(err), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// AddComment 所有登录用户都能评论，作者取会话里的展示名
func (h *Handler) AddComment(ctx *ginx.Context, req CommentReq, sess session.Session) (ginx.Result, error) {
	author := sess.Claims().Get("name").StringOrDefault("")
	err := h.svc.AddComment(ctx, req.ID, req.Text, author)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrProjectNotFound):
		return projectNotFoundResult(err), nil
	case err != nil:
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
			Total:      stats.Total,
			Open:       stats.Open,
			InProgress: stats.InProgress,
			Completed:  stats.Completed,
			AvgBudget:  stats.AvgBudget,
			Categories: slice.Map(stats.Categories, func(idx int, src domain.CategoryCount) CategoryCount {
				return CategoryCount(src)
			}),
		},
	}, nil
}
