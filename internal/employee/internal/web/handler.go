package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/employee/internal/domain"
	"github.com/ecodeclub/talent/internal/employee/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.EmployeeService
	logger *elog.Component
}

func NewHandler(svc service.EmployeeService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employees")
	g.POST("/save", ginx.S(h.Permission), ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.S(h.Permission), ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/delete", ginx.S(h.Permission), ginx.B[IDReq](h.Delete))
	g.POST("/skills/save", ginx.BS[SkillsSaveReq](h.UpdateSkills))
	g.POST("/stats", ginx.S(h.Permission), ginx.W(h.Stats))
}

// Permission 管理端接口只放行管理员会话
func (h *Handler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != "admin" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非管理员访问员工管理接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Employee.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrDuplicateEmail):
		return duplicateEmailResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	es, total, err := h.svc.List(ctx, service.Filter{
		Department:   req.Department,
		Position:     req.Position,
		Availability: req.Availability,
		Keyword:      req.Keyword,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: EmployeeList{
			Total: total,
			Employees: slice.Map(es, func(idx int, src domain.Employee) Employee {
				return newEmployee(src)
			}),
		},
	}, nil
}

// Detail 管理员可以看所有人，员工只能看自己
func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	if !h.adminOrOwner(sess, req.ID) {
		return permissionDeniedResult, nil
	}
	e, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrEmployeeNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEmployee(e),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if errors.Is(err, service.ErrEmployeeNotFound) {
		return notFoundResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) UpdateSkills(ctx *ginx.Context, req SkillsSaveReq, sess session.Session) (ginx.Result, error) {
	if !h.adminOrOwner(sess, req.ID) {
		return permissionDeniedResult, nil
	}
	err := h.svc.UpdateSkills(ctx, req.ID, slice.Map(req.Skills, func(idx int, src Skill) domain.Skill {
		return domain.Skill(src)
	}))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrEmployeeNotFound):
		return notFoundResult(err), nil
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
			Total:          stats.Total,
			Available:      stats.Available,
			Busy:           stats.Busy,
			AvgPerformance: stats.AvgPerformance,
			Departments: slice.Map(stats.Departments, func(idx int, src domain.DepartmentCount) DepartmentCount {
				return DepartmentCount(src)
			}),
		},
	}, nil
}

func (h *Handler) adminOrOwner(sess session.Session, id int64) bool {
	if sess.Claims().Get("role").StringOrDefault("") == "admin" {
		return true
	}
	return sess.Claims().Uid == id
}
