package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/pkg/middleware"
	"github.com/ecodeclub/talent/internal/project"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	uhdl *user.Handler,
	ehdl *employee.Handler,
	phdl *project.Handler,
	ahdl *assessment.Handler,
	nhdl *notification.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	uhdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	uhdl.PrivateRoutes(res.Engine)
	ehdl.PrivateRoutes(res.Engine)
	phdl.PrivateRoutes(res.Engine)
	ahdl.PrivateRoutes(res.Engine)
	nhdl.PrivateRoutes(res.Engine)
	return res
}
