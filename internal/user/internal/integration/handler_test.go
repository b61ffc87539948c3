//go:build e2e

package integration

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/employee"
	employeestartup "github.com/ecodeclub/talent/internal/employee/startup"
	"github.com/ecodeclub/talent/internal/test"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/ecodeclub/talent/internal/user/internal/integration/startup"
	"github.com/ecodeclub/talent/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	publicServer *egin.Component
	superServer  *egin.Component
	db           *egorm.Component
	svc          user.Service
	staffSvc     employee.Service
	superID      int64
}

func (s *HandlerTestSuite) SetupSuite() {
	em, err := employeestartup.InitModule()
	require.NoError(s.T(), err)
	s.staffSvc = em.Svc

	m, err := startup.InitModule(em)
	require.NoError(s.T(), err)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	public := egin.Load("server").Build()
	m.Hdl.PublicRoutes(public.Engine)
	s.publicServer = public

	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) SetupTest() {
	id, err := s.svc.CreateAdmin(context.Background(), user.Admin{
		Username:  "root",
		FirstName: "Super",
		LastName:  "Admin",
		Password:  "root-secret",
		Role:      user.RoleSuperAdmin,
	})
	require.NoError(s.T(), err)
	s.superID = id

	super := egin.Load("server").Build()
	super.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  id,
			Data: map[string]string{"role": "admin", "adminRole": "super_admin"},
		}))
	})
	hdl := s.handler()
	hdl.PrivateRoutes(super.Engine)
	s.superServer = super
}

func (s *HandlerTestSuite) handler() *user.Handler {
	m, err := startup.InitModule(&employee.Module{Svc: s.staffSvc})
	require.NoError(s.T(), err)
	return m.Hdl
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `admins`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `employees`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) post(path, body string) *http.Request {
	s.T().Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	return req
}

func (s *HandlerTestSuite) TestAdminLogin() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.Admin]()
	s.publicServer.ServeHTTP(recorder, s.post("/auth/admin/login",
		`{"username": "root", "password": "root-secret"}`))
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Zero(t, resp.Code)
	assert.Equal(t, "root", resp.Data.Username)
	assert.Equal(t, "Super Admin", resp.Data.FullName)
	assert.Equal(t, "super_admin", resp.Data.Role)
	assert.Empty(t, resp.Data.Password)

	// 密码错、用户不存在统一口径
	for _, body := range []string{
		`{"username": "root", "password": "wrong"}`,
		`{"username": "nobody", "password": "root-secret"}`,
	} {
		recorder = test.NewJSONResponseRecorder[web.Admin]()
		s.publicServer.ServeHTTP(recorder, s.post("/auth/admin/login", body))
		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, 504003, recorder.MustScan().Code)
	}
}

func (s *HandlerTestSuite) TestEmployeeLogin() {
	t := s.T()
	_, err := s.staffSvc.Save(context.Background(), employee.Employee{
		FirstName: "Alice",
		LastName:  "Zhang",
		Email:     "alice@example.com",
		Password:  "secret-123",
		Position:  "Backend Engineer",
	})
	require.NoError(t, err)

	recorder := test.NewJSONResponseRecorder[web.EmployeeProfile]()
	s.publicServer.ServeHTTP(recorder, s.post("/auth/employee/login",
		`{"email": "alice@example.com", "password": "secret-123"}`))
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Zero(t, resp.Code)
	assert.Equal(t, "Alice Zhang", resp.Data.FullName)
	assert.Equal(t, "Backend Engineer", resp.Data.Position)

	recorder = test.NewJSONResponseRecorder[web.EmployeeProfile]()
	s.publicServer.ServeHTTP(recorder, s.post("/auth/employee/login",
		`{"email": "alice@example.com", "password": "wrong"}`))
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 504003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCreateAdmin() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.superServer.ServeHTTP(recorder, s.post("/users/admin/create", `{
  "admin": {
    "username": "ops",
    "firstName": "Ops",
    "lastName": "Li",
    "password": "ops-secret"
  }
}`))
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Zero(t, resp.Code)
	assert.True(t, resp.Data > 0)

	a, err := s.svc.Profile(context.Background(), resp.Data)
	require.NoError(t, err)
	// 不传 role 默认普通管理员
	assert.Equal(t, user.RoleAdmin, a.Role)

	// 用户名唯一
	recorder = test.NewJSONResponseRecorder[int64]()
	s.superServer.ServeHTTP(recorder, s.post("/users/admin/create", `{
  "admin": {"username": "ops", "password": "ops-secret"}
}`))
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 504005, recorder.MustScan().Code)

	// 普通管理员没权限建号
	plain := egin.Load("server").Build()
	plain.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  s.superID,
			Data: map[string]string{"role": "admin", "adminRole": "admin"},
		}))
	})
	s.handler().PrivateRoutes(plain.Engine)
	forbidden := test.NewJSONResponseRecorder[any]()
	plain.ServeHTTP(forbidden, s.post("/users/admin/create", `{
  "admin": {"username": "intruder", "password": "ops-secret"}
}`))
	assert.Equal(t, 403, forbidden.Code)
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.Admin]()
	s.superServer.ServeHTTP(recorder, s.post("/users/profile", `{}`))
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Zero(t, resp.Code)
	assert.Equal(t, s.superID, resp.Data.ID)
	assert.Equal(t, "root", resp.Data.Username)

	// 会话指向不存在的用户
	ghost := egin.Load("server").Build()
	ghost.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  s.superID + 1000,
			Data: map[string]string{"role": "admin"},
		}))
	})
	s.handler().PrivateRoutes(ghost.Engine)
	notFound := test.NewJSONResponseRecorder[web.Admin]()
	ghost.ServeHTTP(notFound, s.post("/users/profile", `{}`))
	require.Equal(t, 200, notFound.Code)
	assert.Equal(t, 504004, notFound.MustScan().Code)
}
