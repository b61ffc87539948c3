//go:build e2e

package integration

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/assessment/internal/integration/startup"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
	"github.com/ecodeclub/talent/internal/employee"
	employeestartup "github.com/ecodeclub/talent/internal/employee/startup"
	"github.com/ecodeclub/talent/internal/test"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const scoresJSON = `{
  "technicalSkills": 9,
  "communication": 7,
  "leadership": 6,
  "problemSolving": 9,
  "teamwork": 8,
  "adaptability": 7,
  "timeManagement": 6,
  "creativity": 8
}`

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	adminServer    *egin.Component
	employeeServer *egin.Component
	db             *egorm.Component
	hdl            *assessment.Handler
	svc            assessment.Service
	staffSvc       employee.Service
	eid            int64
}

func (s *HandlerTestSuite) SetupSuite() {
	em, err := employeestartup.InitModule()
	require.NoError(s.T(), err)
	s.staffSvc = em.Svc

	m, err := startup.InitModule(em)
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.hdl = m.Hdl

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	admin := egin.Load("server").Build()
	admin.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  9001,
			Data: map[string]string{"role": "admin"},
		}))
	})
	m.Hdl.PrivateRoutes(admin.Engine)
	s.adminServer = admin

	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) SetupTest() {
	eid, err := s.staffSvc.Save(context.Background(), employee.Employee{
		FirstName: "Alice",
		LastName:  "Zhang",
		Email:     "alice@example.com",
		Password:  "secret-123",
	})
	require.NoError(s.T(), err)
	s.eid = eid

	// 员工侧的服务器要用真实 uid，只能在员工落库之后搭
	es := egin.Load("server").Build()
	es.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  eid,
			Data: map[string]string{"role": "employee"},
		}))
	})
	s.hdl.PrivateRoutes(es.Engine)
	s.employeeServer = es
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `assessments`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `employees`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) post(server *egin.Component, path, body string) *test.JSONResponseRecorder[web.Assessment] {
	s.T().Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Assessment]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) create() int64 {
	s.T().Helper()
	req, err := http.NewRequest(http.MethodPost, "/assessments/save",
		bytes.NewReader([]byte(fmt.Sprintf(`{"employeeId": %d, "date": "2026-08-01", "scores": %s}`, s.eid, scoresJSON))))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(s.T(), id > 0)
	return id
}

func (s *HandlerTestSuite) TestCreateAndDetail() {
	t := s.T()
	id := s.create()

	recorder := s.post(s.adminServer, "/assessments/detail", fmt.Sprintf(`{"id": %d}`, id))
	require.Equal(t, 200, recorder.Code)
	a := recorder.MustScan().Data
	assert.Equal(t, s.eid, a.EmployeeID)
	assert.Equal(t, int64(9001), a.AssessorID)
	assert.Equal(t, "draft", a.Status)
	assert.NotEmpty(t, a.SN)
	assert.Equal(t, "2026-08-01", a.Date)
	// (9+7+6+9+8+7+6+8)/8*10 = 75
	assert.Equal(t, 75, a.OverallScore)
	assert.Equal(t, "Good", a.ScoreLevel)
	assert.Equal(t, []string{"technicalSkills", "problemSolving", "teamwork"}, a.Strengths)
	assert.Equal(t, []string{"leadership", "timeManagement", "communication"}, a.Weaknesses)
}

func (s *HandlerTestSuite) TestInvalidScores() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/assessments/save",
		bytes.NewReader([]byte(fmt.Sprintf(`{"employeeId": %d, "scores": {"technicalSkills": 11}}`, s.eid))))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 503002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestLifecycle() {
	t := s.T()
	id := s.create()

	for _, path := range []string{"/assessments/submit", "/assessments/review", "/assessments/approve"} {
		recorder := s.post(s.adminServer, path, fmt.Sprintf(`{"id": %d}`, id))
		require.Equal(t, 200, recorder.Code)
		require.Zero(t, recorder.MustScan().Code, path)
	}

	a, err := s.svc.Detail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, assessment.StatusApproved, a.Status)

	// 批准之后冻结
	recorder := s.post(s.adminServer, "/assessments/save",
		fmt.Sprintf(`{"id": %d, "scores": %s}`, id, scoresJSON))
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 503004, recorder.MustScan().Code)

	// 不能跳步
	id2 := s.create()
	recorder = s.post(s.adminServer, "/assessments/approve", fmt.Sprintf(`{"id": %d}`, id2))
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 503004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestEmployeeVisibility() {
	t := s.T()
	id := s.create()

	// 员工能看自己的考核
	recorder := s.post(s.employeeServer, "/assessments/detail", fmt.Sprintf(`{"id": %d}`, id))
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Zero(t, resp.Code)
	assert.Equal(t, s.eid, resp.Data.EmployeeID)

	// 员工不能提交考核
	req, err := http.NewRequest(http.MethodPost, "/assessments/submit",
		bytes.NewReader([]byte(fmt.Sprintf(`{"id": %d}`, id))))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	forbidden := test.NewJSONResponseRecorder[any]()
	s.employeeServer.ServeHTTP(forbidden, req)
	assert.Equal(t, 403, forbidden.Code)
}
