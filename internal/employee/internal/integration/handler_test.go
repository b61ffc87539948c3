//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ecodeclub/talent/internal/employee/startup"
	"github.com/ecodeclub/talent/internal/employee/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/employee/internal/web"
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

const adminUID = int64(9001)

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    employee.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  adminUID,
			Data: map[string]string{"role": "admin"},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `employees`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSave() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/employees/save",
		bytes.NewReader([]byte(`{
  "employee": {
    "firstName": "Alice",
    "lastName": "Zhang",
    "email": "alice@example.com",
    "password": "secret-123",
    "position": "Backend Engineer",
    "department": "Platform",
    "hireDate": "2024-03-01",
    "availability": "available",
    "skills": ["Python", {"name": "Go", "level": 7, "category": "backend"}]
  }
}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	assert.True(t, id > 0)

	var entity dao.Employee
	err = s.db.Where("id = ?", id).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", entity.Email)
	assert.True(t, entity.IsActive)
	// 裸技能名取默认等级，对象形态原样保留
	assert.Equal(t, []dao.Skill{
		{Name: "Python", Level: 5, Category: "general"},
		{Name: "Go", Level: 7, Category: "backend"},
	}, entity.Skills.Val)
	// 密码必须已经被 bcrypt 处理
	assert.NotEqual(t, "secret-123", entity.Password)
}

func (s *HandlerTestSuite) TestSave_DuplicateEmail() {
	t := s.T()
	_, err := s.svc.Save(context.Background(), employee.Employee{
		FirstName: "Alice",
		LastName:  "Zhang",
		Email:     "alice@example.com",
		Password:  "secret-123",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/employees/save",
		bytes.NewReader([]byte(`{
  "employee": {
    "firstName": "Bob",
    "lastName": "Li",
    "email": "alice@example.com",
    "password": "secret-456"
  }
}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 501004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestListAndDetail() {
	t := s.T()
	ids := make([]int64, 0, 2)
	for _, e := range []employee.Employee{
		{
			FirstName:  "Alice",
			LastName:   "Zhang",
			Email:      "alice@example.com",
			Password:   "secret-123",
			Department: "Platform",
		},
		{
			FirstName:  "Bob",
			LastName:   "Li",
			Email:      "bob@example.com",
			Password:   "secret-123",
			Department: "Data",
		},
	} {
		id, err := s.svc.Save(context.Background(), e)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	req, err := http.NewRequest(http.MethodPost, "/employees/list",
		bytes.NewReader([]byte(`{"department": "Platform"}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.EmployeeList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, "Alice Zhang", list.Employees[0].FullName)
	assert.Empty(t, list.Employees[0].Password)

	req, err = http.NewRequest(http.MethodPost, "/employees/detail",
		bytes.NewReader([]byte(`{"id": `+marshal(t, ids[1])+`}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detail := test.NewJSONResponseRecorder[web.Employee]()
	s.server.ServeHTTP(detail, req)
	require.Equal(t, 200, detail.Code)
	assert.Equal(t, "bob@example.com", detail.MustScan().Data.Email)
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), employee.Employee{
		FirstName: "Alice",
		LastName:  "Zhang",
		Email:     "alice@example.com",
		Password:  "secret-123",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/employees/delete",
		bytes.NewReader([]byte(`{"id": `+marshal(t, id)+`}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	// 软删除之后详情查不到
	_, err = s.svc.Detail(context.Background(), id)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// 再删一次报不存在
	req, err = http.NewRequest(http.MethodPost, "/employees/delete",
		bytes.NewReader([]byte(`{"id": `+marshal(t, id)+`}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 501003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestStats() {
	t := s.T()
	for _, e := range []employee.Employee{
		{
			FirstName:    "Alice",
			LastName:     "Zhang",
			Email:        "alice@example.com",
			Password:     "secret-123",
			Department:   "Platform",
			Availability: employee.AvailabilityAvailable,
		},
		{
			FirstName:    "Bob",
			LastName:     "Li",
			Email:        "bob@example.com",
			Password:     "secret-123",
			Department:   "Platform",
			Availability: employee.AvailabilityBusy,
		},
	} {
		_, err := s.svc.Save(context.Background(), e)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, "/employees/stats", nil)
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Stats]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	stats := recorder.MustScan().Data
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Available)
	assert.Equal(t, int64(1), stats.Busy)
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
