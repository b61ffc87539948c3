// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package assessment

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/assessment/internal/event"
	"github.com/ecodeclub/talent/internal/assessment/internal/job"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, em *employee.Module) (*Module, error) {
	assessmentDAO := InitAssessmentDAO(db)
	assessmentRepo := repository.NewAssessmentRepo(assessmentDAO)
	employeeService := em.Svc
	staffingEventProducer, err := event.NewStaffingEventProducer(q)
	if err != nil {
		return nil, err
	}
	assessmentService := service.NewAssessmentService(assessmentRepo, employeeService, staffingEventProducer)
	handler := web.NewHandler(assessmentService)
	syncPerformanceJob := job.NewSyncPerformanceJob(assessmentService)
	module := &Module{
		Svc:     assessmentService,
		Hdl:     handler,
		SyncJob: syncPerformanceJob,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitAssessmentDAO(db *egorm.Component) dao.AssessmentDAO {
	InitTableOnce(db)
	return dao.NewAssessmentDAO(db)
}
