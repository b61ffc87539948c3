//go:build wireinject

package assessment

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/assessment/internal/event"
	"github.com/ecodeclub/talent/internal/assessment/internal/job"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
	"github.com/ecodeclub/talent/internal/employee"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, q mq.MQ, em *employee.Module) (*Module, error) {
	wire.Build(
		InitAssessmentDAO,
		repository.NewAssessmentRepo,
		event.NewStaffingEventProducer,
		wire.FieldsOf(new(*employee.Module), "Svc"),
		service.NewAssessmentService,
		job.NewSyncPerformanceJob,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
