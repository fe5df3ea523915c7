// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package interview

import (
	"github.com/ecodeclub/hirevue/internal/interview/internal/repository"
	"github.com/ecodeclub/hirevue/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/interview/internal/service"
	"github.com/ecodeclub/hirevue/internal/interview/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) *Module {
	interviewDAO := initDAO(db)
	interviewRepository := repository.NewInterviewRepository(interviewDAO)
	v := service.NewInterviewService(interviewRepository)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module
}

// wire.go:

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.InterviewDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db)
}
