// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package candidate

import (
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/service"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/web"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, interviewModule *interview.Module) *Module {
	candidateDAO := initDAO(db)
	candidateRepository := repository.NewCandidateRepository(candidateDAO)
	v := interviewModule.Svc
	v2 := service.NewCandidateService(candidateRepository, v)
	v3 := web.NewHandler(v2)
	module := &Module{
		Svc: v2,
		Hdl: v3,
	}
	return module
}

// wire.go:

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.CandidateDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCandidateDAO(db)
}
