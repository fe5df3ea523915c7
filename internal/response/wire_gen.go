// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package response

import (
	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/media"
	"github.com/ecodeclub/hirevue/internal/response/internal/event"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/response/internal/service"
	"github.com/ecodeclub/hirevue/internal/response/internal/web"
	"github.com/ecodeclub/hirevue/internal/transcript"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, mediaModule *media.Module, transcriptModule *transcript.Module, aiModule *ai.Module, interviewModule *interview.Module, candidateModule *candidate.Module) (*Module, error) {
	responseDAO := initDAO(db)
	responseRepository := repository.NewResponseRepository(responseDAO)
	v := mediaModule.Store
	v2 := transcriptModule.TranscriptionSvc
	v3 := transcriptModule.AnnotatorSvc
	v4 := aiModule.Svc
	analyzerService := service.NewAnalyzerService(v4)
	v5 := interviewModule.Svc
	v6 := candidateModule.Svc
	v7, err := event.NewStageChangeProducer(q)
	if err != nil {
		return nil, err
	}
	v8, err := event.NewResponseAnalyzedProducer(q)
	if err != nil {
		return nil, err
	}
	v9 := service.NewResponseService(responseRepository, v, v2, v3, analyzerService, v5, v6, v7, v8)
	v10 := web.NewHandler(v9)
	module := &Module{
		Svc: v9,
		Hdl: v10,
	}
	return module, nil
}

// wire.go:

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.ResponseDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMResponseDAO(db)
}
