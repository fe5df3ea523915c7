// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ai

import (
	"github.com/ecodeclub/hirevue/internal/ai/internal/repository"
	"github.com/ecodeclub/hirevue/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	configDAO := dao.NewGORMConfigDAO(db)
	configRepository := repository.NewCachedConfigRepository(configDAO)
	handlerBuilder := config.NewBuilder(configRepository)
	logHandlerBuilder := log.NewHandler()
	llmRecordDAO := InitLLMRecordDAO(db)
	llmLogRepo := repository.NewLLMLogRepo(llmRecordDAO)
	recordHandlerBuilder := record.NewHandler(llmLogRepo)
	handler := InitRootHandler(handlerBuilder, logHandlerBuilder, recordHandlerBuilder)
	v := llm.NewLLMService(handler)
	module := &Module{
		Svc: v,
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

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}
