// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/media"
	"github.com/ecodeclub/hirevue/internal/notification"
	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup"
	"github.com/ecodeclub/hirevue/internal/transcript"
	"github.com/google/wire"
)

import (
	_ "github.com/go-sql-driver/mysql"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	module := media.InitModule()
	v := InitDB()
	interviewModule := interview.InitModule(v)
	candidateModule := candidate.InitModule(v, interviewModule)
	mq := InitMQ()
	aiModule, err := ai.InitModule(v)
	if err != nil {
		return nil, err
	}
	transcriptModule := transcript.InitModule(aiModule)
	responseModule, err := response.InitModule(v, mq, module, transcriptModule, aiModule, interviewModule, candidateModule)
	if err != nil {
		return nil, err
	}
	cache := InitCache(cmdable)
	rollupModule, err := rollup.InitModule(cache, mq, aiModule, interviewModule, candidateModule, responseModule)
	if err != nil {
		return nil, err
	}
	component := initGinxServer(provider, module, interviewModule, candidateModule, responseModule, rollupModule)
	v2 := initSweepJob(responseModule)
	v3 := initCompletionJob(rollupModule, candidateModule)
	v4 := initCronJobs(v2, v3)
	v5 := initEmailService()
	v6 := initNotificationConfig()
	notificationModule, err := notification.InitModule(mq, v5, v6, candidateModule, interviewModule)
	if err != nil {
		return nil, err
	}
	v7 := initMQConsumers(rollupModule, notificationModule)
	app := &App{
		Web:       component,
		Crons:     v4,
		Consumers: v7,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)
