// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package rollup

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event/consumer"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/repository/cache"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/web"
	"github.com/ecodeclub/mq-api"
)

// Injectors from wire.go:

func InitModule(ec ecache.Cache, q mq.MQ, aiModule *ai.Module, interviewModule *interview.Module, candidateModule *candidate.Module, responseModule *response.Module) (*Module, error) {
	v := aiModule.Svc
	v2 := interviewModule.Svc
	v3 := candidateModule.Svc
	v4 := responseModule.Svc
	rollupCache := cache.NewRollupECache(ec)
	v5, err := event.NewCandidateCompletedProducer(q)
	if err != nil {
		return nil, err
	}
	v6 := service.NewRollupService(v, v2, v3, v4, rollupCache, v5)
	v7 := web.NewHandler(v6)
	v8, err := consumer.NewResponseAnalyzedConsumer(v6, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Svc:      v6,
		Hdl:      v7,
		Consumer: v8,
	}
	return module, nil
}
