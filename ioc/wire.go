//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		media.InitModule,
		transcript.InitModule,
		interview.InitModule,
		candidate.InitModule,
		response.InitModule,
		rollup.InitModule,
		notification.InitModule,
		initEmailService,
		initNotificationConfig,
		InitSession,
		initGinxServer,
		initSweepJob,
		initCompletionJob,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
