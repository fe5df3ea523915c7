package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 后台消费者，Start 内部自己起 goroutine
type Consumer interface {
	Start(ctx context.Context)
}
