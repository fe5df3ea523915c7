// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/notification/internal/event"
	"github.com/ecodeclub/hirevue/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
)

// Injectors from wire.go:

func InitModule(q mq.MQ, emailSvc EmailService, cfg Config, candidateModule *candidate.Module, interviewModule *interview.Module) (*Module, error) {
	v := candidateModule.Svc
	v2 := interviewModule.Svc
	v3 := service.NewNotificationService(emailSvc, v, v2, cfg)
	v4, err := event.NewCandidateCompletedConsumer(v3, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Svc:      v3,
		Consumer: v4,
	}
	return module, nil
}
