// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package notification

import (
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/notification/internal/event"
	"github.com/ecodeclub/hirevue/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ,
	emailSvc EmailService,
	cfg Config,
	candidateModule *candidate.Module,
	interviewModule *interview.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		wire.FieldsOf(new(*interview.Module), "Svc"),
		service.NewNotificationService,
		event.NewCandidateCompletedConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}
