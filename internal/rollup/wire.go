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
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache,
	q mq.MQ,
	aiModule *ai.Module,
	interviewModule *interview.Module,
	candidateModule *candidate.Module,
	responseModule *response.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		wire.FieldsOf(new(*response.Module), "Svc"),
		cache.NewRollupECache,
		event.NewCandidateCompletedProducer,
		consumer.NewResponseAnalyzedConsumer,
		service.NewRollupService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}
