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

package response

import (
	"sync"

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
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	mediaModule *media.Module,
	transcriptModule *transcript.Module,
	aiModule *ai.Module,
	interviewModule *interview.Module,
	candidateModule *candidate.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*media.Module), "Store"),
		wire.FieldsOf(new(*transcript.Module), "TranscriptionSvc", "AnnotatorSvc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		initDAO,
		event.NewStageChangeProducer,
		event.NewResponseAnalyzedProducer,
		repository.NewResponseRepository,
		service.NewAnalyzerService,
		service.NewResponseService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

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
