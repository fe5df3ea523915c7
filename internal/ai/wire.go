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

package ai

import (
	"sync"

	"github.com/ecodeclub/hirevue/internal/ai/internal/repository"
	"github.com/ecodeclub/hirevue/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitLLMRecordDAO,
		dao.NewGORMConfigDAO,

		repository.NewLLMLogRepo,
		repository.NewCachedConfigRepository,

		config.NewBuilder,
		log.NewHandler,
		record.NewHandler,

		InitRootHandler,
		llm.NewLLMService,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
