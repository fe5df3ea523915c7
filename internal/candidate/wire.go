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

package candidate

import (
	"sync"

	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/service"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/web"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, interviewModule *interview.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*interview.Module), "Svc"),
		initDAO,
		repository.NewCandidateRepository,
		service.NewCandidateService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.CandidateDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCandidateDAO(db)
}
