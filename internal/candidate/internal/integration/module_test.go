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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/service"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	testioc "github.com/ecodeclub/hirevue/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestCandidateModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db *egorm.Component
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `candidates`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `interview_candidates`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `candidates`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `interview_candidates`").Error
	require.NoError(s.T(), err)
}

const testSessionID = "sess_abc123"

func (s *ModuleTestSuite) newService(ctrl *gomock.Controller) service.CandidateService {
	interviewSvc := interviewmocks.NewMockInterviewService(ctrl)
	interviewSvc.EXPECT().BySessionID(gomock.Any(), testSessionID).
		Return(interview.Interview{ID: 7, JobTitle: "资深后端工程师"}, nil).AnyTimes()
	repo := repository.NewCandidateRepository(dao.NewGORMCandidateDAO(s.db))
	return service.NewCandidateService(repo, interviewSvc)
}

func (s *ModuleTestSuite) TestLifecycle() {
	t := s.T()
	ctrl := gomock.NewController(t)
	svc := s.newService(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ic, err := svc.Start(ctx, testSessionID, domain.Candidate{
		Email: "zhangsan@example.com",
		Name:  "张三",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInfo, ic.Status)

	// 同一个邮箱重复进入，返回已有关联而不是再建一条
	again, err := svc.Start(ctx, testSessionID, domain.Candidate{
		Email: "zhangsan@example.com",
		Name:  "张三",
	})
	require.NoError(t, err)
	require.Equal(t, ic.ID, again.ID)

	require.NoError(t, svc.BeginInterview(ctx, ic.ID))
	require.NoError(t, svc.MarkCompleted(ctx, ic.ID, `{"overallScore":82}`))
	require.NoError(t, svc.StartReview(ctx, ic.ID))
	require.NoError(t, svc.SaveNotes(ctx, ic.ID, "沟通顺畅"))
	require.NoError(t, svc.FinishReview(ctx, ic.ID))
	require.NoError(t, svc.Reopen(ctx, ic.ID))
	require.NoError(t, svc.FinishReview(ctx, ic.ID))
	require.NoError(t, svc.Decide(ctx, ic.ID, true))

	detail, err := svc.Detail(ctx, ic.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusShortlisted, detail.Status)
	require.Equal(t, `{"overallScore":82}`, detail.OverallAnalysis)
	require.Equal(t, "沟通顺畅", detail.Notes)
	require.NotZero(t, detail.CompletedAt)
}

func (s *ModuleTestSuite) TestIllegalTransition() {
	t := s.T()
	ctrl := gomock.NewController(t)
	svc := s.newService(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ic, err := svc.Start(ctx, testSessionID, domain.Candidate{
		Email: "lisi@example.com",
		Name:  "李四",
	})
	require.NoError(t, err)

	// INFO 不能直接完成，也不能直接进评审
	err = svc.MarkCompleted(ctx, ic.ID, `{}`)
	require.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	err = svc.StartReview(ctx, ic.ID)
	require.ErrorIs(t, err, service.ErrInvalidStatusTransition)

	require.NoError(t, svc.BeginInterview(ctx, ic.ID))
	require.NoError(t, svc.MarkCompleted(ctx, ic.ID, `{}`))
	// 重复完成：状态已是 COMPLETED
	err = svc.MarkCompleted(ctx, ic.ID, `{}`)
	require.ErrorIs(t, err, service.ErrInvalidStatusTransition)
}
