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
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/hirevue/internal/ai"
	aimocks "github.com/ecodeclub/hirevue/internal/ai/mocks"
	"github.com/ecodeclub/hirevue/internal/candidate"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	"github.com/ecodeclub/hirevue/internal/response"
	responsemocks "github.com/ecodeclub/hirevue/internal/response/mocks"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/repository/cache"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	testioc "github.com/ecodeclub/hirevue/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestRollupModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	mq        mq.MQ
	completed mq.Consumer
}

func (s *ModuleTestSuite) SetupSuite() {
	s.mq = testioc.InitMQ()
	consumer, err := s.mq.Consumer(event.CandidateCompletedTopic, "test_group")
	require.NoError(s.T(), err)
	s.completed = consumer
}

// testICID 每次运行取不同的值，避免上一轮留在 redis 里的缓存干扰断言
var testICID = time.Now().UnixNano() % 1_000_000

const testInterviewID = int64(66)

func analyzedResponse(questionID int64) response.Response {
	return response.Response{
		ID:                   questionID + 9000,
		InterviewCandidateID: testICID,
		QuestionID:           questionID,
		Status:               response.StatusAnalyzed,
		Transcription:        "我主导了订单系统的重构",
		Analysis: &response.Analysis{
			RedFlags:       []string{},
			Doubts:         []string{},
			KeyStrengths:   []string{"结构清晰"},
			Recommendation: response.RecommendationHire,
			OverallScore:   8,
			Confidence:     90,
			Reasoning:      "回答切题",
		},
	}
}

func (s *ModuleTestSuite) newService(ctrl *gomock.Controller,
	aiSvc ai.LLMService, responses []response.Response) service.RollupService {
	candidateSvc := candidatemocks.NewMockCandidateService(ctrl)
	candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
		Return(candidate.InterviewCandidate{
			ID:          testICID,
			InterviewID: testInterviewID,
			CandidateID: int64(9),
			Status:      candidate.StatusInterview,
			Candidate:   candidate.Candidate{Name: "张三"},
		}, nil).AnyTimes()
	candidateSvc.EXPECT().MarkCompleted(gomock.Any(), testICID, gomock.Any()).
		Return(nil).AnyTimes()

	interviewSvc := interviewmocks.NewMockInterviewService(ctrl)
	interviewSvc.EXPECT().ByID(gomock.Any(), testInterviewID).
		Return(interview.Interview{
			ID:          testInterviewID,
			JobTitle:    "资深后端工程师",
			CompanyName: "示例科技",
			KeySkills:   []string{"Go", "MySQL"},
			Questions: []interview.Question{
				{ID: 101, QuestionText: "讲讲你主导过的项目", Category: interview.CategoryExperience},
			},
		}, nil).AnyTimes()

	responseSvc := responsemocks.NewMockResponseService(ctrl)
	responseSvc.EXPECT().ListByIC(gomock.Any(), testICID).
		Return(responses, nil).AnyTimes()

	producer, err := event.NewCandidateCompletedProducer(s.mq)
	require.NoError(s.T(), err)
	return service.NewRollupService(aiSvc, interviewSvc, candidateSvc,
		responseSvc, cache.NewRollupECache(testioc.InitCache()), producer)
}

// 类别汇总第二次命中缓存，大模型只会被调一次
func (s *ModuleTestSuite) TestCategoryCached() {
	t := s.T()
	ctrl := gomock.NewController(t)

	aiSvc := aimocks.NewMockService(ctrl)
	aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{
			Answer: `{"overallScore":78,"summary":"项目经验扎实","yearsExperience":8,"impact":["主导重构"]}`,
		}, nil).Times(1)

	svc := s.newService(ctrl, aiSvc, []response.Response{analyzedResponse(101)})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	first, err := svc.Category(ctx, testICID, interview.CategoryExperience)
	require.NoError(t, err)
	require.Equal(t, 78, first.OverallScore)
	require.Equal(t, 8.0, first.YearsExperience)

	second, err := svc.Category(ctx, testICID, interview.CategoryExperience)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func (s *ModuleTestSuite) TestTryCompleteProducesEvent() {
	t := s.T()
	ctrl := gomock.NewController(t)

	aiSvc := aimocks.NewMockService(ctrl)
	aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{
			Answer: `{"overallScore":82,"summary":"整体表现出色","skillEvaluations":[{"skill":"Go","score":85,"comment":"熟练"}]}`,
		}, nil).Times(1)

	svc := s.newService(ctrl, aiSvc, []response.Response{analyzedResponse(101)})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done, err := svc.TryComplete(ctx, testICID)
	require.NoError(t, err)
	require.True(t, done)

	msg, err := s.completed.Consume(ctx)
	require.NoError(t, err)
	var evt event.CandidateCompletedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	require.Equal(t, testICID, evt.InterviewCandidateID)
	require.Equal(t, testInterviewID, evt.InterviewID)
}
