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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ecodeclub/hirevue/internal/ai"
	aimocks "github.com/ecodeclub/hirevue/internal/ai/mocks"
	"github.com/ecodeclub/hirevue/internal/candidate"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	"github.com/ecodeclub/hirevue/internal/response"
	responsemocks "github.com/ecodeclub/hirevue/internal/response/mocks"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/domain"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/repository/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testICID = int64(77)

type memCache struct {
	m map[string]domain.CategoryRollup
}

func newMemCache() *memCache {
	return &memCache{m: map[string]domain.CategoryRollup{}}
}

func (c *memCache) GetCategory(_ context.Context, _ int64, category string) (domain.CategoryRollup, error) {
	rollup, ok := c.m[category]
	if !ok {
		return domain.CategoryRollup{}, cache.ErrRollupNotFound
	}
	return rollup, nil
}

func (c *memCache) SetCategory(_ context.Context, _ int64, rollup domain.CategoryRollup) error {
	c.m[rollup.Category] = rollup
	return nil
}

type nopProducer[T any] struct{}

func (nopProducer[T]) Produce(_ context.Context, _ T) error { return nil }

type rollupFixture struct {
	llm          *aimocks.MockService
	interviewSvc *interviewmocks.MockInterviewService
	candidateSvc *candidatemocks.MockCandidateService
	responseSvc  *responsemocks.MockResponseService
	cache        *memCache
	svc          RollupService
}

func newRollupFixture(ctrl *gomock.Controller) *rollupFixture {
	f := &rollupFixture{
		llm:          aimocks.NewMockService(ctrl),
		interviewSvc: interviewmocks.NewMockInterviewService(ctrl),
		candidateSvc: candidatemocks.NewMockCandidateService(ctrl),
		responseSvc:  responsemocks.NewMockResponseService(ctrl),
		cache:        newMemCache(),
	}
	svc := NewRollupService(f.llm, f.interviewSvc, f.candidateSvc, f.responseSvc,
		f.cache, nopProducer[event.CandidateCompletedEvent]{})
	f.svc = svc
	return f
}

func (f *rollupFixture) expectLoad(status candidate.Status, questions []interview.Question, responses []response.Response) {
	f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
		Return(candidate.InterviewCandidate{
			ID:          testICID,
			InterviewID: int64(3),
			CandidateID: int64(9),
			Status:      status,
			Candidate:   candidate.Candidate{Name: "张三"},
		}, nil).AnyTimes()
	f.interviewSvc.EXPECT().ByID(gomock.Any(), int64(3)).
		Return(interview.Interview{
			ID:          3,
			JobTitle:    "资深后端工程师",
			CompanyName: "示例公司",
			KeySkills:   []string{"Go", "MySQL"},
			Questions:   questions,
		}, nil).AnyTimes()
	f.responseSvc.EXPECT().ListByIC(gomock.Any(), testICID).
		Return(responses, nil).AnyTimes()
}

func analyzedResponse(questionID int64) response.Response {
	return response.Response{
		QuestionID: questionID,
		Status:     response.StatusAnalyzed,
		Analysis: &response.Analysis{
			RedFlags:       []string{},
			Doubts:         []string{},
			KeyStrengths:   []string{"讲得很清楚"},
			Recommendation: response.RecommendationHire,
			OverallScore:   8,
			Confidence:     80,
			Reasoning:      "内容扎实",
		},
	}
}

func TestRollupService_Category(t *testing.T) {
	t.Parallel()
	questions := []interview.Question{
		{ID: 1, QuestionText: "介绍一下你自己", Category: interview.CategoryBasic},
		{ID: 2, QuestionText: "你有几年相关经验", Category: interview.CategoryExperience},
	}

	t.Run("类别内只有一道题且未分析时同样不完整", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			{QuestionID: 1, Status: response.StatusTranscribed},
		})
		_, err := f.svc.Category(context.Background(), testICID, interview.CategoryBasic)
		assert.ErrorIs(t, err, ErrIncompleteCategory)
	})

	t.Run("部分分析完成也不聚合", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		many := []interview.Question{
			{ID: 1, QuestionText: "q1", Category: interview.CategoryBasic},
			{ID: 2, QuestionText: "q2", Category: interview.CategoryBasic},
		}
		f.expectLoad(candidate.StatusInterview, many, []response.Response{
			analyzedResponse(1),
			{QuestionID: 2, Status: response.StatusTranscribed},
		})
		_, err := f.svc.Category(context.Background(), testICID, interview.CategoryBasic)
		assert.ErrorIs(t, err, ErrIncompleteCategory)
	})

	t.Run("聚合成功并命中缓存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(1), analyzedResponse(2),
		})
		f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				assert.Equal(t, ai.BizRollupCategory("basic"), req.Biz)
				return ai.LLMResponse{
					Answer: `{"overallScore":72,"summary":"硬性要求基本满足","reqMet":true}`,
				}, nil
			}).Times(1)

		first, err := f.svc.Category(context.Background(), testICID, interview.CategoryBasic)
		require.NoError(t, err)
		assert.Equal(t, 72, first.OverallScore)
		assert.Equal(t, "basic", first.Category)
		require.NotNil(t, first.ReqMet)
		assert.True(t, *first.ReqMet)

		// 第二次不再调用大模型
		second, err := f.svc.Category(context.Background(), testICID, interview.CategoryBasic)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("越界分数收敛到边界", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(2),
		})
		f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{
				Answer: `{"overallScore":150,"summary":"经验丰富","yearsExperience":8.5}`,
			}, nil)
		rollup, err := f.svc.Category(context.Background(), testICID, interview.CategoryExperience)
		require.NoError(t, err)
		assert.Equal(t, 100, rollup.OverallScore)
		assert.Equal(t, 8.5, rollup.YearsExperience)
	})

	t.Run("非法类别", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		_, err := f.svc.Category(context.Background(), testICID, interview.Category("weird"))
		assert.Error(t, err)
	})
}

func TestRollupService_TryComplete(t *testing.T) {
	t.Parallel()
	questions := []interview.Question{
		{ID: 1, QuestionText: "q1", Category: interview.CategoryBasic},
		{ID: 2, QuestionText: "q2", Category: interview.CategoryExperience},
		{ID: 3, QuestionText: "q3", Category: interview.CategoryMotivation},
	}

	t.Run("集合齐了才完成，与顺序无关", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		// 回答乱序返回，还有一条不属于任何题目的脏数据
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(3),
			analyzedResponse(1),
			analyzedResponse(99),
			analyzedResponse(2),
		})
		f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				assert.Equal(t, ai.BizRollupOverall, req.Biz)
				return ai.LLMResponse{
					Answer: `{"overallScore":130,"summary":"整体优秀","yearsExperience":6,` +
						`"skillEvaluations":[{"skill":"Go","score":85}]}`,
				}, nil
			}).Times(1)
		f.candidateSvc.EXPECT().MarkCompleted(gomock.Any(), testICID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, overall string) error {
				var parsed domain.OverallRollup
				require.NoError(t, json.Unmarshal([]byte(overall), &parsed))
				// 越界分数落库前已收敛
				assert.Equal(t, 100, parsed.OverallScore)
				assert.Equal(t, "整体优秀", parsed.Summary)
				require.Len(t, parsed.SkillEvaluations, 1)
				return nil
			}).Times(1)

		completed, err := f.svc.TryComplete(context.Background(), testICID)
		require.NoError(t, err)
		assert.True(t, completed)
	})

	t.Run("缺一道题都不完成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(1),
			analyzedResponse(2),
			{QuestionID: 3, Status: response.StatusTranscribed},
		})
		completed, err := f.svc.TryComplete(context.Background(), testICID)
		require.NoError(t, err)
		assert.False(t, completed)
	})

	t.Run("已完成的候选人直接跳过", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{
				ID:     testICID,
				Status: candidate.StatusCompleted,
			}, nil)
		completed, err := f.svc.TryComplete(context.Background(), testICID)
		require.NoError(t, err)
		assert.False(t, completed)
	})

	t.Run("总评一次失败后重试成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(1), analyzedResponse(2), analyzedResponse(3),
		})
		gomock.InOrder(
			f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				Return(ai.LLMResponse{}, errors.New("mock llm error")),
			f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				Return(ai.LLMResponse{Answer: `{"overallScore":75,"summary":"整体不错"}`}, nil),
		)
		f.candidateSvc.EXPECT().MarkCompleted(gomock.Any(), testICID, gomock.Any()).
			Return(nil).Times(1)

		completed, err := f.svc.TryComplete(context.Background(), testICID)
		assert.ErrorIs(t, err, ErrRollupFailed)
		assert.False(t, completed)

		// 失败没有留下任何状态，兜底任务再调一次就能完成
		completed, err = f.svc.TryComplete(context.Background(), testICID)
		require.NoError(t, err)
		assert.True(t, completed)
	})

	t.Run("并发标记完成时静默让步", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.expectLoad(candidate.StatusInterview, questions, []response.Response{
			analyzedResponse(1), analyzedResponse(2), analyzedResponse(3),
		})
		f.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{Answer: `{"overallScore":60,"summary":"s"}`}, nil)
		f.candidateSvc.EXPECT().MarkCompleted(gomock.Any(), testICID, gomock.Any()).
			Return(candidate.ErrInvalidStatusTransition)

		completed, err := f.svc.TryComplete(context.Background(), testICID)
		require.NoError(t, err)
		assert.False(t, completed)
	})
}

func TestRollupService_CandidateRollup(t *testing.T) {
	t.Parallel()

	t.Run("总评未生成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{ID: testICID}, nil)
		_, err := f.svc.CandidateRollup(context.Background(), testICID)
		assert.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("读取已持久化的总评", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newRollupFixture(ctrl)
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{
				ID:              testICID,
				OverallAnalysis: `{"overallScore":88,"summary":"推荐录用"}`,
			}, nil)
		overall, err := f.svc.CandidateRollup(context.Background(), testICID)
		require.NoError(t, err)
		assert.Equal(t, 88, overall.OverallScore)
		assert.Equal(t, "推荐录用", overall.Summary)
	})
}
