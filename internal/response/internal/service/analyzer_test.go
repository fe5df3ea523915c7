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
	"errors"
	"testing"

	"github.com/ecodeclub/hirevue/internal/ai"
	aimocks "github.com/ecodeclub/hirevue/internal/ai/mocks"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyzerService_Analyze(t *testing.T) {
	t.Parallel()
	const uid = int64(8)

	testCases := []struct {
		name     string
		answer   string
		err      error
		wantErr  bool
		wantRes  domain.Analysis
		validate func(t *testing.T, res domain.Analysis)
	}{
		{
			name: "正常解析",
			answer: "评估如下：\n```json\n" +
				`{"redFlags":["跳槽频繁"],"doubts":[],"keyStrengths":["表达清晰","有量化结果"],` +
				`"recommendation":"Hire","overallScore":8,"confidence":85,"reasoning":"回答完整且有细节"}` +
				"\n```",
			wantRes: domain.Analysis{
				RedFlags:       []string{"跳槽频繁"},
				Doubts:         []string{},
				KeyStrengths:   []string{"表达清晰", "有量化结果"},
				Recommendation: domain.RecommendationHire,
				OverallScore:   8,
				Confidence:     85,
				Reasoning:      "回答完整且有细节",
			},
		},
		{
			name: "分数和置信度越界时收敛到边界",
			answer: `{"redFlags":[],"doubts":[],"keyStrengths":[],` +
				`"recommendation":"Pass","overallScore":0,"confidence":120,"reasoning":"r"}`,
			validate: func(t *testing.T, res domain.Analysis) {
				assert.Equal(t, 1, res.OverallScore)
				assert.Equal(t, 100, res.Confidence)
			},
		},
		{
			name: "缺字段直接失败",
			answer: `{"redFlags":[],"doubts":[],"keyStrengths":[],` +
				`"recommendation":"Maybe","overallScore":5,"confidence":50}`,
			wantErr: true,
		},
		{
			name: "非法录用建议",
			answer: `{"redFlags":[],"doubts":[],"keyStrengths":[],` +
				`"recommendation":"StrongHire","overallScore":5,"confidence":50,"reasoning":"r"}`,
			wantErr: true,
		},
		{
			name:    "没有 JSON",
			answer:  "这个候选人还不错",
			wantErr: true,
		},
		{
			name:    "大模型调用失败",
			err:     errors.New("mock llm error"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			llm := aimocks.NewMockService(ctrl)
			llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
					assert.Equal(t, ai.BizResponseAnalysis, req.Biz)
					assert.Equal(t, uid, req.Uid)
					require.Len(t, req.Input, 3)
					return ai.LLMResponse{Answer: tc.answer}, tc.err
				})
			svc := NewAnalyzerService(llm)
			res, err := svc.Analyze(context.Background(), uid,
				"transcription", "question", []string{"criteria"})
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrAnalysisFailed)
				return
			}
			require.NoError(t, err)
			if tc.validate != nil {
				tc.validate(t, res)
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
