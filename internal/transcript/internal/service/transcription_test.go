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
	"github.com/ecodeclub/hirevue/internal/transcript/internal/domain"
	transcriptmocks "github.com/ecodeclub/hirevue/internal/transcript/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTranscriptionService_Transcribe(t *testing.T) {
	t.Parallel()
	const uid = int64(123)
	media := []byte("fake-webm")

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService)
		wantRes   domain.Transcription
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "转写加分段全部成功",
			mock: func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService) {
				speech := transcriptmocks.NewMockSpeechClient(ctrl)
				speech.EXPECT().Transcribe(gomock.Any(), media, "en").
					Return("I worked at Acme for three years.", nil)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizTranscriptStructure, req.Biz)
						assert.Equal(t, uid, req.Uid)
						return ai.LLMResponse{
							Answer: `这是分段结果：{"segments":[{"id":1,"start":0,"end":10.5,"text":"I worked at Acme","title":"工作经历"},{"id":2,"start":10.5,"end":20,"text":"for three years."}]}`,
						}, nil
					})
				return speech, llm
			},
			wantRes: domain.Transcription{
				Text: "I worked at Acme for three years.",
				Segments: []domain.Segment{
					{ID: 1, Start: 0, End: 10.5, Text: "I worked at Acme", Title: "工作经历"},
					{ID: 2, Start: 10.5, End: 20, Text: "for three years."},
				},
			},
			assertErr: assert.NoError,
		},
		{
			name: "语音转写失败则整体失败",
			mock: func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService) {
				speech := transcriptmocks.NewMockSpeechClient(ctrl)
				speech.EXPECT().Transcribe(gomock.Any(), media, "en").
					Return("", errors.New("asr unavailable"))
				return speech, aimocks.NewMockService(ctrl)
			},
			wantRes: domain.Transcription{},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrTranscriptionFailed)
			},
		},
		{
			name: "大模型出错则降级为纯文本",
			mock: func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService) {
				speech := transcriptmocks.NewMockSpeechClient(ctrl)
				speech.EXPECT().Transcribe(gomock.Any(), media, "en").
					Return("hello world", nil)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("llm timeout"))
				return speech, llm
			},
			wantRes:   domain.Transcription{Text: "hello world", Degraded: true},
			assertErr: assert.NoError,
		},
		{
			name: "大模型没吐 JSON 也降级",
			mock: func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService) {
				speech := transcriptmocks.NewMockSpeechClient(ctrl)
				speech.EXPECT().Transcribe(gomock.Any(), media, "en").
					Return("hello world", nil)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "抱歉，我无法处理这段内容"}, nil)
				return speech, llm
			},
			wantRes:   domain.Transcription{Text: "hello world", Degraded: true},
			assertErr: assert.NoError,
		},
		{
			name: "分段结果为空也降级",
			mock: func(ctrl *gomock.Controller) (SpeechClient, ai.LLMService) {
				speech := transcriptmocks.NewMockSpeechClient(ctrl)
				speech.EXPECT().Transcribe(gomock.Any(), media, "en").
					Return("hello world", nil)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: `{"segments":[]}`}, nil)
				return speech, llm
			},
			wantRes:   domain.Transcription{Text: "hello world", Degraded: true},
			assertErr: assert.NoError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			speech, llm := tc.mock(ctrl)
			svc := NewTranscriptionService(speech, llm)
			res, err := svc.Transcribe(context.Background(), uid, media, "en")
			tc.assertErr(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("排序并重排ID", func(t *testing.T) {
		t.Parallel()
		res := Normalize([]domain.Segment{
			{ID: 7, Start: 20, End: 30, Text: "b"},
			{ID: 3, Start: 0, End: 20, Text: "a"},
		})
		require.Len(t, res, 2)
		assert.Equal(t, 1, res[0].ID)
		assert.Equal(t, "a", res[0].Text)
		assert.Equal(t, 2, res[1].ID)
		assert.Equal(t, "b", res[1].Text)
	})

	t.Run("起点归零", func(t *testing.T) {
		t.Parallel()
		res := Normalize([]domain.Segment{{ID: 1, Start: 3.2, End: 10, Text: "a"}})
		assert.Equal(t, float64(0), res[0].Start)
		assert.Equal(t, float64(10), res[0].End)
	})

	t.Run("消除重叠", func(t *testing.T) {
		t.Parallel()
		res := Normalize([]domain.Segment{
			{ID: 1, Start: 0, End: 15, Text: "a"},
			{ID: 2, Start: 10, End: 25, Text: "b"},
			{ID: 3, Start: 24, End: 22, Text: "c"},
		})
		require.Len(t, res, 3)
		for i := range res {
			assert.LessOrEqual(t, res[i].Start, res[i].End)
			if i > 0 {
				assert.GreaterOrEqual(t, res[i].Start, res[i-1].End)
			}
		}
	})

	t.Run("密度超限时合并到上限以内", func(t *testing.T) {
		t.Parallel()
		// 100 秒内 30 段，上限是一个窗口 12 段
		segments := make([]domain.Segment, 0, 30)
		for i := 0; i < 30; i++ {
			segments = append(segments, domain.Segment{
				ID:    i + 1,
				Start: float64(i * 3),
				End:   float64(i*3 + 3),
				Text:  "x",
			})
		}
		res := Normalize(segments)
		assert.Len(t, res, maxSegmentsPerWindow)
		// 合并不丢时间轴
		assert.Equal(t, float64(0), res[0].Start)
		assert.Equal(t, float64(90), res[len(res)-1].End)
		for i := range res {
			assert.Equal(t, i+1, res[i].ID)
			if i > 0 {
				assert.GreaterOrEqual(t, res[i].Start, res[i-1].End)
			}
		}
	})

	t.Run("长视频按窗口放宽上限", func(t *testing.T) {
		t.Parallel()
		// 300 秒跨 3 个窗口，20 段不需要合并
		segments := make([]domain.Segment, 0, 20)
		for i := 0; i < 20; i++ {
			segments = append(segments, domain.Segment{
				ID:    i + 1,
				Start: float64(i * 15),
				End:   float64(i*15 + 15),
				Text:  "x",
			})
		}
		res := Normalize(segments)
		assert.Len(t, res, 20)
	})
}
