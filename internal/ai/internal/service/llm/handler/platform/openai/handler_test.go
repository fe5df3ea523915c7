package openai

import (
	"testing"

	"github.com/ecodeclub/hirevue/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_buildParams(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		req    domain.LLMRequest
		assert func(t *testing.T, params openai.ChatCompletionNewParams)
	}{
		{
			name: "默认不带采样参数",
			req: domain.LLMRequest{
				Input: []string{"你好"},
				Config: domain.BizConfig{
					Model:          "gpt-4o-mini",
					PromptTemplate: "%s",
				},
			},
			assert: func(t *testing.T, params openai.ChatCompletionNewParams) {
				assert.Equal(t, openai.F(openai.ChatModel("gpt-4o-mini")), params.Model)
				msgs := params.Messages.Value
				require.Len(t, msgs, 1)
				assert.Zero(t, params.Temperature)
				assert.Zero(t, params.TopP)
				assert.Zero(t, params.ResponseFormat)
			},
		},
		{
			name: "带系统 prompt 和采样参数",
			req: domain.LLMRequest{
				Input: []string{"讲讲你主导过的项目"},
				Config: domain.BizConfig{
					Model:          "gpt-4o",
					SystemPrompt:   "你是一个资深面试官",
					Temperature:    0.2,
					TopP:           0.9,
					PromptTemplate: "%s",
				},
			},
			assert: func(t *testing.T, params openai.ChatCompletionNewParams) {
				msgs := params.Messages.Value
				require.Len(t, msgs, 2)
				assert.Equal(t, openai.F(0.2), params.Temperature)
				assert.Equal(t, openai.F(0.9), params.TopP)
				assert.Zero(t, params.ResponseFormat)
			},
		},
		{
			name: "JSON 模式约束输出格式",
			req: domain.LLMRequest{
				Input: []string{"分析这段回答"},
				Config: domain.BizConfig{
					Model:          "gpt-4o",
					JSONMode:       true,
					PromptTemplate: "%s",
				},
			},
			assert: func(t *testing.T, params openai.ChatCompletionNewParams) {
				assert.Equal(t,
					openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
						openai.ResponseFormatJSONObjectParam{
							Type: openai.F(openai.ResponseFormatJSONObjectTypeJSONObject),
						}),
					params.ResponseFormat)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := &Handler{}
			tc.assert(t, h.buildParams(tc.req))
		})
	}
}
