package ai

import (
	"github.com/ecodeclub/hirevue/internal/ai/internal/domain"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service

const (
	BizTranscriptStructure = domain.BizTranscriptStructure
	BizSegmentAnnotate     = domain.BizSegmentAnnotate
	BizFactCheck           = domain.BizFactCheck
	BizResponseAnalysis    = domain.BizResponseAnalysis
	BizRollupOverall       = domain.BizRollupOverall
)

// BizRollupCategory 各个问题类别的汇总 biz
func BizRollupCategory(category string) string {
	return domain.BizRollupCategory(category)
}
