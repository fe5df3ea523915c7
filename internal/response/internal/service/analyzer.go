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
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// ErrAnalysisFailed 模型输出不可用，回答停留在 TRANSCRIBED，可以重试
var ErrAnalysisFailed = errors.New("回答分析失败")

// 从大模型回答里抠出 JSON 串
const jsonExpr = `\{[\s\S]*\}`

//go:generate mockgen -source=./analyzer.go -destination=../../mocks/analyzer.mock.go -package=responsemocks AnalyzerService
type AnalyzerService interface {
	// Analyze 对一段转写文本做结构化评估。纯计算，不落库。
	// 所有字段必须齐全，分数和置信度越界时按边界收敛
	Analyze(ctx context.Context, uid int64, transcription, questionText string, criteria []string) (domain.Analysis, error)
}

type analyzerService struct {
	aiSvc  ai.LLMService
	jsonRe *regexp.Regexp
}

func NewAnalyzerService(aiSvc ai.LLMService) AnalyzerService {
	return &analyzerService{
		aiSvc:  aiSvc,
		jsonRe: regexp.MustCompile(jsonExpr),
	}
}

func (s *analyzerService) Analyze(ctx context.Context, uid int64, transcription, questionText string, criteria []string) (domain.Analysis, error) {
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid: uid,
		Tid: shortuuid.New(),
		Biz: ai.BizResponseAnalysis,
		Input: []string{
			transcription,
			questionText,
			strings.Join(criteria, "\n"),
		},
	})
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	analysis, err := s.parse(resp.Answer)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	return analysis, nil
}

func (s *analyzerService) parse(answer string) (domain.Analysis, error) {
	raw := s.jsonRe.FindString(answer)
	if raw == "" {
		return domain.Analysis{}, fmt.Errorf("大模型没有返回 JSON: %s", answer)
	}
	// 用指针接收以区分缺失和空值，契约要求所有字段必须出现
	var parsed struct {
		RedFlags       *[]string `json:"redFlags"`
		Doubts         *[]string `json:"doubts"`
		KeyStrengths   *[]string `json:"keyStrengths"`
		Recommendation *string   `json:"recommendation"`
		OverallScore   *int      `json:"overallScore"`
		Confidence     *int      `json:"confidence"`
		Reasoning      *string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.Analysis{}, fmt.Errorf("解析分析结果失败: %w", err)
	}
	if parsed.RedFlags == nil || parsed.Doubts == nil || parsed.KeyStrengths == nil ||
		parsed.Recommendation == nil || parsed.OverallScore == nil ||
		parsed.Confidence == nil || parsed.Reasoning == nil {
		return domain.Analysis{}, errors.New("分析结果字段不完整")
	}
	recommendation := domain.Recommendation(*parsed.Recommendation)
	if !recommendation.Valid() {
		return domain.Analysis{}, fmt.Errorf("非法的录用建议: %s", *parsed.Recommendation)
	}
	return domain.Analysis{
		RedFlags:       *parsed.RedFlags,
		Doubts:         *parsed.Doubts,
		KeyStrengths:   *parsed.KeyStrengths,
		Recommendation: recommendation,
		OverallScore:   clamp(*parsed.OverallScore, 1, 10),
		Confidence:     clamp(*parsed.Confidence, 0, 100),
		Reasoning:      *parsed.Reasoning,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
