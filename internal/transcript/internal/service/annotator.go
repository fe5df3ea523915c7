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
	"github.com/ecodeclub/hirevue/internal/transcript/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// ErrAnnotationFailed 标注结果不可用。调用方可以无视它继续往下走
var ErrAnnotationFailed = errors.New("分段标注失败")

//go:generate mockgen -source=./annotator.go -destination=../../mocks/annotator.mock.go -package=transcriptmocks AnnotatorService
type AnnotatorService interface {
	// Annotate 在问题上下文里给每个分段补充 title/redflag/doubt。
	// 不会增删分段，也不会改动时间范围。
	Annotate(ctx context.Context, uid int64, segments []domain.Segment,
		rawText, questionText string, criteria []string) ([]domain.Segment, error)
	// FillFacts 用领英资料交叉核对分段里的陈述。
	// 资料缺失或核对失败都不影响主流程，返回原样的分段。
	FillFacts(ctx context.Context, uid int64, segments []domain.Segment,
		linkedinBio, rawText string) []domain.Segment
}

type annotatorService struct {
	aiSvc  ai.LLMService
	logger *elog.Component
	jsonRe *regexp.Regexp
}

func NewAnnotatorService(aiSvc ai.LLMService) AnnotatorService {
	return &annotatorService{
		aiSvc:  aiSvc,
		logger: elog.DefaultLogger,
		jsonRe: regexp.MustCompile(jsonExpr),
	}
}

func (s *annotatorService) Annotate(ctx context.Context, uid int64, segments []domain.Segment,
	rawText, questionText string, criteria []string) ([]domain.Segment, error) {
	if len(segments) == 0 {
		return segments, nil
	}
	segJSON, err := json.Marshal(segments)
	if err != nil {
		return nil, err
	}
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid: uid,
		Tid: shortuuid.New(),
		Biz: ai.BizSegmentAnnotate,
		Input: []string{
			string(segJSON),
			rawText,
			questionText,
			strings.Join(criteria, "\n"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnnotationFailed, err)
	}
	annotations, err := s.parseAnnotations(resp.Answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnnotationFailed, err)
	}
	// 只允许内容字段变化，数量、ID、时间范围一律以原分段为准
	res := make([]domain.Segment, len(segments))
	copy(res, segments)
	for i := range res {
		ann, ok := annotations[res[i].ID]
		if !ok {
			continue
		}
		if ann.Title != "" {
			res[i].Title = ann.Title
		}
		res[i].RedFlag = ann.RedFlag
		res[i].Doubt = ann.Doubt
	}
	return res, nil
}

type segmentAnnotation struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	RedFlag string `json:"redflag"`
	Doubt   string `json:"doubt"`
}

func (s *annotatorService) parseAnnotations(answer string) (map[int]segmentAnnotation, error) {
	raw := s.jsonRe.FindString(answer)
	if raw == "" {
		return nil, fmt.Errorf("大模型没有返回 JSON: %s", answer)
	}
	var parsed struct {
		Segments []segmentAnnotation `json:"segments"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("解析标注结果失败: %w", err)
	}
	if len(parsed.Segments) == 0 {
		return nil, errors.New("标注结果为空")
	}
	res := make(map[int]segmentAnnotation, len(parsed.Segments))
	for _, ann := range parsed.Segments {
		res[ann.ID] = ann
	}
	return res, nil
}

func (s *annotatorService) FillFacts(ctx context.Context, uid int64, segments []domain.Segment,
	linkedinBio, rawText string) []domain.Segment {
	if linkedinBio == "" || len(segments) == 0 {
		return segments
	}
	segJSON, err := json.Marshal(segments)
	if err != nil {
		return segments
	}
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid:   uid,
		Tid:   shortuuid.New(),
		Biz:   ai.BizFactCheck,
		Input: []string{string(segJSON), linkedinBio, rawText},
	})
	if err != nil {
		s.logger.Warn("事实核对失败，跳过", elog.Int64("uid", uid), elog.FieldErr(err))
		return segments
	}
	facts, err := s.parseFacts(resp.Answer)
	if err != nil {
		s.logger.Warn("解析事实核对结果失败，跳过", elog.Int64("uid", uid), elog.FieldErr(err))
		return segments
	}
	res := make([]domain.Segment, len(segments))
	copy(res, segments)
	for i := range res {
		if f, ok := facts[res[i].ID]; ok {
			res[i].FactPlus = f.FactPlus
			res[i].FactMinus = f.FactMinus
		}
	}
	return res
}

type segmentFacts struct {
	ID        int      `json:"id"`
	FactPlus  []string `json:"factPlus"`
	FactMinus []string `json:"factMinus"`
}

func (s *annotatorService) parseFacts(answer string) (map[int]segmentFacts, error) {
	raw := s.jsonRe.FindString(answer)
	if raw == "" {
		return nil, fmt.Errorf("大模型没有返回 JSON: %s", answer)
	}
	var parsed struct {
		Segments []segmentFacts `json:"segments"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, err
	}
	res := make(map[int]segmentFacts, len(parsed.Segments))
	for _, f := range parsed.Segments {
		res[f.ID] = f
	}
	return res, nil
}
