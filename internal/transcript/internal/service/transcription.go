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
	"math"
	"regexp"
	"sort"

	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/transcript/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrTranscriptionFailed 语音转文字失败，没有任何可用产物
	ErrTranscriptionFailed = errors.New("语音转写失败")
	// ErrSegmentationDegraded 分段失败，但整段文本可用
	ErrSegmentationDegraded = errors.New("转写分段降级")
)

// 从大模型回答里抠出 JSON 串
const jsonExpr = `\{[\s\S]*\}`

const (
	// 每两分钟最多保留的分段数
	maxSegmentsPerWindow = 12
	segmentWindowSeconds = 120.0
)

//go:generate mockgen -source=./transcription.go -destination=../../mocks/transcription.mock.go -package=transcriptmocks TranscriptionService
type TranscriptionService interface {
	// Transcribe 产出整段文本和语义分段。
	// 分段失败不算整体失败，结果里 Degraded 为 true，Segments 为空。
	Transcribe(ctx context.Context, uid int64, media []byte, language string) (domain.Transcription, error)
}

type transcriptionService struct {
	speech SpeechClient
	aiSvc  ai.LLMService
	logger *elog.Component
	jsonRe *regexp.Regexp
}

func NewTranscriptionService(speech SpeechClient, aiSvc ai.LLMService) TranscriptionService {
	return &transcriptionService{
		speech: speech,
		aiSvc:  aiSvc,
		logger: elog.DefaultLogger,
		jsonRe: regexp.MustCompile(jsonExpr),
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, uid int64, media []byte, language string) (domain.Transcription, error) {
	text, err := s.speech.Transcribe(ctx, media, language)
	if err != nil {
		// 第一步失败就是整体失败，不落任何产物
		return domain.Transcription{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}
	segments, err := s.structure(ctx, uid, text)
	if err != nil {
		// 分段只是锦上添花，失败了记一笔，整段文本照常往下走
		s.logger.Warn("转写分段失败，降级为纯文本",
			elog.Int64("uid", uid),
			elog.FieldErr(err))
		return domain.Transcription{Text: text, Degraded: true}, nil
	}
	return domain.Transcription{Text: text, Segments: segments}, nil
}

func (s *transcriptionService) structure(ctx context.Context, uid int64, text string) ([]domain.Segment, error) {
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid:   uid,
		Tid:   shortuuid.New(),
		Biz:   ai.BizTranscriptStructure,
		Input: []string{text},
	})
	if err != nil {
		return nil, err
	}
	raw := s.jsonRe.FindString(resp.Answer)
	if raw == "" {
		return nil, fmt.Errorf("大模型没有返回 JSON: %s", resp.Answer)
	}
	var parsed struct {
		Segments []domain.Segment `json:"segments"`
	}
	if err = json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("解析分段结果失败: %w", err)
	}
	if len(parsed.Segments) == 0 {
		return nil, errors.New("分段结果为空")
	}
	return Normalize(parsed.Segments), nil
}

// Normalize 把模型给出的分段整理成确定性的形态：
// 按开始时间排序、消除重叠、起点归零、控制分段密度、重排 ID。
func Normalize(segments []domain.Segment) []domain.Segment {
	res := make([]domain.Segment, len(segments))
	copy(res, segments)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	// 起点归零
	if res[0].Start > 0 {
		res[0].Start = 0
	}
	for i := range res {
		if res[i].End < res[i].Start {
			res[i].End = res[i].Start
		}
		if i > 0 && res[i].Start < res[i-1].End {
			res[i].Start = res[i-1].End
			if res[i].End < res[i].Start {
				res[i].End = res[i].Start
			}
		}
	}
	res = capDensity(res)
	for i := range res {
		res[i].ID = i + 1
	}
	return res
}

// capDensity 超出密度上限时不断合并相邻的最短分段
func capDensity(segments []domain.Segment) []domain.Segment {
	duration := segments[len(segments)-1].End
	windows := math.Max(1, math.Ceil(duration/segmentWindowSeconds))
	limit := int(windows) * maxSegmentsPerWindow
	for len(segments) > limit {
		idx := 1
		minSpan := math.MaxFloat64
		for i := 1; i < len(segments); i++ {
			span := segments[i].End - segments[i-1].Start
			if span < minSpan {
				minSpan = span
				idx = i
			}
		}
		merged := segments[idx-1]
		merged.End = segments[idx].End
		merged.Text = merged.Text + " " + segments[idx].Text
		segments = append(segments[:idx-1], append([]domain.Segment{merged}, segments[idx+1:]...)...)
	}
	return segments
}
