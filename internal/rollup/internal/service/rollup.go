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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirevue/internal/ai"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/domain"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrIncompleteCategory 类别内还有题目没完成分析。
	// 这是控制流信号，不是用户可见的故障：等流水线跑完即可
	ErrIncompleteCategory = errors.New("该类别还有回答未分析完成")
	// ErrNotReady 总评还没生成
	ErrNotReady = errors.New("总评尚未生成")
	// ErrRollupFailed 大模型输出不可用
	ErrRollupFailed = errors.New("汇总计算失败")
)

// 从大模型回答里抠出 JSON 串
const jsonExpr = `\{[\s\S]*\}`

//go:generate mockgen -source=./rollup.go -destination=../../mocks/rollup.mock.go -package=rollupmocks RollupService
type RollupService interface {
	// Category 按需计算一个类别的汇总，结果进缓存。
	// 类别内任何一道题还没分析完成时返回 ErrIncompleteCategory，对 N=1 同样成立
	Category(ctx context.Context, icID int64, category interview.Category) (domain.CategoryRollup, error)
	// TryComplete 检查候选人是否答完且全部分析完成；
	// 是则计算总评、落库并标记 COMPLETED，返回 true。
	// 按题目集合比较，不依赖事件到达顺序，可安全重复调用
	TryComplete(ctx context.Context, icID int64) (bool, error)
	// CandidateRollup 读取已持久化的总评
	CandidateRollup(ctx context.Context, icID int64) (domain.OverallRollup, error)
}

type rollupService struct {
	aiSvc        ai.LLMService
	interviewSvc interview.Service
	candidateSvc candidate.Service
	responseSvc  response.Service
	cache        cache.RollupCache
	producer     event.CandidateCompletedProducer
	logger       *elog.Component
	jsonRe       *regexp.Regexp
}

func NewRollupService(
	aiSvc ai.LLMService,
	interviewSvc interview.Service,
	candidateSvc candidate.Service,
	responseSvc response.Service,
	rollupCache cache.RollupCache,
	producer event.CandidateCompletedProducer,
) RollupService {
	return &rollupService{
		aiSvc:        aiSvc,
		interviewSvc: interviewSvc,
		candidateSvc: candidateSvc,
		responseSvc:  responseSvc,
		cache:        rollupCache,
		producer:     producer,
		logger:       elog.DefaultLogger,
		jsonRe:       regexp.MustCompile(jsonExpr),
	}
}

func (s *rollupService) Category(ctx context.Context, icID int64, category interview.Category) (domain.CategoryRollup, error) {
	if !category.Valid() {
		return domain.CategoryRollup{}, fmt.Errorf("非法的问题类别: %s", category)
	}
	cached, err := s.cache.GetCategory(ctx, icID, string(category))
	if err == nil {
		return cached, nil
	}
	ic, itv, responses, err := s.load(ctx, icID)
	if err != nil {
		return domain.CategoryRollup{}, err
	}
	questions := slice.FilterMap(itv.Questions, func(_ int, src interview.Question) (interview.Question, bool) {
		return src, src.Category == category
	})
	if len(questions) == 0 {
		return domain.CategoryRollup{}, fmt.Errorf("面试 %d 的 %s 类别下没有题目", itv.ID, category)
	}
	pairs, err := s.pair(questions, responses)
	if err != nil {
		return domain.CategoryRollup{}, err
	}
	res, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid: icID,
		Tid: shortuuid.New(),
		Biz: ai.BizRollupCategory(string(category)),
		Input: []string{
			ic.Candidate.Name,
			itv.JobTitle,
			itv.CompanyName,
			pairs,
		},
	})
	if err != nil {
		return domain.CategoryRollup{}, fmt.Errorf("%w: %w", ErrRollupFailed, err)
	}
	rollup, err := s.parseCategory(res.Answer)
	if err != nil {
		return domain.CategoryRollup{}, fmt.Errorf("%w: %w", ErrRollupFailed, err)
	}
	rollup.Category = string(category)
	if err = s.cache.SetCategory(ctx, icID, rollup); err != nil {
		s.logger.Warn("缓存类别汇总失败",
			elog.Int64("icID", icID),
			elog.String("category", string(category)),
			elog.FieldErr(err))
	}
	return rollup, nil
}

func (s *rollupService) TryComplete(ctx context.Context, icID int64) (bool, error) {
	ic, err := s.candidateSvc.Detail(ctx, icID)
	if err != nil {
		return false, err
	}
	if ic.Status != candidate.StatusInterview {
		// 已经完成过，或者还没开始答题
		return false, nil
	}
	itv, err := s.interviewSvc.ByID(ctx, ic.InterviewID)
	if err != nil {
		return false, err
	}
	responses, err := s.responseSvc.ListByIC(ctx, icID)
	if err != nil {
		return false, err
	}
	if _, err = s.pair(itv.Questions, responses); err != nil {
		if errors.Is(err, ErrIncompleteCategory) {
			return false, nil
		}
		return false, err
	}
	overall, err := s.overall(ctx, ic, itv, responses)
	if err != nil {
		return false, err
	}
	data, err := json.Marshal(overall)
	if err != nil {
		return false, fmt.Errorf("序列化总评失败: %w", err)
	}
	err = s.candidateSvc.MarkCompleted(ctx, icID, string(data))
	if errors.Is(err, candidate.ErrInvalidStatusTransition) ||
		errors.Is(err, candidate.ErrConcurrentModification) {
		// 并发的聚合已经先完成了
		s.logger.Warn("候选人已被并发标记完成", elog.Int64("icID", icID))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	evt := event.CandidateCompletedEvent{
		InterviewCandidateID: icID,
		InterviewID:          itv.ID,
		CandidateID:          ic.CandidateID,
		Occurred:             time.Now().UnixMilli(),
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送候选人完成事件失败",
			elog.Int64("icID", icID), elog.FieldErr(err))
	}
	return true, nil
}

func (s *rollupService) CandidateRollup(ctx context.Context, icID int64) (domain.OverallRollup, error) {
	ic, err := s.candidateSvc.Detail(ctx, icID)
	if err != nil {
		return domain.OverallRollup{}, err
	}
	if ic.OverallAnalysis == "" {
		return domain.OverallRollup{}, fmt.Errorf("%w: icID %d", ErrNotReady, icID)
	}
	var overall domain.OverallRollup
	if err = json.Unmarshal([]byte(ic.OverallAnalysis), &overall); err != nil {
		return domain.OverallRollup{}, fmt.Errorf("解析总评失败: %w", err)
	}
	return overall, nil
}

func (s *rollupService) load(ctx context.Context, icID int64) (candidate.InterviewCandidate, interview.Interview, []response.Response, error) {
	ic, err := s.candidateSvc.Detail(ctx, icID)
	if err != nil {
		return candidate.InterviewCandidate{}, interview.Interview{}, nil, err
	}
	itv, err := s.interviewSvc.ByID(ctx, ic.InterviewID)
	if err != nil {
		return candidate.InterviewCandidate{}, interview.Interview{}, nil, err
	}
	responses, err := s.responseSvc.ListByIC(ctx, icID)
	if err != nil {
		return candidate.InterviewCandidate{}, interview.Interview{}, nil, err
	}
	return ic, itv, responses, nil
}

// pair 按题目集合配对分析产物并整理成提示词素材。
// 任何一道题缺少分析产物都算不完整，哪怕类别里只有一道题
func (s *rollupService) pair(questions []interview.Question, responses []response.Response) (string, error) {
	analyzed := make(map[int64]response.Response, len(responses))
	for i := range responses {
		if responses[i].Analyzed() {
			analyzed[responses[i].QuestionID] = responses[i]
		}
	}
	type entry struct {
		Question string            `json:"question"`
		Analysis response.Analysis `json:"analysis"`
	}
	entries := make([]entry, 0, len(questions))
	for i := range questions {
		resp, ok := analyzed[questions[i].ID]
		if !ok {
			return "", fmt.Errorf("%w: 题目 %d", ErrIncompleteCategory, questions[i].ID)
		}
		entries = append(entries, entry{
			Question: questions[i].QuestionText,
			Analysis: *resp.Analysis,
		})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("序列化分析产物失败: %w", err)
	}
	return string(data), nil
}

func (s *rollupService) overall(ctx context.Context, ic candidate.InterviewCandidate, itv interview.Interview, responses []response.Response) (domain.OverallRollup, error) {
	pairs, err := s.pair(itv.Questions, responses)
	if err != nil {
		return domain.OverallRollup{}, err
	}
	res, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Uid: ic.ID,
		Tid: shortuuid.New(),
		Biz: ai.BizRollupOverall,
		Input: []string{
			ic.Candidate.Name,
			itv.JobTitle,
			itv.CompanyCulture,
			strings.Join(itv.KeySkills, ", "),
			pairs,
		},
	})
	if err != nil {
		return domain.OverallRollup{}, fmt.Errorf("%w: %w", ErrRollupFailed, err)
	}
	overall, err := s.parseOverall(res.Answer)
	if err != nil {
		return domain.OverallRollup{}, fmt.Errorf("%w: %w", ErrRollupFailed, err)
	}
	return overall, nil
}

func (s *rollupService) parseCategory(answer string) (domain.CategoryRollup, error) {
	raw := s.jsonRe.FindString(answer)
	if raw == "" {
		return domain.CategoryRollup{}, fmt.Errorf("大模型没有返回 JSON: %s", answer)
	}
	var parsed struct {
		OverallScore *int    `json:"overallScore"`
		Summary      *string `json:"summary"`
		domain.CategoryRollup
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.CategoryRollup{}, fmt.Errorf("解析类别汇总失败: %w", err)
	}
	if parsed.OverallScore == nil || parsed.Summary == nil {
		return domain.CategoryRollup{}, errors.New("类别汇总缺少 overallScore 或 summary")
	}
	rollup := parsed.CategoryRollup
	rollup.OverallScore = clamp(*parsed.OverallScore, 1, 100)
	rollup.Summary = *parsed.Summary
	return rollup, nil
}

func (s *rollupService) parseOverall(answer string) (domain.OverallRollup, error) {
	raw := s.jsonRe.FindString(answer)
	if raw == "" {
		return domain.OverallRollup{}, fmt.Errorf("大模型没有返回 JSON: %s", answer)
	}
	var parsed struct {
		OverallScore *int    `json:"overallScore"`
		Summary      *string `json:"summary"`
		domain.OverallRollup
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.OverallRollup{}, fmt.Errorf("解析总评失败: %w", err)
	}
	if parsed.OverallScore == nil || parsed.Summary == nil {
		return domain.OverallRollup{}, errors.New("总评缺少 overallScore 或 summary")
	}
	overall := parsed.OverallRollup
	overall.OverallScore = clamp(*parsed.OverallScore, 1, 100)
	overall.Summary = *parsed.Summary
	return overall, nil
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
