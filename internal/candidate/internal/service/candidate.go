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
	"fmt"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/interview"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidStatusTransition 目标状态不在当前状态的出边上
	ErrInvalidStatusTransition = errors.New("非法的状态流转")
	// ErrConcurrentModification 状态被并发修改，调用方可以重读后重试
	ErrConcurrentModification = errors.New("状态已被并发修改")
)

//go:generate mockgen -source=./candidate.go -destination=../../mocks/candidate.mock.go -package=candidatemocks CandidateService
type CandidateService interface {
	// Start 候选人通过公开 session 进入面试：
	// 按邮箱幂等建档，并创建处于 INFO 的面试关联。重复进入返回已有关联
	Start(ctx context.Context, sessionID string, candidate domain.Candidate) (domain.InterviewCandidate, error)
	// BeginInterview INFO -> INTERVIEW，候选人开始答题
	BeginInterview(ctx context.Context, icID int64) error
	// MarkCompleted INTERVIEW -> COMPLETED，写入总评。由汇总流程调用
	MarkCompleted(ctx context.Context, icID int64, overall string) error

	StartReview(ctx context.Context, icID int64) error
	FinishReview(ctx context.Context, icID int64) error
	// Reopen REVIEWED -> REVIEWING，评审方唯一允许的回退
	Reopen(ctx context.Context, icID int64) error
	// Decide 终态裁决：shortlisted 或 rejected
	Decide(ctx context.Context, icID int64, shortlisted bool) error
	SaveNotes(ctx context.Context, icID int64, notes string) error

	Detail(ctx context.Context, icID int64) (domain.InterviewCandidate, error)
	List(ctx context.Context, interviewID int64, offset, limit int) ([]domain.InterviewCandidate, int64, error)
	// ListByStatus 找出停留在 status 且 utime 早于 before 的关联。
	// 兜底任务用它捞出迟迟没有完成汇总的候选人
	ListByStatus(ctx context.Context, status domain.Status, before int64, limit int) ([]domain.InterviewCandidate, error)
}

type candidateService struct {
	repo         repository.CandidateRepository
	interviewSvc interview.Service
}

func NewCandidateService(repo repository.CandidateRepository, interviewSvc interview.Service) CandidateService {
	return &candidateService{
		repo:         repo,
		interviewSvc: interviewSvc,
	}
}

func (s *candidateService) Start(ctx context.Context, sessionID string, candidate domain.Candidate) (domain.InterviewCandidate, error) {
	itv, err := s.interviewSvc.BySessionID(ctx, sessionID)
	if err != nil {
		return domain.InterviewCandidate{}, fmt.Errorf("查找面试失败: %w", err)
	}
	cid, err := s.repo.UpsertCandidate(ctx, candidate)
	if err != nil {
		return domain.InterviewCandidate{}, err
	}
	ic, err := s.repo.CreateIC(ctx, itv.ID, cid)
	if err != nil {
		return domain.InterviewCandidate{}, err
	}
	ic.Candidate = candidate
	ic.Candidate.ID = cid
	return ic, nil
}

func (s *candidateService) BeginInterview(ctx context.Context, icID int64) error {
	return s.advance(ctx, icID, domain.StatusInterview)
}

func (s *candidateService) MarkCompleted(ctx context.Context, icID int64, overall string) error {
	ic, err := s.repo.FindIC(ctx, icID)
	if err != nil {
		return err
	}
	if !ic.Status.CanTransition(domain.StatusCompleted) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, ic.Status, domain.StatusCompleted)
	}
	err = s.repo.MarkCompleted(ctx, icID, ic.Status, overall, time.Now().UnixMilli())
	if errors.Is(err, dao.ErrStatusConflict) {
		return fmt.Errorf("%w: id %d", ErrConcurrentModification, icID)
	}
	return err
}

func (s *candidateService) StartReview(ctx context.Context, icID int64) error {
	return s.advance(ctx, icID, domain.StatusReviewing)
}

func (s *candidateService) FinishReview(ctx context.Context, icID int64) error {
	return s.advance(ctx, icID, domain.StatusReviewed)
}

func (s *candidateService) Reopen(ctx context.Context, icID int64) error {
	return s.advance(ctx, icID, domain.StatusReviewing)
}

func (s *candidateService) Decide(ctx context.Context, icID int64, shortlisted bool) error {
	to := domain.StatusRejected
	if shortlisted {
		to = domain.StatusShortlisted
	}
	return s.advance(ctx, icID, to)
}

// advance 读当前状态、校验流转表、条件更新，是所有状态变更的唯一入口
func (s *candidateService) advance(ctx context.Context, icID int64, to domain.Status) error {
	ic, err := s.repo.FindIC(ctx, icID)
	if err != nil {
		return err
	}
	if !ic.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, ic.Status, to)
	}
	err = s.repo.UpdateStatus(ctx, icID, ic.Status, to)
	if errors.Is(err, dao.ErrStatusConflict) {
		return fmt.Errorf("%w: id %d", ErrConcurrentModification, icID)
	}
	return err
}

func (s *candidateService) SaveNotes(ctx context.Context, icID int64, notes string) error {
	return s.repo.UpdateNotes(ctx, icID, notes)
}

func (s *candidateService) Detail(ctx context.Context, icID int64) (domain.InterviewCandidate, error) {
	return s.repo.FindIC(ctx, icID)
}

func (s *candidateService) List(ctx context.Context, interviewID int64, offset, limit int) ([]domain.InterviewCandidate, int64, error) {
	var (
		ics   []domain.InterviewCandidate
		total int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		ics, err = s.repo.ListByInterview(ctx, interviewID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByInterview(ctx, interviewID)
		return err
	})
	return ics, total, eg.Wait()
}

func (s *candidateService) ListByStatus(ctx context.Context, status domain.Status, before int64, limit int) ([]domain.InterviewCandidate, error) {
	return s.repo.ListByStatus(ctx, status, before, limit)
}
