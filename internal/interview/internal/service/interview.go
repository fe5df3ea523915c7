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

	"github.com/ecodeclub/hirevue/internal/interview/internal/domain"
	"github.com/ecodeclub/hirevue/internal/interview/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidQuestionOrder 题目顺序必须从 1 开始连续且不重复
	ErrInvalidQuestionOrder = errors.New("题目顺序不合法")
	// ErrInvalidCategory 题目维度不在枚举范围内
	ErrInvalidCategory = errors.New("题目维度不合法")
)

//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks InterviewService
type InterviewService interface {
	// Save 创建或更新一场面试。创建时自动分配公开的 session_id
	Save(ctx context.Context, interview domain.Interview) (int64, error)
	Detail(ctx context.Context, id, uid int64) (domain.Interview, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, int64, error)
	// BySessionID 候选人侧入口，不校验归属
	BySessionID(ctx context.Context, sessionID string) (domain.Interview, error)
	// ByID 流水线内部使用，不校验归属
	ByID(ctx context.Context, id int64) (domain.Interview, error)
	Questions(ctx context.Context, interviewID int64) ([]domain.Question, error)
}

type interviewService struct {
	repo repository.InterviewRepository
}

func NewInterviewService(repo repository.InterviewRepository) InterviewService {
	return &interviewService{repo: repo}
}

func (s *interviewService) Save(ctx context.Context, interview domain.Interview) (int64, error) {
	if err := s.validateQuestions(interview.Questions); err != nil {
		return 0, err
	}
	if interview.ID == 0 && interview.SessionID == "" {
		interview.SessionID = shortuuid.New()
	}
	return s.repo.Save(ctx, interview)
}

func (s *interviewService) validateQuestions(questions []domain.Question) error {
	seen := make(map[int]struct{}, len(questions))
	for i := range questions {
		q := questions[i]
		if !q.Category.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidCategory, q.Category)
		}
		if q.Position < 1 || q.Position > len(questions) {
			return fmt.Errorf("%w: position %d 超出 [1, %d]", ErrInvalidQuestionOrder, q.Position, len(questions))
		}
		if _, ok := seen[q.Position]; ok {
			return fmt.Errorf("%w: position %d 重复", ErrInvalidQuestionOrder, q.Position)
		}
		seen[q.Position] = struct{}{}
	}
	return nil
}

func (s *interviewService) Detail(ctx context.Context, id, uid int64) (domain.Interview, error) {
	return s.repo.FindByID(ctx, id, uid)
}

func (s *interviewService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		interviews []domain.Interview
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		interviews, err = s.repo.FindByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	return interviews, total, eg.Wait()
}

func (s *interviewService) BySessionID(ctx context.Context, sessionID string) (domain.Interview, error) {
	return s.repo.FindBySessionID(ctx, sessionID)
}

func (s *interviewService) ByID(ctx context.Context, id int64) (domain.Interview, error) {
	return s.repo.ByID(ctx, id)
}

func (s *interviewService) Questions(ctx context.Context, interviewID int64) ([]domain.Question, error) {
	return s.repo.FindQuestions(ctx, interviewID)
}
