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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirevue/internal/interview/internal/domain"
	"github.com/ecodeclub/hirevue/internal/interview/internal/repository/dao"
)

// InterviewRepository 面试配置聚合根的仓储接口
//
//go:generate mockgen -source=./interview.go -destination=../../mocks/repository.mock.go -package=interviewmocks InterviewRepository
type InterviewRepository interface {
	// Save 原子性保存整个聚合（面试 + 全部题目）
	Save(ctx context.Context, interview domain.Interview) (int64, error)
	FindByID(ctx context.Context, id, uid int64) (domain.Interview, error)
	// ByID 不校验归属，流水线内部使用
	ByID(ctx context.Context, id int64) (domain.Interview, error)
	// FindBySessionID 候选人入口，按公开会话标识查找
	FindBySessionID(ctx context.Context, sessionID string) (domain.Interview, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	FindQuestions(ctx context.Context, interviewID int64) ([]domain.Question, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(interviewDAO dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: interviewDAO}
}

func (r *interviewRepository) Save(ctx context.Context, interview domain.Interview) (int64, error) {
	entity, questions := r.toEntity(interview)
	return r.dao.Save(ctx, entity, questions)
}

func (r *interviewRepository) FindByID(ctx context.Context, id, uid int64) (domain.Interview, error) {
	interview, questions, err := r.dao.Find(ctx, id, uid)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(interview, questions), nil
}

func (r *interviewRepository) ByID(ctx context.Context, id int64) (domain.Interview, error) {
	interview, questions, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(interview, questions), nil
}

func (r *interviewRepository) FindBySessionID(ctx context.Context, sessionID string) (domain.Interview, error) {
	interview, questions, err := r.dao.FindBySessionID(ctx, sessionID)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(interview, questions), nil
}

func (r *interviewRepository) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error) {
	interviews, err := r.dao.FindByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(interviews, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src, nil)
	}), nil
}

func (r *interviewRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *interviewRepository) FindQuestions(ctx context.Context, interviewID int64) ([]domain.Question, error) {
	questions, err := r.dao.FindQuestionsByInterviewID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(questions, func(_ int, src dao.InterviewQuestion) domain.Question {
		return r.toQuestionDomain(src)
	}), nil
}

func (r *interviewRepository) toEntity(i domain.Interview) (dao.Interview, []dao.InterviewQuestion) {
	interview := dao.Interview{
		ID:               i.ID,
		Uid:              i.Uid,
		SessionID:        i.SessionID,
		JobTitle:         i.JobTitle,
		CompanyName:      i.CompanyName,
		TimeLimitSeconds: i.TimeLimitSeconds,
		NextSteps:        i.NextSteps,
		AnalysisPrompts:  sqlx.JsonColumn[[]string]{Val: i.AnalysisPrompts, Valid: len(i.AnalysisPrompts) > 0},
		CompanyCulture:   i.CompanyCulture,
		KeySkills:        sqlx.JsonColumn[[]string]{Val: i.KeySkills, Valid: len(i.KeySkills) > 0},
	}
	return interview, slice.Map(i.Questions, func(_ int, src domain.Question) dao.InterviewQuestion {
		return dao.InterviewQuestion{
			ID:           src.ID,
			InterviewID:  src.InterviewID,
			ShortName:    src.ShortName,
			QuestionText: src.QuestionText,
			Position:     src.Position,
			Category:     src.Category.String(),
			Tags:         sqlx.JsonColumn[[]string]{Val: src.Tags, Valid: len(src.Tags) > 0},
		}
	})
}

func (r *interviewRepository) toDomain(i dao.Interview, questions []dao.InterviewQuestion) domain.Interview {
	return domain.Interview{
		ID:               i.ID,
		Uid:              i.Uid,
		SessionID:        i.SessionID,
		JobTitle:         i.JobTitle,
		CompanyName:      i.CompanyName,
		TimeLimitSeconds: i.TimeLimitSeconds,
		NextSteps:        i.NextSteps,
		AnalysisPrompts:  i.AnalysisPrompts.Val,
		CompanyCulture:   i.CompanyCulture,
		KeySkills:        i.KeySkills.Val,
		Utime:            i.Utime,
		Questions: slice.Map(questions, func(_ int, src dao.InterviewQuestion) domain.Question {
			return r.toQuestionDomain(src)
		}),
	}
}

func (r *interviewRepository) toQuestionDomain(q dao.InterviewQuestion) domain.Question {
	return domain.Question{
		ID:           q.ID,
		InterviewID:  q.InterviewID,
		ShortName:    q.ShortName,
		QuestionText: q.QuestionText,
		Position:     q.Position,
		Category:     domain.Category(q.Category),
		Tags:         q.Tags.Val,
	}
}
