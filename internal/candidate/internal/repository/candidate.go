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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
)

//go:generate mockgen -source=./candidate.go -destination=../../mocks/repository.mock.go -package=candidatemocks CandidateRepository
type CandidateRepository interface {
	// UpsertCandidate 按邮箱幂等保存档案
	UpsertCandidate(ctx context.Context, candidate domain.Candidate) (int64, error)
	// CreateIC 幂等创建候选人与面试的关联，初始 INFO
	CreateIC(ctx context.Context, interviewID, candidateID int64) (domain.InterviewCandidate, error)
	FindIC(ctx context.Context, id int64) (domain.InterviewCandidate, error)
	ListByInterview(ctx context.Context, interviewID int64, offset, limit int) ([]domain.InterviewCandidate, error)
	CountByInterview(ctx context.Context, interviewID int64) (int64, error)
	// ListByStatus 找出停留在 status 且 utime 早于 before 的关联，不带候选人档案
	ListByStatus(ctx context.Context, status domain.Status, before int64, limit int) ([]domain.InterviewCandidate, error)
	// UpdateStatus 带前置状态条件的更新，冲突返回 dao.ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	MarkCompleted(ctx context.Context, id int64, from domain.Status, overall string, completedAt int64) error
	UpdateNotes(ctx context.Context, id int64, notes string) error
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(candidateDAO dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: candidateDAO}
}

func (r *candidateRepository) UpsertCandidate(ctx context.Context, candidate domain.Candidate) (int64, error) {
	return r.dao.UpsertCandidate(ctx, dao.Candidate{
		ID:              candidate.ID,
		Email:           candidate.Email,
		Name:            candidate.Name,
		Phone:           candidate.Phone,
		LinkedinID:      sql.Null[string]{V: candidate.LinkedinID, Valid: candidate.LinkedinID != ""},
		LinkedinProfile: candidate.LinkedinProfile,
		CVParsed:        candidate.CVParsed,
	})
}

func (r *candidateRepository) CreateIC(ctx context.Context, interviewID, candidateID int64) (domain.InterviewCandidate, error) {
	ic, err := r.dao.CreateIC(ctx, dao.InterviewCandidate{
		InterviewID: interviewID,
		CandidateID: candidateID,
		Status:      domain.StatusInfo.String(),
	})
	if err != nil {
		return domain.InterviewCandidate{}, err
	}
	return r.toDomain(ic), nil
}

func (r *candidateRepository) FindIC(ctx context.Context, id int64) (domain.InterviewCandidate, error) {
	ic, err := r.dao.FindICByID(ctx, id)
	if err != nil {
		return domain.InterviewCandidate{}, err
	}
	res := r.toDomain(ic)
	candidate, err := r.dao.FindCandidateByID(ctx, ic.CandidateID)
	if err != nil {
		return domain.InterviewCandidate{}, err
	}
	res.Candidate = r.toCandidateDomain(candidate)
	return res, nil
}

func (r *candidateRepository) ListByInterview(ctx context.Context, interviewID int64, offset, limit int) ([]domain.InterviewCandidate, error) {
	ics, err := r.dao.FindICsByInterviewID(ctx, interviewID, offset, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(ics, func(_ int, src dao.InterviewCandidate) domain.InterviewCandidate {
		return r.toDomain(src)
	})
	for i := range res {
		candidate, err := r.dao.FindCandidateByID(ctx, res[i].CandidateID)
		if err != nil {
			return nil, err
		}
		res[i].Candidate = r.toCandidateDomain(candidate)
	}
	return res, nil
}

func (r *candidateRepository) CountByInterview(ctx context.Context, interviewID int64) (int64, error) {
	return r.dao.CountICsByInterviewID(ctx, interviewID)
}

func (r *candidateRepository) ListByStatus(ctx context.Context, status domain.Status, before int64, limit int) ([]domain.InterviewCandidate, error) {
	ics, err := r.dao.FindICsByStatus(ctx, status.String(), before, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ics, func(_ int, src dao.InterviewCandidate) domain.InterviewCandidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String())
}

func (r *candidateRepository) MarkCompleted(ctx context.Context, id int64, from domain.Status, overall string, completedAt int64) error {
	return r.dao.MarkCompleted(ctx, id, from.String(), overall, completedAt)
}

func (r *candidateRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.dao.UpdateNotes(ctx, id, notes)
}

func (r *candidateRepository) toDomain(ic dao.InterviewCandidate) domain.InterviewCandidate {
	return domain.InterviewCandidate{
		ID:              ic.ID,
		InterviewID:     ic.InterviewID,
		CandidateID:     ic.CandidateID,
		Status:          domain.Status(ic.Status),
		OverallAnalysis: ic.OverallAnalysis,
		Notes:           ic.Notes,
		CompletedAt:     ic.CompletedAt,
		Utime:           ic.Utime,
	}
}

func (r *candidateRepository) toCandidateDomain(c dao.Candidate) domain.Candidate {
	var linkedinID string
	if c.LinkedinID.Valid {
		linkedinID = c.LinkedinID.V
	}
	return domain.Candidate{
		ID:              c.ID,
		Email:           c.Email,
		Name:            c.Name,
		Phone:           c.Phone,
		LinkedinID:      linkedinID,
		LinkedinProfile: c.LinkedinProfile,
		CVParsed:        c.CVParsed,
	}
}
