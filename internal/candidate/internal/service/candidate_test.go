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
	"testing"

	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/repository/dao"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCandidateService_Start(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	interviewSvc := interviewmocks.NewMockInterviewService(ctrl)
	interviewSvc.EXPECT().BySessionID(gomock.Any(), "sess-1").
		Return(interview.Interview{ID: 7, JobTitle: "后端工程师"}, nil)
	repo := candidatemocks.NewMockCandidateRepository(ctrl)
	repo.EXPECT().UpsertCandidate(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().CreateIC(gomock.Any(), int64(7), int64(3)).
		Return(domain.InterviewCandidate{
			ID:          11,
			InterviewID: 7,
			CandidateID: 3,
			Status:      domain.StatusInfo,
		}, nil)

	svc := NewCandidateService(repo, interviewSvc)
	ic, err := svc.Start(context.Background(), "sess-1", domain.Candidate{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), ic.ID)
	assert.Equal(t, domain.StatusInfo, ic.Status)
	assert.Equal(t, int64(3), ic.Candidate.ID)
	assert.Equal(t, "jane@example.com", ic.Candidate.Email)
}

func TestCandidateService_Advance(t *testing.T) {
	t.Parallel()
	const icID = int64(11)

	testCases := []struct {
		name      string
		current   domain.Status
		op        func(svc CandidateService) error
		to        domain.Status
		updateErr error
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:    "开始答题",
			current: domain.StatusInfo,
			op: func(svc CandidateService) error {
				return svc.BeginInterview(context.Background(), icID)
			},
			to:        domain.StatusInterview,
			assertErr: assert.NoError,
		},
		{
			name:    "进入评审",
			current: domain.StatusCompleted,
			op: func(svc CandidateService) error {
				return svc.StartReview(context.Background(), icID)
			},
			to:        domain.StatusReviewing,
			assertErr: assert.NoError,
		},
		{
			name:    "评审后重开",
			current: domain.StatusReviewed,
			op: func(svc CandidateService) error {
				return svc.Reopen(context.Background(), icID)
			},
			to:        domain.StatusReviewing,
			assertErr: assert.NoError,
		},
		{
			name:    "入围",
			current: domain.StatusReviewed,
			op: func(svc CandidateService) error {
				return svc.Decide(context.Background(), icID, true)
			},
			to:        domain.StatusShortlisted,
			assertErr: assert.NoError,
		},
		{
			name:    "并发冲突",
			current: domain.StatusReviewing,
			op: func(svc CandidateService) error {
				return svc.FinishReview(context.Background(), icID)
			},
			to:        domain.StatusReviewed,
			updateErr: dao.ErrStatusConflict,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrConcurrentModification)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := candidatemocks.NewMockCandidateRepository(ctrl)
			repo.EXPECT().FindIC(gomock.Any(), icID).
				Return(domain.InterviewCandidate{ID: icID, Status: tc.current}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), icID, tc.current, tc.to).
				Return(tc.updateErr)
			svc := NewCandidateService(repo, nil)
			tc.assertErr(t, tc.op(svc))
		})
	}

	t.Run("非法流转不会触达存储", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := candidatemocks.NewMockCandidateRepository(ctrl)
		repo.EXPECT().FindIC(gomock.Any(), icID).
			Return(domain.InterviewCandidate{ID: icID, Status: domain.StatusInfo}, nil)
		svc := NewCandidateService(repo, nil)
		err := svc.StartReview(context.Background(), icID)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}

func TestCandidateService_MarkCompleted(t *testing.T) {
	t.Parallel()
	const icID = int64(11)

	t.Run("答题中可以完成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := candidatemocks.NewMockCandidateRepository(ctrl)
		repo.EXPECT().FindIC(gomock.Any(), icID).
			Return(domain.InterviewCandidate{ID: icID, Status: domain.StatusInterview}, nil)
		repo.EXPECT().MarkCompleted(gomock.Any(), icID, domain.StatusInterview, `{"fit":8}`, gomock.Any()).
			Return(nil)
		svc := NewCandidateService(repo, nil)
		require.NoError(t, svc.MarkCompleted(context.Background(), icID, `{"fit":8}`))
	})

	t.Run("重复完成幂等失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := candidatemocks.NewMockCandidateRepository(ctrl)
		repo.EXPECT().FindIC(gomock.Any(), icID).
			Return(domain.InterviewCandidate{ID: icID, Status: domain.StatusCompleted}, nil)
		svc := NewCandidateService(repo, nil)
		err := svc.MarkCompleted(context.Background(), icID, `{}`)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}
