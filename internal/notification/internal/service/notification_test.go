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
	"testing"

	"github.com/ecodeclub/hirevue/internal/candidate"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	"github.com/ecodeclub/hirevue/internal/notification/internal/email"
	emailmocks "github.com/ecodeclub/hirevue/internal/notification/internal/email/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_NotifyCandidateCompleted(t *testing.T) {
	t.Parallel()
	const icID = int64(42)

	newSvc := func(ctrl *gomock.Controller, emailSvc email.Service) NotificationService {
		candidateSvc := candidatemocks.NewMockCandidateService(ctrl)
		candidateSvc.EXPECT().Detail(gomock.Any(), icID).
			Return(candidate.InterviewCandidate{
				ID:              icID,
				InterviewID:     int64(3),
				Candidate:       candidate.Candidate{Name: "李四"},
				OverallAnalysis: `{"overallScore":82,"summary":"整体表现出色"}`,
			}, nil)
		interviewSvc := interviewmocks.NewMockInterviewService(ctrl)
		interviewSvc.EXPECT().ByID(gomock.Any(), int64(3)).
			Return(interview.Interview{ID: 3, JobTitle: "资深后端工程师"}, nil)
		return NewNotificationService(emailSvc, candidateSvc, interviewSvc, Config{
			From:       "HireVue 面试平台",
			Recipients: []string{"hr@example.com", "lead@example.com"},
		})
	}

	t.Run("给所有收件人发送", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		emailSvc := emailmocks.NewMockService(ctrl)
		sent := make([]email.Mail, 0, 2)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mail email.Mail) error {
				sent = append(sent, mail)
				return nil
			}).Times(2)

		err := newSvc(ctrl, emailSvc).NotifyCandidateCompleted(context.Background(), icID)
		require.NoError(t, err)
		require.Len(t, sent, 2)
		assert.Equal(t, "hr@example.com", sent[0].To)
		assert.Equal(t, "lead@example.com", sent[1].To)
		assert.Contains(t, sent[0].Subject, "李四")
		assert.Contains(t, sent[0].Subject, "资深后端工程师")
		assert.Contains(t, string(sent[0].Body), "82")
		assert.Contains(t, string(sent[0].Body), "整体表现出色")
	})

	t.Run("单个收件人失败不阻断其余发送", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		emailSvc := emailmocks.NewMockService(ctrl)
		mockErr := errors.New("mock mail error")
		gomock.InOrder(
			emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(mockErr),
			emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil),
		)
		err := newSvc(ctrl, emailSvc).NotifyCandidateCompleted(context.Background(), icID)
		assert.ErrorIs(t, err, mockErr)
	})
}
