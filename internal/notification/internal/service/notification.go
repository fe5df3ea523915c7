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
	"fmt"

	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/notification/internal/email"
	"github.com/ecodeclub/hirevue/internal/rollup"
	"github.com/gotomicro/ego/core/elog"
)

// Config 招聘方通知配置
type Config struct {
	// From 发信人昵称
	From string `yaml:"from"`
	// Recipients 收件的招聘方邮箱
	Recipients []string `yaml:"recipients"`
}

const mailTemplate = `<p>候选人 <strong>%s</strong> 已完成「%s」的视频面试。</p>
<p>AI 总评：%d / 100</p>
<p>%s</p>
<p>请登录评审工作台查看逐题分析。</p>`

//go:generate mockgen -source=./notification.go -destination=../../mocks/notification.mock.go -package=notificationmocks NotificationService
type NotificationService interface {
	// NotifyCandidateCompleted 给招聘方发完成通知。
	// 失败只记日志，不回流水线重试
	NotifyCandidateCompleted(ctx context.Context, icID int64) error
}

type notificationService struct {
	emailSvc     email.Service
	candidateSvc candidate.Service
	interviewSvc interview.Service
	cfg          Config
	logger       *elog.Component
}

func NewNotificationService(
	emailSvc email.Service,
	candidateSvc candidate.Service,
	interviewSvc interview.Service,
	cfg Config,
) NotificationService {
	return &notificationService{
		emailSvc:     emailSvc,
		candidateSvc: candidateSvc,
		interviewSvc: interviewSvc,
		cfg:          cfg,
		logger:       elog.DefaultLogger,
	}
}

func (s *notificationService) NotifyCandidateCompleted(ctx context.Context, icID int64) error {
	ic, err := s.candidateSvc.Detail(ctx, icID)
	if err != nil {
		return err
	}
	itv, err := s.interviewSvc.ByID(ctx, ic.InterviewID)
	if err != nil {
		return err
	}
	var overall rollup.OverallRollup
	if ic.OverallAnalysis != "" {
		if err = json.Unmarshal([]byte(ic.OverallAnalysis), &overall); err != nil {
			return fmt.Errorf("解析总评失败: %w", err)
		}
	}
	subject := fmt.Sprintf("候选人 %s 已完成「%s」面试", ic.Candidate.Name, itv.JobTitle)
	body := fmt.Sprintf(mailTemplate,
		ic.Candidate.Name, itv.JobTitle, overall.OverallScore, overall.Summary)
	var lastErr error
	for _, to := range s.cfg.Recipients {
		err = s.emailSvc.SendMail(ctx, email.Mail{
			From:    s.cfg.From,
			To:      to,
			Subject: subject,
			Body:    []byte(body),
		})
		if err != nil {
			s.logger.Error("发送完成通知失败",
				elog.Int64("icID", icID),
				elog.String("to", to),
				elog.FieldErr(err))
			lastErr = err
		}
	}
	return lastErr
}
