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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hirevue/internal/notification/internal/service"
	"github.com/ecodeclub/hirevue/internal/rollup"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CandidateCompletedConsumer 候选人完成后给招聘方发邮件。
// 通知失败不影响流水线，只记日志
type CandidateCompletedConsumer struct {
	svc      service.NotificationService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCandidateCompletedConsumer(svc service.NotificationService, q mq.MQ) (*CandidateCompletedConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(rollup.CandidateCompletedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &CandidateCompletedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *CandidateCompletedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费候选人完成事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *CandidateCompletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt rollup.CandidateCompletedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	return c.svc.NotifyCandidateCompleted(ctx, evt.InterviewCandidateID)
}
