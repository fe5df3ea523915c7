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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ResponseAnalyzedConsumer 监听单题分析完成事件，
// 作为候选人级别聚合的 join 点：集齐全部题目后生成总评
type ResponseAnalyzedConsumer struct {
	svc      service.RollupService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewResponseAnalyzedConsumer(svc service.RollupService, q mq.MQ) (*ResponseAnalyzedConsumer, error) {
	groupID := "rollup"
	consumer, err := q.Consumer(response.AnalyzedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ResponseAnalyzedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *ResponseAnalyzedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费分析完成事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ResponseAnalyzedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt response.ResponseAnalyzedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	completed, err := c.svc.TryComplete(ctx, evt.InterviewCandidateID)
	if err != nil {
		c.logger.Error("候选人聚合失败",
			elog.Int64("icID", evt.InterviewCandidateID),
			elog.FieldErr(err))
		return err
	}
	if completed {
		c.logger.Info("候选人全部回答分析完成",
			elog.Int64("icID", evt.InterviewCandidateID))
	}
	return nil
}
