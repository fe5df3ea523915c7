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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CompleteStalledCandidatesJob 兜底任务：找出停在 INTERVIEW 太久的候选人，
// 重新尝试完成判定。覆盖总评生成失败或完成事件丢失的情况
type CompleteStalledCandidatesJob struct {
	svc          service.RollupService
	candidateSvc candidate.Service
	olderThan    time.Duration
	limit        int
	timeout      time.Duration
	logger       *elog.Component
}

func NewCompleteStalledCandidatesJob(svc service.RollupService,
	candidateSvc candidate.Service,
	olderThan time.Duration, limit int, timeout time.Duration) *CompleteStalledCandidatesJob {
	return &CompleteStalledCandidatesJob{
		svc:          svc,
		candidateSvc: candidateSvc,
		olderThan:    olderThan,
		limit:        limit,
		timeout:      timeout,
		logger:       elog.DefaultLogger,
	}
}

func (j *CompleteStalledCandidatesJob) Name() string {
	return "CompleteStalledCandidatesJob"
}

func (j *CompleteStalledCandidatesJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	before := time.Now().Add(-j.olderThan).UnixMilli()
	ics, err := j.candidateSvc.ListByStatus(ctx, candidate.StatusInterview, before, j.limit)
	if err != nil {
		return fmt.Errorf("查找滞留候选人失败: %w", err)
	}
	count := 0
	for i := range ics {
		// 没答完的候选人 TryComplete 返回 false，什么都不会发生
		done, err := j.svc.TryComplete(ctx, ics[i].ID)
		if err != nil {
			j.logger.Warn("兜底完成判定失败",
				elog.Int64("icID", ics[i].ID), elog.FieldErr(err))
			continue
		}
		if done {
			count++
		}
	}
	if count > 0 {
		j.logger.Info("兜底完成判定完成", elog.Int("count", count))
	}
	return nil
}
