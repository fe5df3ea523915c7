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

	"github.com/ecodeclub/hirevue/internal/response/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// SweepStaleResponsesJob 兜底任务：把停留在中间状态太久的回答
// 回退到上一个稳定状态并重新驱动，多半是处理途中进程没了
type SweepStaleResponsesJob struct {
	svc       service.ResponseService
	olderThan time.Duration
	limit     int
	timeout   time.Duration
	logger    *elog.Component
}

func NewSweepStaleResponsesJob(svc service.ResponseService, olderThan time.Duration, limit int, timeout time.Duration) *SweepStaleResponsesJob {
	return &SweepStaleResponsesJob{
		svc:       svc,
		olderThan: olderThan,
		limit:     limit,
		timeout:   timeout,
		logger:    elog.DefaultLogger,
	}
}

func (j *SweepStaleResponsesJob) Name() string {
	return "SweepStaleResponsesJob"
}

func (j *SweepStaleResponsesJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	count, err := j.svc.SweepStale(ctx, j.olderThan, j.limit)
	if err != nil {
		return fmt.Errorf("兜底重驱动失败: %w", err)
	}
	if count > 0 {
		j.logger.Info("兜底重驱动完成", elog.Int("count", count))
	}
	return nil
}
