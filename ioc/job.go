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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(
	sweepJob *response.SweepStaleResponsesJob,
	completionJob *rollup.CompleteStalledCandidatesJob,
) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.sweep").Build(ecron.WithJob(funcJobWrapper(sweepJob))),
		ecron.Load("cron.completion").Build(ecron.WithJob(funcJobWrapper(completionJob))),
	}
}

func initSweepJob(responseModule *response.Module) *response.SweepStaleResponsesJob {
	type Config struct {
		OlderThan time.Duration `yaml:"olderThan"`
		Limit     int           `yaml:"limit"`
		Timeout   time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sweep", &cfg)
	if err != nil {
		panic(err)
	}
	return response.NewSweepStaleResponsesJob(responseModule.Svc, cfg.OlderThan, cfg.Limit, cfg.Timeout)
}

func initCompletionJob(rollupModule *rollup.Module, candidateModule *candidate.Module) *rollup.CompleteStalledCandidatesJob {
	type Config struct {
		OlderThan time.Duration `yaml:"olderThan"`
		Limit     int           `yaml:"limit"`
		Timeout   time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("completion", &cfg)
	if err != nil {
		panic(err)
	}
	return rollup.NewCompleteStalledCandidatesJob(rollupModule.Svc, candidateModule.Svc,
		cfg.OlderThan, cfg.Limit, cfg.Timeout)
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}
