package rollup

import (
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/domain"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/event/consumer"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/job"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/web"
)

type CategoryRollup = domain.CategoryRollup
type OverallRollup = domain.OverallRollup
type SkillEvaluation = domain.SkillEvaluation

type Service = service.RollupService

var (
	ErrIncompleteCategory = service.ErrIncompleteCategory
	ErrNotReady           = service.ErrNotReady
	ErrRollupFailed       = service.ErrRollupFailed
)

const CandidateCompletedTopic = event.CandidateCompletedTopic

type CandidateCompletedEvent = event.CandidateCompletedEvent

type Handler = web.Handler

type ResponseAnalyzedConsumer = consumer.ResponseAnalyzedConsumer

type Module struct {
	Svc Service
	Hdl *Handler
	// Consumer 监听单题分析完成事件，驱动候选人级别聚合
	Consumer *ResponseAnalyzedConsumer
}

type CompleteStalledCandidatesJob = job.CompleteStalledCandidatesJob

func NewCompleteStalledCandidatesJob(svc Service, candidateSvc candidate.Service,
	olderThan time.Duration, limit int, timeout time.Duration) *CompleteStalledCandidatesJob {
	return job.NewCompleteStalledCandidatesJob(svc, candidateSvc, olderThan, limit, timeout)
}
