package response

import (
	"time"

	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/ecodeclub/hirevue/internal/response/internal/event"
	"github.com/ecodeclub/hirevue/internal/response/internal/job"
	"github.com/ecodeclub/hirevue/internal/response/internal/service"
	"github.com/ecodeclub/hirevue/internal/response/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.ResponseService

type AnalyzerService = service.AnalyzerService

type Handler = web.Handler

type Response = domain.Response

type Analysis = domain.Analysis

type Status = domain.Status

type Recommendation = domain.Recommendation

const (
	StatusCreated      = domain.StatusCreated
	StatusUploading    = domain.StatusUploading
	StatusUploaded     = domain.StatusUploaded
	StatusTranscribing = domain.StatusTranscribing
	StatusTranscribed  = domain.StatusTranscribed
	StatusAnalyzing    = domain.StatusAnalyzing
	StatusAnalyzed     = domain.StatusAnalyzed
	StatusFailed       = domain.StatusFailed
)

const (
	RecommendationHire  = domain.RecommendationHire
	RecommendationMaybe = domain.RecommendationMaybe
	RecommendationPass  = domain.RecommendationPass
)

var (
	ErrUploadFailed           = service.ErrUploadFailed
	ErrAnalysisFailed         = service.ErrAnalysisFailed
	ErrVideoNotUploaded       = service.ErrVideoNotUploaded
	ErrConcurrentModification = service.ErrConcurrentModification
	ErrInterviewNotInProgress = service.ErrInterviewNotInProgress
)

const AnalyzedTopic = event.AnalyzedTopic

type ResponseAnalyzedEvent = event.ResponseAnalyzedEvent

type SweepStaleResponsesJob = job.SweepStaleResponsesJob

func NewSweepStaleResponsesJob(svc Service, olderThan time.Duration, limit int, timeout time.Duration) *SweepStaleResponsesJob {
	return job.NewSweepStaleResponsesJob(svc, olderThan, limit, timeout)
}
