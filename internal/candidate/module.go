package candidate

import (
	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/service"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/web"
)

type Candidate = domain.Candidate
type InterviewCandidate = domain.InterviewCandidate
type Status = domain.Status

const (
	StatusInfo        = domain.StatusInfo
	StatusInterview   = domain.StatusInterview
	StatusCompleted   = domain.StatusCompleted
	StatusReviewing   = domain.StatusReviewing
	StatusReviewed    = domain.StatusReviewed
	StatusShortlisted = domain.StatusShortlisted
	StatusRejected    = domain.StatusRejected
)

type Service = service.CandidateService

var (
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
	ErrConcurrentModification  = service.ErrConcurrentModification
)

type Handler = web.Handler

type Module struct {
	Svc Service
	Hdl *Handler
}
