package transcript

import (
	"github.com/ecodeclub/hirevue/internal/transcript/internal/domain"
	"github.com/ecodeclub/hirevue/internal/transcript/internal/service"
)

type Segment = domain.Segment
type Transcription = domain.Transcription

type TranscriptionService = service.TranscriptionService
type AnnotatorService = service.AnnotatorService

var (
	ErrTranscriptionFailed  = service.ErrTranscriptionFailed
	ErrSegmentationDegraded = service.ErrSegmentationDegraded
	ErrAnnotationFailed     = service.ErrAnnotationFailed
)

type Module struct {
	TranscriptionSvc TranscriptionService
	AnnotatorSvc     AnnotatorService
}
