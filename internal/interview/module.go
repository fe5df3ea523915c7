package interview

import (
	"github.com/ecodeclub/hirevue/internal/interview/internal/domain"
	"github.com/ecodeclub/hirevue/internal/interview/internal/service"
	"github.com/ecodeclub/hirevue/internal/interview/internal/web"
)

type Interview = domain.Interview
type Question = domain.Question
type Category = domain.Category

const (
	CategoryBasic      = domain.CategoryBasic
	CategoryExperience = domain.CategoryExperience
	CategoryResume     = domain.CategoryResume
	CategoryMotivation = domain.CategoryMotivation
	CategorySoftSkills = domain.CategorySoftSkills
	CategoryCulture    = domain.CategoryCulture
)

var Categories = domain.Categories

type Service = service.InterviewService

type Handler = web.Handler

type Module struct {
	Svc Service
	Hdl *Handler
}
