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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirevue/internal/interview/internal/domain"
	"github.com/ecodeclub/hirevue/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 面试配置相关的 HTTP 接口
type Handler struct {
	svc service.InterviewService
}

func NewHandler(svc service.InterviewService) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes 招聘方接口，需要登录
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

// PublicRoutes 候选人通过 session_id 进入，无需登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/interviews/session", ginx.B[SessionReq](h.Session))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(sess.Claims().Uid, req.Interview))
	if errors.Is(err, service.ErrInvalidQuestionOrder) || errors.Is(err, service.ErrInvalidCategory) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	interviews, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Interview]{
			List: slice.Map(interviews, func(_ int, src domain.Interview) Interview {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	interview, err := h.svc.Detail(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(interview)}, nil
}

func (h *Handler) Session(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	interview, err := h.svc.BySessionID(ctx, req.SessionID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SessionVO{
			SessionID:        interview.SessionID,
			JobTitle:         interview.JobTitle,
			CompanyName:      interview.CompanyName,
			TimeLimitSeconds: interview.TimeLimitSeconds,
			NextSteps:        interview.NextSteps,
			Questions: slice.Map(interview.Questions, func(_ int, src domain.Question) Question {
				return h.toQuestionVO(src)
			}),
		},
	}, nil
}

func (h *Handler) toDomain(uid int64, i Interview) domain.Interview {
	return domain.Interview{
		ID:               i.ID,
		Uid:              uid,
		SessionID:        i.SessionID,
		JobTitle:         i.JobTitle,
		CompanyName:      i.CompanyName,
		TimeLimitSeconds: i.TimeLimitSeconds,
		NextSteps:        i.NextSteps,
		AnalysisPrompts:  i.AnalysisPrompts,
		CompanyCulture:   i.CompanyCulture,
		KeySkills:        i.KeySkills,
		Questions: slice.Map(i.Questions, func(_ int, src Question) domain.Question {
			return domain.Question{
				ID:           src.ID,
				InterviewID:  i.ID,
				ShortName:    src.ShortName,
				QuestionText: src.QuestionText,
				Position:     src.Position,
				Category:     domain.Category(src.Category),
				Tags:         src.Tags,
			}
		}),
	}
}

func (h *Handler) toVO(i domain.Interview) Interview {
	return Interview{
		ID:               i.ID,
		SessionID:        i.SessionID,
		JobTitle:         i.JobTitle,
		CompanyName:      i.CompanyName,
		TimeLimitSeconds: i.TimeLimitSeconds,
		NextSteps:        i.NextSteps,
		AnalysisPrompts:  i.AnalysisPrompts,
		CompanyCulture:   i.CompanyCulture,
		KeySkills:        i.KeySkills,
		Questions: slice.Map(i.Questions, func(_ int, src domain.Question) Question {
			return h.toQuestionVO(src)
		}),
	}
}

func (h *Handler) toQuestionVO(q domain.Question) Question {
	return Question{
		ID:           q.ID,
		ShortName:    q.ShortName,
		QuestionText: q.QuestionText,
		Position:     q.Position,
		Category:     q.Category.String(),
		Tags:         q.Tags,
	}
}
