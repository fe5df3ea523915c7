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
	"github.com/ecodeclub/hirevue/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirevue/internal/candidate/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CandidateService
}

func NewHandler(svc service.CandidateService) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 候选人侧接口，凭 session_id 进入，无需登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/candidates")
	g.POST("/start", ginx.B[StartReq](h.Start))
	g.POST("/begin", ginx.B[ICReq](h.BeginInterview))
}

// PrivateRoutes 招聘方的评审工作台
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidates")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[ICReq](h.Detail))
	g.POST("/review/start", ginx.BS[ICReq](h.StartReview))
	g.POST("/review/finish", ginx.BS[ICReq](h.FinishReview))
	g.POST("/review/reopen", ginx.BS[ICReq](h.Reopen))
	g.POST("/review/decide", ginx.BS[DecideReq](h.Decide))
	g.POST("/notes", ginx.BS[NotesReq](h.SaveNotes))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq) (ginx.Result, error) {
	ic, err := h.svc.Start(ctx, req.SessionID, domain.Candidate{
		Email:           req.Email,
		Name:            req.Name,
		Phone:           req.Phone,
		LinkedinID:      req.LinkedinID,
		LinkedinProfile: req.LinkedinProfile,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(ic)}, nil
}

func (h *Handler) BeginInterview(ctx *ginx.Context, req ICReq) (ginx.Result, error) {
	return h.transitionResult(h.svc.BeginInterview(ctx, req.ID))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, _ session.Session) (ginx.Result, error) {
	ics, total, err := h.svc.List(ctx, req.InterviewID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[InterviewCandidate]{
			List: slice.Map(ics, func(_ int, src domain.InterviewCandidate) InterviewCandidate {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ICReq, _ session.Session) (ginx.Result, error) {
	ic, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(ic)}, nil
}

func (h *Handler) StartReview(ctx *ginx.Context, req ICReq, _ session.Session) (ginx.Result, error) {
	return h.transitionResult(h.svc.StartReview(ctx, req.ID))
}

func (h *Handler) FinishReview(ctx *ginx.Context, req ICReq, _ session.Session) (ginx.Result, error) {
	return h.transitionResult(h.svc.FinishReview(ctx, req.ID))
}

func (h *Handler) Reopen(ctx *ginx.Context, req ICReq, _ session.Session) (ginx.Result, error) {
	return h.transitionResult(h.svc.Reopen(ctx, req.ID))
}

func (h *Handler) Decide(ctx *ginx.Context, req DecideReq, _ session.Session) (ginx.Result, error) {
	return h.transitionResult(h.svc.Decide(ctx, req.ID, req.Shortlisted))
}

func (h *Handler) SaveNotes(ctx *ginx.Context, req NotesReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.SaveNotes(ctx, req.ID, req.Notes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) transitionResult(err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrInvalidStatusTransition) {
		return invalidTransitionResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toVO(ic domain.InterviewCandidate) InterviewCandidate {
	return InterviewCandidate{
		ID:              ic.ID,
		InterviewID:     ic.InterviewID,
		Status:          ic.Status.String(),
		OverallAnalysis: ic.OverallAnalysis,
		Notes:           ic.Notes,
		CompletedAt:     ic.CompletedAt,
		Candidate: Candidate{
			ID:    ic.Candidate.ID,
			Email: ic.Candidate.Email,
			Name:  ic.Candidate.Name,
			Phone: ic.Candidate.Phone,
		},
	}
}
