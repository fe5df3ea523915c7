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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.RollupService
}

func NewHandler(svc service.RollupService) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes 评审工作台的聚合视图
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/rollups")
	g.POST("/category", ginx.BS[CategoryReq](h.Category))
	g.POST("/overall", ginx.BS[ICReq](h.Overall))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Category(ctx *ginx.Context, req CategoryReq, _ session.Session) (ginx.Result, error) {
	rollup, err := h.svc.Category(ctx, req.InterviewCandidateID, interview.Category(req.Category))
	if errors.Is(err, service.ErrIncompleteCategory) {
		return incompleteCategoryResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: rollup}, nil
}

func (h *Handler) Overall(ctx *ginx.Context, req ICReq, _ session.Session) (ginx.Result, error) {
	overall, err := h.svc.CandidateRollup(ctx, req.InterviewCandidateID)
	if errors.Is(err, service.ErrNotReady) {
		return notReadyResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: overall}, nil
}
