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
	"io"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/ecodeclub/hirevue/internal/response/internal/service"
	"github.com/ecodeclub/hirevue/internal/transcript"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ResponseService
}

func NewHandler(svc service.ResponseService) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 候选人答题流程：建记录、传视频、驱动处理
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/responses")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/upload/start", ginx.B[IDReq](h.StartUpload))
	g.POST("/upload/complete", ginx.W(h.CompleteUpload))
	g.POST("/process", ginx.B[IDReq](h.Process))
}

// PrivateRoutes 招聘方查看转写和分析产物
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/responses")
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	resp, err := h.svc.Save(ctx, req.InterviewCandidateID, req.QuestionID)
	if errors.Is(err, service.ErrInterviewNotInProgress) {
		return notInInterviewResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(resp)}, nil
}

func (h *Handler) StartUpload(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.StartUpload(ctx, req.ID)
	if errors.Is(err, service.ErrConcurrentModification) {
		return uploadFailedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// CompleteUpload 接收 multipart 表单：responseId + video 文件
func (h *Handler) CompleteUpload(ctx *ginx.Context) (ginx.Result, error) {
	responseID, err := strconv.ParseInt(ctx.PostForm("responseId"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	file, err := ctx.FormFile("video")
	if err != nil {
		return systemErrorResult, err
	}
	f, err := file.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return systemErrorResult, err
	}
	url, err := h.svc.CompleteUpload(ctx, responseID, data, file.Header.Get("Content-Type"))
	if errors.Is(err, service.ErrUploadFailed) {
		return uploadFailedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: url}, nil
}

func (h *Handler) Process(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	resp, err := h.svc.Process(ctx, req.ID)
	if errors.Is(err, service.ErrVideoNotUploaded) {
		return notUploadedResult, err
	}
	if err != nil {
		// 处理失败不是终局，状态已回退，客户端可以重试
		return processingFailedResult, err
	}
	return ginx.Result{Data: h.toVO(resp)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	resp, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(resp)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, _ session.Session) (ginx.Result, error) {
	responses, err := h.svc.ListByIC(ctx, req.InterviewCandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Response]{
			List: slice.Map(responses, func(_ int, src domain.Response) Response {
				return h.toVO(src)
			}),
			Total: len(responses),
		},
	}, nil
}

func (h *Handler) toVO(resp domain.Response) Response {
	vo := Response{
		ID:            resp.ID,
		QuestionID:    resp.QuestionID,
		Status:        resp.Status.String(),
		FailedStage:   resp.FailedStage,
		RetryCount:    resp.RetryCount,
		VideoURL:      resp.VideoURL,
		Transcription: resp.Transcription,
		Degraded:      resp.Degraded,
		RecordedAt:    resp.RecordedAt,
		Segments: slice.Map(resp.Segments, func(_ int, src transcript.Segment) Segment {
			return Segment{
				ID:        src.ID,
				Start:     src.Start,
				End:       src.End,
				Text:      src.Text,
				Title:     src.Title,
				RedFlag:   src.RedFlag,
				Doubt:     src.Doubt,
				FactPlus:  src.FactPlus,
				FactMinus: src.FactMinus,
			}
		}),
	}
	if resp.Analysis != nil {
		vo.Analysis = &Analysis{
			RedFlags:       resp.Analysis.RedFlags,
			Doubts:         resp.Analysis.Doubts,
			KeyStrengths:   resp.Analysis.KeyStrengths,
			Recommendation: string(resp.Analysis.Recommendation),
			OverallScore:   resp.Analysis.OverallScore,
			Confidence:     resp.Analysis.Confidence,
			Reasoning:      resp.Analysis.Reasoning,
		}
	}
	return vo
}
