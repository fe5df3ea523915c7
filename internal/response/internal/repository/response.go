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

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/transcript"
	"gorm.io/gorm"
)

// ResponseRepository 回答记录的仓储。
// 所有写操作都是窄字段更新并带版本条件，冲突时返回 dao.ErrVersionConflict
//
//go:generate mockgen -source=./response.go -destination=../../mocks/repository.mock.go -package=responsemocks ResponseRepository
type ResponseRepository interface {
	// Create 幂等创建，(icID, questionID) 已存在时返回已有记录
	Create(ctx context.Context, icID, questionID int64) (domain.Response, error)
	FindByID(ctx context.Context, id int64) (domain.Response, error)
	FindByIC(ctx context.Context, icID int64) ([]domain.Response, error)

	// UpdateStatus 只改状态
	UpdateStatus(ctx context.Context, id, version int64, to domain.Status) error
	// MarkUploaded 上传完成：状态 UPLOADED + video_url + recorded_at
	MarkUploaded(ctx context.Context, id, version int64, videoURL string, recordedAt int64) error
	// MarkFailed 重试耗尽：状态 FAILED + failed_stage，retry_count 加一
	MarkFailed(ctx context.Context, id, version int64, stage string) error
	// Revert 阶段失败回退到上一个稳定状态，retry_count 加一
	Revert(ctx context.Context, id, version int64, to domain.Status) error
	// SaveTranscription 转写产物落库并置为 TRANSCRIBED
	SaveTranscription(ctx context.Context, id, version int64, text string, segments []transcript.Segment, degraded bool) error
	// SaveAnalysis 分析产物落库并置为 ANALYZED，同时覆盖写标注后的分段
	SaveAnalysis(ctx context.Context, id, version int64, analysis domain.Analysis, segments []transcript.Segment) error

	FindStale(ctx context.Context, statuses []domain.Status, olderThan time.Duration, limit int) ([]domain.Response, error)
}

type responseRepository struct {
	dao dao.ResponseDAO
}

func NewResponseRepository(responseDAO dao.ResponseDAO) ResponseRepository {
	return &responseRepository{dao: responseDAO}
}

func (r *responseRepository) Create(ctx context.Context, icID, questionID int64) (domain.Response, error) {
	saved, err := r.dao.Create(ctx, dao.Response{
		InterviewCandidateID: icID,
		QuestionID:           questionID,
		Status:               domain.StatusCreated.String(),
	})
	if err != nil {
		return domain.Response{}, err
	}
	return r.toDomain(saved)
}

func (r *responseRepository) FindByID(ctx context.Context, id int64) (domain.Response, error) {
	response, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Response{}, err
	}
	return r.toDomain(response)
}

func (r *responseRepository) FindByIC(ctx context.Context, icID int64) ([]domain.Response, error) {
	responses, err := r.dao.FindByICID(ctx, icID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Response, 0, len(responses))
	for i := range responses {
		d, err := r.toDomain(responses[i])
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func (r *responseRepository) UpdateStatus(ctx context.Context, id, version int64, to domain.Status) error {
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status": to.String(),
	})
}

func (r *responseRepository) MarkUploaded(ctx context.Context, id, version int64, videoURL string, recordedAt int64) error {
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status":       domain.StatusUploaded.String(),
		"video_url":    videoURL,
		"recorded_at":  recordedAt,
		"failed_stage": "",
	})
}

func (r *responseRepository) MarkFailed(ctx context.Context, id, version int64, stage string) error {
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status":       domain.StatusFailed.String(),
		"failed_stage": stage,
		"retry_count":  gorm.Expr("retry_count + 1"),
	})
}

func (r *responseRepository) Revert(ctx context.Context, id, version int64, to domain.Status) error {
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status":      to.String(),
		"retry_count": gorm.Expr("retry_count + 1"),
	})
}

func (r *responseRepository) SaveTranscription(ctx context.Context, id, version int64, text string, segments []transcript.Segment, degraded bool) error {
	data, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("序列化分段失败: %w", err)
	}
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status":        domain.StatusTranscribed.String(),
		"transcription": text,
		"segments":      string(data),
		"degraded":      degraded,
	})
}

func (r *responseRepository) SaveAnalysis(ctx context.Context, id, version int64, analysis domain.Analysis, segments []transcript.Segment) error {
	analysisData, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("序列化分析结果失败: %w", err)
	}
	segData, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("序列化分段失败: %w", err)
	}
	return r.dao.UpdateWithVersion(ctx, id, version, map[string]any{
		"status":   domain.StatusAnalyzed.String(),
		"analysis": string(analysisData),
		"segments": string(segData),
	})
}

func (r *responseRepository) FindStale(ctx context.Context, statuses []domain.Status, olderThan time.Duration, limit int) ([]domain.Response, error) {
	before := time.Now().Add(-olderThan).UnixMilli()
	found, err := r.dao.FindStale(ctx, slice.Map(statuses, func(_ int, s domain.Status) string {
		return s.String()
	}), before, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Response, 0, len(found))
	for i := range found {
		d, err := r.toDomain(found[i])
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func (r *responseRepository) toDomain(e dao.Response) (domain.Response, error) {
	res := domain.Response{
		ID:                   e.ID,
		InterviewCandidateID: e.InterviewCandidateID,
		QuestionID:           e.QuestionID,
		Status:               domain.Status(e.Status),
		FailedStage:          e.FailedStage,
		RetryCount:           e.RetryCount,
		Version:              e.Version,
		VideoURL:             e.VideoURL,
		Transcription:        e.Transcription,
		Degraded:             e.Degraded,
		RecordedAt:           e.RecordedAt,
		Utime:                e.Utime,
	}
	if e.Segments != "" {
		if err := json.Unmarshal([]byte(e.Segments), &res.Segments); err != nil {
			return domain.Response{}, fmt.Errorf("解析分段失败: %w", err)
		}
	}
	if e.Analysis != "" {
		var analysis domain.Analysis
		if err := json.Unmarshal([]byte(e.Analysis), &analysis); err != nil {
			return domain.Response{}, fmt.Errorf("解析分析结果失败: %w", err)
		}
		res.Analysis = &analysis
	}
	return res, nil
}
