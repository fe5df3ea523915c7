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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVersionConflict 带版本条件的更新没有命中任何行
var ErrVersionConflict = errors.New("回答记录已被并发修改")

// Response 候选人对一道题的回答，流水线的持久化状态
type Response struct {
	ID                   int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewCandidateID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_ic_id;uniqueIndex:unq_ic_id_question_id,priority:1;comment:'面试关联ID'"`
	QuestionID           int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:unq_ic_id_question_id,priority:2;comment:'题目ID'"`
	Status               string `gorm:"type:ENUM('CREATED','UPLOADING','UPLOADED','TRANSCRIBING','TRANSCRIBED','ANALYZING','ANALYZED','FAILED');NOT NULL;default:'CREATED';comment:'流水线状态'"`
	FailedStage          string `gorm:"type:VARCHAR(32);comment:'进入FAILED时卡住的阶段'"`
	RetryCount           int    `gorm:"type:INT;NOT NULL;default:0;comment:'阶段失败累计次数'"`
	Version              int64  `gorm:"type:BIGINT;NOT NULL;default:1;comment:'乐观锁版本号'"`
	VideoURL             string `gorm:"type:VARCHAR(1024);comment:'视频在对象存储中的URL'"`
	Transcription        string `gorm:"type:LONGTEXT;comment:'整段转写文本'"`
	Degraded             bool   `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'分段是否降级'"`
	Segments             string `gorm:"type:JSON;comment:'语义分段，整体重算整体覆盖'"`
	Analysis             string `gorm:"type:JSON;comment:'单题结构化评估'"`
	RecordedAt           int64  `gorm:"type:BIGINT;NOT NULL;default:0;comment:'录制完成时间'"`
	Ctime                int64
	Utime                int64
}

func (Response) TableName() string {
	return "responses"
}

type ResponseDAO interface {
	// Create 幂等创建，(ic_id, question_id) 冲突时返回已有记录
	Create(ctx context.Context, response Response) (Response, error)
	FindByID(ctx context.Context, id int64) (Response, error)
	FindByICID(ctx context.Context, icID int64) ([]Response, error)
	// UpdateWithVersion 带版本条件的窄字段更新，自动递增 version。
	// 未命中返回 ErrVersionConflict
	UpdateWithVersion(ctx context.Context, id, version int64, fields map[string]any) error
	// FindStale 查出停留在中间状态太久的记录，供兜底任务重新驱动
	FindStale(ctx context.Context, statuses []string, before int64, limit int) ([]Response, error)
}

type GORMResponseDAO struct {
	db *egorm.Component
}

func NewGORMResponseDAO(db *egorm.Component) ResponseDAO {
	return &GORMResponseDAO{db: db}
}

func (g *GORMResponseDAO) Create(ctx context.Context, response Response) (Response, error) {
	now := time.Now().UnixMilli()
	response.Ctime = now
	response.Utime = now
	if response.Status == "" {
		response.Status = "CREATED"
	}
	if response.Version == 0 {
		response.Version = 1
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "interview_candidate_id"}, {Name: "question_id"}},
		DoNothing: true,
	}).Create(&response).Error
	if err != nil {
		return Response{}, err
	}
	var saved Response
	err = g.db.WithContext(ctx).
		Where("interview_candidate_id = ? AND question_id = ?",
			response.InterviewCandidateID, response.QuestionID).
		First(&saved).Error
	return saved, err
}

func (g *GORMResponseDAO) FindByID(ctx context.Context, id int64) (Response, error) {
	var response Response
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&response).Error
	return response, err
}

func (g *GORMResponseDAO) FindByICID(ctx context.Context, icID int64) ([]Response, error) {
	var responses []Response
	err := g.db.WithContext(ctx).Where("interview_candidate_id = ?", icID).
		Order("id ASC").Find(&responses).Error
	return responses, err
}

func (g *GORMResponseDAO) UpdateWithVersion(ctx context.Context, id, version int64, fields map[string]any) error {
	updates := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = gorm.Expr("version + 1")
	updates["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Response{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (g *GORMResponseDAO) FindStale(ctx context.Context, statuses []string, before int64, limit int) ([]Response, error) {
	var responses []Response
	err := g.db.WithContext(ctx).
		Where("status IN ? AND utime < ?", statuses, before).
		Order("utime ASC").
		Limit(limit).
		Find(&responses).Error
	return responses, err
}
