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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// ErrStatusConflict 条件更新没有命中任何行，状态已经被并发修改
var ErrStatusConflict = errors.New("候选人状态已被并发修改")

// Candidate 候选人档案，email 唯一
type Candidate struct {
	ID              int64            `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Email           string           `gorm:"type:VARCHAR(255);NOT NULL;uniqueIndex:unq_email;comment:'邮箱，档案去重键'"`
	Name            string           `gorm:"type:VARCHAR(255);NOT NULL;comment:'姓名'"`
	Phone           string           `gorm:"type:VARCHAR(64);comment:'电话'"`
	LinkedinID      sql.Null[string] `gorm:"type:VARCHAR(255);uniqueIndex:unq_linkedin_id;comment:'领英标识，可为空'"`
	LinkedinProfile string           `gorm:"type:JSON;comment:'领英资料快照'"`
	CVParsed        string           `gorm:"type:JSON;comment:'简历解析结果'"`
	Ctime           int64
	Utime           int64
}

func (Candidate) TableName() string {
	return "candidates"
}

// InterviewCandidate 候选人参加一场面试的进度记录
type InterviewCandidate struct {
	ID              int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewID     int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:unq_interview_id_candidate_id,priority:1;comment:'面试ID'"`
	CandidateID     int64  `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;uniqueIndex:unq_interview_id_candidate_id,priority:2;comment:'候选人ID'"`
	Status          string `gorm:"type:ENUM('INFO','INTERVIEW','COMPLETED','REVIEWING','REVIEWED','SHORTLISTED','REJECTED');NOT NULL;default:'INFO';comment:'进度状态'"`
	OverallAnalysis string `gorm:"type:JSON;comment:'总评，全部题目分析完成后写入'"`
	Notes           string `gorm:"type:TEXT;comment:'评审备注'"`
	CompletedAt     int64  `gorm:"type:BIGINT;NOT NULL;default:0;comment:'面试完成时间'"`
	Ctime           int64
	Utime           int64
}

func (InterviewCandidate) TableName() string {
	return "interview_candidates"
}

type CandidateDAO interface {
	// UpsertCandidate 按 email 幂等保存档案，返回档案ID
	UpsertCandidate(ctx context.Context, candidate Candidate) (int64, error)
	FindCandidateByID(ctx context.Context, id int64) (Candidate, error)

	// CreateIC 幂等创建面试关联，已存在时返回已有记录
	CreateIC(ctx context.Context, ic InterviewCandidate) (InterviewCandidate, error)
	FindICByID(ctx context.Context, id int64) (InterviewCandidate, error)
	FindICsByInterviewID(ctx context.Context, interviewID int64, offset, limit int) ([]InterviewCandidate, error)
	CountICsByInterviewID(ctx context.Context, interviewID int64) (int64, error)
	// FindICsByStatus 找出停留在 status 且 utime 早于 before 的关联
	FindICsByStatus(ctx context.Context, status string, before int64, limit int) ([]InterviewCandidate, error)

	// UpdateStatus 从 from 状态条件更新到 to，未命中返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from, to string) error
	// MarkCompleted 写入总评并置为 COMPLETED，同样带状态条件
	MarkCompleted(ctx context.Context, id int64, from string, overall string, completedAt int64) error
	UpdateNotes(ctx context.Context, id int64, notes string) error
}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) CandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (g *GORMCandidateDAO) UpsertCandidate(ctx context.Context, candidate Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	candidate.Ctime = now
	candidate.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"phone",
			"linkedin_id",
			"linkedin_profile",
			"cv_parsed",
			"utime",
		}),
	}).Create(&candidate).Error
	if err != nil {
		return 0, err
	}
	if candidate.ID > 0 {
		return candidate.ID, nil
	}
	// 冲突分支下部分数据库不回填主键，兜底查一次
	var saved Candidate
	err = g.db.WithContext(ctx).Where("email = ?", candidate.Email).First(&saved).Error
	return saved.ID, err
}

func (g *GORMCandidateDAO) FindCandidateByID(ctx context.Context, id int64) (Candidate, error) {
	var candidate Candidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	return candidate, err
}

func (g *GORMCandidateDAO) CreateIC(ctx context.Context, ic InterviewCandidate) (InterviewCandidate, error) {
	now := time.Now().UnixMilli()
	ic.Ctime = now
	ic.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "interview_id"}, {Name: "candidate_id"}},
		DoNothing: true,
	}).Create(&ic).Error
	if err != nil {
		return InterviewCandidate{}, err
	}
	var saved InterviewCandidate
	err = g.db.WithContext(ctx).
		Where("interview_id = ? AND candidate_id = ?", ic.InterviewID, ic.CandidateID).
		First(&saved).Error
	return saved, err
}

func (g *GORMCandidateDAO) FindICByID(ctx context.Context, id int64) (InterviewCandidate, error) {
	var ic InterviewCandidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&ic).Error
	return ic, err
}

func (g *GORMCandidateDAO) FindICsByInterviewID(ctx context.Context, interviewID int64, offset, limit int) ([]InterviewCandidate, error) {
	var ics []InterviewCandidate
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewID).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&ics).Error
	return ics, err
}

func (g *GORMCandidateDAO) CountICsByInterviewID(ctx context.Context, interviewID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&InterviewCandidate{}).
		Where("interview_id = ?", interviewID).Count(&count).Error
	return count, err
}

func (g *GORMCandidateDAO) FindICsByStatus(ctx context.Context, status string, before int64, limit int) ([]InterviewCandidate, error) {
	var ics []InterviewCandidate
	err := g.db.WithContext(ctx).
		Where("status = ? AND utime < ?", status, before).
		Order("utime ASC").
		Limit(limit).
		Find(&ics).Error
	return ics, err
}

func (g *GORMCandidateDAO) UpdateStatus(ctx context.Context, id int64, from, to string) error {
	res := g.db.WithContext(ctx).Model(&InterviewCandidate{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMCandidateDAO) MarkCompleted(ctx context.Context, id int64, from string, overall string, completedAt int64) error {
	res := g.db.WithContext(ctx).Model(&InterviewCandidate{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":           "COMPLETED",
			"overall_analysis": overall,
			"completed_at":     completedAt,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMCandidateDAO) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return g.db.WithContext(ctx).Model(&InterviewCandidate{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notes": notes,
			"utime": time.Now().UnixMilli(),
		}).Error
}
