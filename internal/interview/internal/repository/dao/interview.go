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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Interview 一场面试的配置
type Interview struct {
	ID               int64                     `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Uid              int64                     `gorm:"type:BIGINT;NOT NULL;index:idx_uid;comment:'创建面试的招聘方用户ID'"`
	SessionID        string                    `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:unq_session_id;comment:'候选人入口的公开会话标识'"`
	JobTitle         string                    `gorm:"type:VARCHAR(255);NOT NULL;comment:'岗位名称'"`
	CompanyName      string                    `gorm:"type:VARCHAR(255);NOT NULL;comment:'公司名'"`
	TimeLimitSeconds int                       `gorm:"type:INT;NOT NULL;default:180;comment:'单题回答时长上限，秒'"`
	NextSteps        string                    `gorm:"type:TEXT;comment:'面试结束后展示给候选人的后续流程说明'"`
	AnalysisPrompts  sqlx.JsonColumn[[]string] `gorm:"type:JSON;comment:'招聘方自定义的分析提示'"`
	CompanyCulture   string                    `gorm:"type:TEXT;comment:'公司文化描述，供 culture 维度评估使用'"`
	KeySkills        sqlx.JsonColumn[[]string] `gorm:"type:JSON;comment:'岗位关键技能'"`
	Ctime            int64
	Utime            int64
}

func (Interview) TableName() string {
	return "interviews"
}

// InterviewQuestion 面试中的一道题目
type InterviewQuestion struct {
	ID           int64                     `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewID  int64                     `gorm:"type:BIGINT;NOT NULL;index:idx_interview_id;uniqueIndex:unq_interview_id_position,priority:1;comment:'所属面试ID'"`
	ShortName    string                    `gorm:"type:VARCHAR(255);NOT NULL;comment:'题目短名，汇总展示用'"`
	QuestionText string                    `gorm:"type:TEXT;NOT NULL;comment:'完整题干'"`
	Position     int                       `gorm:"type:INT;NOT NULL;uniqueIndex:unq_interview_id_position,priority:2;comment:'题目顺序，从1开始'"`
	Category     string                    `gorm:"type:ENUM('basic','experience','resume','motivation','soft_skills','culture');NOT NULL;comment:'考察维度'"`
	Tags         sqlx.JsonColumn[[]string] `gorm:"type:JSON;comment:'题目标签'"`
	Ctime        int64
	Utime        int64
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}

type InterviewDAO interface {
	// Save 原子性保存整个聚合，多余的旧题目会被裁掉
	Save(ctx context.Context, interview Interview, questions []InterviewQuestion) (int64, error)
	Find(ctx context.Context, id, uid int64) (Interview, []InterviewQuestion, error)
	// FindByID 不校验归属，流水线内部使用
	FindByID(ctx context.Context, id int64) (Interview, []InterviewQuestion, error)
	FindBySessionID(ctx context.Context, sessionID string) (Interview, []InterviewQuestion, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Interview, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	FindQuestionsByInterviewID(ctx context.Context, interviewID int64) ([]InterviewQuestion, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Save(ctx context.Context, interview Interview, questions []InterviewQuestion) (int64, error) {
	now := time.Now().UnixMilli()
	interview.Utime = now
	if interview.ID == 0 {
		interview.Ctime = now
	}
	for i := range questions {
		questions[i].Utime = now
		if questions[i].ID == 0 {
			questions[i].Ctime = now
		}
	}
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"job_title",
				"company_name",
				"time_limit_seconds",
				"next_steps",
				"analysis_prompts",
				"company_culture",
				"key_skills",
				"utime",
			}),
		}).Create(&interview).Error; err != nil {
			return err
		}
		id = interview.ID

		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].InterviewID = id
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "interview_id"}, {Name: "position"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"short_name",
				"question_text",
				"category",
				"tags",
				"utime",
			}),
		}).Create(&questions).Error; err != nil {
			return err
		}
		// 题目顺序连续，超出新长度的老题目直接裁掉
		return tx.Where("interview_id = ? AND position > ?", id, len(questions)).
			Delete(&InterviewQuestion{}).Error
	})
	return id, err
}

func (g *GORMInterviewDAO) Find(ctx context.Context, id, uid int64) (Interview, []InterviewQuestion, error) {
	var interview Interview
	var questions []InterviewQuestion
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND uid = ?", id, uid).First(&interview).Error; err != nil {
			return err
		}
		return tx.Where("interview_id = ?", id).Order("position ASC").Find(&questions).Error
	})
	return interview, questions, err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, id int64) (Interview, []InterviewQuestion, error) {
	var interview Interview
	var questions []InterviewQuestion
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&interview).Error; err != nil {
			return err
		}
		return tx.Where("interview_id = ?", id).Order("position ASC").Find(&questions).Error
	})
	return interview, questions, err
}

func (g *GORMInterviewDAO) FindBySessionID(ctx context.Context, sessionID string) (Interview, []InterviewQuestion, error) {
	var interview Interview
	var questions []InterviewQuestion
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).First(&interview).Error; err != nil {
			return err
		}
		return tx.Where("interview_id = ?", interview.ID).Order("position ASC").Find(&questions).Error
	})
	return interview, questions, err
}

func (g *GORMInterviewDAO) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Interview, error) {
	var interviews []Interview
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&interviews).Error
	return interviews, err
}

func (g *GORMInterviewDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Interview{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMInterviewDAO) FindQuestionsByInterviewID(ctx context.Context, interviewID int64) ([]InterviewQuestion, error) {
	var questions []InterviewQuestion
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewID).
		Order("position ASC").Find(&questions).Error
	return questions, err
}
