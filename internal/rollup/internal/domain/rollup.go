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

package domain

// CategoryRollup 一个问题类别的汇总评价。
// OverallScore 和 Summary 是所有类别共有的，
// 其余字段按类别选填：basic 填 ReqMet，experience 填 YearsExperience，
// resume 填 LogicalProgression/Impact/RedFlags，依此类推
type CategoryRollup struct {
	Category string `json:"category"`
	// OverallScore 1-100
	OverallScore int    `json:"overallScore"`
	Summary      string `json:"summary"`

	// ReqMet 基础筛选：硬性要求是否满足
	ReqMet *bool `json:"reqMet,omitempty"`
	// YearsExperience 工作年限评估
	YearsExperience float64 `json:"yearsExperience,omitempty"`
	// LogicalProgression 履历走向是否有逻辑
	LogicalProgression string `json:"logicalProgression,omitempty"`
	// Impact 各段经历的业绩亮点
	Impact   []string `json:"impact,omitempty"`
	RedFlags []string `json:"redFlags,omitempty"`
	// CultureFit 文化匹配评价
	CultureFit string `json:"cultureFit,omitempty"`
}

// SkillEvaluation 总评里对单项关键技能的打分
type SkillEvaluation struct {
	Skill string `json:"skill"`
	// Score 1-100
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// OverallRollup 候选人完成全部回答后的总评，
// 持久化在 InterviewCandidate 上，是评审页的主读模型
type OverallRollup struct {
	// OverallScore 1-100
	OverallScore     int               `json:"overallScore"`
	SkillEvaluations []SkillEvaluation `json:"skillEvaluations,omitempty"`
	YearsExperience  float64           `json:"yearsExperience,omitempty"`
	CultureFit       string            `json:"cultureFit,omitempty"`
	Summary          string            `json:"summary"`
}
