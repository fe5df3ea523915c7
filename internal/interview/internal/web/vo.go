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

type SaveReq struct {
	Interview Interview `json:"interview"`
}

type Interview struct {
	ID               int64    `json:"id"`
	SessionID        string   `json:"sessionId"`
	JobTitle         string   `json:"jobTitle"`
	CompanyName      string   `json:"companyName"`
	TimeLimitSeconds int      `json:"timeLimitSeconds"`
	NextSteps        string   `json:"nextSteps"`
	AnalysisPrompts  []string `json:"analysisPrompts,omitempty"`
	CompanyCulture   string   `json:"companyCulture,omitempty"`
	KeySkills        []string `json:"keySkills,omitempty"`

	Questions []Question `json:"questions,omitempty"` // 仅在详情页中填充
}

type Question struct {
	ID           int64    `json:"id"`
	ShortName    string   `json:"shortName"`
	QuestionText string   `json:"questionText"`
	Position     int      `json:"position"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type SessionReq struct {
	SessionID string `json:"sessionId"`
}

// SessionVO 候选人侧看到的面试信息，不包含招聘方的评估配置
type SessionVO struct {
	SessionID        string     `json:"sessionId"`
	JobTitle         string     `json:"jobTitle"`
	CompanyName      string     `json:"companyName"`
	TimeLimitSeconds int        `json:"timeLimitSeconds"`
	NextSteps        string     `json:"nextSteps"`
	Questions        []Question `json:"questions"`
}
