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

// Category 题目所属的考察维度，同时也是评估汇总的分组键
type Category string

const (
	CategoryBasic      Category = "basic"
	CategoryExperience Category = "experience"
	CategoryResume     Category = "resume"
	CategoryMotivation Category = "motivation"
	CategorySoftSkills Category = "soft_skills"
	CategoryCulture    Category = "culture"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBasic, CategoryExperience, CategoryResume,
		CategoryMotivation, CategorySoftSkills, CategoryCulture:
		return true
	default:
		return false
	}
}

// Categories 全部合法维度，顺序即汇总展示顺序
func Categories() []Category {
	return []Category{
		CategoryBasic, CategoryExperience, CategoryResume,
		CategoryMotivation, CategorySoftSkills, CategoryCulture,
	}
}

// Interview 一场面试的配置聚合根，Questions 按 Position 升序
type Interview struct {
	ID               int64
	Uid              int64
	SessionID        string
	JobTitle         string
	CompanyName      string
	TimeLimitSeconds int
	NextSteps        string
	AnalysisPrompts  []string
	CompanyCulture   string
	KeySkills        []string
	Questions        []Question
	Utime            int64
}

type Question struct {
	ID           int64
	InterviewID  int64
	ShortName    string
	QuestionText string
	// Position 从 1 开始，同一场面试内连续且唯一
	Position int
	Category Category
	Tags     []string
}
