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

// Candidate 候选人档案，跨面试复用，按邮箱去重
type Candidate struct {
	ID              int64
	Email           string
	Name            string
	Phone           string
	LinkedinID      string
	LinkedinProfile string
	CVParsed        string
}

// Status 候选人在一场面试里的进度。
// 只能沿既定方向推进，唯一允许的回退是 REVIEWED -> REVIEWING
type Status string

const (
	StatusInfo        Status = "INFO"
	StatusInterview   Status = "INTERVIEW"
	StatusCompleted   Status = "COMPLETED"
	StatusReviewing   Status = "REVIEWING"
	StatusReviewed    Status = "REVIEWED"
	StatusShortlisted Status = "SHORTLISTED"
	StatusRejected    Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

var transitions = map[Status][]Status{
	StatusInfo:      {StatusInterview},
	StatusInterview: {StatusCompleted},
	StatusCompleted: {StatusReviewing},
	StatusReviewing: {StatusReviewed},
	StatusReviewed:  {StatusReviewing, StatusShortlisted, StatusRejected},
}

// CanTransition 判断能否从 s 走到 to
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal 终态，不再接受任何变更
func (s Status) Terminal() bool {
	return s == StatusShortlisted || s == StatusRejected
}

// InterviewCandidate 候选人和一场面试的关联，承载进度和最终评估
type InterviewCandidate struct {
	ID          int64
	InterviewID int64
	CandidateID int64
	Status      Status
	// OverallAnalysis 全部题目分析完成后生成的总评，JSON
	OverallAnalysis string
	Notes           string
	CompletedAt     int64
	Utime           int64

	Candidate Candidate
}
