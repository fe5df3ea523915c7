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
	InterviewCandidateID int64 `json:"interviewCandidateId"`
	QuestionID           int64 `json:"questionId"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	InterviewCandidateID int64 `json:"interviewCandidateId"`
}

type Response struct {
	ID            int64     `json:"id"`
	QuestionID    int64     `json:"questionId"`
	Status        string    `json:"status"`
	FailedStage   string    `json:"failedStage,omitempty"`
	RetryCount    int       `json:"retryCount"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	Degraded      bool      `json:"degraded,omitempty"`
	Segments      []Segment `json:"segments,omitempty"`
	Analysis      *Analysis `json:"analysis,omitempty"`
	RecordedAt    int64     `json:"recordedAt,omitempty"`
}

type Segment struct {
	ID        int      `json:"id"`
	Start     float64  `json:"start"`
	End       float64  `json:"end"`
	Text      string   `json:"text"`
	Title     string   `json:"title,omitempty"`
	RedFlag   string   `json:"redflag,omitempty"`
	Doubt     string   `json:"doubt,omitempty"`
	FactPlus  []string `json:"factPlus,omitempty"`
	FactMinus []string `json:"factMinus,omitempty"`
}

type Analysis struct {
	RedFlags       []string `json:"redFlags"`
	Doubts         []string `json:"doubts"`
	KeyStrengths   []string `json:"keyStrengths"`
	Recommendation string   `json:"recommendation"`
	OverallScore   int      `json:"overallScore"`
	Confidence     int      `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
}
