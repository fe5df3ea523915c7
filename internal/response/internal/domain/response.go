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

import (
	"github.com/ecodeclub/hirevue/internal/transcript"
)

// Status 单题回答在处理流水线里的位置
type Status string

const (
	StatusCreated      Status = "CREATED"
	StatusUploading    Status = "UPLOADING"
	StatusUploaded     Status = "UPLOADED"
	StatusTranscribing Status = "TRANSCRIBING"
	StatusTranscribed  Status = "TRANSCRIBED"
	StatusAnalyzing    Status = "ANALYZING"
	StatusAnalyzed     Status = "ANALYZED"
	StatusFailed       Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// 流水线阶段名，写进 failed_stage 和阶段事件里
const (
	StageUpload     = "upload"
	StageTranscribe = "transcribe"
	StageAnalyze    = "analyze"
)

// transitions 状态机的全部合法边。
// 失败回退也是普通的边：转写失败回 UPLOADED，分析失败回 TRANSCRIBED，
// 上传重试耗尽进 FAILED，FAILED 只能从重新上传走出来
var transitions = map[Status][]Status{
	StatusCreated:      {StatusUploading},
	StatusUploading:    {StatusUploaded, StatusFailed},
	StatusUploaded:     {StatusTranscribing},
	StatusTranscribing: {StatusTranscribed, StatusUploaded},
	StatusTranscribed:  {StatusAnalyzing},
	StatusAnalyzing:    {StatusAnalyzed, StatusTranscribed},
	StatusFailed:       {StatusUploading},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Recommendation 分析给出的录用建议
type Recommendation string

const (
	RecommendationHire  Recommendation = "Hire"
	RecommendationMaybe Recommendation = "Maybe"
	RecommendationPass  Recommendation = "Pass"
)

func (r Recommendation) Valid() bool {
	return r == RecommendationHire || r == RecommendationMaybe || r == RecommendationPass
}

// Analysis 单题回答的结构化评估。所有字段都必填，序列可以为空但不能缺失
type Analysis struct {
	RedFlags       []string       `json:"redFlags"`
	Doubts         []string       `json:"doubts"`
	KeyStrengths   []string       `json:"keyStrengths"`
	Recommendation Recommendation `json:"recommendation"`
	// OverallScore 1-10
	OverallScore int `json:"overallScore"`
	// Confidence 0-100
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// Response 候选人对一道题的回答及其处理产物
type Response struct {
	ID                   int64
	InterviewCandidateID int64
	QuestionID           int64
	Status               Status
	// FailedStage 进入 FAILED 时卡住的阶段
	FailedStage string
	RetryCount  int
	// Version 乐观锁，所有窄字段更新都带版本条件
	Version       int64
	VideoURL      string
	Transcription string
	// Degraded 转写成功但分段降级
	Degraded   bool
	Segments   []transcript.Segment
	Analysis   *Analysis
	RecordedAt int64
	Utime      int64
}

// Transcribed 转写产物是否已经就位
func (r Response) Transcribed() bool {
	return r.Transcription != ""
}

// Analyzed 分析产物是否已经就位
func (r Response) Analyzed() bool {
	return r.Analysis != nil
}
