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

package event

const (
	// StageTopic 每一次状态机流转都会发一条，含失败回退
	StageTopic = "response_stage_events"
	// AnalyzedTopic 单题分析完成，汇总流程据此判断是否齐活
	AnalyzedTopic = "response_analyzed_events"
)

// StageChangeEvent 一次状态流转
type StageChangeEvent struct {
	ResponseID int64  `json:"responseId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Stage      string `json:"stage"`
	Error      string `json:"error,omitempty"`
	Occurred   int64  `json:"occurred"`
}

// ResponseAnalyzedEvent 单题回答到达终态 ANALYZED
type ResponseAnalyzedEvent struct {
	ResponseID           int64 `json:"responseId"`
	InterviewCandidateID int64 `json:"interviewCandidateId"`
	QuestionID           int64 `json:"questionId"`
}
