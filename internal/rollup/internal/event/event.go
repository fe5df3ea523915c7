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

const CandidateCompletedTopic = "candidate_completed_events"

// CandidateCompletedEvent 候选人全部回答分析完成、总评已落库
type CandidateCompletedEvent struct {
	InterviewCandidateID int64 `json:"interviewCandidateId"`
	InterviewID          int64 `json:"interviewId"`
	CandidateID          int64 `json:"candidateId"`
	Occurred             int64 `json:"occurred"`
}
