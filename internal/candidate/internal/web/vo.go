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

type StartReq struct {
	SessionID       string `json:"sessionId"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	LinkedinID      string `json:"linkedinId"`
	LinkedinProfile string `json:"linkedinProfile"`
}

type ICReq struct {
	ID int64 `json:"id"`
}

type DecideReq struct {
	ID          int64 `json:"id"`
	Shortlisted bool  `json:"shortlisted"`
}

type NotesReq struct {
	ID    int64  `json:"id"`
	Notes string `json:"notes"`
}

type ListReq struct {
	InterviewID int64 `json:"interviewId"`
	Offset      int   `json:"offset"`
	Limit       int   `json:"limit"`
}

type InterviewCandidate struct {
	ID              int64     `json:"id"`
	InterviewID     int64     `json:"interviewId"`
	Status          string    `json:"status"`
	OverallAnalysis string    `json:"overallAnalysis,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CompletedAt     int64     `json:"completedAt,omitempty"`
	Candidate       Candidate `json:"candidate"`
}

type Candidate struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
