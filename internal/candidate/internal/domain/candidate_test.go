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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "信息采集后开始答题", from: StatusInfo, to: StatusInterview, want: true},
		{name: "答题完成", from: StatusInterview, to: StatusCompleted, want: true},
		{name: "进入评审", from: StatusCompleted, to: StatusReviewing, want: true},
		{name: "评审完成", from: StatusReviewing, to: StatusReviewed, want: true},
		{name: "评审后重开", from: StatusReviewed, to: StatusReviewing, want: true},
		{name: "入围", from: StatusReviewed, to: StatusShortlisted, want: true},
		{name: "淘汰", from: StatusReviewed, to: StatusRejected, want: true},
		{name: "不能跳过答题", from: StatusInfo, to: StatusCompleted, want: false},
		{name: "不能回到信息采集", from: StatusInterview, to: StatusInfo, want: false},
		{name: "评审中不能直接裁决", from: StatusReviewing, to: StatusShortlisted, want: false},
		{name: "终态不再变更", from: StatusShortlisted, to: StatusReviewing, want: false},
		{name: "终态之间不互转", from: StatusRejected, to: StatusShortlisted, want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

// 随机回放：沿流转表随便走，验证除 REVIEWED->REVIEWING 外不会出现任何回退，
// 且一旦进入终态就走不动了
func TestStatus_RandomReplay(t *testing.T) {
	t.Parallel()
	rank := map[Status]int{
		StatusInfo:        0,
		StatusInterview:   1,
		StatusCompleted:   2,
		StatusReviewing:   3,
		StatusReviewed:    4,
		StatusShortlisted: 5,
		StatusRejected:    5,
	}
	all := []Status{
		StatusInfo, StatusInterview, StatusCompleted, StatusReviewing,
		StatusReviewed, StatusShortlisted, StatusRejected,
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		cur := StatusInfo
		for step := 0; step < 20; step++ {
			next := all[r.Intn(len(all))]
			if !cur.CanTransition(next) {
				continue
			}
			back := rank[next] < rank[cur]
			if back {
				assert.Equal(t, StatusReviewed, cur)
				assert.Equal(t, StatusReviewing, next)
			}
			assert.False(t, cur.Terminal(), "终态 %s 不应再有出边", cur)
			cur = next
		}
	}
}
