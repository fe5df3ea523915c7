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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	rollupmocks "github.com/ecodeclub/hirevue/internal/rollup/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompleteStalledCandidatesJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("滞留的候选人逐个重试，单个失败不中断", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		candidateSvc := candidatemocks.NewMockCandidateService(ctrl)
		candidateSvc.EXPECT().ListByStatus(gomock.Any(), candidate.StatusInterview, gomock.Any(), 100).
			DoAndReturn(func(_ context.Context, _ candidate.Status, before int64, _ int) ([]candidate.InterviewCandidate, error) {
				assert.Less(t, before, time.Now().UnixMilli())
				return []candidate.InterviewCandidate{
					{ID: 1, Status: candidate.StatusInterview},
					{ID: 2, Status: candidate.StatusInterview},
					{ID: 3, Status: candidate.StatusInterview},
				}, nil
			})
		svc := rollupmocks.NewMockRollupService(ctrl)
		// 第一个总评生成失败，第二个完成，第三个还没答完
		svc.EXPECT().TryComplete(gomock.Any(), int64(1)).
			Return(false, errors.New("mock llm error"))
		svc.EXPECT().TryComplete(gomock.Any(), int64(2)).
			Return(true, nil)
		svc.EXPECT().TryComplete(gomock.Any(), int64(3)).
			Return(false, nil)

		j := NewCompleteStalledCandidatesJob(svc, candidateSvc, 30*time.Minute, 100, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("查找失败返回错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		candidateSvc := candidatemocks.NewMockCandidateService(ctrl)
		mockErr := errors.New("mock db error")
		candidateSvc.EXPECT().ListByStatus(gomock.Any(), candidate.StatusInterview, gomock.Any(), 100).
			Return(nil, mockErr)
		svc := rollupmocks.NewMockRollupService(ctrl)

		j := NewCompleteStalledCandidatesJob(svc, candidateSvc, 30*time.Minute, 100, time.Minute)
		assert.ErrorIs(t, j.Run(context.Background()), mockErr)
	})
}
