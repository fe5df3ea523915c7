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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/hirevue/internal/interview/internal/domain"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInterviewService_Save(t *testing.T) {
	t.Parallel()

	t.Run("创建时自动分配 session_id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := interviewmocks.NewMockInterviewRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, i domain.Interview) (int64, error) {
				assert.NotEmpty(t, i.SessionID)
				return int64(1), nil
			})
		svc := NewInterviewService(repo)
		id, err := svc.Save(context.Background(), domain.Interview{
			Uid:      10,
			JobTitle: "后端工程师",
			Questions: []domain.Question{
				{Position: 1, Category: domain.CategoryBasic, QuestionText: "介绍一下自己"},
				{Position: 2, Category: domain.CategoryExperience, QuestionText: "讲一个你主导的项目"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("更新时保留已有 session_id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := interviewmocks.NewMockInterviewRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, i domain.Interview) (int64, error) {
				assert.Equal(t, "abc123", i.SessionID)
				return int64(5), nil
			})
		svc := NewInterviewService(repo)
		_, err := svc.Save(context.Background(), domain.Interview{
			ID:        5,
			Uid:       10,
			SessionID: "abc123",
		})
		require.NoError(t, err)
	})

	t.Run("题目顺序不连续", func(t *testing.T) {
		t.Parallel()
		svc := NewInterviewService(nil)
		_, err := svc.Save(context.Background(), domain.Interview{
			Uid: 10,
			Questions: []domain.Question{
				{Position: 1, Category: domain.CategoryBasic},
				{Position: 3, Category: domain.CategoryBasic},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidQuestionOrder)
	})

	t.Run("题目顺序重复", func(t *testing.T) {
		t.Parallel()
		svc := NewInterviewService(nil)
		_, err := svc.Save(context.Background(), domain.Interview{
			Uid: 10,
			Questions: []domain.Question{
				{Position: 1, Category: domain.CategoryBasic},
				{Position: 1, Category: domain.CategoryCulture},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidQuestionOrder)
	})

	t.Run("题目顺序从 0 开始", func(t *testing.T) {
		t.Parallel()
		svc := NewInterviewService(nil)
		_, err := svc.Save(context.Background(), domain.Interview{
			Uid: 10,
			Questions: []domain.Question{
				{Position: 0, Category: domain.CategoryBasic},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidQuestionOrder)
	})

	t.Run("非法维度", func(t *testing.T) {
		t.Parallel()
		svc := NewInterviewService(nil)
		_, err := svc.Save(context.Background(), domain.Interview{
			Uid: 10,
			Questions: []domain.Question{
				{Position: 1, Category: "vibe"},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}
