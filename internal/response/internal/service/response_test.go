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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/hirevue/internal/candidate"
	candidatemocks "github.com/ecodeclub/hirevue/internal/candidate/mocks"
	"github.com/ecodeclub/hirevue/internal/interview"
	interviewmocks "github.com/ecodeclub/hirevue/internal/interview/mocks"
	mediamocks "github.com/ecodeclub/hirevue/internal/media/mocks"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/ecodeclub/hirevue/internal/response/internal/event"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository/dao"
	responsemocks "github.com/ecodeclub/hirevue/internal/response/mocks"
	"github.com/ecodeclub/hirevue/internal/transcript"
	transcriptmocks "github.com/ecodeclub/hirevue/internal/transcript/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testResponseID = int64(1)
	testICID       = int64(10)
	testQuestionID = int64(100)
)

type nopProducer[T any] struct{}

func (nopProducer[T]) Produce(_ context.Context, _ T) error { return nil }

// pipelineFixture 用一份内存状态模拟仓储，
// 写操作走真实的版本条件检查，方便验证状态机走向
type pipelineFixture struct {
	repo         *responsemocks.MockResponseRepository
	store        *mediamocks.MockStore
	transcriber  *transcriptmocks.MockTranscriptionService
	annotator    *transcriptmocks.MockAnnotatorService
	analyzer     *responsemocks.MockAnalyzerService
	interviewSvc *interviewmocks.MockInterviewService
	candidateSvc *candidatemocks.MockCandidateService

	state domain.Response
}

func newPipelineFixture(ctrl *gomock.Controller, status domain.Status) *pipelineFixture {
	f := &pipelineFixture{
		repo:         responsemocks.NewMockResponseRepository(ctrl),
		store:        mediamocks.NewMockStore(ctrl),
		transcriber:  transcriptmocks.NewMockTranscriptionService(ctrl),
		annotator:    transcriptmocks.NewMockAnnotatorService(ctrl),
		analyzer:     responsemocks.NewMockAnalyzerService(ctrl),
		interviewSvc: interviewmocks.NewMockInterviewService(ctrl),
		candidateSvc: candidatemocks.NewMockCandidateService(ctrl),
		state: domain.Response{
			ID:                   testResponseID,
			InterviewCandidateID: testICID,
			QuestionID:           testQuestionID,
			Status:               status,
			Version:              1,
		},
	}
	if status != domain.StatusCreated {
		f.state.VideoURL = "oss://videos/1"
	}
	f.repo.EXPECT().FindByID(gomock.Any(), testResponseID).AnyTimes().
		DoAndReturn(func(_ context.Context, _ int64) (domain.Response, error) {
			return f.state, nil
		})
	f.repo.EXPECT().UpdateStatus(gomock.Any(), testResponseID, gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, _, version int64, to domain.Status) error {
			return f.mutate(version, to)
		})
	f.repo.EXPECT().Revert(gomock.Any(), testResponseID, gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, _, version int64, to domain.Status) error {
			if err := f.mutate(version, to); err != nil {
				return err
			}
			f.state.RetryCount++
			return nil
		})
	return f
}

func (f *pipelineFixture) mutate(version int64, to domain.Status) error {
	if version != f.state.Version {
		return dao.ErrVersionConflict
	}
	if !f.state.Status.CanTransition(to) {
		return errors.New("非法状态流转: " + f.state.Status.String() + " -> " + to.String())
	}
	f.state.Status = to
	f.state.Version++
	return nil
}

func (f *pipelineFixture) service() *responseService {
	return &responseService{
		repo:             f.repo,
		store:            f.store,
		transcriptionSvc: f.transcriber,
		annotatorSvc:     f.annotator,
		analyzerSvc:      f.analyzer,
		interviewSvc:     f.interviewSvc,
		candidateSvc:     f.candidateSvc,
		stageProducer:    nopProducer[event.StageChangeEvent]{},
		analyzedProducer: nopProducer[event.ResponseAnalyzedEvent]{},
		logger:           elog.DefaultLogger,
		initialInterval:  time.Millisecond,
		maxInterval:      2 * time.Millisecond,
		maxRetries:       3,
	}
}

// expectTranscribeOK 转写阶段成功走完一次
func (f *pipelineFixture) expectTranscribeOK(segments []transcript.Segment) {
	f.store.EXPECT().Get(gomock.Any(), "oss://videos/1").
		Return([]byte("video-bytes"), nil).Times(1)
	f.transcriber.EXPECT().Transcribe(gomock.Any(), testICID, []byte("video-bytes"), "").
		Return(transcript.Transcription{Text: "转写文本", Segments: segments}, nil).Times(1)
	f.repo.EXPECT().SaveTranscription(gomock.Any(), testResponseID, gomock.Any(), "转写文本", segments, false).
		DoAndReturn(func(_ context.Context, _, version int64, text string, segs []transcript.Segment, degraded bool) error {
			if err := f.mutate(version, domain.StatusTranscribed); err != nil {
				return err
			}
			f.state.Transcription = text
			f.state.Segments = segs
			f.state.Degraded = degraded
			return nil
		}).Times(1)
}

// expectAnalyzeOK 分析阶段成功走完一次
func (f *pipelineFixture) expectAnalyzeOK(analysis domain.Analysis) {
	f.expectInterviewContext()
	f.analyzer.EXPECT().Analyze(gomock.Any(), testICID, "转写文本", "讲讲你主导过的项目", []string{"主人翁意识"}).
		Return(analysis, nil).Times(1)
	f.repo.EXPECT().SaveAnalysis(gomock.Any(), testResponseID, gomock.Any(), analysis, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, version int64, a domain.Analysis, segs []transcript.Segment) error {
			if err := f.mutate(version, domain.StatusAnalyzed); err != nil {
				return err
			}
			f.state.Analysis = &a
			f.state.Segments = segs
			return nil
		}).Times(1)
}

func (f *pipelineFixture) expectInterviewContext() {
	f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
		Return(candidate.InterviewCandidate{
			ID:          testICID,
			InterviewID: int64(5),
			Candidate:   candidate.Candidate{LinkedinProfile: "资深后端，八年经验"},
		}, nil).Times(1)
	f.interviewSvc.EXPECT().ByID(gomock.Any(), int64(5)).
		Return(interview.Interview{
			ID:              5,
			AnalysisPrompts: []string{"主人翁意识"},
			Questions: []interview.Question{
				{ID: testQuestionID, QuestionText: "讲讲你主导过的项目"},
			},
		}, nil).Times(1)
}

func TestResponseService_Process(t *testing.T) {
	t.Parallel()
	segments := []transcript.Segment{
		{ID: 1, Start: 0, End: 40, Text: "我主导了一次大迁移"},
		{ID: 2, Start: 40, End: 80, Text: "之后流量翻了一倍"},
	}
	annotated := []transcript.Segment{
		{ID: 1, Start: 0, End: 40, Text: "我主导了一次大迁移", Title: "项目主导"},
		{ID: 2, Start: 40, End: 80, Text: "之后流量翻了一倍", Title: "成果", Doubt: "缺乏佐证"},
	}
	analysis := domain.Analysis{
		RedFlags:       []string{},
		Doubts:         []string{"流量数字没有出处"},
		KeyStrengths:   []string{"结构清晰"},
		Recommendation: domain.RecommendationHire,
		OverallScore:   8,
		Confidence:     80,
		Reasoning:      "回答有深度",
	}

	t.Run("UPLOADED 一口气推进到 ANALYZED", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploaded)
		f.expectTranscribeOK(segments)
		f.expectAnalyzeOK(analysis)
		f.annotator.EXPECT().Annotate(gomock.Any(), testICID, segments, "转写文本", "讲讲你主导过的项目", []string{"主人翁意识"}).
			Return(annotated, nil).Times(1)
		f.annotator.EXPECT().FillFacts(gomock.Any(), testICID, annotated, "资深后端，八年经验", "转写文本").
			Return(annotated).Times(1)

		res, err := f.service().Process(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAnalyzed, res.Status)
		require.NotNil(t, res.Analysis)
		assert.Equal(t, analysis, *res.Analysis)
		assert.Equal(t, annotated, res.Segments)
	})

	t.Run("重复调用只检查不重做", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploaded)
		// 所有外部调用都只允许一次，第二次 Process 多打一次就会失败
		f.expectTranscribeOK(nil)
		f.expectAnalyzeOK(analysis)

		svc := f.service()
		first, err := svc.Process(context.Background(), testResponseID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusAnalyzed, first.Status)

		second, err := svc.Process(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Version, second.Version)
	})

	t.Run("转写失败回到 UPLOADED，重试后成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploaded)
		mockErr := errors.New("mock asr error")
		gomock.InOrder(
			f.store.EXPECT().Get(gomock.Any(), "oss://videos/1").
				Return([]byte("video-bytes"), nil),
			f.transcriber.EXPECT().Transcribe(gomock.Any(), testICID, []byte("video-bytes"), "").
				Return(transcript.Transcription{}, mockErr),
		)

		svc := f.service()
		res, err := svc.Process(context.Background(), testResponseID)
		assert.ErrorIs(t, err, mockErr)
		// 失败后停在 UPLOADED，没有任何转写产物
		assert.Equal(t, domain.StatusUploaded, f.state.Status)
		assert.Empty(t, f.state.Transcription)
		assert.Equal(t, 1, f.state.RetryCount)
		assert.Equal(t, domain.StatusUploaded, res.Status)

		// 第二次从 UPLOADED 重新出发，完整走完
		f.expectTranscribeOK(nil)
		f.expectAnalyzeOK(analysis)
		res, err = svc.Process(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAnalyzed, res.Status)
	})

	t.Run("分析失败回到 TRANSCRIBED 且不写产物", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusTranscribed)
		f.state.Transcription = "转写文本"
		f.expectInterviewContext()
		f.analyzer.EXPECT().Analyze(gomock.Any(), testICID, "转写文本", "讲讲你主导过的项目", []string{"主人翁意识"}).
			Return(domain.Analysis{}, ErrAnalysisFailed).Times(1)

		res, err := f.service().Process(context.Background(), testResponseID)
		assert.ErrorIs(t, err, ErrAnalysisFailed)
		assert.Equal(t, domain.StatusTranscribed, f.state.Status)
		assert.Nil(t, f.state.Analysis)
		assert.Equal(t, domain.StatusTranscribed, res.Status)
	})

	t.Run("标注失败不影响分析，保留原分段", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploaded)
		f.expectTranscribeOK(segments)
		f.expectAnalyzeOK(analysis)
		f.annotator.EXPECT().Annotate(gomock.Any(), testICID, segments, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, transcript.ErrAnnotationFailed).Times(1)

		res, err := f.service().Process(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAnalyzed, res.Status)
		assert.Equal(t, segments, res.Segments)
	})

	t.Run("视频没上传不能开始处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		_, err := f.service().Process(context.Background(), testResponseID)
		assert.ErrorIs(t, err, ErrVideoNotUploaded)
	})

	t.Run("进行中的回答直接返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusTranscribing)
		res, err := f.service().Process(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusTranscribing, res.Status)
	})
}

func TestResponseService_CompleteUpload(t *testing.T) {
	t.Parallel()

	t.Run("上传成功置为 UPLOADED", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		f.store.EXPECT().Put(gomock.Any(), "interviews/10/responses/1", []byte("data"), "video/webm").
			Return("oss://videos/1", nil).Times(1)
		f.repo.EXPECT().MarkUploaded(gomock.Any(), testResponseID, gomock.Any(), "oss://videos/1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, version int64, url string, recordedAt int64) error {
				if err := f.mutate(version, domain.StatusUploaded); err != nil {
					return err
				}
				f.state.VideoURL = url
				f.state.RecordedAt = recordedAt
				return nil
			}).Times(1)

		url, err := f.service().CompleteUpload(context.Background(), testResponseID, []byte("data"), "video/webm")
		require.NoError(t, err)
		assert.Equal(t, "oss://videos/1", url)
		assert.Equal(t, domain.StatusUploaded, f.state.Status)
	})

	t.Run("重试耗尽进入 FAILED", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		mockErr := errors.New("mock oss error")
		// 首次加三次重试
		f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", mockErr).Times(4)
		f.repo.EXPECT().MarkFailed(gomock.Any(), testResponseID, gomock.Any(), domain.StageUpload).
			DoAndReturn(func(_ context.Context, _, version int64, stage string) error {
				if err := f.mutate(version, domain.StatusFailed); err != nil {
					return err
				}
				f.state.FailedStage = stage
				f.state.RetryCount++
				return nil
			}).Times(1)

		_, err := f.service().CompleteUpload(context.Background(), testResponseID, []byte("data"), "video/webm")
		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.Equal(t, domain.StatusFailed, f.state.Status)
		assert.Equal(t, domain.StageUpload, f.state.FailedStage)
	})

	t.Run("已上传成功幂等返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploaded)
		// store.Put 不应被调用
		url, err := f.service().CompleteUpload(context.Background(), testResponseID, []byte("data"), "video/webm")
		require.NoError(t, err)
		assert.Equal(t, "oss://videos/1", url)
	})
}

func TestResponseService_StartUpload(t *testing.T) {
	t.Parallel()

	t.Run("CREATED 宣告开始上传", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		err := f.service().StartUpload(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUploading, f.state.Status)
	})

	t.Run("已在上传时是无操作", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusUploading)
		err := f.service().StartUpload(context.Background(), testResponseID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUploading, f.state.Status)
		assert.Equal(t, int64(1), f.state.Version)
	})
}

func TestResponseService_Save(t *testing.T) {
	t.Parallel()

	t.Run("进行中的候选人可以建回答", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{
				ID:     testICID,
				Status: candidate.StatusInterview,
			}, nil).Times(1)
		f.repo.EXPECT().Create(gomock.Any(), testICID, testQuestionID).
			Return(domain.Response{
				ID:                   testResponseID,
				InterviewCandidateID: testICID,
				QuestionID:           testQuestionID,
				Status:               domain.StatusCreated,
			}, nil).Times(1)

		res, err := f.service().Save(context.Background(), testICID, testQuestionID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCreated, res.Status)
	})

	t.Run("还没进入面试不能建回答", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		// repo.Create 不应被调用
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{
				ID:     testICID,
				Status: candidate.StatusInfo,
			}, nil).Times(1)

		_, err := f.service().Save(context.Background(), testICID, testQuestionID)
		assert.ErrorIs(t, err, ErrInterviewNotInProgress)
	})

	t.Run("面试已经结束不能建回答", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		f := newPipelineFixture(ctrl, domain.StatusCreated)
		f.candidateSvc.EXPECT().Detail(gomock.Any(), testICID).
			Return(candidate.InterviewCandidate{
				ID:     testICID,
				Status: candidate.StatusCompleted,
			}, nil).Times(1)

		_, err := f.service().Save(context.Background(), testICID, testQuestionID)
		assert.ErrorIs(t, err, ErrInterviewNotInProgress)
	})
}

func TestResponseService_SweepStale(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newPipelineFixture(ctrl, domain.StatusTranscribing)
	f.state.Transcription = ""
	f.repo.EXPECT().FindStale(gomock.Any(), gomock.Any(), time.Hour, 100).
		DoAndReturn(func(_ context.Context, statuses []domain.Status, _ time.Duration, _ int) ([]domain.Response, error) {
			assert.Contains(t, statuses, domain.StatusTranscribing)
			assert.Contains(t, statuses, domain.StatusAnalyzing)
			return []domain.Response{f.state}, nil
		})
	// 回退到 UPLOADED 后重新驱动，完整走完两个阶段
	f.expectTranscribeOK(nil)
	f.expectAnalyzeOK(domain.Analysis{
		RedFlags:       []string{},
		Doubts:         []string{},
		KeyStrengths:   []string{},
		Recommendation: domain.RecommendationMaybe,
		OverallScore:   5,
		Confidence:     40,
		Reasoning:      "信息不足",
	})

	count, err := f.service().SweepStale(context.Background(), time.Hour, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, domain.StatusAnalyzed, f.state.Status)
}
