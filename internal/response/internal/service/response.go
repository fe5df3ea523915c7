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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/media"
	"github.com/ecodeclub/hirevue/internal/response/internal/domain"
	"github.com/ecodeclub/hirevue/internal/response/internal/event"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository"
	"github.com/ecodeclub/hirevue/internal/response/internal/repository/dao"
	"github.com/ecodeclub/hirevue/internal/transcript"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUploadFailed 上传重试耗尽，回答进入 FAILED，可重新发起上传
	ErrUploadFailed = errors.New("视频上传失败")
	// ErrVideoNotUploaded 视频还没就位，流水线无从谈起
	ErrVideoNotUploaded = errors.New("视频尚未上传完成")
	// ErrConcurrentModification 同一回答被并发驱动，放弃本次操作即可
	ErrConcurrentModification = errors.New("回答已被并发处理")
	// ErrInterviewNotInProgress 候选人不在 INTERVIEW 状态，不能作答
	ErrInterviewNotInProgress = errors.New("面试未在进行中")
)

//go:generate mockgen -source=./response.go -destination=../../mocks/response.mock.go -package=responsemocks ResponseService
type ResponseService interface {
	// Save 为一道题创建空回答记录，幂等。
	// 候选人不在 INTERVIEW 状态时返回 ErrInterviewNotInProgress
	Save(ctx context.Context, icID, questionID int64) (domain.Response, error)
	// StartUpload 宣告开始上传：CREATED/FAILED -> UPLOADING。
	// 已经在上传或已上传时是无操作
	StartUpload(ctx context.Context, responseID int64) error
	// CompleteUpload 接收视频字节并写入对象存储，带指数退避重试。
	// 重试耗尽进入 FAILED(upload)，记录保留，可再次发起
	CompleteUpload(ctx context.Context, responseID int64, data []byte, contentType string) (string, error)
	// Process 幂等地驱动所有未完成的阶段。
	// 已完成的阶段只做检查跳过，不会发出第二次外部调用
	Process(ctx context.Context, responseID int64) (domain.Response, error)
	Detail(ctx context.Context, responseID int64) (domain.Response, error)
	ListByIC(ctx context.Context, icID int64) ([]domain.Response, error)
	// SweepStale 兜底：把停留在中间状态太久的回答回退并重新驱动
	SweepStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

type responseService struct {
	repo             repository.ResponseRepository
	store            media.Store
	transcriptionSvc transcript.TranscriptionService
	annotatorSvc     transcript.AnnotatorService
	analyzerSvc      AnalyzerService
	interviewSvc     interview.Service
	candidateSvc     candidate.Service
	stageProducer    event.StageChangeProducer
	analyzedProducer event.ResponseAnalyzedProducer
	logger           *elog.Component

	// 上传重试策略参数
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func NewResponseService(
	repo repository.ResponseRepository,
	store media.Store,
	transcriptionSvc transcript.TranscriptionService,
	annotatorSvc transcript.AnnotatorService,
	analyzerSvc AnalyzerService,
	interviewSvc interview.Service,
	candidateSvc candidate.Service,
	stageProducer event.StageChangeProducer,
	analyzedProducer event.ResponseAnalyzedProducer,
) ResponseService {
	return &responseService{
		repo:             repo,
		store:            store,
		transcriptionSvc: transcriptionSvc,
		annotatorSvc:     annotatorSvc,
		analyzerSvc:      analyzerSvc,
		interviewSvc:     interviewSvc,
		candidateSvc:     candidateSvc,
		stageProducer:    stageProducer,
		analyzedProducer: analyzedProducer,
		logger:           elog.DefaultLogger,
		initialInterval:  time.Second,
		maxInterval:      4 * time.Second,
		maxRetries:       3,
	}
}

func (s *responseService) Save(ctx context.Context, icID, questionID int64) (domain.Response, error) {
	ic, err := s.candidateSvc.Detail(ctx, icID)
	if err != nil {
		return domain.Response{}, err
	}
	// 只有处在 INTERVIEW 的候选人能产生回答
	if ic.Status != candidate.StatusInterview {
		return domain.Response{}, fmt.Errorf("%w: ic %d 处于 %s", ErrInterviewNotInProgress, icID, ic.Status)
	}
	return s.repo.Create(ctx, icID, questionID)
}

func (s *responseService) StartUpload(ctx context.Context, responseID int64) error {
	resp, err := s.repo.FindByID(ctx, responseID)
	if err != nil {
		return err
	}
	switch resp.Status {
	case domain.StatusCreated, domain.StatusFailed:
		err = s.repo.UpdateStatus(ctx, resp.ID, resp.Version, domain.StatusUploading)
		if errors.Is(err, dao.ErrVersionConflict) {
			return fmt.Errorf("%w: id %d", ErrConcurrentModification, resp.ID)
		}
		if err != nil {
			return err
		}
		s.emitStage(ctx, resp.ID, resp.Status, domain.StatusUploading, domain.StageUpload, nil)
		return nil
	default:
		// 已经在上传或更靠后的阶段，无操作
		return nil
	}
}

func (s *responseService) CompleteUpload(ctx context.Context, responseID int64, data []byte, contentType string) (string, error) {
	resp, err := s.repo.FindByID(ctx, responseID)
	if err != nil {
		return "", err
	}
	if resp.VideoURL != "" && resp.Status != domain.StatusCreated &&
		resp.Status != domain.StatusUploading && resp.Status != domain.StatusFailed {
		// 已经上传成功，幂等返回
		return resp.VideoURL, nil
	}
	if resp.Status == domain.StatusCreated || resp.Status == domain.StatusFailed {
		if err = s.StartUpload(ctx, responseID); err != nil {
			return "", err
		}
		if resp, err = s.repo.FindByID(ctx, responseID); err != nil {
			return "", err
		}
	}
	key := fmt.Sprintf("interviews/%d/responses/%d", resp.InterviewCandidateID, resp.ID)
	url, putErr := s.putWithRetry(ctx, key, data, contentType)
	if putErr != nil {
		if err = s.repo.MarkFailed(ctx, resp.ID, resp.Version, domain.StageUpload); err != nil {
			s.logger.Error("标记上传失败状态出错",
				elog.Int64("responseID", resp.ID), elog.FieldErr(err))
		}
		s.emitStage(ctx, resp.ID, resp.Status, domain.StatusFailed, domain.StageUpload, putErr)
		return "", putErr
	}
	err = s.repo.MarkUploaded(ctx, resp.ID, resp.Version, url, time.Now().UnixMilli())
	if errors.Is(err, dao.ErrVersionConflict) {
		return "", fmt.Errorf("%w: id %d", ErrConcurrentModification, resp.ID)
	}
	if err != nil {
		return "", err
	}
	s.emitStage(ctx, resp.ID, resp.Status, domain.StatusUploaded, domain.StageUpload, nil)
	return url, nil
}

func (s *responseService) putWithRetry(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return "", err
	}
	for {
		url, err := s.store.Put(ctx, key, data, contentType)
		if err == nil {
			return url, nil
		}
		next, ok := strategy.Next()
		if !ok {
			return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		s.logger.Warn("上传失败，退避后重试",
			elog.String("key", key), elog.FieldErr(err))
		time.Sleep(next)
	}
}

// Process 是状态机唯一的推进入口。
// 从当前持久化状态出发，能走多远走多远，直到 ANALYZED 或出错
func (s *responseService) Process(ctx context.Context, responseID int64) (domain.Response, error) {
	for {
		resp, err := s.repo.FindByID(ctx, responseID)
		if err != nil {
			return domain.Response{}, err
		}
		switch resp.Status {
		case domain.StatusAnalyzed:
			// 终态，检查即跳过
			return resp, nil
		case domain.StatusUploaded:
			if err = s.transcribe(ctx, resp); err != nil {
				return resp, err
			}
		case domain.StatusTranscribed:
			if err = s.analyze(ctx, resp); err != nil {
				return resp, err
			}
		case domain.StatusTranscribing, domain.StatusAnalyzing:
			// 另一个调用正在处理，这一次什么都不做
			return resp, nil
		default:
			return resp, fmt.Errorf("%w: id %d 处于 %s", ErrVideoNotUploaded, resp.ID, resp.Status)
		}
	}
}

func (s *responseService) transcribe(ctx context.Context, resp domain.Response) error {
	err := s.repo.UpdateStatus(ctx, resp.ID, resp.Version, domain.StatusTranscribing)
	if errors.Is(err, dao.ErrVersionConflict) {
		return fmt.Errorf("%w: id %d", ErrConcurrentModification, resp.ID)
	}
	if err != nil {
		return err
	}
	version := resp.Version + 1
	s.emitStage(ctx, resp.ID, domain.StatusUploaded, domain.StatusTranscribing, domain.StageTranscribe, nil)

	blob, err := s.store.Get(ctx, resp.VideoURL)
	if err == nil {
		var transcription transcript.Transcription
		transcription, err = s.transcriptionSvc.Transcribe(ctx, resp.InterviewCandidateID, blob, "")
		if err == nil {
			err = s.repo.SaveTranscription(ctx, resp.ID, version,
				transcription.Text, transcription.Segments, transcription.Degraded)
			if err != nil {
				return err
			}
			s.emitStage(ctx, resp.ID, domain.StatusTranscribing, domain.StatusTranscribed, domain.StageTranscribe, nil)
			return nil
		}
	}
	// 失败回到 UPLOADED，产物一个都不写
	if revertErr := s.repo.Revert(ctx, resp.ID, version, domain.StatusUploaded); revertErr != nil {
		s.logger.Error("转写失败后回退状态出错",
			elog.Int64("responseID", resp.ID), elog.FieldErr(revertErr))
	}
	s.emitStage(ctx, resp.ID, domain.StatusTranscribing, domain.StatusUploaded, domain.StageTranscribe, err)
	return fmt.Errorf("转写阶段失败: %w", err)
}

func (s *responseService) analyze(ctx context.Context, resp domain.Response) error {
	ic, err := s.candidateSvc.Detail(ctx, resp.InterviewCandidateID)
	if err != nil {
		return err
	}
	itv, err := s.interviewSvc.ByID(ctx, ic.InterviewID)
	if err != nil {
		return err
	}
	question, err := s.findQuestion(itv, resp.QuestionID)
	if err != nil {
		return err
	}

	err = s.repo.UpdateStatus(ctx, resp.ID, resp.Version, domain.StatusAnalyzing)
	if errors.Is(err, dao.ErrVersionConflict) {
		return fmt.Errorf("%w: id %d", ErrConcurrentModification, resp.ID)
	}
	if err != nil {
		return err
	}
	version := resp.Version + 1
	s.emitStage(ctx, resp.ID, domain.StatusTranscribed, domain.StatusAnalyzing, domain.StageAnalyze, nil)

	var (
		analysis domain.Analysis
		segments = resp.Segments
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var aerr error
		analysis, aerr = s.analyzerSvc.Analyze(ctx, resp.InterviewCandidateID,
			resp.Transcription, question.QuestionText, itv.AnalysisPrompts)
		return aerr
	})
	eg.Go(func() error {
		// 标注只是锦上添花，失败了保留原分段继续走
		if len(resp.Segments) == 0 {
			return nil
		}
		annotated, aerr := s.annotatorSvc.Annotate(ctx, resp.InterviewCandidateID,
			resp.Segments, resp.Transcription, question.QuestionText, itv.AnalysisPrompts)
		if aerr != nil {
			s.logger.Warn("分段标注失败，保留原分段",
				elog.Int64("responseID", resp.ID), elog.FieldErr(aerr))
			return nil
		}
		segments = s.annotatorSvc.FillFacts(ctx, resp.InterviewCandidateID,
			annotated, ic.Candidate.LinkedinProfile, resp.Transcription)
		return nil
	})
	if err = eg.Wait(); err != nil {
		// 分析失败回到 TRANSCRIBED，不写任何残缺产物
		if revertErr := s.repo.Revert(ctx, resp.ID, version, domain.StatusTranscribed); revertErr != nil {
			s.logger.Error("分析失败后回退状态出错",
				elog.Int64("responseID", resp.ID), elog.FieldErr(revertErr))
		}
		s.emitStage(ctx, resp.ID, domain.StatusAnalyzing, domain.StatusTranscribed, domain.StageAnalyze, err)
		return err
	}

	if err = s.repo.SaveAnalysis(ctx, resp.ID, version, analysis, segments); err != nil {
		return err
	}
	s.emitStage(ctx, resp.ID, domain.StatusAnalyzing, domain.StatusAnalyzed, domain.StageAnalyze, nil)
	evt := event.ResponseAnalyzedEvent{
		ResponseID:           resp.ID,
		InterviewCandidateID: resp.InterviewCandidateID,
		QuestionID:           resp.QuestionID,
	}
	if err = s.analyzedProducer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送分析完成事件失败",
			elog.Int64("responseID", resp.ID), elog.FieldErr(err))
	}
	return nil
}

func (s *responseService) findQuestion(itv interview.Interview, questionID int64) (interview.Question, error) {
	for i := range itv.Questions {
		if itv.Questions[i].ID == questionID {
			return itv.Questions[i], nil
		}
	}
	return interview.Question{}, fmt.Errorf("面试 %d 里找不到题目 %d", itv.ID, questionID)
}

func (s *responseService) Detail(ctx context.Context, responseID int64) (domain.Response, error) {
	return s.repo.FindByID(ctx, responseID)
}

func (s *responseService) ListByIC(ctx context.Context, icID int64) ([]domain.Response, error) {
	return s.repo.FindByIC(ctx, icID)
}

func (s *responseService) SweepStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	stale, err := s.repo.FindStale(ctx, []domain.Status{
		domain.StatusUploaded,
		domain.StatusTranscribing,
		domain.StatusTranscribed,
		domain.StatusAnalyzing,
	}, olderThan, limit)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range stale {
		resp := stale[i]
		// 卡在进行中的先回退到上一个稳定状态，多半是处理途中进程没了
		switch resp.Status {
		case domain.StatusTranscribing:
			if err := s.repo.Revert(ctx, resp.ID, resp.Version, domain.StatusUploaded); err != nil {
				continue
			}
			s.emitStage(ctx, resp.ID, resp.Status, domain.StatusUploaded, domain.StageTranscribe, errors.New("处理超时"))
		case domain.StatusAnalyzing:
			if err := s.repo.Revert(ctx, resp.ID, resp.Version, domain.StatusTranscribed); err != nil {
				continue
			}
			s.emitStage(ctx, resp.ID, resp.Status, domain.StatusTranscribed, domain.StageAnalyze, errors.New("处理超时"))
		}
		if _, err := s.Process(ctx, resp.ID); err != nil {
			s.logger.Warn("兜底重驱动失败",
				elog.Int64("responseID", resp.ID), elog.FieldErr(err))
			continue
		}
		count++
	}
	return count, nil
}

func (s *responseService) emitStage(ctx context.Context, responseID int64, from, to domain.Status, stage string, procErr error) {
	stageTransitions.WithLabelValues(from.String(), to.String()).Inc()
	evt := event.StageChangeEvent{
		ResponseID: responseID,
		From:       from.String(),
		To:         to.String(),
		Stage:      stage,
		Occurred:   time.Now().UnixMilli(),
	}
	if procErr != nil {
		evt.Error = procErr.Error()
	}
	if err := s.stageProducer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送阶段事件失败",
			elog.Int64("responseID", responseID),
			elog.String("to", to.String()),
			elog.FieldErr(err))
	}
}
