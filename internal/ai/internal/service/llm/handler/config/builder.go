package config

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ecodeclub/hirevue/internal/ai/internal/domain"
	"github.com/ecodeclub/hirevue/internal/ai/internal/repository"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 根据 biz 加载配置，并做输入长度校验
type HandlerBuilder struct {
	repo repository.ConfigRepository
}

var _ handler.Builder = &HandlerBuilder{}

func NewBuilder(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{repo: repo}
}

func (b *HandlerBuilder) Name() string {
	return "config"
}

func (b *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, err := b.repo.GetConfig(ctx, req.Biz)
		if err != nil {
			return domain.LLMResponse{}, fmt.Errorf("加载 biz=%s 的配置失败: %w", req.Biz, err)
		}
		req.Config = cfg
		if cfg.MaxInput > 0 {
			var total int
			for _, in := range req.Input {
				total += utf8.RuneCountInString(in)
			}
			if total > cfg.MaxInput {
				return domain.LLMResponse{}, fmt.Errorf("输入太长，最长不超过 %d，现有长度 %d", cfg.MaxInput, total)
			}
		}
		return next.Handle(ctx, req)
	})
}
