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

package ai

import (
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/log"
	openaihdl "github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/platform/openai"
	zhipuhdl "github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/hirevue/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// InitRootHandler 组装调用链：config -> log -> record -> platform
func InitRootHandler(
	configBuilder *config.HandlerBuilder,
	logBuilder *log.HandlerBuilder,
	recordBuilder *record.HandlerBuilder,
) handler.Handler {
	platform := initPlatformHandler()
	return configBuilder.Next(logBuilder.Next(recordBuilder.Next(platform)))
}

// initPlatformHandler 按配置选择出口平台
func initPlatformHandler() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		OpenAI   struct {
			BaseURL string `yaml:"baseURL"`
			APIKey  string `yaml:"apikey"`
		} `yaml:"openai"`
		Zhipu struct {
			APIKey string `yaml:"apikey"`
		} `yaml:"zhipu"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "zhipu":
		h, err := zhipuhdl.NewHandler(cfg.Zhipu.APIKey)
		if err != nil {
			panic(err)
		}
		return h
	default:
		return openaihdl.NewHandler(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey)
	}
}
