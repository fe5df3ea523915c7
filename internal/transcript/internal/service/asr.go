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
	"bytes"
	"context"

	openai "github.com/sashabaranov/go-openai"
)

//go:generate mockgen -source=./asr.go -destination=../../mocks/asr.mock.go -package=transcriptmocks SpeechClient
type SpeechClient interface {
	// Transcribe 把音视频内容转成文字
	Transcribe(ctx context.Context, media []byte, language string) (string, error)
}

// WhisperClient 走 whisper 接口的语音转写
type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apikey, baseURL string) *WhisperClient {
	cfg := openai.DefaultConfig(apikey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &WhisperClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (w *WhisperClient) Transcribe(ctx context.Context, media []byte, language string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model: openai.Whisper1,
		// FilePath 只用来推断格式
		FilePath: "response.webm",
		Reader:   bytes.NewReader(media),
		Language: language,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
