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
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -source=./store.go -destination=../../mocks/store.mock.go -package=mediamocks Store
type Store interface {
	// Put 上传对象，返回可拉取的 URL
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Get 按 URL 拉回对象内容
	Get(ctx context.Context, url string) ([]byte, error)
}

// httpStore 直连存储桶 HTTP 端点的实现。
// 浏览器侧走 STS 直传，服务端只需要简单的读写能力。
type httpStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string) Store {
	return &httpStore{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: time.Minute,
		},
	}
}

func (s *httpStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("上传对象失败: key=%s, http状态码=%d", key, resp.StatusCode)
	}
	return url, nil
}

func (s *httpStore) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("拉取对象失败: url=%s, http状态码=%d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
