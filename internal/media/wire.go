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

package media

import (
	"github.com/ecodeclub/hirevue/internal/media/internal/service"
	"github.com/ecodeclub/hirevue/internal/media/internal/web"
	"github.com/gotomicro/ego/core/econf"
)

// InitModule 这里配置项不多，就不上 wire 了
func InitModule() *Module {
	type Config struct {
		SecretID  string `yaml:"secretID"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appID"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		BaseURL   string `yaml:"baseURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return &Module{
		Store: service.NewHTTPStore(cfg.BaseURL),
		Hdl: web.NewHandler(cfg.SecretID, cfg.SecretKey,
			cfg.AppID, cfg.Bucket, cfg.Region),
	}
}
