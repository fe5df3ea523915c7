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

package ioc

import (
	"github.com/ecodeclub/hirevue/internal/notification"
	"github.com/gotomicro/ego/core/econf"
)

func initEmailService() notification.EmailService {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("directmail", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := notification.NewAliyunEmailService(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}

func initNotificationConfig() notification.Config {
	var cfg notification.Config
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
