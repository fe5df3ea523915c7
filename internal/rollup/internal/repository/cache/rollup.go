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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirevue/internal/rollup/internal/domain"
	"github.com/pkg/errors"
)

var ErrRollupNotFound = errors.New("类别汇总没找到")

// 类别汇总的输入在该类别全部分析完成后不再变化，
// 缓存只是省一次大模型调用，过期重算无妨
const expiration = 24 * time.Hour

type RollupCache interface {
	GetCategory(ctx context.Context, icID int64, category string) (domain.CategoryRollup, error)
	SetCategory(ctx context.Context, icID int64, rollup domain.CategoryRollup) error
}

type rollupECache struct {
	ec ecache.Cache
}

func NewRollupECache(ec ecache.Cache) RollupCache {
	return &rollupECache{
		ec: &ecache.NamespaceCache{
			Namespace: "rollup:",
			C:         ec,
		},
	}
}

func (c *rollupECache) GetCategory(ctx context.Context, icID int64, category string) (domain.CategoryRollup, error) {
	val := c.ec.Get(ctx, c.categoryKey(icID, category))
	if val.KeyNotFound() {
		return domain.CategoryRollup{}, ErrRollupNotFound
	}
	if val.Err != nil {
		return domain.CategoryRollup{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var rollup domain.CategoryRollup
	err := json.Unmarshal([]byte(val.Val.(string)), &rollup)
	if err != nil {
		return domain.CategoryRollup{}, errors.Wrap(err, "反序列化类别汇总失败")
	}
	return rollup, nil
}

func (c *rollupECache) SetCategory(ctx context.Context, icID int64, rollup domain.CategoryRollup) error {
	data, err := json.Marshal(rollup)
	if err != nil {
		return errors.Wrap(err, "序列化类别汇总失败")
	}
	return c.ec.Set(ctx, c.categoryKey(icID, rollup.Category), string(data), expiration)
}

func (c *rollupECache) categoryKey(icID int64, category string) string {
	return fmt.Sprintf("category:%d:%s", icID, category)
}
