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
	"time"

	"github.com/ecodeclub/ecache"
)

// RechargeEventCache 消费端以事件 Key 做的一层轻量去重, 硬保证还是靠流水表的唯一索引
type RechargeEventCache interface {
	SetNXEventKey(ctx context.Context, key string) (bool, error)
	DelEventKey(ctx context.Context, key string) (int64, error)
}

type rechargeEventECache struct {
	ec ecache.Cache
}

func NewRechargeEventECache(ec ecache.Cache) RechargeEventCache {
	return &rechargeEventECache{
		ec: &ecache.NamespaceCache{
			Namespace: "wallet:",
			C:         ec,
		},
	}
}

func (q *rechargeEventECache) SetNXEventKey(ctx context.Context, key string) (bool, error) {
	return q.ec.SetNX(ctx, q.eventKey(key), 1, 24*time.Hour)
}

func (q *rechargeEventECache) DelEventKey(ctx context.Context, key string) (int64, error) {
	return q.ec.Delete(ctx, q.eventKey(key))
}

func (q *rechargeEventECache) eventKey(key string) string {
	return "recharge:" + key
}
