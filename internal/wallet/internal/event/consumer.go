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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet/internal/event/cache"
	"github.com/ecodeclub/subpay/internal/wallet/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type RechargeEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	cache    cache.RechargeEventCache
	logger   *elog.Component
}

func NewRechargeEventConsumer(svc service.Service, q mq.MQ, c cache.RechargeEventCache) (*RechargeEventConsumer, error) {
	groupID := "wallet"
	consumer, err := q.Consumer(rechargeEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &RechargeEventConsumer{
		svc:      svc,
		consumer: consumer,
		cache:    c,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RechargeEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费充值事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RechargeEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt RechargeEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	ok, err := c.cache.SetNXEventKey(ctx, evt.Key)
	if err != nil {
		c.logger.Warn("充值事件去重缓存不可用",
			elog.String("key", evt.Key),
			elog.FieldErr(err))
	} else if !ok {
		c.logger.Warn("重复的充值事件", elog.String("key", evt.Key))
		return nil
	}

	err = c.svc.Recharge(ctx, domain.Account{
		Uid: evt.Uid,
		Logs: []domain.AccountLog{
			{
				BizSN:        evt.Key,
				ChangeAmount: evt.Amount,
				Desc:         evt.Desc,
			},
		},
	})
	if err != nil && !errors.Is(err, service.ErrDuplicatedAccountLog) {
		// 释放去重键, 等待重投
		_, _ = c.cache.DelEventKey(ctx, evt.Key)
		c.logger.Error("充值入账失败",
			elog.FieldErr(err),
			elog.Any("事件", evt),
		)
	}
	return nil
}

func (c *RechargeEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
