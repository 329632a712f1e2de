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
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/notification/internal/domain"
	"github.com/ecodeclub/subpay/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// OrderSettledEventConsumer 消费结算事件给买家和运营发通知
// 事件由订单侧保证只在首次结算时发出, 这里不做去重
type OrderSettledEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderSettledEventConsumer(svc service.Service, q mq.MQ) (*OrderSettledEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(orderSettledEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderSettledEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderSettledEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单结算事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *OrderSettledEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderSettledEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	return c.svc.NotifySettled(ctx, domain.Settlement{
		OrderSN:    evt.OrderSN,
		BuyerID:    evt.BuyerID,
		Amount:     evt.Amount,
		PlanTitles: evt.PlanTitles,
		BuyerEmail: evt.BuyerEmail,
		BuyerPhone: evt.BuyerPhone,
	})
}

func (c *OrderSettledEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
