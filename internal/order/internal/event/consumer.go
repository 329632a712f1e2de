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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/service"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 消费支付终态事件推进订单状态
// 结算以数据库状态为准, 重复投递不依赖额外的去重缓存
type PaymentEventConsumer struct {
	svc      service.Service
	producer OrderSettledEventProducer
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, producer OrderSettledEventProducer, q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(paymentEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		producer: producer,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	switch evt.Status {
	case payment.StatusPaidSuccess.ToUint8():
		return c.settle(ctx, evt)
	case payment.StatusPaidFailed.ToUint8(), payment.StatusTimeoutClosed.ToUint8():
		return c.fail(ctx, evt)
	default:
		c.logger.Warn("忽略非终态支付事件",
			elog.String("order_sn", evt.OrderSN),
			elog.Any("status", evt.Status))
		return nil
	}
}

func (c *PaymentEventConsumer) settle(ctx context.Context, evt PaymentEvent) error {
	outcome, order, err := c.svc.SettleOrderBySN(ctx, evt.OrderSN)
	if err != nil {
		return fmt.Errorf("结算订单失败: %w, sn=%s", err, evt.OrderSN)
	}
	switch outcome {
	case domain.OutcomeSettled:
		evt := OrderSettledEvent{
			OrderSN: order.SN,
			BuyerID: order.BuyerID,
			Amount:  order.RealTotalAmt,
			PlanTitles: slice.Map(order.Items, func(idx int, src domain.OrderItem) string {
				return src.PlanTitle
			}),
			BuyerEmail: order.ReceiptEmail,
			BuyerPhone: order.ReceiptPhone,
		}
		if er := c.producer.Produce(ctx, evt); er != nil {
			// 订单已结算成功, 丢失的结算事件靠对账任务补发
			c.logger.Error("发送订单结算事件失败",
				elog.FieldErr(er),
				elog.String("order_sn", order.SN))
		}
		return nil
	case domain.OutcomeAlreadyPaid:
		c.logger.Info("订单已结算, 忽略重复支付通知", elog.String("order_sn", evt.OrderSN))
		return nil
	case domain.OutcomeNotFound:
		return fmt.Errorf("%w: sn=%s", service.ErrOrderNotFound, evt.OrderSN)
	default:
		// 钱到账了订单却已关闭, 只能报警人工处理
		c.logger.Error("已关闭订单收到支付成功通知",
			elog.String("order_sn", evt.OrderSN),
			elog.Int64("buyer_id", evt.PayerID))
		return nil
	}
}

func (c *PaymentEventConsumer) fail(ctx context.Context, evt PaymentEvent) error {
	err := c.svc.FailOrderBySN(ctx, evt.OrderSN)
	if err != nil {
		return fmt.Errorf("标记订单支付失败出错: %w, sn=%s", err, evt.OrderSN)
	}
	return nil
}

func (c *PaymentEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
