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
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/subpay/internal/order"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/recon/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

// Service 订单与支付之间的对账
// 订单长时间停在支付中只有两种原因: 支付事件丢了, 或者支付本身悬而未决
// 前者补发事件, 后者把支付和订单一起置为失败
type Service interface {
	Reconcile(ctx context.Context, offset, limit int, ctime int64) error
}

type service struct {
	orderSvc        order.Service
	paymentSvc      payment.Service
	producer        event.PaymentEventProducer
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	l               *elog.Component
}

func NewService(orderSvc order.Service, paymentSvc payment.Service,
	producer event.PaymentEventProducer,
	initialInterval, maxInterval time.Duration, maxRetries int32) Service {
	return &service{
		orderSvc:        orderSvc,
		paymentSvc:      paymentSvc,
		producer:        producer,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
		l:               elog.DefaultLogger,
	}
}

func (s *service) Reconcile(ctx context.Context, offset, limit int, ctime int64) error {
	for {
		orders, total, err := s.orderSvc.ListExpiredOrders(ctx, offset, limit, ctime)
		if err != nil {
			return fmt.Errorf("查找超时未终态订单失败: %w", err)
		}

		for _, o := range orders {
			if err2 := s.reconcileOrder(ctx, o); err2 != nil {
				// 单笔失败不中断本轮, 留给下一轮重试
				s.l.Warn("对账订单失败",
					elog.FieldErr(err2),
					elog.String("order_sn", o.SN))
			}
		}

		if len(orders) < limit {
			return nil
		}

		if int64(limit) >= total {
			return nil
		}
	}
}

func (s *service) reconcileOrder(ctx context.Context, o order.Order) error {
	if o.PaymentID == 0 {
		// 从未创建过支付的订单由关单任务直接关闭
		return nil
	}

	pmt, err := s.paymentSvc.FindPaymentByID(ctx, o.PaymentID)
	if err != nil {
		return fmt.Errorf("通过超时订单查找支付失败: %w", err)
	}

	switch pmt.Status {
	case payment.StatusPaidSuccess, payment.StatusPaidFailed, payment.StatusTimeoutClosed:
		// 支付已有结论而订单还在等, 说明支付事件丢了, 补发一遍
		// 订单侧结算是幂等的, 多发一次没有副作用
		return s.resendPaymentEvent(ctx, pmt)
	case payment.StatusUnpaid, payment.StatusProcessing:
		return s.failPaymentAndOrder(ctx, o, pmt)
	default:
		// 转入退款的支付走人工流程, 对账不碰
		s.l.Warn("跳过退款中的支付",
			elog.String("order_sn", o.SN),
			elog.String("payment_sn", pmt.SN))
		return nil
	}
}

// resendPaymentEvent 带退避重试, 连这里都发不出去就等下一轮对账
func (s *service) resendPaymentEvent(ctx context.Context, pmt payment.Payment) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return err
	}

	evt := event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		PayerID: pmt.PayerID,
		Status:  pmt.Status.ToUint8(),
	}
	for {
		err = s.producer.Produce(ctx, evt)
		if err == nil {
			return nil
		}
		d, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("补发支付事件超过最大重试次数: %w", err)
		}
		time.Sleep(d)
	}
}

func (s *service) failPaymentAndOrder(ctx context.Context, o order.Order, pmt payment.Payment) error {
	// 先置支付失败, 支付侧会顺带发终态事件, 事件丢失时订单这边再兜一层
	// 两边都是幂等操作, 重复执行无副作用
	if err := s.paymentSvc.SetPaymentStatusPaidFailed(ctx, pmt); err != nil {
		return fmt.Errorf("超时支付置为失败出错: %w", err)
	}
	if err := s.orderSvc.FailOrderBySN(ctx, o.SN); err != nil {
		return fmt.Errorf("超时订单置为失败出错: %w", err)
	}
	return nil
}
