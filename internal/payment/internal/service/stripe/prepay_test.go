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

package stripe

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prepay 的前置校验必须在发起远程调用之前挡掉请求,
// 所以这里故意传 nil 客户端, 一旦触碰 Stripe API 测试会直接 panic
func TestPrepay_RejectsBeforeRemoteCall(t *testing.T) {
	keyGen, err := snowflake.NewMultiBizSnowFlake(0, 8)
	require.NoError(t, err)
	cfg := Config{
		SettlementCurrency: "usd",
		SuccessURL:         "https://panel.example.com/pay/success",
		CancelURL:          "https://panel.example.com/pay/cancel",
	}
	noRate := fxrate.NewService(nil)
	lowRate := fxrate.NewService(nil, fxrate.NewFixedRateSource(map[string]decimal.Decimal{
		"CNY/USD": decimal.NewFromFloat(0.1382),
	}))

	pmt := domain.Payment{
		SN:               "PaymentSN-prepay-1",
		OrderDescription: "月度会员",
		Deadline:         time.Now().Add(30 * time.Minute).UnixMilli(),
	}

	testCases := []struct {
		name      string
		fx        fxrate.Service
		record    domain.PaymentRecord
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "汇率源全部失效",
			fx:   noRate,
			record: domain.PaymentRecord{
				Amount: 9990,
			},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, fxrate.ErrRateUnavailable)
			},
		},
		{
			// 300分按固定汇率是41美分, 低于 Stripe 的最低收款额
			name: "换算后低于渠道最低限额",
			fx:   lowRate,
			record: domain.PaymentRecord{
				Amount: 300,
			},
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrAmountBelowMinimum)
			},
		},
		{
			name: "金额缺失",
			fx:   lowRate,
			record: domain.PaymentRecord{
				Amount: 0,
			},
			assertErr: assert.Error,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run("Checkout_"+tc.name, func(t *testing.T) {
			svc := NewCheckoutPaymentService(nil, tc.fx, keyGen, cfg)
			record := tc.record
			record.Channel = domain.ChannelTypeStripeCheckout
			res, err := svc.Prepay(context.Background(), pmt, record)
			tc.assertErr(t, err)
			assert.Zero(t, res)
		})
		t.Run("Intent_"+tc.name, func(t *testing.T) {
			svc := NewIntentPaymentService(nil, tc.fx, keyGen, cfg)
			record := tc.record
			record.Channel = domain.ChannelTypeStripeIntent
			res, err := svc.Prepay(context.Background(), pmt, record)
			tc.assertErr(t, err)
			assert.Zero(t, res)
		})
	}
}
