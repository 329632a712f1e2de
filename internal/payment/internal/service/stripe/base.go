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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stripe/stripe-go/v79/client"
)

const (
	createTimeout = 10 * time.Second
	queryTimeout  = 5 * time.Second
	// minChargeAmount Stripe 对大多数结算货币要求的最低收款额, 结算货币最小单位
	minChargeAmount = 50
	// checkoutExpireBuffer Stripe 要求会话至少存活30分钟, 在本地截止时间上加一点缓冲
	checkoutExpireBuffer = 5 * time.Minute
)

var (
	ErrAmountBelowMinimum = errors.New("支付金额低于渠道最低限额")
)

// Config Stripe 渠道配置, 两种支付方式共用
type Config struct {
	SettlementCurrency string
	SuccessURL         string
	CancelURL          string
}

type basePaymentService struct {
	client   *client.API
	fx       fxrate.Service
	keyGen   snowflake.Generator
	currency string
	l        *elog.Component
}

// channelAmount 把展示货币金额换算成结算货币, 低于渠道最低限额时在发起远程调用前拒绝
func (b *basePaymentService) channelAmount(ctx context.Context, record domain.PaymentRecord) (int64, error) {
	amount, err := b.fx.Convert(ctx, domain.DefaultCurrency, b.currency, record.Amount)
	if err != nil {
		return 0, fmt.Errorf("换算渠道结算金额失败: %w", err)
	}
	if amount < minChargeAmount {
		return 0, fmt.Errorf("%w: %d %s", ErrAmountBelowMinimum, amount, b.currency)
	}
	return amount, nil
}

// idempotencyKey 每次对 Stripe 的创建请求都带幂等键, 渠道号作为业务位
func (b *basePaymentService) idempotencyKey(channel domain.ChannelType) (string, error) {
	id, err := b.keyGen.Generate(uint(channel.ToUint8()))
	if err != nil {
		return "", fmt.Errorf("生成幂等键失败: %w", err)
	}
	return id.String(), nil
}
