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
	"strings"

	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentPaymentService 嵌入式支付方式, 前端拿 client_secret 用 Stripe.js 完成确认
type IntentPaymentService struct {
	basePaymentService
}

func NewIntentPaymentService(cl *client.API, fx fxrate.Service,
	keyGen snowflake.Generator, cfg Config) *IntentPaymentService {
	return &IntentPaymentService{
		basePaymentService: basePaymentService{
			client:   cl,
			fx:       fx,
			keyGen:   keyGen,
			currency: strings.ToUpper(cfg.SettlementCurrency),
			l:        elog.DefaultLogger,
		},
	}
}

func (i *IntentPaymentService) Name() domain.ChannelType {
	return domain.ChannelTypeStripeIntent
}

func (i *IntentPaymentService) Desc() string {
	return "Stripe支付"
}

func (i *IntentPaymentService) Prepay(ctx context.Context,
	pmt domain.Payment, record domain.PaymentRecord) (domain.PaymentRecord, error) {
	if record.Channel != domain.ChannelTypeStripeIntent || record.Amount <= 0 {
		return domain.PaymentRecord{}, errors.New("缺少Stripe渠道支付金额信息")
	}

	amount, err := i.channelAmount(ctx, record)
	if err != nil {
		return domain.PaymentRecord{}, err
	}
	key, err := i.idempotencyKey(record.Channel)
	if err != nil {
		return domain.PaymentRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	params := &stripego.PaymentIntentParams{
		Amount:      stripego.Int64(amount),
		Currency:    stripego.String(strings.ToLower(i.currency)),
		Description: stripego.String(pmt.OrderDescription),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("out_trade_no", pmt.SN)
	params.SetIdempotencyKey(key)

	pi, err := i.client.PaymentIntents.New(params)
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("创建Stripe支付意向失败: %w", err)
	}

	record.PaymentNO3rd = pi.ID
	record.ChannelAmount = amount
	record.ChannelCurrency = i.currency
	record.Status = domain.PaymentStatusProcessing
	record.Directive = domain.Directive{
		Type:         domain.DirectiveTypeClientSecret,
		ClientSecret: pi.ClientSecret,
	}
	return record, nil
}

// QueryPayment 主动向 Stripe 查询支付意向, 未到终态的按超时关闭处理
func (i *IntentPaymentService) QueryPayment(ctx context.Context,
	pmt domain.Payment, record domain.PaymentRecord) (domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	params := &stripego.PaymentIntentParams{}
	params.Context = ctx
	pi, err := i.client.PaymentIntents.Get(record.PaymentNO3rd, params)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("查询Stripe支付意向失败: %w", err)
	}

	var status domain.PaymentStatus
	switch pi.Status {
	case stripego.PaymentIntentStatusSucceeded:
		status = domain.PaymentStatusPaidSuccess
	case stripego.PaymentIntentStatusCanceled:
		status = domain.PaymentStatusPaidFailed
	default:
		// 主动同步时不再等待, 而是直接标记为超时
		status = domain.PaymentStatusTimeoutClosed
	}
	res := CallbackResult{
		TradeNo:     pmt.SN,
		ProviderRef: pi.ID,
		Channel:     i.Name(),
		Status:      status,
		Amount:      pi.Amount,
		Currency:    strings.ToUpper(string(pi.Currency)),
	}
	return res.Payment(), nil
}
