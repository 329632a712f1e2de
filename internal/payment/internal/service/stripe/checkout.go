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
	"time"

	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// CheckoutPaymentService 跳转 Stripe 收银台的支付方式, 买家在 Stripe 托管页面完成支付
type CheckoutPaymentService struct {
	basePaymentService
	successURL string
	cancelURL  string
}

func NewCheckoutPaymentService(cl *client.API, fx fxrate.Service,
	keyGen snowflake.Generator, cfg Config) *CheckoutPaymentService {
	return &CheckoutPaymentService{
		basePaymentService: basePaymentService{
			client:   cl,
			fx:       fx,
			keyGen:   keyGen,
			currency: strings.ToUpper(cfg.SettlementCurrency),
			l:        elog.DefaultLogger,
		},
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (c *CheckoutPaymentService) Name() domain.ChannelType {
	return domain.ChannelTypeStripeCheckout
}

func (c *CheckoutPaymentService) Desc() string {
	return "Stripe收银台"
}

func (c *CheckoutPaymentService) Prepay(ctx context.Context,
	pmt domain.Payment, record domain.PaymentRecord) (domain.PaymentRecord, error) {
	if record.Channel != domain.ChannelTypeStripeCheckout || record.Amount <= 0 {
		return domain.PaymentRecord{}, errors.New("缺少Stripe渠道支付金额信息")
	}

	amount, err := c.channelAmount(ctx, record)
	if err != nil {
		return domain.PaymentRecord{}, err
	}
	key, err := c.idempotencyKey(record.Channel)
	if err != nil {
		return domain.PaymentRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		ClientReferenceID: stripego.String(pmt.SN),
		SuccessURL:        stripego.String(c.successURL),
		CancelURL:         stripego.String(c.cancelURL),
		ExpiresAt:         stripego.Int64(time.UnixMilli(pmt.Deadline).Add(checkoutExpireBuffer).Unix()),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripego.String(strings.ToLower(c.currency)),
					UnitAmount: stripego.Int64(amount),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(pmt.OrderDescription),
					},
				},
				Quantity: stripego.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("out_trade_no", pmt.SN)
	params.SetIdempotencyKey(key)

	sess, err := c.client.CheckoutSessions.New(params)
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("创建Stripe Checkout会话失败: %w", err)
	}

	record.PaymentNO3rd = sess.ID
	record.ChannelAmount = amount
	record.ChannelCurrency = c.currency
	record.Status = domain.PaymentStatusProcessing
	record.Directive = domain.Directive{
		Type:        domain.DirectiveTypeRedirectURL,
		RedirectURL: sess.URL,
	}
	return record, nil
}

// QueryPayment 主动向 Stripe 查询会话, 未到终态的按超时关闭处理
func (c *CheckoutPaymentService) QueryPayment(ctx context.Context,
	pmt domain.Payment, record domain.PaymentRecord) (domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := c.client.CheckoutSessions.Get(record.PaymentNO3rd, params)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("查询Stripe Checkout会话失败: %w", err)
	}

	var status domain.PaymentStatus
	switch {
	case sess.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid:
		status = domain.PaymentStatusPaidSuccess
	case sess.Status == stripego.CheckoutSessionStatusExpired:
		status = domain.PaymentStatusPaidFailed
	default:
		// 主动同步时不再等待, 而是直接标记为超时
		status = domain.PaymentStatusTimeoutClosed
	}
	res := CallbackResult{
		TradeNo:     pmt.SN,
		ProviderRef: sess.ID,
		Channel:     c.Name(),
		Status:      status,
		Amount:      sess.AmountTotal,
		Currency:    strings.ToUpper(string(sess.Currency)),
	}
	return res.Payment(), nil
}
