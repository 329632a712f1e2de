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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
)

var (
	errVerificationFailed = errors.New("验签失败")
	errUnhandledEvent     = errors.New("未注册的事件类型")
	errIgnoredEvent       = errors.New("忽略的事件状态")
	errMissingTradeNo     = errors.New("事件缺少交易单号")
)

// IsVerificationFailure 验签失败要回 400, 让 Stripe 重试
func IsVerificationFailure(err error) bool {
	return errors.Is(err, errVerificationFailed)
}

// IsIgnoredCallback 不需要处理的事件直接确认, 不算错误
func IsIgnoredCallback(err error) bool {
	return errors.Is(err, errUnhandledEvent) || errors.Is(err, errIgnoredEvent)
}

// CallbackResult Stripe 各类事件解析后的统一回调结果
type CallbackResult struct {
	// TradeNo 本地支付单的序列号
	TradeNo string
	// ProviderRef Stripe 侧的会话或支付意向ID
	ProviderRef string
	Channel     domain.ChannelType
	Status      domain.PaymentStatus
	// Amount 渠道结算货币的金额
	Amount   int64
	Currency string
}

// Payment 转成回调形态的支付对象, 只携带本次事件涉及的渠道记录
func (r CallbackResult) Payment() domain.Payment {
	var paidAt int64
	if r.Status == domain.PaymentStatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	return domain.Payment{
		SN:     r.TradeNo,
		PaidAt: paidAt,
		Status: r.Status,
		Records: []domain.PaymentRecord{
			{
				PaymentNO3rd:    r.ProviderRef,
				Channel:         r.Channel,
				ChannelAmount:   r.Amount,
				ChannelCurrency: r.Currency,
				PaidAt:          paidAt,
				Status:          r.Status,
			},
		},
	}
}

type eventParser func(raw json.RawMessage) (CallbackResult, error)

// WebhookService 验签 Stripe 回调并把事件解析成统一的回调结果,
// 新增支付方式只需要注册解析器, 分发逻辑不变
type WebhookService struct {
	verifier WebhookVerifier
	parsers  map[string]eventParser
}

func NewWebhookService(verifier WebhookVerifier) *WebhookService {
	s := &WebhookService{verifier: verifier}
	s.parsers = map[string]eventParser{
		"checkout.session.completed":               s.checkoutParser(domain.PaymentStatusPaidSuccess),
		"checkout.session.async_payment_succeeded": s.checkoutParser(domain.PaymentStatusPaidSuccess),
		"checkout.session.async_payment_failed":    s.checkoutParser(domain.PaymentStatusPaidFailed),
		"checkout.session.expired":                 s.checkoutParser(domain.PaymentStatusTimeoutClosed),
		"payment_intent.succeeded":                 s.intentParser(domain.PaymentStatusPaidSuccess),
		"payment_intent.payment_failed":            s.intentParser(domain.PaymentStatusPaidFailed),
		"payment_intent.canceled":                  s.intentParser(domain.PaymentStatusPaidFailed),
	}
	return s
}

func (s *WebhookService) VerifyAndParse(payload []byte, sigHeader string) (CallbackResult, error) {
	event, err := s.verifier.ConstructEvent(payload, sigHeader)
	if err != nil {
		return CallbackResult{}, fmt.Errorf("%w: %w", errVerificationFailed, err)
	}
	parser, ok := s.parsers[string(event.Type)]
	if !ok {
		return CallbackResult{}, fmt.Errorf("%w: %s", errUnhandledEvent, event.Type)
	}
	res, err := parser(event.Data.Raw)
	if err != nil {
		return CallbackResult{}, err
	}
	if res.TradeNo == "" {
		return CallbackResult{}, fmt.Errorf("%w: %s", errMissingTradeNo, event.Type)
	}
	return res, nil
}

// checkoutSession 只解出需要的字段, 避免绑死 Stripe 的完整对象结构
type checkoutSession struct {
	ID                string            `json:"id"`
	ClientReferenceID string            `json:"client_reference_id"`
	PaymentStatus     string            `json:"payment_status"`
	AmountTotal       int64             `json:"amount_total"`
	Currency          string            `json:"currency"`
	Metadata          map[string]string `json:"metadata"`
}

func (c checkoutSession) tradeNo() string {
	if c.ClientReferenceID != "" {
		return c.ClientReferenceID
	}
	if no := c.Metadata["out_trade_no"]; no != "" {
		return no
	}
	// 历史版本的会话把交易单号放在 order_id 里
	return c.Metadata["order_id"]
}

func (s *WebhookService) checkoutParser(status domain.PaymentStatus) eventParser {
	return func(raw json.RawMessage) (CallbackResult, error) {
		var sess checkoutSession
		if err := json.Unmarshal(raw, &sess); err != nil {
			return CallbackResult{}, fmt.Errorf("解析Checkout会话失败: %w", err)
		}
		// completed 但走的是异步扣款方式时钱还没到账, 等 async_payment_succeeded
		if status == domain.PaymentStatusPaidSuccess && sess.PaymentStatus != "paid" {
			return CallbackResult{}, fmt.Errorf("%w: payment_status=%s", errIgnoredEvent, sess.PaymentStatus)
		}
		return CallbackResult{
			TradeNo:     sess.tradeNo(),
			ProviderRef: sess.ID,
			Channel:     domain.ChannelTypeStripeCheckout,
			Status:      status,
			Amount:      sess.AmountTotal,
			Currency:    strings.ToUpper(sess.Currency),
		}, nil
	}
}

type paymentIntent struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

func (p paymentIntent) tradeNo() string {
	if no := p.Metadata["out_trade_no"]; no != "" {
		return no
	}
	return p.Metadata["order_id"]
}

func (s *WebhookService) intentParser(status domain.PaymentStatus) eventParser {
	return func(raw json.RawMessage) (CallbackResult, error) {
		var pi paymentIntent
		if err := json.Unmarshal(raw, &pi); err != nil {
			return CallbackResult{}, fmt.Errorf("解析支付意向失败: %w", err)
		}
		return CallbackResult{
			TradeNo:     pi.tradeNo(),
			ProviderRef: pi.ID,
			Channel:     domain.ChannelTypeStripeIntent,
			Status:      status,
			Amount:      pi.Amount,
			Currency:    strings.ToUpper(pi.Currency),
		}, nil
	}
}
