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

package epay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/shopspring/decimal"
)

const tradeStatusSuccess = "TRADE_SUCCESS"

var (
	errVerificationFailed = errors.New("验签失败")
	errIgnoredCallback    = errors.New("忽略的通知状态")
	errMissingTradeNo     = errors.New("通知缺少交易单号")
)

// IsVerificationFailure 验签失败要回 fail, 让网关重发通知
func IsVerificationFailure(err error) bool {
	return errors.Is(err, errVerificationFailed)
}

// IsIgnoredCallback 非成功状态的通知直接确认, 不算错误
func IsIgnoredCallback(err error) bool {
	return errors.Is(err, errIgnoredCallback)
}

// Config 易支付聚合网关配置
type Config struct {
	// Gateway 网关地址, 比如 https://pay.example.com
	Gateway string
	// PID 商户号
	PID string
	// Key 商户密钥, 参与签名
	Key string
	// PayType 网关侧的收款方式, alipay 或 wxpay
	PayType   string
	NotifyURL string
	ReturnURL string
}

// PaymentService 易支付聚合渠道, 跳转网关收银台, 人民币直接结算
type PaymentService struct {
	cfg Config
}

func NewPaymentService(cfg Config) *PaymentService {
	return &PaymentService{cfg: cfg}
}

func (p *PaymentService) Name() domain.ChannelType {
	return domain.ChannelTypeEpay
}

func (p *PaymentService) Desc() string {
	return "聚合支付"
}

// Prepay 本地拼出带签名的跳转地址, 不需要请求网关,
// 网关侧单号在异步通知里才会给到
func (p *PaymentService) Prepay(_ context.Context,
	pmt domain.Payment, record domain.PaymentRecord) (domain.PaymentRecord, error) {
	if record.Channel != domain.ChannelTypeEpay || record.Amount <= 0 {
		return domain.PaymentRecord{}, errors.New("缺少易支付渠道支付金额信息")
	}

	params := map[string]string{
		"pid":          p.cfg.PID,
		"type":         p.cfg.PayType,
		"out_trade_no": pmt.SN,
		"notify_url":   p.cfg.NotifyURL,
		"return_url":   p.cfg.ReturnURL,
		"name":         pmt.OrderDescription,
		"money":        yuan(record.Amount),
	}
	params["sign"] = sign(params, p.cfg.Key)
	params["sign_type"] = signType

	redirect, err := url.Parse(p.cfg.Gateway)
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("解析易支付网关地址失败: %w", err)
	}
	redirect = redirect.JoinPath("submit.php")
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	redirect.RawQuery = query.Encode()

	record.Status = domain.PaymentStatusProcessing
	record.Directive = domain.Directive{
		Type:        domain.DirectiveTypeRedirectURL,
		RedirectURL: redirect.String(),
	}
	return record, nil
}

// CallbackResult 易支付异步通知解析后的结果
type CallbackResult struct {
	// TradeNo 本地支付单的序列号
	TradeNo string
	// ProviderRef 网关侧的交易单号
	ProviderRef string
	Status      domain.PaymentStatus
	// Amount 人民币最小单位的金额
	Amount int64
}

// Payment 转成回调形态的支付对象
func (r CallbackResult) Payment() domain.Payment {
	paidAt := time.Now().UnixMilli()
	return domain.Payment{
		SN:     r.TradeNo,
		PaidAt: paidAt,
		Status: r.Status,
		Records: []domain.PaymentRecord{
			{
				PaymentNO3rd:    r.ProviderRef,
				Channel:         domain.ChannelTypeEpay,
				ChannelAmount:   r.Amount,
				ChannelCurrency: domain.DefaultCurrency,
				PaidAt:          paidAt,
				Status:          r.Status,
			},
		},
	}
}

// VerifyCallback 校验异步通知的签名, 只有 TRADE_SUCCESS 会推进支付单
func (p *PaymentService) VerifyCallback(query url.Values) (CallbackResult, error) {
	params := make(map[string]string, len(query))
	for k := range query {
		params[k] = query.Get(k)
	}
	if params["sign"] == "" || params["sign"] != sign(params, p.cfg.Key) {
		return CallbackResult{}, errVerificationFailed
	}
	if params["trade_status"] != tradeStatusSuccess {
		return CallbackResult{}, fmt.Errorf("%w: %s", errIgnoredCallback, params["trade_status"])
	}
	if params["out_trade_no"] == "" {
		return CallbackResult{}, errMissingTradeNo
	}
	amount, err := fen(params["money"])
	if err != nil {
		return CallbackResult{}, err
	}
	return CallbackResult{
		TradeNo:     params["out_trade_no"],
		ProviderRef: params["trade_no"],
		Status:      domain.PaymentStatusPaidSuccess,
		Amount:      amount,
	}, nil
}

// yuan 人民币最小单位转成网关要求的两位小数元
func yuan(amount int64) string {
	return decimal.NewFromInt(amount).Shift(-2).StringFixed(2)
}

// fen 通知里的元转回人民币最小单位
func fen(money string) (int64, error) {
	d, err := decimal.NewFromString(money)
	if err != nil {
		return 0, fmt.Errorf("解析通知金额失败: %w", err)
	}
	return d.Shift(2).IntPart(), nil
}
