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

package domain

// DefaultCurrency 展示货币, 渠道结算货币可以不同
const DefaultCurrency = "CNY"

type ChannelType uint8

func (t ChannelType) ToUint8() uint8 {
	return uint8(t)
}

const (
	ChannelTypeBalance        ChannelType = iota + 1 // 余额
	ChannelTypeWechat                                // 微信Native扫码
	ChannelTypeStripeCheckout                        // Stripe Checkout 跳转
	ChannelTypeStripeIntent                          // Stripe Payment Intent
	ChannelTypeEpay                                  // 易支付聚合
)

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

// IsTerminal 终态的支付不再流转
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaidSuccess || s == PaymentStatusPaidFailed ||
		s == PaymentStatusTimeoutClosed || s == PaymentStatusRefund
}

const (
	PaymentStatusUnpaid        PaymentStatus = iota + 1 // 未支付
	PaymentStatusProcessing                             // 支付中
	PaymentStatusPaidSuccess                            // 支付成功
	PaymentStatusPaidFailed                             // 支付失败
	PaymentStatusTimeoutClosed                          // 超时关闭
	PaymentStatusRefund                                 // 转入退款
)

type DirectiveType uint8

func (t DirectiveType) ToUint8() uint8 {
	return uint8(t)
}

const (
	DirectiveTypeRedirectURL  DirectiveType = iota + 1 // 跳转第三方收银台
	DirectiveTypeQRCode                                // 展示收款二维码
	DirectiveTypeClientSecret                          // 客户端SDK凭证
)

// Directive 支付指令, 告诉买家接下来怎么完成支付, Type 决定哪个字段有效
type Directive struct {
	Type         DirectiveType
	RedirectURL  string
	QRCodeURL    string
	ClientSecret string
}

type Payment struct {
	ID      int64
	SN      string
	PayerID int64
	OrderID int64
	OrderSN string
	// OrderDescription 商品描述, 会透传给第三方渠道展示给买家
	OrderDescription string
	// TotalAmount 展示货币的最小单位, 999 表示 9.99 元
	TotalAmount int64
	Currency    string
	Deadline    int64
	PaidAt      int64
	Status      PaymentStatus
	Records     []PaymentRecord
	Ctime       int64
	Utime       int64
}

type PaymentChannel struct {
	Type ChannelType
	Desc string
}

type PaymentRecord struct {
	// PaymentNO3rd 第三方渠道的交易单号, 回调时用它对账
	PaymentNO3rd string
	Description  string
	Channel      ChannelType
	Amount       int64
	// ChannelAmount 渠道结算货币的金额, 渠道直接以人民币结算时为 0
	ChannelAmount   int64
	ChannelCurrency string
	PaidAt          int64
	Status          PaymentStatus
	Directive       Directive
}
