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

	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
)

//go:generate mockgen -source=./channel.go -package=channelmocks -destination=./mocks/channel.mock.go -typed

// ChannelPaymentService 渠道支付服务, 每个支付渠道一个实现
type ChannelPaymentService interface {
	Name() domain.ChannelType
	Desc() string
	// Prepay 在渠道侧创建预支付单, 返回回填了渠道单号和支付指令的支付记录
	// 渠道侧不重试, 失败直接返回
	Prepay(ctx context.Context, pmt domain.Payment, record domain.PaymentRecord) (domain.PaymentRecord, error)
}

// QueryablePaymentService 支持主动查询渠道侧支付状态的渠道
type QueryablePaymentService interface {
	ChannelPaymentService
	// QueryPayment 返回回调形态的支付对象, 渠道侧仍未到终态的一律按超时关闭处理
	QueryPayment(ctx context.Context, pmt domain.Payment, record domain.PaymentRecord) (domain.Payment, error)
}
