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

package payment

import (
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/payment/internal/job"
	"github.com/ecodeclub/subpay/internal/payment/internal/service"
	"github.com/ecodeclub/subpay/internal/payment/internal/web"
)

type (
	Handler                = web.Handler
	Payment                = domain.Payment
	Record                 = domain.PaymentRecord
	Channel                = domain.PaymentChannel
	ChannelType            = domain.ChannelType
	Directive              = domain.Directive
	Service                = service.Service
	SyncProviderPaymentJob = job.SyncProviderPaymentJob
)

const (
	ChannelTypeBalance        = domain.ChannelTypeBalance
	ChannelTypeWechat         = domain.ChannelTypeWechat
	ChannelTypeStripeCheckout = domain.ChannelTypeStripeCheckout
	ChannelTypeStripeIntent   = domain.ChannelTypeStripeIntent
	ChannelTypeEpay           = domain.ChannelTypeEpay

	StatusUnpaid        = domain.PaymentStatusUnpaid
	StatusProcessing    = domain.PaymentStatusProcessing
	StatusPaidSuccess   = domain.PaymentStatusPaidSuccess
	StatusPaidFailed    = domain.PaymentStatusPaidFailed
	StatusTimeoutClosed = domain.PaymentStatusTimeoutClosed
	StatusRefund        = domain.PaymentStatusRefund

	DirectiveTypeRedirectURL  = domain.DirectiveTypeRedirectURL
	DirectiveTypeQRCode       = domain.DirectiveTypeQRCode
	DirectiveTypeClientSecret = domain.DirectiveTypeClientSecret
)

var (
	ErrPaymentNotFound = service.ErrPaymentNotFound
)

type Module struct {
	Hdl                    *Handler
	Svc                    Service
	SyncProviderPaymentJob *SyncProviderPaymentJob
}
