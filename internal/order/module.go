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

package order

import (
	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/event"
	"github.com/ecodeclub/subpay/internal/order/internal/job"
	"github.com/ecodeclub/subpay/internal/order/internal/service"
	"github.com/ecodeclub/subpay/internal/order/internal/web"
)

type (
	Handler               = web.Handler
	Service               = service.Service
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	Status                = domain.OrderStatus
	SettleOutcome         = domain.SettleOutcome
	PaymentEventConsumer  = event.PaymentEventConsumer
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusInit          = domain.StatusInit
	StatusProcessing    = domain.StatusProcessing
	StatusSuccess       = domain.StatusSuccess
	StatusFailed        = domain.StatusFailed
	StatusTimeoutClosed = domain.StatusTimeoutClosed
	StatusCanceled      = domain.StatusCanceled
	StatusRefund        = domain.StatusRefund

	OutcomeSettled     = domain.OutcomeSettled
	OutcomeAlreadyPaid = domain.OutcomeAlreadyPaid
	OutcomeNotFound    = domain.OutcomeNotFound
	OutcomeClosed      = domain.OutcomeClosed
)

var (
	ErrOrderNotFound = service.ErrOrderNotFound
)

type Module struct {
	Hdl                   *Handler
	Svc                   Service
	Consumer              *PaymentEventConsumer
	CloseExpiredOrdersJob *CloseExpiredOrdersJob
}
