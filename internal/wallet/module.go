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

package wallet

import (
	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet/internal/event"
	"github.com/ecodeclub/subpay/internal/wallet/internal/job"
	"github.com/ecodeclub/subpay/internal/wallet/internal/service"
	"github.com/ecodeclub/subpay/internal/wallet/internal/web"
)

type (
	Account                   = domain.Account
	AccountLog                = domain.AccountLog
	Service                   = service.Service
	Handler                   = web.Handler
	CloseTimeoutLockedLogsJob = job.CloseTimeoutLockedLogsJob
)

const (
	AccountLogStatusActive   = domain.AccountLogStatusActive
	AccountLogStatusLocked   = domain.AccountLogStatusLocked
	AccountLogStatusInactive = domain.AccountLogStatusInactive
)

var (
	ErrAccountNotFound      = service.ErrAccountNotFound
	ErrDuplicatedAccountLog = service.ErrDuplicatedAccountLog
	ErrBalanceNotEnough     = service.ErrBalanceNotEnough
)

type Module struct {
	Svc                       Service
	Hdl                       *Handler
	Consumer                  *event.RechargeEventConsumer
	CloseTimeoutLockedLogsJob *CloseTimeoutLockedLogsJob
}
