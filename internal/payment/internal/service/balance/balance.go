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

package balance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet"
)

var (
	ErrExceedTheMaximumNumberOfRetries = errors.New("超过最大重试次数")
	ErrBalanceNotEnough                = wallet.ErrBalanceNotEnough
)

// PaymentService 余额渠道, 钱包是内部服务, 瞬时失败可以有限重试
type PaymentService struct {
	svc wallet.Service

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func NewBalancePaymentService(svc wallet.Service) *PaymentService {
	return &PaymentService{
		svc:             svc,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxRetries:      3,
	}
}

func (p *PaymentService) Name() domain.ChannelType {
	return domain.ChannelTypeBalance
}

func (p *PaymentService) Desc() string {
	return "余额"
}

// Prepay 预扣余额, 预扣流水ID作为渠道单号, 之后要么 Confirm 要么 Cancel
func (p *PaymentService) Prepay(ctx context.Context, pmt domain.Payment, record domain.PaymentRecord) (domain.PaymentRecord, error) {
	if record.Channel != domain.ChannelTypeBalance || record.Amount <= 0 {
		return domain.PaymentRecord{}, fmt.Errorf("缺少余额支付金额信息")
	}
	tid, err := p.svc.TryDeduct(ctx, wallet.Account{
		Uid: pmt.PayerID,
		Logs: []wallet.AccountLog{
			{
				BizSN:        pmt.SN,
				ChangeAmount: -record.Amount,
				Desc:         pmt.OrderDescription,
			},
		},
	})
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("预扣余额失败: %w", err)
	}
	record.PaymentNO3rd = strconv.FormatInt(tid, 10)
	record.Status = domain.PaymentStatusProcessing
	return record, nil
}

func (p *PaymentService) Confirm(ctx context.Context, uid, tid int64) error {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(p.initialInterval, p.maxInterval, p.maxRetries)
	for {
		err := p.svc.ConfirmDeduct(ctx, uid, tid)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("确认扣减余额失败: %w", ErrExceedTheMaximumNumberOfRetries)
		}
		time.Sleep(next)
	}
}

func (p *PaymentService) Cancel(ctx context.Context, uid, tid int64) error {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(p.initialInterval, p.maxInterval, p.maxRetries)
	for {
		err := p.svc.CancelDeduct(ctx, uid, tid)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("取消预扣余额失败: %w", ErrExceedTheMaximumNumberOfRetries)
		}
		time.Sleep(next)
	}
}
