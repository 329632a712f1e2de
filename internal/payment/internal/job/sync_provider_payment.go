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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/subpay/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncProviderPaymentJob)(nil)

// SyncProviderPaymentJob 超时未收到回调的支付, 主动向渠道对齐状态
type SyncProviderPaymentJob struct {
	svc     service.Service
	minutes int64
	seconds int64
	limit   int
	l       *elog.Component
}

func NewSyncProviderPaymentJob(svc service.Service, minutes int64, seconds int64, limit int) *SyncProviderPaymentJob {
	return &SyncProviderPaymentJob{
		svc:     svc,
		minutes: minutes,
		seconds: seconds,
		limit:   limit,
		l:       elog.DefaultLogger}
}

func (s *SyncProviderPaymentJob) Name() string {
	return "sync_provider_payment_job"
}

func (s *SyncProviderPaymentJob) Run(ctx context.Context) error {

	ctime := time.Now().Add(time.Duration(-s.minutes)*time.Minute + time.Duration(-s.seconds)*time.Second).UnixMilli()

	for {

		payments, total, err := s.svc.FindTimeoutPayments(ctx, 0, s.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取超时支付记录失败: %w", err)
		}

		for _, pmt := range payments {
			// 同步后支付要么到终态要么被关闭, 都会离开超时集合
			err = s.svc.SyncProviderInfo(ctx, pmt)
			if err != nil {
				s.l.Error("同步渠道支付状态失败",
					elog.FieldErr(err),
					elog.String("payment_sn", pmt.SN),
					elog.Int64("payment_id", pmt.ID),
				)
			}
		}

		if len(payments) < s.limit {
			return nil
		}

		if int64(s.limit) >= total {
			return nil
		}

	}
}
