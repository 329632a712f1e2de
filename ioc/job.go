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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/subpay/internal/order"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/recon"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(
	closeOrdersJob *order.CloseExpiredOrdersJob,
	closeLockLogsJob *wallet.CloseTimeoutLockedLogsJob,
	syncProviderJob *payment.SyncProviderPaymentJob,
	reconJob *recon.SyncPaymentAndOrderJob,
) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.close").Build(ecron.WithJob(funcJobWrapper(closeOrdersJob))),
		ecron.Load("cron.close").Build(ecron.WithJob(funcJobWrapper(closeLockLogsJob))),
		ecron.Load("cron.sync").Build(ecron.WithJob(funcJobWrapper(syncProviderJob))),
		ecron.Load("cron.sync").Build(ecron.WithJob(funcJobWrapper(reconJob))),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		start := time.Now()
		logger.Debug("开始运行")
		if err := job.Run(ctx); err != nil {
			logger.Error("执行失败", elog.FieldErr(err))
			return err
		}
		logger.Debug("结束运行", elog.FieldCost(time.Since(start)))
		return nil
	}
}
