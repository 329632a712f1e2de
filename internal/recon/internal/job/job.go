package job

import (
	"context"
	"time"

	"github.com/ecodeclub/subpay/internal/recon/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPaymentAndOrderJob)(nil)

// SyncPaymentAndOrderJob 定期核对超时订单与其支付的状态
// lag 要大于订单的支付时限, 多出来的部分用来避开与关单任务的竞争窗口
type SyncPaymentAndOrderJob struct {
	svc   service.Service
	lag   time.Duration
	limit int
}

func NewSyncPaymentAndOrderJob(svc service.Service, lag time.Duration, limit int) *SyncPaymentAndOrderJob {
	return &SyncPaymentAndOrderJob{svc: svc, lag: lag, limit: limit}
}

func (s *SyncPaymentAndOrderJob) Name() string {
	return "sync_payment_and_order_job"
}

func (s *SyncPaymentAndOrderJob) Run(ctx context.Context) error {
	return s.svc.Reconcile(ctx, 0, s.limit, time.Now().Add(-s.lag).UnixMilli())
}
