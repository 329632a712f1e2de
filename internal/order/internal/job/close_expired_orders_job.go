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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob 兜底任务, 关闭超过支付时限仍未到终态的订单
type CloseExpiredOrdersJob struct {
	svc     service.Service
	limit   int
	minutes int64
	timeout time.Duration
}

func NewCloseExpiredOrdersJob(svc service.Service, limit int, minutes int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:     svc,
		limit:   limit,
		minutes: minutes,
		timeout: timeout,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()
	// 冗余10秒, 避开与回调收口的竞争窗口
	ctime := time.Now().Add(time.Duration(-c.minutes)*time.Minute + 10*time.Second).UnixMilli()

	for {
		orders, total, err := c.svc.ListExpiredOrders(ctx, 0, c.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}

		ids := slice.Map(orders, func(idx int, src domain.Order) int64 {
			return src.ID
		})
		if err = c.svc.CloseExpiredOrders(ctx, ids); err != nil {
			return fmt.Errorf("关闭过期订单失败: %w", err)
		}

		// 关掉的订单不再出现在下一页, 始终从头查
		if len(orders) < c.limit || int64(c.limit) >= total {
			return nil
		}
	}
}
