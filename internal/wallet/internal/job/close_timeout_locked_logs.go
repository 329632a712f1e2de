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

	"github.com/ecodeclub/subpay/internal/wallet/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseTimeoutLockedLogsJob)(nil)

// CloseTimeoutLockedLogsJob 关闭超时未确认的预扣流水, 释放被锁住的余额
type CloseTimeoutLockedLogsJob struct {
	svc     service.Service
	minutes int64
	seconds int64
	limit   int
}

func NewCloseTimeoutLockedLogsJob(svc service.Service, minutes, seconds int64, limit int) *CloseTimeoutLockedLogsJob {
	return &CloseTimeoutLockedLogsJob{
		svc:     svc,
		minutes: minutes,
		seconds: seconds,
		limit:   limit,
	}
}

func (c *CloseTimeoutLockedLogsJob) Name() string {
	return "CloseTimeoutLockedLogsJob"
}

func (c *CloseTimeoutLockedLogsJob) Run(ctx context.Context) error {
	// seconds 用于冗余, 避免把刚创建的预扣也扫进来
	ctime := time.Now().Add(time.Duration(-c.minutes)*time.Minute + time.Duration(-c.seconds)*time.Second).UnixMilli()

	for {
		logs, total, err := c.svc.FindTimeoutLockedLogs(ctx, 0, c.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取超时预扣流水失败: %w", err)
		}

		for _, l := range logs {
			err = c.svc.CancelDeduct(ctx, l.Uid, l.ID)
			if err != nil {
				return fmt.Errorf("取消超时预扣流水失败: %w", err)
			}
		}

		if len(logs) < c.limit {
			break
		}

		if int64(c.limit) >= total {
			break
		}
	}
	return nil
}
