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

package testioc

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// 集成测试里三条事件链路共用一个内存 MQ
var testTopics = []string{
	"payment_events",
	"order_settled_events",
	"wallet_recharge_events",
}

var (
	q      mq.MQ
	mqOnce sync.Once
)

func InitMQ() mq.MQ {
	mqOnce.Do(func() {
		strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 10)
		if err != nil {
			panic(err)
		}
		for {
			q, err = initMemoryMQ()
			if err == nil {
				return
			}
			next, ok := strategy.Next()
			if !ok {
				panic("初始化测试MQ重试失败")
			}
			time.Sleep(next)
		}
	})
	return q
}

func initMemoryMQ() (mq.MQ, error) {
	qq := memory.NewMQ()
	for _, topic := range testTopics {
		if err := qq.CreateTopic(context.Background(), topic, 1); err != nil {
			return nil, err
		}
	}
	return qq, nil
}
