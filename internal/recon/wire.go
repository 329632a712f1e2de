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

//go:build wireinject

package recon

import (
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/order"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/recon/internal/event"
	"github.com/ecodeclub/subpay/internal/recon/internal/job"
	"github.com/ecodeclub/subpay/internal/recon/internal/service"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, om *order.Module, pm *payment.Module) (*Module, error) {
	wire.Build(
		initService,
		initSyncPaymentAndOrderJob,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

func initService(orderSvc order.Service, paymentSvc payment.Service, q mq.MQ) Service {
	producer, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return service.NewService(orderSvc, paymentSvc, producer,
		100*time.Millisecond, time.Second, 6)
}

func initSyncPaymentAndOrderJob(svc service.Service) *SyncPaymentAndOrderJob {
	// 支付时限30分钟, 再让10秒避开关单任务
	return job.NewSyncPaymentAndOrderJob(svc, 30*time.Minute+10*time.Second, 100)
}
