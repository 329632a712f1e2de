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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/order/internal/event"
	"github.com/ecodeclub/subpay/internal/order/internal/job"
	"github.com/ecodeclub/subpay/internal/order/internal/repository"
	"github.com/ecodeclub/subpay/internal/order/internal/repository/dao"
	"github.com/ecodeclub/subpay/internal/order/internal/service"
	"github.com/ecodeclub/subpay/internal/order/internal/web"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/pkg/sequencenumber"
	"github.com/ecodeclub/subpay/internal/plan"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache,
	pm *payment.Module, plm *plan.Module, wm *wallet.Module) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		initService,
		initHandler,
		initConsumer,
		initCloseExpiredOrdersJob,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func initService(db *egorm.Component) service.Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		svc = service.NewService(repository.NewRepository(dao.NewOrderGORMDAO(db)))
	})
	return svc
}

func initHandler(svc service.Service, ec ecache.Cache,
	pm *payment.Module, plm *plan.Module, wm *wallet.Module) *web.Handler {
	return web.NewHandler(svc, pm.Svc, plm.Svc, wm.Svc, sequencenumber.NewGenerator(), ec)
}

func initConsumer(svc service.Service, q mq.MQ) *event.PaymentEventConsumer {
	producer, err := event.NewOrderSettledEventProducer(q)
	if err != nil {
		panic(err)
	}
	consumer, err := event.NewPaymentEventConsumer(svc, producer, q)
	if err != nil {
		panic(err)
	}
	return consumer
}

func initCloseExpiredOrdersJob(svc service.Service) *job.CloseExpiredOrdersJob {
	limit, minutes, timeout := 100, int64(30), 10*time.Second
	return job.NewCloseExpiredOrdersJob(svc, limit, minutes, timeout)
}
