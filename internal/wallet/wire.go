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

package wallet

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/wallet/internal/event"
	"github.com/ecodeclub/subpay/internal/wallet/internal/event/cache"
	"github.com/ecodeclub/subpay/internal/wallet/internal/job"
	"github.com/ecodeclub/subpay/internal/wallet/internal/repository"
	"github.com/ecodeclub/subpay/internal/wallet/internal/repository/dao"
	"github.com/ecodeclub/subpay/internal/wallet/internal/service"
	"github.com/ecodeclub/subpay/internal/wallet/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		InitService,
		web.NewHandler,
		initRechargeConsumer,
		initCloseTimeoutLockedLogsJob,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewAccountGORMDAO(db)
		r := repository.NewAccountRepository(d)
		svc = service.NewAccountService(r)
	})
	return svc
}

func initRechargeConsumer(svc service.Service, q mq.MQ, ec ecache.Cache) *event.RechargeEventConsumer {
	c, err := event.NewRechargeEventConsumer(svc, q, cache.NewRechargeEventECache(ec))
	if err != nil {
		panic(err)
	}
	return c
}

func initCloseTimeoutLockedLogsJob(svc service.Service) *job.CloseTimeoutLockedLogsJob {
	minutes, seconds, limit := int64(30), int64(10), 100
	return job.NewCloseTimeoutLockedLogsJob(svc, minutes, seconds, limit)
}
