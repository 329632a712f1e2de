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

package payment

import (
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/event"
	"github.com/ecodeclub/subpay/internal/payment/internal/job"
	"github.com/ecodeclub/subpay/internal/payment/internal/repository"
	"github.com/ecodeclub/subpay/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/subpay/internal/payment/internal/service"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/balance"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/epay"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/stripe"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/wechat"
	"github.com/ecodeclub/subpay/internal/payment/internal/web"
	"github.com/ecodeclub/subpay/internal/payment/ioc"
	"github.com/ecodeclub/subpay/internal/pkg/sequencenumber"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, fx fxrate.Service, wm *wallet.Module) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		initService,
		initHandler,
		initSyncProviderPaymentJob,
	)
	return new(Module), nil
}

var (
	once       = &sync.Once{}
	svc        service.Service
	nativeSvc  *wechat.NativePaymentService
	webhookSvc *stripe.WebhookService
	epaySvc    *epay.PaymentService
)

func initService(db *egorm.Component, q mq.MQ, fx fxrate.Service, wm *wallet.Module) service.Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		repo := repository.NewPaymentRepository(dao.NewPaymentGORMDAO(db))
		producer, err := event.NewPaymentEventProducer(q)
		if err != nil {
			panic(err)
		}

		wechatCfg := ioc.InitWechatConfig()
		nativeSvc = ioc.InitWechatNativePaymentService(ioc.InitNativeAPIService(wechatCfg), wechatCfg)

		stripeCfg := ioc.InitStripeConfig()
		stripeCli := ioc.InitStripeClient(stripeCfg)
		keyGen := ioc.InitStripeKeyGenerator(stripeCfg)
		checkoutSvc := ioc.InitStripeCheckoutService(stripeCli, fx, keyGen, stripeCfg)
		intentSvc := ioc.InitStripeIntentService(stripeCli, fx, keyGen, stripeCfg)
		webhookSvc = ioc.InitStripeWebhookService(stripeCfg)

		epaySvc = ioc.InitEpayPaymentService(ioc.InitEpayConfig())

		svc = service.NewService(repo, producer,
			sequencenumber.NewGenerator(),
			paymentDDLFunc,
			balance.NewBalancePaymentService(wm.Svc),
			nativeSvc, checkoutSvc, intentSvc, epaySvc)
	})
	return svc
}

// paymentDDLFunc 支付单的收单截止时间
func paymentDDLFunc() int64 {
	return time.Now().Add(30 * time.Minute).UnixMilli()
}

func initHandler(svc service.Service) *web.Handler {
	return web.NewHandler(svc,
		ioc.InitWechatNotifyHandler(ioc.InitWechatConfig()),
		nativeSvc, webhookSvc, epaySvc)
}

func initSyncProviderPaymentJob(svc service.Service) *job.SyncProviderPaymentJob {
	minutes, seconds, limit := int64(30), int64(10), 100
	return job.NewSyncProviderPaymentJob(svc, minutes, seconds, limit)
}
