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

package startup

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment"
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
	"github.com/ecodeclub/subpay/internal/pkg/sequencenumber"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	testioc "github.com/ecodeclub/subpay/internal/test/ioc"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79/client"
)

// EpayCfg 测试里伪造易支付异步通知时要用同一份商户密钥签名
var EpayCfg = epay.Config{
	Gateway:   "https://epay.example.com",
	PID:       "10001",
	Key:       "test-merchant-key",
	PayType:   "alipay",
	NotifyURL: "http://localhost:8002/pay/callback/epay",
	ReturnURL: "http://localhost:8002/pay/return",
}

func InitModule(paymentDDLFunc func() int64,
	wm *wallet.Module,
	notifyHandler wechat.NotifyHandler,
	native wechat.NativeAPIService,
	verifier stripe.WebhookVerifier) (*payment.Module, error) {
	wire.Build(wire.Struct(new(payment.Module), "*"),
		testioc.BaseSet,
		initService,
		initHandler,
		initSyncProviderPaymentJob,
	)
	return new(payment.Module), nil
}

var (
	once       = &sync.Once{}
	svc        service.Service
	nativeSvc  *wechat.NativePaymentService
	webhookSvc *stripe.WebhookService
	epaySvc    *epay.PaymentService
)

// initService 和生产装配的区别: 微信与 Stripe 的外部接口从参数注入,
// 事件走真实的 producer, 汇率用固定表
func initService(db *egorm.Component, q mq.MQ, ec ecache.Cache,
	paymentDDLFunc func() int64,
	wm *wallet.Module,
	native wechat.NativeAPIService,
	verifier stripe.WebhookVerifier) service.Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		repo := repository.NewPaymentRepository(dao.NewPaymentGORMDAO(db))
		producer, err := event.NewPaymentEventProducer(q)
		if err != nil {
			panic(err)
		}

		nativeSvc = wechat.NewNativePaymentService(native,
			"MockAPPID", "MockMchID", "http://localhost:8002/pay/callback/wechat")

		fx := fxrate.NewService(ec, fxrate.NewFixedRateSource(map[string]decimal.Decimal{
			"CNY/USD": decimal.NewFromFloat(0.14),
		}))
		keyGen, err := snowflake.NewMultiBizSnowFlake(1, 8)
		if err != nil {
			panic(err)
		}
		// 测试里不会真正请求 Stripe, 客户端只是占位
		stripeCli := client.New("sk_test_placeholder", nil)
		stripeCfg := stripe.Config{
			SettlementCurrency: "USD",
			SuccessURL:         "http://localhost:8002/pay/success",
			CancelURL:          "http://localhost:8002/pay/cancel",
		}
		checkoutSvc := stripe.NewCheckoutPaymentService(stripeCli, fx, keyGen, stripeCfg)
		intentSvc := stripe.NewIntentPaymentService(stripeCli, fx, keyGen, stripeCfg)
		webhookSvc = stripe.NewWebhookService(verifier)

		epaySvc = epay.NewPaymentService(EpayCfg)

		svc = service.NewService(repo, producer,
			sequencenumber.NewGenerator(),
			paymentDDLFunc,
			balance.NewBalancePaymentService(wm.Svc),
			nativeSvc, checkoutSvc, intentSvc, epaySvc)
	})
	return svc
}

func initHandler(svc service.Service, notifyHandler wechat.NotifyHandler) *web.Handler {
	return web.NewHandler(svc, notifyHandler, nativeSvc, webhookSvc, epaySvc)
}

func initSyncProviderPaymentJob(svc service.Service) *job.SyncProviderPaymentJob {
	minutes, seconds, limit := int64(30), int64(10), 100
	return job.NewSyncProviderPaymentJob(svc, minutes, seconds, limit)
}
