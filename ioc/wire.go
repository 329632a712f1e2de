//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/subpay/internal/notification"
	"github.com/ecodeclub/subpay/internal/order"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/plan"
	"github.com/ecodeclub/subpay/internal/recon"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		initEmailService,
		initSMSClient,
		initFxService,
		plan.InitModule,
		wallet.InitModule,
		payment.InitModule,
		order.InitModule,
		recon.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*plan.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "CloseExpiredOrdersJob"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "SyncProviderPaymentJob"),
		wire.FieldsOf(new(*wallet.Module), "Hdl", "CloseTimeoutLockedLogsJob"),
		wire.FieldsOf(new(*recon.Module), "SyncPaymentAndOrderJob"),
		initGinxServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
