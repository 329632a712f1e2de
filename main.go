package main

import (
	"context"

	"github.com/ecodeclub/subpay/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	egoApp := ego.New()

	tp := ioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("关闭 tracer 失败", elog.FieldErr(err))
		}
	}()

	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	// 消费者不归 ego 管, 自己拉起
	for i := range app.Consumers {
		app.Consumers[i].Start(context.Background())
	}

	err = egoApp.Invoker().
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
		).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
