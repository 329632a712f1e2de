package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 后台事件消费者, Start 把消费循环跑起来就返回, 不会阻塞
type Consumer interface {
	Start(ctx context.Context)
}
