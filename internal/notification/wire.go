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

package notification

import (
	"net/http"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/email"
	"github.com/ecodeclub/subpay/internal/notification/internal/event"
	"github.com/ecodeclub/subpay/internal/notification/internal/service"
	"github.com/ecodeclub/subpay/internal/sms/client"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ, emailSvc email.Service, smsCli client.Client) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		initService,
		initConsumer,
	)
	return new(Module), nil
}

func initService(emailSvc email.Service, smsCli client.Client) Service {
	var robotCfg service.WechatRobotConfig
	if err := econf.UnmarshalKey("notification.wechat", &robotCfg); err != nil {
		panic(err)
	}
	var cfg service.Config
	if err := econf.UnmarshalKey("notification.settlement", &cfg); err != nil {
		panic(err)
	}
	robot := service.NewWechatRobotService(http.Post, robotCfg)
	return service.NewService(robot, emailSvc, smsCli, cfg)
}

func initConsumer(svc service.Service, q mq.MQ) *event.OrderSettledEventConsumer {
	c, err := event.NewOrderSettledEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
