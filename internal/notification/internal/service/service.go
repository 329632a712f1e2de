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

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/subpay/internal/email"
	"github.com/ecodeclub/subpay/internal/notification/internal/domain"
	"github.com/ecodeclub/subpay/internal/sms/client"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

// Config 结算通知的可配置项
type Config struct {
	// Robot 播报用的机器人名字, 对应 WechatRobotConfig.ChatRobots 的 key
	Robot string `yaml:"robot"`
	// EmailFrom 发信人昵称
	EmailFrom string `yaml:"emailFrom"`
	// SMSTemplateID 结算通知的短信模板
	SMSTemplateID string `yaml:"smsTemplateID"`
}

// Service 结算通知的总入口
// 通知是尽力而为: 任何渠道失败都只记日志, 不能把错误抛回给消费者触发重投,
// 否则买家会收到重复的邮件和短信
type Service interface {
	NotifySettled(ctx context.Context, st domain.Settlement) error
}

type service struct {
	robot    *WechatRobotService
	emailSvc email.Service
	smsCli   client.Client
	cfg      Config
	l        *elog.Component
}

func NewService(robot *WechatRobotService, emailSvc email.Service, smsCli client.Client, cfg Config) Service {
	return &service{
		robot:    robot,
		emailSvc: emailSvc,
		smsCli:   smsCli,
		cfg:      cfg,
		l:        elog.DefaultLogger,
	}
}

func (s *service) NotifySettled(ctx context.Context, st domain.Settlement) error {
	s.notifyRobot(st)
	s.notifyBuyerByEmail(ctx, st)
	s.notifyBuyerBySMS(st)
	return nil
}

func (s *service) notifyRobot(st domain.Settlement) {
	content := fmt.Sprintf("订单结算成功\n订单号: %s\n买家ID: %d\n实付金额: %s元\n套餐: %s",
		st.OrderSN, st.BuyerID, yuan(st.Amount), strings.Join(st.PlanTitles, "、"))
	if err := s.robot.Send(s.cfg.Robot, content); err != nil {
		s.l.Warn("发送机器人结算播报失败",
			elog.FieldErr(err),
			elog.String("order_sn", st.OrderSN))
	}
}

func (s *service) notifyBuyerByEmail(ctx context.Context, st domain.Settlement) {
	if st.BuyerEmail == "" {
		return
	}
	body := fmt.Sprintf("<p>您的订单 <b>%s</b> 已支付成功。</p><p>套餐: %s</p><p>实付金额: %s 元</p>",
		st.OrderSN, strings.Join(st.PlanTitles, "、"), yuan(st.Amount))
	err := s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.cfg.EmailFrom,
		To:      st.BuyerEmail,
		Subject: fmt.Sprintf("支付成功通知 - 订单%s", st.OrderSN),
		Body:    []byte(body),
	})
	if err != nil {
		s.l.Warn("发送结算通知邮件失败",
			elog.FieldErr(err),
			elog.String("order_sn", st.OrderSN))
	}
}

func (s *service) notifyBuyerBySMS(st domain.Settlement) {
	if st.BuyerPhone == "" {
		return
	}
	_, err := s.smsCli.Send(client.SendReq{
		PhoneNumbers: []string{st.BuyerPhone},
		TemplateID:   s.cfg.SMSTemplateID,
		TemplateParam: map[string]string{
			"order_sn": st.OrderSN,
			"amount":   yuan(st.Amount),
		},
	})
	if err != nil {
		s.l.Warn("发送结算通知短信失败",
			elog.FieldErr(err),
			elog.String("order_sn", st.OrderSN))
	}
}

// yuan 分转元, 保留两位小数
func yuan(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}
