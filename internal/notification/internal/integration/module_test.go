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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/email"
	emailmocks "github.com/ecodeclub/subpay/internal/email/mocks"
	"github.com/ecodeclub/subpay/internal/notification/internal/event"
	"github.com/ecodeclub/subpay/internal/notification/internal/service"
	"github.com/ecodeclub/subpay/internal/sms/client"
	smsmocks "github.com/ecodeclub/subpay/internal/sms/client/mocks"
	testioc "github.com/ecodeclub/subpay/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testRobot = "payRobot"

func TestNotificationModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	mq mq.MQ
}

func (s *ModuleTestSuite) SetupSuite() {
	s.mq = testioc.InitMQ()
}

func (s *ModuleTestSuite) newConsumer(t *testing.T,
	emailSvc email.Service, smsCli client.Client, robotURL string) *event.OrderSettledEventConsumer {
	t.Helper()
	robot := service.NewWechatRobotService(http.Post, service.WechatRobotConfig{ChatRobots: map[string]string{
		testRobot: robotURL,
	}})
	svc := service.NewService(robot, emailSvc, smsCli, service.Config{
		Robot:         testRobot,
		EmailFrom:     "subpay",
		SMSTemplateID: "SMS_10001",
	})
	consumer, err := event.NewOrderSettledEventConsumer(svc, s.mq)
	require.NoError(t, err)
	return consumer
}

func (s *ModuleTestSuite) produceSettledEvent(t *testing.T, evt event.OrderSettledEvent) {
	t.Helper()
	producer, err := s.mq.Producer("order_settled_events")
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
}

func (s *ModuleTestSuite) TestConsume_AllChannels() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var robotMsg service.WechatRobotMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&robotMsg))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var gotMail email.Mail
	mockEmail := emailmocks.NewMockService(ctrl)
	mockEmail.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail email.Mail) error {
			gotMail = mail
			return nil
		}).Times(1)

	var gotSMS client.SendReq
	mockSMS := smsmocks.NewMockClient(ctrl)
	mockSMS.EXPECT().Send(gomock.Any()).
		DoAndReturn(func(req client.SendReq) (client.SendResp, error) {
			gotSMS = req
			return client.SendResp{RequestID: "req-1"}, nil
		}).Times(1)

	consumer := s.newConsumer(t, mockEmail, mockSMS, server.URL)

	s.produceSettledEvent(t, event.OrderSettledEvent{
		OrderSN:    "OrderSN-notify-1",
		BuyerID:    20250001,
		Amount:     9900,
		PlanTitles: []string{"黄金会员-月付"},
		BuyerEmail: "buyer@example.com",
		BuyerPhone: "13800001111",
	})

	err := consumer.Consume(context.Background())
	require.NoError(t, err)

	// 机器人播报
	s.Equal("text", robotMsg.MsgType)
	s.Contains(robotMsg.Text.Content, "OrderSN-notify-1")
	s.Contains(robotMsg.Text.Content, "99.00")
	s.Contains(robotMsg.Text.Content, "黄金会员-月付")
	// 买家邮件
	s.Equal("subpay", gotMail.From)
	s.Equal("buyer@example.com", gotMail.To)
	s.Contains(gotMail.Subject, "OrderSN-notify-1")
	s.True(strings.Contains(string(gotMail.Body), "99.00"))
	// 买家短信
	s.Equal([]string{"13800001111"}, gotSMS.PhoneNumbers)
	s.Equal("SMS_10001", gotSMS.TemplateID)
	s.Equal("OrderSN-notify-1", gotSMS.TemplateParam["order_sn"])
	s.Equal("99.00", gotSMS.TemplateParam["amount"])
}

func (s *ModuleTestSuite) TestConsume_SkipEmptyContacts() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// 没留邮箱和手机号, 邮件短信都不该发
	mockEmail := emailmocks.NewMockService(ctrl)
	mockSMS := smsmocks.NewMockClient(ctrl)

	consumer := s.newConsumer(t, mockEmail, mockSMS, server.URL)

	s.produceSettledEvent(t, event.OrderSettledEvent{
		OrderSN:    "OrderSN-notify-2",
		BuyerID:    20250002,
		Amount:     1000,
		PlanTitles: []string{"白银会员-月付"},
	})

	err := consumer.Consume(context.Background())
	require.NoError(t, err)
}

func (s *ModuleTestSuite) TestConsume_ChannelFailureDoesNotFailConsume() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 机器人webhook挂了
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	mockEmail := emailmocks.NewMockService(ctrl)
	mockEmail.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		Return(email.ErrSendMailFailed).Times(1)

	mockSMS := smsmocks.NewMockClient(ctrl)
	mockSMS.EXPECT().Send(gomock.Any()).
		Return(client.SendResp{}, client.ErrSendFailed).Times(1)

	consumer := s.newConsumer(t, mockEmail, mockSMS, server.URL)

	s.produceSettledEvent(t, event.OrderSettledEvent{
		OrderSN:    "OrderSN-notify-3",
		BuyerID:    20250003,
		Amount:     500,
		PlanTitles: []string{"白银会员-月付"},
		BuyerEmail: "buyer3@example.com",
		BuyerPhone: "13800003333",
	})

	// 所有渠道都失败也不能让消费失败, 否则会重投导致重复通知
	err := consumer.Consume(context.Background())
	require.NoError(t, err)
}
