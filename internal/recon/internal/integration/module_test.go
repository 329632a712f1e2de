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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/subpay/internal/order"
	ordermocks "github.com/ecodeclub/subpay/internal/order/mocks"
	"github.com/ecodeclub/subpay/internal/payment"
	paymentmocks "github.com/ecodeclub/subpay/internal/payment/mocks"
	"github.com/ecodeclub/subpay/internal/recon/internal/event"
	evtmocks "github.com/ecodeclub/subpay/internal/recon/internal/event/mocks"
	"github.com/ecodeclub/subpay/internal/recon/internal/service"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestReconModule(t *testing.T) {
	suite.Run(t, new(ReconModuleTestSuite))
}

type ReconModuleTestSuite struct {
	suite.Suite
}

func (s *ReconModuleTestSuite) newService(orderSvc order.Service, paymentSvc payment.Service,
	producer event.PaymentEventProducer) service.Service {
	initialInterval := 10 * time.Millisecond
	maxInterval := 50 * time.Millisecond
	maxRetries := int32(3)
	return service.NewService(orderSvc, paymentSvc, producer, initialInterval, maxInterval, maxRetries)
}

func (s *ReconModuleTestSuite) TestService_Reconcile() {
	t := s.T()

	const (
		testOffset = 0
		testLimit  = 10
		testCtime  = int64(1716800000000)
	)

	testCases := []struct {
		name           string
		newSvcFunc     func(t *testing.T, ctrl *gomock.Controller) service.Service
		errRequireFunc require.ErrorAssertionFunc
	}{
		{
			name: "支付已成功_补发支付成功事件",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-1", BuyerID: 100, PaymentID: 11},
					}, int64(1), nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(11)).
					Return(payment.Payment{
						OrderSN: "OrderSN-recon-1",
						PayerID: 100,
						Status:  payment.StatusPaidSuccess,
					}, nil)

				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)
				mockProducer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
					OrderSN: "OrderSN-recon-1",
					PayerID: 100,
					Status:  payment.StatusPaidSuccess.ToUint8(),
				}).Return(nil)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "支付已超时关闭_补发支付关闭事件",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-2", BuyerID: 200, PaymentID: 22},
					}, int64(1), nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(22)).
					Return(payment.Payment{
						OrderSN: "OrderSN-recon-2",
						PayerID: 200,
						Status:  payment.StatusTimeoutClosed,
					}, nil)

				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)
				mockProducer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
					OrderSN: "OrderSN-recon-2",
					PayerID: 200,
					Status:  payment.StatusTimeoutClosed.ToUint8(),
				}).Return(nil)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "支付悬而未决_支付与订单一并置为失败",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				expectedPayment := payment.Payment{
					OrderSN: "OrderSN-recon-3",
					PayerID: 300,
					Status:  payment.StatusProcessing,
				}

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-3", BuyerID: 300, PaymentID: 33},
					}, int64(1), nil)
				mockOrderSvc.EXPECT().FailOrderBySN(gomock.Any(), "OrderSN-recon-3").Return(nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(33)).
					Return(expectedPayment, nil)
				mockPaymentSvc.EXPECT().SetPaymentStatusPaidFailed(gomock.Any(), expectedPayment).Return(nil)

				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "未创建支付的超时订单_留给关单任务",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-4", BuyerID: 400},
					}, int64(1), nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "补发事件首次失败_退避后重试成功",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-5", BuyerID: 500, PaymentID: 55},
					}, int64(1), nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(55)).
					Return(payment.Payment{
						OrderSN: "OrderSN-recon-5",
						PayerID: 500,
						Status:  payment.StatusPaidFailed,
					}, nil)

				evt := event.PaymentEvent{
					OrderSN: "OrderSN-recon-5",
					PayerID: 500,
					Status:  payment.StatusPaidFailed.ToUint8(),
				}
				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)
				gomock.InOrder(
					mockProducer.EXPECT().Produce(gomock.Any(), evt).Return(errors.New("mock: 网络抖动")),
					mockProducer.EXPECT().Produce(gomock.Any(), evt).Return(nil),
				)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "查找支付失败_不影响同批其他订单",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return([]order.Order{
						{SN: "OrderSN-recon-6", BuyerID: 600, PaymentID: 66},
						{SN: "OrderSN-recon-7", BuyerID: 700, PaymentID: 77},
					}, int64(2), nil)

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(66)).
					Return(payment.Payment{}, errors.New("mock: 数据库超时"))
				mockPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), int64(77)).
					Return(payment.Payment{
						OrderSN: "OrderSN-recon-7",
						PayerID: 700,
						Status:  payment.StatusPaidSuccess,
					}, nil)

				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)
				mockProducer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
					OrderSN: "OrderSN-recon-7",
					PayerID: 700,
					Status:  payment.StatusPaidSuccess.ToUint8(),
				}).Return(nil)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.NoError,
		},
		{
			name: "查找超时订单失败_对账中断",
			newSvcFunc: func(t *testing.T, ctrl *gomock.Controller) service.Service {
				t.Helper()

				mockOrderSvc := ordermocks.NewMockService(ctrl)
				mockOrderSvc.EXPECT().ListExpiredOrders(gomock.Any(), testOffset, testLimit, testCtime).
					Return(nil, int64(0), errors.New("mock: 数据库超时"))

				mockPaymentSvc := paymentmocks.NewMockService(ctrl)
				mockProducer := evtmocks.NewMockPaymentEventProducer(ctrl)

				return s.newService(mockOrderSvc, mockPaymentSvc, mockProducer)
			},
			errRequireFunc: require.Error,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := tc.newSvcFunc(t, ctrl)
			err := svc.Reconcile(context.Background(), testOffset, testLimit, testCtime)
			tc.errRequireFunc(t, err)
		})
	}
}
