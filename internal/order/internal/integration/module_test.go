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
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/order"
	"github.com/ecodeclub/subpay/internal/order/internal/errs"
	"github.com/ecodeclub/subpay/internal/order/internal/event"
	"github.com/ecodeclub/subpay/internal/order/internal/web"
	"github.com/ecodeclub/subpay/internal/payment"
	paymentmocks "github.com/ecodeclub/subpay/internal/payment/mocks"
	"github.com/ecodeclub/subpay/internal/plan"
	planmocks "github.com/ecodeclub/subpay/internal/plan/mocks"
	"github.com/ecodeclub/subpay/internal/test"
	testioc "github.com/ecodeclub/subpay/internal/test/ioc"
	"github.com/ecodeclub/subpay/internal/wallet"
	walletmocks "github.com/ecodeclub/subpay/internal/wallet/mocks"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	mq     mq.MQ
	cache  ecache.Cache
	svc    order.Service
	module *order.Module
	ctrl   *gomock.Controller
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	s.cache = testioc.InitCache()

	m, err := order.InitModule(s.db, s.mq, s.cache,
		&payment.Module{Svc: s.getPaymentMockService()},
		&plan.Module{Svc: s.getPlanMockService()},
		&wallet.Module{Svc: s.getWalletMockService()})
	require.NoError(s.T(), err)
	s.module = m
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *OrderModuleTestSuite) getPlanMockService() *planmocks.MockService {
	mockedPlanSvc := planmocks.NewMockService(s.ctrl)
	plans := map[string]plan.Plan{
		"PLAN-monthly": {
			ID:       100,
			SN:       "PLAN-monthly",
			Title:    "黄金会员-月付",
			Intro:    "按月订阅",
			Price:    990,
			Duration: 31,
			Status:   plan.StatusOnShelf,
		},
		"PLAN-yearly": {
			ID:       101,
			SN:       "PLAN-yearly",
			Title:    "黄金会员-年付",
			Intro:    "按年订阅",
			Price:    9900,
			Duration: 366,
			Status:   plan.StatusOnShelf,
		},
	}
	mockedPlanSvc.EXPECT().FindPlanBySN(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sn string) (plan.Plan, error) {
		p, ok := plans[sn]
		if !ok {
			return plan.Plan{}, errors.New("套餐的SN非法")
		}
		return p, nil
	}).AnyTimes()
	return mockedPlanSvc
}

func (s *OrderModuleTestSuite) getPaymentMockService() *paymentmocks.MockService {
	mockedPaymentSvc := paymentmocks.NewMockService(s.ctrl)
	mockedPaymentSvc.EXPECT().GetPaymentChannels(gomock.Any()).Return([]payment.Channel{
		{Type: payment.ChannelTypeBalance, Desc: "余额"},
		{Type: payment.ChannelTypeWechat, Desc: "微信"},
	}).AnyTimes()

	counter := &atomic.Int64{}
	mockedPaymentSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p payment.Payment) (payment.Payment, error) {
		id := counter.Add(1)
		p.ID = id
		p.SN = fmt.Sprintf("PaymentSN-%d", id)
		return p, nil
	}).AnyTimes()

	mockedPaymentSvc.EXPECT().FindPaymentByID(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, pmtID int64) (payment.Payment, error) {
		payments := map[int64]payment.Payment{
			33: {
				ID: 33,
				SN: "PaymentSN-33",
				Records: []payment.Record{
					{Channel: payment.ChannelTypeBalance, Amount: 330},
					{Channel: payment.ChannelTypeWechat, Amount: 660},
				},
			},
		}
		p, ok := payments[pmtID]
		if !ok {
			return payment.Payment{}, fmt.Errorf("未配置的支付ID = %d", pmtID)
		}
		return p, nil
	}).AnyTimes()
	return mockedPaymentSvc
}

func (s *OrderModuleTestSuite) getWalletMockService() *walletmocks.MockService {
	mockedWalletSvc := walletmocks.NewMockService(s.ctrl)
	mockedWalletSvc.EXPECT().GetAccountByUID(gomock.Any(), testUID).Return(wallet.Account{
		Uid:           testUID,
		Balance:       5000,
		LockedBalance: 1000,
	}, nil).AnyTimes()
	return mockedWalletSvc
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `order_items`").Error
	require.NoError(s.T(), err)

	s.ctrl.Finish()
}

func (s *OrderModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
}

// newOrder 直接通过服务层造一笔只有一个月付套餐的订单
func (s *OrderModuleTestSuite) newOrder(sn, email, phone string) order.Order {
	s.T().Helper()
	o, err := s.svc.CreateOrder(context.Background(), order.Order{
		SN:               sn,
		BuyerID:          testUID,
		OriginalTotalAmt: 990,
		RealTotalAmt:     990,
		ReceiptEmail:     email,
		ReceiptPhone:     phone,
		Items: []order.OrderItem{
			{
				PlanID:    100,
				PlanSN:    "PLAN-monthly",
				PlanTitle: "黄金会员-月付",
				Price:     990,
				Quantity:  1,
				Duration:  31,
			},
		},
	})
	require.NoError(s.T(), err)
	return o
}

func (s *OrderModuleTestSuite) producePaymentEvent(t *testing.T, evt event.PaymentEvent) {
	t.Helper()
	producer, err := s.mq.Producer("payment_events")
	require.NoError(t, err)
	body, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: body})
	require.NoError(t, err)
}

func (s *OrderModuleTestSuite) TestHandler_PreviewOrder() {
	testCases := []struct {
		name string

		req      web.PreviewOrderReq
		wantCode int
		wantResp test.Result[web.PreviewOrderResp]
	}{
		{
			name: "获取成功",
			req: web.PreviewOrderReq{
				Plans: []web.Plan{
					{SN: "PLAN-monthly", Quantity: 2},
				},
			},
			wantCode: 200,
			wantResp: test.Result[web.PreviewOrderResp]{
				Data: web.PreviewOrderResp{
					// 余额5000, 锁定1000
					Balance: 4000,
					Channels: []web.PaymentItem{
						{Type: payment.ChannelTypeBalance.ToUint8(), Desc: "余额"},
						{Type: payment.ChannelTypeWechat.ToUint8(), Desc: "微信"},
					},
					Plans: []web.Plan{
						{
							SN:       "PLAN-monthly",
							Title:    "黄金会员-月付",
							Intro:    "按月订阅",
							Price:    990,
							Duration: 31,
							Quantity: 2,
						},
					},
					Policy: "请注意: 虚拟商品, 一旦支付成功不退、不换, 请谨慎操作",
				},
			},
		},
		{
			name: "套餐序列号非法",
			req: web.PreviewOrderReq{
				Plans: []web.Plan{
					{SN: "PLAN-unknown", Quantity: 1},
				},
			},
			wantCode: 500,
			wantResp: test.Result[web.PreviewOrderResp]{
				Code: errs.InvalidOrderItems.Code,
				Msg:  errs.InvalidOrderItems.Msg,
			},
		},
		{
			name: "套餐数量非法",
			req: web.PreviewOrderReq{
				Plans: []web.Plan{
					{SN: "PLAN-monthly", Quantity: 0},
				},
			},
			wantCode: 500,
			wantResp: test.Result[web.PreviewOrderResp]{
				Code: errs.InvalidOrderItems.Code,
				Msg:  errs.InvalidOrderItems.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/preview", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.PreviewOrderResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrderAndPayment() {
	testCases := []struct {
		name string

		req      web.CreateOrderReq
		wantCode int
		after    func(t *testing.T, resp test.Result[web.CreateOrderResp])
	}{
		{
			name: "创建成功_多渠道组合支付",
			req: web.CreateOrderReq{
				RequestID:        "requestID-create-01",
				Plans:            []web.Plan{{SN: "PLAN-monthly", Quantity: 1}},
				OriginalTotalAmt: 990,
				RealTotalAmt:     990,
				PaymentItems: []web.PaymentItem{
					{Type: payment.ChannelTypeBalance.ToUint8(), Amount: 330},
					{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 660},
				},
				ReceiptEmail: "buyer@example.com",
				ReceiptPhone: "13800001111",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.NotEmpty(t, resp.Data.OrderSN)
				assert.NotEmpty(t, resp.Data.PaymentSN)

				o, err := s.svc.FindOrderBySNAndBuyerID(context.Background(), resp.Data.OrderSN, testUID)
				require.NoError(t, err)
				assert.Equal(t, order.StatusProcessing, o.Status)
				assert.NotZero(t, o.PaymentID)
				assert.Equal(t, resp.Data.PaymentSN, o.PaymentSN)
				assert.Equal(t, int64(990), o.OriginalTotalAmt)
				assert.Equal(t, int64(990), o.RealTotalAmt)
				assert.Equal(t, "buyer@example.com", o.ReceiptEmail)
				assert.Equal(t, "13800001111", o.ReceiptPhone)
				require.Len(t, o.Items, 1)
				assert.Equal(t, order.OrderItem{
					PlanID:    100,
					PlanSN:    "PLAN-monthly",
					PlanTitle: "黄金会员-月付",
					Price:     990,
					Quantity:  1,
					Duration:  31,
				}, o.Items[0])
			},
		},
		{
			name: "创建失败_总实价不一致",
			req: web.CreateOrderReq{
				RequestID:        "requestID-create-02",
				Plans:            []web.Plan{{SN: "PLAN-monthly", Quantity: 1}},
				OriginalTotalAmt: 990,
				RealTotalAmt:     980,
				PaymentItems: []web.PaymentItem{
					{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 980},
				},
			},
			wantCode: 500,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrderItems.Code, resp.Code)
			},
		},
		{
			name: "创建失败_总原价不一致",
			req: web.CreateOrderReq{
				RequestID:        "requestID-create-03",
				Plans:            []web.Plan{{SN: "PLAN-yearly", Quantity: 1}},
				OriginalTotalAmt: 9800,
				RealTotalAmt:     9900,
				PaymentItems: []web.PaymentItem{
					{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 9900},
				},
			},
			wantCode: 500,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrderItems.Code, resp.Code)
			},
		},
		{
			name: "创建失败_套餐信息为空",
			req: web.CreateOrderReq{
				RequestID: "requestID-create-04",
			},
			wantCode: 500,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrderItems.Code, resp.Code)
			},
		},
		{
			name: "创建失败_支付渠道非法",
			req: web.CreateOrderReq{
				RequestID:        "requestID-create-05",
				Plans:            []web.Plan{{SN: "PLAN-monthly", Quantity: 1}},
				OriginalTotalAmt: 990,
				RealTotalAmt:     990,
				PaymentItems: []web.PaymentItem{
					{Type: 9, Amount: 990},
				},
			},
			wantCode: 500,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.SystemError.Code, resp.Code)
			},
		},
		{
			name: "创建失败_请求ID为空",
			req: web.CreateOrderReq{
				Plans:            []web.Plan{{SN: "PLAN-monthly", Quantity: 1}},
				OriginalTotalAmt: 990,
				RealTotalAmt:     990,
				PaymentItems: []web.PaymentItem{
					{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 990},
				},
			},
			wantCode: 500,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.DuplicateRequest.Code, resp.Code)
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder_DuplicateRequestID() {
	t := s.T()

	req := web.CreateOrderReq{
		RequestID:        "requestID-create-dup",
		Plans:            []web.Plan{{SN: "PLAN-monthly", Quantity: 1}},
		OriginalTotalAmt: 990,
		RealTotalAmt:     990,
		PaymentItems: []web.PaymentItem{
			{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 990},
		},
	}

	first, err := http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(req))
	require.NoError(t, err)
	first.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, first)
	require.Equal(t, 200, recorder.Code)

	// 同一个请求ID重放, 直接拒绝
	second, err := http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(req))
	require.NoError(t, err)
	second.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, second)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.CreateOrderResp]{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}, recorder.MustScan())
}

func (s *OrderModuleTestSuite) TestHandler_RetrieveOrderStatus() {
	testCases := []struct {
		name string

		before   func(t *testing.T)
		req      web.RetrieveOrderStatusReq
		wantCode int
		wantResp test.Result[web.RetrieveOrderStatusResp]
	}{
		{
			name: "获取成功",
			before: func(t *testing.T) {
				s.newOrder("OrderSN-status-1", "", "")
			},
			req:      web.RetrieveOrderStatusReq{OrderSN: "OrderSN-status-1"},
			wantCode: 200,
			wantResp: test.Result[web.RetrieveOrderStatusResp]{
				Data: web.RetrieveOrderStatusResp{
					OrderStatus: order.StatusInit.ToUint8(),
				},
			},
		},
		{
			name:     "订单不存在",
			before:   func(t *testing.T) {},
			req:      web.RetrieveOrderStatusReq{OrderSN: "OrderSN-status-404"},
			wantCode: 500,
			wantResp: test.Result[web.RetrieveOrderStatusResp]{
				Code: errs.OrderNotFound.Code,
				Msg:  errs.OrderNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/order", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.RetrieveOrderStatusResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_ListOrders() {
	t := s.T()

	total := 3
	for idx := 0; idx < total; idx++ {
		s.newOrder(fmt.Sprintf("OrderSN-list-%d", idx), "", "")
	}

	testCases := []struct {
		name string

		req      web.ListOrdersReq
		wantCode int
		after    func(t *testing.T, resp test.Result[web.ListOrdersResp])
	}{
		{
			name:     "获取成功_第一页",
			req:      web.ListOrdersReq{Offset: 0, Limit: 2},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.ListOrdersResp]) {
				require.Equal(t, int64(3), resp.Data.Total)
				require.Len(t, resp.Data.Orders, 2)
				// 按创建时间倒序
				assert.Equal(t, "OrderSN-list-2", resp.Data.Orders[0].SN)
				assert.Equal(t, "OrderSN-list-1", resp.Data.Orders[1].SN)
			},
		},
		{
			name:     "获取成功_最后一页",
			req:      web.ListOrdersReq{Offset: 2, Limit: 2},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.ListOrdersResp]) {
				require.Equal(t, int64(3), resp.Data.Total)
				require.Len(t, resp.Data.Orders, 1)
				assert.Equal(t, "OrderSN-list-0", resp.Data.Orders[0].SN)
				require.Len(t, resp.Data.Orders[0].Items, 1)
				assert.Equal(t, "黄金会员-月付", resp.Data.Orders[0].Items[0].Plan.Title)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_RetrieveOrderDetail() {
	t := s.T()

	o := s.newOrder("OrderSN-detail-1", "", "")
	err := s.svc.UpdateOrderPaymentInfo(context.Background(), testUID, o.ID, 33, "PaymentSN-33")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: "OrderSN-detail-1"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	assert.NotZero(t, resp.Data.Order.Ctime)
	assert.NotZero(t, resp.Data.Order.Utime)
	resp.Data.Order.Ctime, resp.Data.Order.Utime = 0, 0
	assert.Equal(t, web.Order{
		SN: "OrderSN-detail-1",
		Payment: web.Payment{
			SN: "PaymentSN-33",
			Items: []web.PaymentItem{
				{Type: payment.ChannelTypeBalance.ToUint8(), Amount: 330},
				{Type: payment.ChannelTypeWechat.ToUint8(), Amount: 660},
			},
		},
		OriginalTotalAmt: 990,
		RealTotalAmt:     990,
		Status:           order.StatusProcessing.ToUint8(),
		Items: []web.OrderItem{
			{
				Plan: web.Plan{
					SN:       "PLAN-monthly",
					Title:    "黄金会员-月付",
					Price:    990,
					Duration: 31,
					Quantity: 1,
				},
			},
		},
	}, resp.Data.Order)
}

func (s *OrderModuleTestSuite) TestHandler_RetrieveOrderDetail_NotFound() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: "OrderSN-detail-404"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.RetrieveOrderDetailResp]{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}, recorder.MustScan())
}

func (s *OrderModuleTestSuite) TestHandler_CancelOrder() {
	t := s.T()

	s.newOrder("OrderSN-cancel-1", "", "")

	req, err := http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.CancelOrderReq{OrderSN: "OrderSN-cancel-1"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	o, err := s.svc.FindOrderBySNAndBuyerID(context.Background(), "OrderSN-cancel-1", testUID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCanceled, o.Status)
	assert.NotZero(t, o.ClosedAt)
}

func (s *OrderModuleTestSuite) TestConsumer_SettlePaidOrder() {
	t := s.T()
	ctx := context.Background()

	s.newOrder("OrderSN-settle-1", "buyer@example.com", "13800001111")
	s.newOrder("OrderSN-settle-2", "", "")

	settledConsumer, err := s.mq.Consumer("order_settled_events", "test")
	require.NoError(t, err)

	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-settle-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err := s.svc.FindOrderBySN(ctx, "OrderSN-settle-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusSuccess, o.Status)

	// 首次结算要向下游发出结算事件
	msg, err := settledConsumer.Consume(ctx)
	require.NoError(t, err)
	var settled event.OrderSettledEvent
	require.NoError(t, json.Unmarshal(msg.Value, &settled))
	assert.Equal(t, event.OrderSettledEvent{
		OrderSN:    "OrderSN-settle-1",
		BuyerID:    testUID,
		Amount:     990,
		PlanTitles: []string{"黄金会员-月付"},
		BuyerEmail: "buyer@example.com",
		BuyerPhone: "13800001111",
	}, settled)

	// 重复的支付成功通知按成功确认, 但不能再发结算事件
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-settle-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err = s.svc.FindOrderBySN(ctx, "OrderSN-settle-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusSuccess, o.Status)

	// 结算第二笔订单, 下游收到的下一个事件必须属于它,
	// 证明重复通知没有夹带出多余的结算事件
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-settle-2",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	msg, err = settledConsumer.Consume(ctx)
	require.NoError(t, err)
	settled = event.OrderSettledEvent{}
	require.NoError(t, json.Unmarshal(msg.Value, &settled))
	assert.Equal(t, "OrderSN-settle-2", settled.OrderSN)
	assert.Empty(t, settled.BuyerEmail)
}

func (s *OrderModuleTestSuite) TestConsumer_PaymentFailed() {
	t := s.T()
	ctx := context.Background()

	s.newOrder("OrderSN-fail-1", "", "")
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-fail-1",
		PayerID: testUID,
		Status:  payment.StatusPaidFailed.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err := s.svc.FindOrderBySN(ctx, "OrderSN-fail-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusFailed, o.Status)

	// 支付单超时关闭同样把订单推进到支付失败
	s.newOrder("OrderSN-fail-2", "", "")
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-fail-2",
		PayerID: testUID,
		Status:  payment.StatusTimeoutClosed.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err = s.svc.FindOrderBySN(ctx, "OrderSN-fail-2")
	require.NoError(t, err)
	assert.Equal(t, order.StatusFailed, o.Status)
}

func (s *OrderModuleTestSuite) TestConsumer_IgnoreNonTerminalEvent() {
	t := s.T()
	ctx := context.Background()

	s.newOrder("OrderSN-ignore-1", "", "")
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-ignore-1",
		PayerID: testUID,
		Status:  payment.StatusProcessing.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err := s.svc.FindOrderBySN(ctx, "OrderSN-ignore-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusInit, o.Status)
}

func (s *OrderModuleTestSuite) TestConsumer_ClosedOrderReceivesPaidEvent() {
	t := s.T()
	ctx := context.Background()

	o := s.newOrder("OrderSN-closed-1", "", "")
	err := s.svc.CancelOrder(ctx, testUID, o.ID)
	require.NoError(t, err)

	// 订单已关闭, 钱却到账了, 只报警不报错, 也不能改写订单终态
	s.producePaymentEvent(t, event.PaymentEvent{
		OrderSN: "OrderSN-closed-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	})
	require.NoError(t, s.module.Consumer.Consume(ctx))

	o, err = s.svc.FindOrderBySN(ctx, "OrderSN-closed-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCanceled, o.Status)
}

func (s *OrderModuleTestSuite) TestCloseExpiredOrdersJob() {
	t := s.T()
	ctx := context.Background()

	s.newOrder("OrderSN-expired-1", "", "")
	s.newOrder("OrderSN-expired-2", "", "")
	s.newOrder("OrderSN-fresh-1", "", "")

	expiredCtime := time.Now().Add(-2 * time.Hour).UnixMilli()
	err := s.db.Exec("UPDATE `orders` SET ctime = ? WHERE sn IN (?, ?)",
		expiredCtime, "OrderSN-expired-1", "OrderSN-expired-2").Error
	require.NoError(t, err)

	job := s.module.CloseExpiredOrdersJob
	require.Equal(t, "CloseExpiredOrdersJob", job.Name())
	require.NoError(t, job.Run(ctx))

	for _, sn := range []string{"OrderSN-expired-1", "OrderSN-expired-2"} {
		o, err := s.svc.FindOrderBySN(ctx, sn)
		require.NoError(t, err)
		assert.Equal(t, order.StatusTimeoutClosed, o.Status, sn)
		assert.NotZero(t, o.ClosedAt, sn)
	}

	o, err := s.svc.FindOrderBySN(ctx, "OrderSN-fresh-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusInit, o.Status)
}
