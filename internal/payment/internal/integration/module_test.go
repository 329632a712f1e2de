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
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/payment/internal/event"
	"github.com/ecodeclub/subpay/internal/payment/internal/integration/startup"
	"github.com/ecodeclub/subpay/internal/payment/internal/service"
	stripemocks "github.com/ecodeclub/subpay/internal/payment/internal/service/stripe/mocks"
	wechatmocks "github.com/ecodeclub/subpay/internal/payment/internal/service/wechat/mocks"
	"github.com/ecodeclub/subpay/internal/payment/internal/web"
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
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"go.uber.org/mock/gomock"
)

const testUID = int64(789)

func TestPaymentModule(t *testing.T) {
	suite.Run(t, new(PaymentModuleTestSuite))
}

type PaymentModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	mq     mq.MQ
	events mq.Consumer
	svc    payment.Service
	module *payment.Module
	ctrl   *gomock.Controller

	walletSvc     *walletmocks.MockService
	notifyHandler *wechatmocks.MockNotifyHandler
	nativeAPI     *wechatmocks.MockNativeAPIService
	verifier      *stripemocks.MockWebhookVerifier
}

func (s *PaymentModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.walletSvc = walletmocks.NewMockService(s.ctrl)
	s.notifyHandler = wechatmocks.NewMockNotifyHandler(s.ctrl)
	s.nativeAPI = wechatmocks.NewMockNativeAPIService(s.ctrl)
	s.verifier = stripemocks.NewMockWebhookVerifier(s.ctrl)

	m, err := startup.InitModule(
		func() int64 { return time.Now().Add(30 * time.Minute).UnixMilli() },
		&wallet.Module{Svc: s.walletSvc},
		s.notifyHandler,
		s.nativeAPI,
		s.verifier)
	s.Require().NoError(err)
	s.module = m
	s.svc = m.Svc

	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	s.events, err = s.mq.Consumer("payment_events", "test")
	s.Require().NoError(err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *PaymentModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `payments`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `payment_records`").Error
	s.NoError(err)
	s.ctrl.Finish()
}

func (s *PaymentModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `payments`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `payment_records`").Error
	s.NoError(err)
}

// createPayment 以 testUID 的名义创建一笔支付, 总金额是各渠道金额之和
func (s *PaymentModuleTestSuite) createPayment(orderID int64, orderSN string, records []payment.Record) payment.Payment {
	s.T().Helper()
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	pmt, err := s.svc.CreatePayment(context.Background(), payment.Payment{
		OrderID:          orderID,
		OrderSN:          orderSN,
		PayerID:          testUID,
		OrderDescription: "黄金会员-月付",
		TotalAmount:      total,
		Records:          records,
	})
	s.Require().NoError(err)
	return pmt
}

func (s *PaymentModuleTestSuite) findPayment(t *testing.T, sn string) payment.Payment {
	t.Helper()
	pmt, err := s.svc.FindPaymentBySN(context.Background(), sn)
	require.NoError(t, err)
	return pmt
}

func (s *PaymentModuleTestSuite) postPay(t *testing.T, sn string) *test.JSONResponseRecorder[web.Payment] {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/pay", iox.NewJSONReader(web.PayReq{SN: sn}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Payment]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *PaymentModuleTestSuite) postWechatCallback(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/pay/callback/wechat", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

// expectWechatNotify 预设一次微信回调的解析结果, err 不为空时模拟验签失败
func (s *PaymentModuleTestSuite) expectWechatNotify(txn payments.Transaction, err error) {
	s.notifyHandler.EXPECT().ParseNotifyRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *http.Request, content any) (*notify.Request, error) {
			if err != nil {
				return nil, err
			}
			*(content.(*payments.Transaction)) = txn
			return &notify.Request{}, nil
		})
}

func wechatTransaction(sn, txnID, state string, total int64) payments.Transaction {
	return payments.Transaction{
		OutTradeNo:    core.String(sn),
		TransactionId: core.String(txnID),
		TradeState:    core.String(state),
		Amount:        &payments.TransactionAmount{Total: core.Int64(total)},
	}
}

func (s *PaymentModuleTestSuite) postStripeCallback(t *testing.T, payload []byte, sig string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/pay/callback/stripe", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Stripe-Signature", sig)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

// expectStripeEvent 预设一次 Stripe 验签结果, 返回提交给回调接口的报文和签名头
func (s *PaymentModuleTestSuite) expectStripeEvent(eventType, raw string) ([]byte, string) {
	payload := []byte(raw)
	sig := fmt.Sprintf("t=%d,v1=mock-signature", time.Now().UnixNano())
	s.verifier.EXPECT().ConstructEvent(payload, sig).Return(stripego.Event{
		Type: stripego.EventType(eventType),
		Data: &stripego.EventData{Raw: json.RawMessage(raw)},
	}, nil)
	return payload, sig
}

func checkoutSessionPayload(id, tradeNo string, amountTotal int64) string {
	return fmt.Sprintf(`{"id": %q, "client_reference_id": %q, "payment_status": "paid", "amount_total": %d, "currency": "cny"}`,
		id, tradeNo, amountTotal)
}

func (s *PaymentModuleTestSuite) getEpayCallback(t *testing.T, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	req, err := http.NewRequest(http.MethodGet, "/pay/callback/epay?"+query.Encode(), nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func signedEpayParams(sn, tradeNo, money, status string) map[string]string {
	params := map[string]string{
		"pid":          startup.EpayCfg.PID,
		"trade_no":     tradeNo,
		"out_trade_no": sn,
		"type":         startup.EpayCfg.PayType,
		"money":        money,
		"trade_status": status,
	}
	params["sign"] = epaySign(params, startup.EpayCfg.Key)
	params["sign_type"] = "MD5"
	return params
}

// epaySign 按易支付协议重新实现一遍签名, 用来伪造网关的异步通知:
// 参数名 ASCII 升序拼接非空参数, 跳过 sign 和 sign_type, 末尾拼上商户密钥取 MD5
func epaySign(params map[string]string, key string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || k == "sign_type" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := md5.Sum([]byte(strings.Join(pairs, "&") + key))
	return hex.EncodeToString(sum[:])
}

func (s *PaymentModuleTestSuite) consumePaymentEvent(t *testing.T) event.PaymentEvent {
	t.Helper()
	msg, err := s.events.Consume(context.Background())
	require.NoError(t, err)
	var evt event.PaymentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func (s *PaymentModuleTestSuite) TestService_GetPaymentChannels() {
	t := s.T()

	channels := s.svc.GetPaymentChannels(context.Background())

	assert.Equal(t, []payment.Channel{
		{Type: payment.ChannelTypeBalance, Desc: "余额"},
		{Type: payment.ChannelTypeWechat, Desc: "微信扫码"},
		{Type: payment.ChannelTypeStripeCheckout, Desc: "Stripe收银台"},
		{Type: payment.ChannelTypeStripeIntent, Desc: "Stripe支付"},
		{Type: payment.ChannelTypeEpay, Desc: "聚合支付"},
	}, channels)
}

func (s *PaymentModuleTestSuite) TestService_CreatePayment() {
	t := s.T()

	t.Run("多渠道组合创建成功", func(t *testing.T) {
		pmt := s.createPayment(3001, "OrderSN-create-1", []payment.Record{
			{Channel: payment.ChannelTypeBalance, Amount: 330},
			{Channel: payment.ChannelTypeWechat, Amount: 660},
		})

		assert.NotZero(t, pmt.ID)
		assert.NotEmpty(t, pmt.SN)
		assert.Equal(t, payment.StatusUnpaid, pmt.Status)
		assert.Equal(t, "CNY", pmt.Currency)
		assert.True(t, pmt.Deadline > time.Now().UnixMilli())
		require.Len(t, pmt.Records, 2)
		for _, r := range pmt.Records {
			assert.Equal(t, payment.StatusUnpaid, r.Status)
			// 渠道记录没写描述时用订单描述兜底
			assert.Equal(t, "黄金会员-月付", r.Description)
		}
	})

	t.Run("重复创建返回已有支付", func(t *testing.T) {
		records := []payment.Record{{Channel: payment.ChannelTypeBalance, Amount: 990}}
		first := s.createPayment(3002, "OrderSN-create-2", records)
		second := s.createPayment(3002, "OrderSN-create-2", records)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.SN, second.SN)
	})

	t.Run("渠道金额之和与总金额不一致", func(t *testing.T) {
		_, err := s.svc.CreatePayment(context.Background(), payment.Payment{
			OrderID:          3003,
			OrderSN:          "OrderSN-create-3",
			PayerID:          testUID,
			OrderDescription: "黄金会员-月付",
			TotalAmount:      1000,
			Records: []payment.Record{
				{Channel: payment.ChannelTypeBalance, Amount: 330},
				{Channel: payment.ChannelTypeWechat, Amount: 660},
			},
		})
		assert.ErrorIs(t, err, service.ErrInvalidAmount)
	})

	t.Run("未知的支付渠道", func(t *testing.T) {
		_, err := s.svc.CreatePayment(context.Background(), payment.Payment{
			OrderID:          3004,
			OrderSN:          "OrderSN-create-4",
			PayerID:          testUID,
			OrderDescription: "黄金会员-月付",
			TotalAmount:      990,
			Records: []payment.Record{
				{Channel: payment.ChannelType(9), Amount: 990},
			},
		})
		assert.ErrorIs(t, err, service.ErrUnknownChannel)
	})
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_BalanceOnly() {
	t := s.T()

	pmt := s.createPayment(3101, "OrderSN-pay-balance-1", []payment.Record{
		{Channel: payment.ChannelTypeBalance, Amount: 990},
	})

	s.walletSvc.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account wallet.Account) (int64, error) {
			require.Equal(t, testUID, account.Uid)
			require.Len(t, account.Logs, 1)
			require.Equal(t, pmt.SN, account.Logs[0].BizSN)
			require.Equal(t, int64(-990), account.Logs[0].ChangeAmount)
			return int64(1001), nil
		})
	s.walletSvc.EXPECT().ConfirmDeduct(gomock.Any(), testUID, int64(1001)).Return(nil)

	recorder := s.postPay(t, pmt.SN)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.Payment]{
		Data: web.Payment{
			SN:          pmt.SN,
			OrderSN:     "OrderSN-pay-balance-1",
			TotalAmount: 990,
			Currency:    "CNY",
			Deadline:    pmt.Deadline,
			Status:      payment.StatusPaidSuccess.ToUint8(),
			Records: []web.PaymentRecord{
				{Channel: payment.ChannelTypeBalance.ToUint8(), Amount: 990},
			},
		},
	}, recorder.MustScan())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Status)
	assert.True(t, saved.PaidAt > 0)
	require.Len(t, saved.Records, 1)
	assert.Equal(t, "1001", saved.Records[0].PaymentNO3rd)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Records[0].Status)
	assert.True(t, saved.Records[0].PaidAt > 0)

	evt := s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-pay-balance-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_BalanceAndWechat() {
	t := s.T()

	pmt := s.createPayment(3102, "OrderSN-pay-mixed-1", []payment.Record{
		{Channel: payment.ChannelTypeBalance, Amount: 330},
		{Channel: payment.ChannelTypeWechat, Amount: 660},
	})

	s.walletSvc.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).Return(int64(2001), nil)
	s.nativeAPI.EXPECT().Prepay(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req native.PrepayRequest) (*native.PrepayResponse, *core.APIResult, error) {
			require.Equal(t, pmt.SN, *req.OutTradeNo)
			require.Equal(t, int64(660), *req.Amount.Total)
			return &native.PrepayResponse{
				CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=mock660"),
			}, &core.APIResult{}, nil
		})

	recorder := s.postPay(t, pmt.SN)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.Payment]{
		Data: web.Payment{
			SN:          pmt.SN,
			OrderSN:     "OrderSN-pay-mixed-1",
			TotalAmount: 990,
			Currency:    "CNY",
			Deadline:    pmt.Deadline,
			Status:      payment.StatusProcessing.ToUint8(),
			Records: []web.PaymentRecord{
				{
					Channel:   payment.ChannelTypeWechat.ToUint8(),
					Amount:    660,
					Directive: payment.DirectiveTypeQRCode.ToUint8(),
					QRCodeURL: "weixin://wxpay/bizpayurl?pr=mock660",
				},
				{Channel: payment.ChannelTypeBalance.ToUint8(), Amount: 330},
			},
		},
	}, recorder.MustScan())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusProcessing, saved.Status)
	require.Len(t, saved.Records, 2)
	// 渠道记录按渠道号倒序, 微信在前
	assert.Equal(t, payment.ChannelTypeWechat, saved.Records[0].Channel)
	assert.Equal(t, payment.StatusProcessing, saved.Records[0].Status)
	assert.Equal(t, payment.DirectiveTypeQRCode, saved.Records[0].Directive.Type)
	assert.Equal(t, "weixin://wxpay/bizpayurl?pr=mock660", saved.Records[0].Directive.QRCodeURL)
	assert.Equal(t, payment.ChannelTypeBalance, saved.Records[1].Channel)
	assert.Equal(t, payment.StatusProcessing, saved.Records[1].Status)
	assert.Equal(t, "2001", saved.Records[1].PaymentNO3rd)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_BalanceNotEnough() {
	t := s.T()

	pmt := s.createPayment(3103, "OrderSN-pay-poor-1", []payment.Record{
		{Channel: payment.ChannelTypeBalance, Amount: 990},
	})
	s.walletSvc.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).Return(int64(0), wallet.ErrBalanceNotEnough)

	recorder := s.postPay(t, pmt.SN)

	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.Payment]{
		Code: 504003,
		Msg:  "余额不足",
	}, recorder.MustScan())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_StripeAmountBelowMinimum() {
	t := s.T()

	// 300分按固定汇率换算成 42 美分, 低于 Stripe 的最低收款额
	pmt := s.createPayment(3104, "OrderSN-pay-small-1", []payment.Record{
		{Channel: payment.ChannelTypeStripeCheckout, Amount: 300},
	})

	recorder := s.postPay(t, pmt.SN)

	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[web.Payment]{
		Code: 504004,
		Msg:  "支付金额低于渠道最低限额",
	}, recorder.MustScan())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_PaymentNotFound() {
	t := s.T()

	t.Run("支付记录不存在", func(t *testing.T) {
		recorder := s.postPay(t, "PaymentSN-not-exist")

		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, test.Result[web.Payment]{
			Code: 504002,
			Msg:  "支付记录不存在",
		}, recorder.MustScan())
	})

	t.Run("支付记录不属于当前用户", func(t *testing.T) {
		pmt, err := s.svc.CreatePayment(context.Background(), payment.Payment{
			OrderID:          3105,
			OrderSN:          "OrderSN-pay-other-1",
			PayerID:          testUID + 1,
			OrderDescription: "黄金会员-月付",
			TotalAmount:      990,
			Records: []payment.Record{
				{Channel: payment.ChannelTypeBalance, Amount: 990},
			},
		})
		require.NoError(t, err)

		recorder := s.postPay(t, pmt.SN)

		require.Equal(t, 500, recorder.Code)
		assert.Equal(t, test.Result[web.Payment]{
			Code: 504002,
			Msg:  "支付记录不存在",
		}, recorder.MustScan())
	})
}

func (s *PaymentModuleTestSuite) TestHandler_WechatCallback_SettleAndDedupe() {
	t := s.T()

	pmt := s.createPayment(3201, "OrderSN-wechat-1", []payment.Record{
		{Channel: payment.ChannelTypeBalance, Amount: 330},
		{Channel: payment.ChannelTypeWechat, Amount: 660},
	})
	s.walletSvc.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).Return(int64(2101), nil)
	s.nativeAPI.EXPECT().Prepay(gomock.Any(), gomock.Any()).Return(&native.PrepayResponse{
		CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=wechat1"),
	}, &core.APIResult{}, nil)
	require.Equal(t, 200, s.postPay(t, pmt.SN).Code)

	// 微信通知支付成功, 余额预扣随主状态一起确认
	s.expectWechatNotify(wechatTransaction(pmt.SN, "wx-txn-0001", "SUCCESS", 660), nil)
	s.walletSvc.EXPECT().ConfirmDeduct(gomock.Any(), testUID, int64(2101)).Return(nil)
	require.Equal(t, 200, s.postWechatCallback(t).Code)

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Status)
	assert.True(t, saved.PaidAt > 0)
	require.Len(t, saved.Records, 2)
	assert.Equal(t, "wx-txn-0001", saved.Records[0].PaymentNO3rd)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Records[0].Status)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Records[1].Status)

	evt := s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-wechat-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)

	// 重复通知: 照常应答, 但不会二次确认扣款, 也不会再发事件
	s.expectWechatNotify(wechatTransaction(pmt.SN, "wx-txn-0001", "SUCCESS", 660), nil)
	require.Equal(t, 200, s.postWechatCallback(t).Code)

	// 结算第二笔支付, 下游收到的下一个事件必须属于它,
	// 证明重复通知没有夹带出多余的事件
	pmt2 := s.createPayment(3202, "OrderSN-wechat-2", []payment.Record{
		{Channel: payment.ChannelTypeWechat, Amount: 990},
	})
	s.expectWechatNotify(wechatTransaction(pmt2.SN, "wx-txn-0002", "SUCCESS", 990), nil)
	require.Equal(t, 200, s.postWechatCallback(t).Code)

	evt = s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-wechat-2",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)
}

func (s *PaymentModuleTestSuite) TestHandler_WechatCallback_IgnoresNonTerminalState() {
	t := s.T()

	pmt := s.createPayment(3203, "OrderSN-wechat-3", []payment.Record{
		{Channel: payment.ChannelTypeWechat, Amount: 990},
	})
	s.expectWechatNotify(wechatTransaction(pmt.SN, "wx-txn-0003", "USERPAYING", 990), nil)

	require.Equal(t, 200, s.postWechatCallback(t).Code)

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
}

func (s *PaymentModuleTestSuite) TestHandler_WechatCallback_AmountMismatched() {
	t := s.T()

	pmt := s.createPayment(3204, "OrderSN-wechat-4", []payment.Record{
		{Channel: payment.ChannelTypeWechat, Amount: 990},
	})
	s.expectWechatNotify(wechatTransaction(pmt.SN, "wx-txn-0004", "SUCCESS", 1), nil)

	// 金额对不上重试也无法纠正, 确认掉通知, 支付单留在原状态等人工跟进
	require.Equal(t, 200, s.postWechatCallback(t).Code)

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
	require.Len(t, saved.Records, 1)
	assert.Empty(t, saved.Records[0].PaymentNO3rd)
}

func (s *PaymentModuleTestSuite) TestHandler_WechatCallback_UnknownPayment() {
	t := s.T()

	s.expectWechatNotify(wechatTransaction("PaymentSN-ghost", "wx-txn-0005", "SUCCESS", 990), nil)

	require.Equal(t, 200, s.postWechatCallback(t).Code)
}

func (s *PaymentModuleTestSuite) TestHandler_WechatCallback_ParseFailure() {
	t := s.T()

	s.expectWechatNotify(payments.Transaction{}, errors.New("回调验签失败"))

	// 非 2xx 应答, 微信会按退避策略重发
	require.Equal(t, 500, s.postWechatCallback(t).Code)
}

func (s *PaymentModuleTestSuite) TestHandler_StripeCallback_SettleAndDedupe() {
	t := s.T()

	pmt := s.createPayment(3301, "OrderSN-stripe-1", []payment.Record{
		{Channel: payment.ChannelTypeStripeCheckout, Amount: 990},
	})

	payload, sig := s.expectStripeEvent("checkout.session.completed",
		checkoutSessionPayload("cs_live_0001", pmt.SN, 990))
	require.Equal(t, 200, s.postStripeCallback(t, payload, sig).Code)

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Status)
	assert.True(t, saved.PaidAt > 0)
	require.Len(t, saved.Records, 1)
	assert.Equal(t, "cs_live_0001", saved.Records[0].PaymentNO3rd)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Records[0].Status)

	evt := s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-stripe-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)

	// Stripe 重复投递同一事件
	payload, sig = s.expectStripeEvent("checkout.session.completed",
		checkoutSessionPayload("cs_live_0001", pmt.SN, 990))
	require.Equal(t, 200, s.postStripeCallback(t, payload, sig).Code)

	// 第二笔支付结算后, 下一个事件必须属于它
	pmt2 := s.createPayment(3302, "OrderSN-stripe-2", []payment.Record{
		{Channel: payment.ChannelTypeStripeCheckout, Amount: 1399},
	})
	payload, sig = s.expectStripeEvent("checkout.session.completed",
		checkoutSessionPayload("cs_live_0002", pmt2.SN, 1399))
	require.Equal(t, 200, s.postStripeCallback(t, payload, sig).Code)

	evt = s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-stripe-2",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)
}

func (s *PaymentModuleTestSuite) TestHandler_StripeCallback_VerificationFailure() {
	t := s.T()

	payload := []byte(`{"id": "evt_bad"}`)
	sig := "t=1,v1=bad-signature"
	s.verifier.EXPECT().ConstructEvent(payload, sig).Return(stripego.Event{}, errors.New("签名不匹配"))

	require.Equal(t, 400, s.postStripeCallback(t, payload, sig).Code)
}

func (s *PaymentModuleTestSuite) TestHandler_StripeCallback_UnregisteredEvent() {
	t := s.T()

	payload := []byte(`{"id": "evt_invoice"}`)
	sig := "t=2,v1=unregistered"
	s.verifier.EXPECT().ConstructEvent(payload, sig).Return(stripego.Event{
		Type: "invoice.paid",
		Data: &stripego.EventData{Raw: json.RawMessage(`{"id": "in_0001"}`)},
	}, nil)

	require.Equal(t, 200, s.postStripeCallback(t, payload, sig).Code)
}

func (s *PaymentModuleTestSuite) TestHandler_StripeCallback_AmountMismatched() {
	t := s.T()

	pmt := s.createPayment(3303, "OrderSN-stripe-3", []payment.Record{
		{Channel: payment.ChannelTypeStripeCheckout, Amount: 990},
	})
	payload, sig := s.expectStripeEvent("checkout.session.completed",
		checkoutSessionPayload("cs_live_0003", pmt.SN, 1))

	require.Equal(t, 200, s.postStripeCallback(t, payload, sig).Code)

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
	require.Len(t, saved.Records, 1)
	assert.Empty(t, saved.Records[0].PaymentNO3rd)
}

func (s *PaymentModuleTestSuite) TestHandler_EpayCallback_SettleAndDedupe() {
	t := s.T()

	pmt := s.createPayment(3401, "OrderSN-epay-1", []payment.Record{
		{Channel: payment.ChannelTypeEpay, Amount: 9990},
	})

	params := signedEpayParams(pmt.SN, "EP20240601800001", "99.90", "TRADE_SUCCESS")
	recorder := s.getEpayCallback(t, params)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "success", recorder.Body.String())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Status)
	require.Len(t, saved.Records, 1)
	assert.Equal(t, "EP20240601800001", saved.Records[0].PaymentNO3rd)
	assert.Equal(t, payment.StatusPaidSuccess, saved.Records[0].Status)

	evt := s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-epay-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)

	// 网关重发同一条通知
	recorder = s.getEpayCallback(t, params)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "success", recorder.Body.String())

	// 第二笔支付结算后, 下一个事件必须属于它
	pmt2 := s.createPayment(3402, "OrderSN-epay-2", []payment.Record{
		{Channel: payment.ChannelTypeEpay, Amount: 12000},
	})
	recorder = s.getEpayCallback(t, signedEpayParams(pmt2.SN, "EP20240601800002", "120.00", "TRADE_SUCCESS"))
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "success", recorder.Body.String())

	evt = s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-epay-2",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)
}

func (s *PaymentModuleTestSuite) TestHandler_EpayCallback_TamperedSignature() {
	t := s.T()

	pmt := s.createPayment(3403, "OrderSN-epay-3", []payment.Record{
		{Channel: payment.ChannelTypeEpay, Amount: 9990},
	})
	params := signedEpayParams(pmt.SN, "EP20240601800003", "99.90", "TRADE_SUCCESS")
	// 签名之后改金额
	params["money"] = "0.01"

	recorder := s.getEpayCallback(t, params)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "fail", recorder.Body.String())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
}

func (s *PaymentModuleTestSuite) TestHandler_EpayCallback_IgnoredStatus() {
	t := s.T()

	pmt := s.createPayment(3404, "OrderSN-epay-4", []payment.Record{
		{Channel: payment.ChannelTypeEpay, Amount: 9990},
	})

	recorder := s.getEpayCallback(t, signedEpayParams(pmt.SN, "EP20240601800004", "99.90", "TRADE_CLOSED"))

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "success", recorder.Body.String())

	saved := s.findPayment(t, pmt.SN)
	assert.Equal(t, payment.StatusUnpaid, saved.Status)
}

func (s *PaymentModuleTestSuite) TestJob_SyncProviderPayment() {
	t := s.T()

	// 微信渠道支持主动查询
	pmt1 := s.createPayment(3501, "OrderSN-sync-1", []payment.Record{
		{Channel: payment.ChannelTypeWechat, Amount: 990},
	})
	s.nativeAPI.EXPECT().Prepay(gomock.Any(), gomock.Any()).Return(&native.PrepayResponse{
		CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=sync1"),
	}, &core.APIResult{}, nil)
	require.Equal(t, 200, s.postPay(t, pmt1.SN).Code)

	// 易支付渠道不支持查询, 只能超时关闭
	pmt2 := s.createPayment(3502, "OrderSN-sync-2", []payment.Record{
		{Channel: payment.ChannelTypeEpay, Amount: 9990},
	})

	// 把两笔支付拨回超时窗口之前
	expiredUtime := time.Now().Add(-time.Hour).UnixMilli()
	err := s.db.Exec("UPDATE `payments` SET utime = ? WHERE sn IN (?, ?)",
		expiredUtime, pmt1.SN, pmt2.SN).Error
	require.NoError(t, err)

	s.nativeAPI.EXPECT().QueryOrderByOutTradeNo(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req native.QueryOrderByOutTradeNoRequest) (*payments.Transaction, *core.APIResult, error) {
			require.Equal(t, pmt1.SN, *req.OutTradeNo)
			txn := wechatTransaction(pmt1.SN, "wx-txn-sync-1", "SUCCESS", 990)
			return &txn, &core.APIResult{}, nil
		})

	job := s.module.SyncProviderPaymentJob
	require.Equal(t, "sync_provider_payment_job", job.Name())
	require.NoError(t, job.Run(context.Background()))

	saved1 := s.findPayment(t, pmt1.SN)
	assert.Equal(t, payment.StatusPaidSuccess, saved1.Status)
	require.Len(t, saved1.Records, 1)
	assert.Equal(t, "wx-txn-sync-1", saved1.Records[0].PaymentNO3rd)

	saved2 := s.findPayment(t, pmt2.SN)
	assert.Equal(t, payment.StatusTimeoutClosed, saved2.Status)

	evt := s.consumePaymentEvent(t)
	assert.Equal(t, event.PaymentEvent{
		OrderSN: "OrderSN-sync-1",
		PayerID: testUID,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}, evt)
}
