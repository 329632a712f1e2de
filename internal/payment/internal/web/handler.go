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

package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/subpay/internal/payment/internal/service"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/balance"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/epay"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/stripe"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/wechat"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

// maxCallbackBody Stripe 建议限制回调报文大小, 防止恶意大包
const maxCallbackBody = 65536

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc           service.Service
	notifyHandler wechat.NotifyHandler
	nativeSvc     *wechat.NativePaymentService
	stripeWebhook *stripe.WebhookService
	epaySvc       *epay.PaymentService
	l             *elog.Component
}

func NewHandler(svc service.Service,
	notifyHandler wechat.NotifyHandler,
	nativeSvc *wechat.NativePaymentService,
	stripeWebhook *stripe.WebhookService,
	epaySvc *epay.PaymentService) *Handler {
	return &Handler{
		svc:           svc,
		notifyHandler: notifyHandler,
		nativeSvc:     nativeSvc,
		stripeWebhook: stripeWebhook,
		epaySvc:       epaySvc,
		l:             elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/pay", ginx.BS[PayReq](h.Pay))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.Any("/pay/callback/wechat", ginx.W(h.HandleWechatCallback))
	server.POST("/pay/callback/stripe", h.HandleStripeCallback)
	server.Any("/pay/callback/epay", h.HandleEpayCallback)
}

// Pay 买家对自己的支付单发起支付, 返回每个渠道的支付指令
func (h *Handler) Pay(ctx *ginx.Context, req PayReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	pmt, err := h.svc.FindPaymentBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return paymentNotFoundResult, fmt.Errorf("支付记录不存在: sn=%s", req.SN)
		}
		return systemErrorResult, fmt.Errorf("查找支付记录失败: %w", err)
	}
	if pmt.PayerID != uid {
		return paymentNotFoundResult, fmt.Errorf("支付记录不属于当前用户: uid=%d, sn=%s", uid, req.SN)
	}

	paid, err := h.svc.PayByID(ctx.Request.Context(), pmt.ID)
	if err != nil {
		switch {
		case errors.Is(err, balance.ErrBalanceNotEnough):
			return insufficientBalanceResult, fmt.Errorf("余额不足: uid=%d, sn=%s", uid, req.SN)
		case errors.Is(err, stripe.ErrAmountBelowMinimum):
			return amountBelowMinimumResult, fmt.Errorf("支付金额低于渠道最低限额: sn=%s", req.SN)
		default:
			return systemErrorResult, fmt.Errorf("发起支付失败: %w", err)
		}
	}
	return ginx.Result{Data: newPayment(paid)}, nil
}

func (h *Handler) HandleWechatCallback(ctx *ginx.Context) (ginx.Result, error) {
	txn := &payments.Transaction{}
	_, err := h.notifyHandler.ParseNotifyRequest(ctx, ctx.Request, txn)
	if err != nil {
		return ginx.Result{}, fmt.Errorf("解析微信回调失败: %w", err)
	}
	pmt, err := h.nativeSvc.ConvertCallbackTransactionToDomain(txn)
	if err != nil {
		if wechat.IsIgnoredCallback(err) {
			return ginx.Result{}, nil
		}
		return ginx.Result{}, err
	}
	if err = h.svc.HandleCallback(ctx.Request.Context(), pmt); err != nil {
		if h.unrecoverable(err) {
			// 重试也无法纠正, 确认回调后人工跟进
			h.l.Error("处理微信回调失败",
				elog.FieldErr(err),
				elog.String("payment_sn", pmt.SN))
			return ginx.Result{}, nil
		}
		return ginx.Result{}, fmt.Errorf("处理微信回调失败: %w", err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) HandleStripeCallback(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxCallbackBody))
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	res, err := h.stripeWebhook.VerifyAndParse(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		if stripe.IsIgnoredCallback(err) {
			ctx.Status(http.StatusOK)
			return
		}
		h.l.Warn("Stripe回调校验失败", elog.FieldErr(err))
		ctx.Status(http.StatusBadRequest)
		return
	}
	if err = h.svc.HandleCallback(ctx.Request.Context(), res.Payment()); err != nil {
		h.l.Error("处理Stripe回调失败",
			elog.FieldErr(err),
			elog.String("trade_no", res.TradeNo))
		if h.unrecoverable(err) {
			ctx.Status(http.StatusOK)
			return
		}
		// 非 2xx 应答, Stripe 会按退避策略重发
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Status(http.StatusOK)
}

func (h *Handler) HandleEpayCallback(ctx *gin.Context) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.String(http.StatusOK, "fail")
		return
	}
	res, err := h.epaySvc.VerifyCallback(ctx.Request.Form)
	if err != nil {
		if epay.IsIgnoredCallback(err) {
			ctx.String(http.StatusOK, "success")
			return
		}
		h.l.Warn("易支付回调校验失败", elog.FieldErr(err))
		ctx.String(http.StatusOK, "fail")
		return
	}
	if err = h.svc.HandleCallback(ctx.Request.Context(), res.Payment()); err != nil {
		h.l.Error("处理易支付回调失败",
			elog.FieldErr(err),
			elog.String("trade_no", res.TradeNo))
		if h.unrecoverable(err) {
			ctx.String(http.StatusOK, "success")
			return
		}
		ctx.String(http.StatusOK, "fail")
		return
	}
	ctx.String(http.StatusOK, "success")
}

// unrecoverable 渠道重发回调也无法纠正的错误, 确认掉避免无意义的重试
func (h *Handler) unrecoverable(err error) bool {
	return errors.Is(err, service.ErrPaymentNotFound) ||
		errors.Is(err, service.ErrCallbackAmountMismatched)
}
