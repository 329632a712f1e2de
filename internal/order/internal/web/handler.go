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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/service"
	"github.com/ecodeclub/subpay/internal/payment"
	"github.com/ecodeclub/subpay/internal/pkg/sequencenumber"
	"github.com/ecodeclub/subpay/internal/plan"
	"github.com/ecodeclub/subpay/internal/wallet"
	"github.com/gin-gonic/gin"
)

// createOrderRequestTTL 请求ID去重键的保留时间
const createOrderRequestTTL = time.Hour

var (
	_ ginx.Handler = (*Handler)(nil)

	errInvalidOrderItems = errors.New("订单商品非法")
)

type Handler struct {
	svc         service.Service
	paymentSvc  payment.Service
	planSvc     plan.Service
	walletSvc   wallet.Service
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
}

func NewHandler(svc service.Service, paymentSvc payment.Service, planSvc plan.Service,
	walletSvc wallet.Service, snGenerator *sequencenumber.Generator, cache ecache.Cache) *Handler {
	return &Handler{
		svc:         svc,
		paymentSvc:  paymentSvc,
		planSvc:     planSvc,
		walletSvc:   walletSvc,
		snGenerator: snGenerator,
		cache:       cache,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/preview", ginx.BS[PreviewOrderReq](h.RetrievePreviewOrder))
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrderAndPayment))
	g.POST("", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// RetrievePreviewOrder 获取订单预览信息, 此时订单尚未创建
func (h *Handler) RetrievePreviewOrder(ctx *ginx.Context, req PreviewOrderReq, sess session.Session) (ginx.Result, error) {
	plans := make([]Plan, 0, len(req.Plans))
	for _, p := range req.Plans {
		pp, err := h.planSvc.FindPlanBySN(ctx.Request.Context(), p.SN)
		if err != nil {
			return invalidOrderItemsResult, fmt.Errorf("套餐序列号非法: %w", err)
		}
		if p.Quantity < 1 {
			return invalidOrderItemsResult, fmt.Errorf("要购买的套餐数量非法: %d", p.Quantity)
		}
		plans = append(plans, Plan{
			SN:       pp.SN,
			Title:    pp.Title,
			Intro:    pp.Intro,
			Price:    pp.Price,
			Duration: pp.Duration,
			Quantity: p.Quantity,
		})
	}
	balance, err := h.availableBalance(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取用户钱包失败: %w", err)
	}
	return ginx.Result{
		Data: PreviewOrderResp{
			Balance:  balance,
			Channels: h.toPaymentChannelVO(ctx),
			Plans:    plans,
			Policy:   "请注意: 虚拟商品, 一旦支付成功不退、不换, 请谨慎操作",
		},
	}, nil
}

// availableBalance 没有钱包记录的新用户按零余额处理
func (h *Handler) availableBalance(ctx context.Context, uid int64) (int64, error) {
	account, err := h.walletSvc.GetAccountByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, wallet.ErrAccountNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance - account.LockedBalance, nil
}

func (h *Handler) toPaymentChannelVO(ctx *ginx.Context) []PaymentItem {
	pcs := h.paymentSvc.GetPaymentChannels(ctx.Request.Context())
	return slice.Map(pcs, func(idx int, src payment.Channel) PaymentItem {
		return PaymentItem{Type: src.Type.ToUint8(), Desc: src.Desc}
	})
}

// CreateOrderAndPayment 创建订单和支付
func (h *Handler) CreateOrderAndPayment(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}

	order, err := h.createOrder(ctx.Request.Context(), req, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, errInvalidOrderItems) {
			return invalidOrderItemsResult, fmt.Errorf("创建订单失败: %w", err)
		}
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}

	p, err := h.createPayment(ctx.Request.Context(), order, req.PaymentItems)
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建支付失败: %w", err)
	}

	err = h.svc.UpdateOrderPaymentInfo(ctx.Request.Context(), order.BuyerID, order.ID, p.ID, p.SN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("订单冗余支付ID及SN失败: %w", err)
	}

	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:   order.SN,
			PaymentSN: p.SN,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	ok, err := h.cache.SetNX(ctx, h.createOrderRequestKey(requestID), requestID, createOrderRequestTTL)
	if err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return fmt.Errorf("重复请求")
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) createOrder(ctx context.Context, req CreateOrderReq, buyerID int64) (domain.Order, error) {
	orderItems, originalTotalAmt, realTotalAmt, err := h.getOrderItems(ctx, req)
	if err != nil {
		return domain.Order{}, err
	}
	if originalTotalAmt != req.OriginalTotalAmt {
		return domain.Order{}, fmt.Errorf("%w: 总原价不一致", errInvalidOrderItems)
	}
	if realTotalAmt != req.RealTotalAmt {
		return domain.Order{}, fmt.Errorf("%w: 总实价不一致", errInvalidOrderItems)
	}

	orderSN, err := h.snGenerator.Generate(buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	return h.svc.CreateOrder(ctx, domain.Order{
		SN:               orderSN,
		BuyerID:          buyerID,
		OriginalTotalAmt: originalTotalAmt,
		RealTotalAmt:     realTotalAmt,
		ReceiptEmail:     req.ReceiptEmail,
		ReceiptPhone:     req.ReceiptPhone,
		Items:            orderItems,
	})
}

func (h *Handler) getOrderItems(ctx context.Context, req CreateOrderReq) ([]domain.OrderItem, int64, int64, error) {
	if len(req.Plans) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: 套餐信息为空", errInvalidOrderItems)
	}
	orderItems := make([]domain.OrderItem, 0, len(req.Plans))
	originalTotalAmt, realTotalAmt := int64(0), int64(0)
	for _, p := range req.Plans {
		pp, err := h.planSvc.FindPlanBySN(ctx, p.SN)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: 套餐SN=%s: %w", errInvalidOrderItems, p.SN, err)
		}
		if p.Quantity < 1 {
			return nil, 0, 0, fmt.Errorf("%w: 套餐数量=%d", errInvalidOrderItems, p.Quantity)
		}

		item := domain.OrderItem{
			PlanID:    pp.ID,
			PlanSN:    pp.SN,
			PlanTitle: pp.Title,
			Price:     pp.Price,
			Quantity:  p.Quantity,
			Duration:  pp.Duration,
		}
		// 引入优惠券时, 实付价需要按用户优惠信息重新计算
		originalTotalAmt += item.Price * p.Quantity
		realTotalAmt += item.Price * p.Quantity
		orderItems = append(orderItems, item)
	}
	return orderItems, originalTotalAmt, realTotalAmt, nil
}

func (h *Handler) createPayment(ctx context.Context, order domain.Order, paymentItems []PaymentItem) (payment.Payment, error) {
	valid := make(map[payment.ChannelType]struct{})
	for _, c := range h.paymentSvc.GetPaymentChannels(ctx) {
		valid[c.Type] = struct{}{}
	}
	records := make([]payment.Record, 0, len(paymentItems))
	for _, pc := range paymentItems {
		channel := payment.ChannelType(pc.Type)
		if _, ok := valid[channel]; !ok {
			return payment.Payment{}, fmt.Errorf("支付渠道非法: %d", pc.Type)
		}
		records = append(records, payment.Record{
			Amount:  pc.Amount,
			Channel: channel,
		})
	}
	return h.paymentSvc.CreatePayment(ctx, payment.Payment{
		OrderID:          order.ID,
		OrderSN:          order.SN,
		PayerID:          order.BuyerID,
		OrderDescription: h.orderDescription(order),
		TotalAmount:      order.RealTotalAmt,
		Records:          records,
	})
}

// orderDescription 透传给第三方渠道展示给买家
func (h *Handler) orderDescription(order domain.Order) string {
	if len(order.Items) == 1 {
		return order.Items[0].PlanTitle
	}
	return fmt.Sprintf("%s 等%d件", order.Items[0].PlanTitle, len(order.Items))
}

// RetrieveOrderStatus 获取订单状态
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("订单未找到: sn=%s", req.OrderSN)
		}
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			OrderStatus: order.Status.ToUint8(),
		},
	}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		SN:               order.SN,
		Payment:          Payment{SN: order.PaymentSN},
		OriginalTotalAmt: order.OriginalTotalAmt,
		RealTotalAmt:     order.RealTotalAmt,
		Status:           order.Status.ToUint8(),
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				Plan: Plan{
					SN:       src.PlanSN,
					Title:    src.PlanTitle,
					Price:    src.Price,
					Duration: src.Duration,
					Quantity: src.Quantity,
				},
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("订单未找到: sn=%s", req.OrderSN)
		}
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	vo := h.toOrderVO(order)
	if order.PaymentID != 0 {
		paymentInfo, err := h.paymentSvc.FindPaymentByID(ctx.Request.Context(), order.PaymentID)
		if err != nil {
			return systemErrorResult, fmt.Errorf("支付未找到: %w", err)
		}
		vo.Payment.Items = slice.Map(paymentInfo.Records, func(idx int, src payment.Record) PaymentItem {
			return PaymentItem{
				Type:   src.Channel.ToUint8(),
				Amount: src.Amount,
			}
		})
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: vo},
	}, nil
}

// CancelOrder 取消订单
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, fmt.Errorf("订单未找到: sn=%s", req.OrderSN)
		}
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	err = h.svc.CancelOrder(ctx.Request.Context(), order.BuyerID, order.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
