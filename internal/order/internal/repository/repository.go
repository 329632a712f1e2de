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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound = dao.ErrOrderNotFound
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrderPaymentInfo(ctx context.Context, buyerID, orderID, paymentID int64, paymentSN string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	// SettleOrderBySN 幂等结算, 重复投递的支付成功通知靠返回值区分
	SettleOrderBySN(ctx context.Context, sn string) (domain.SettleOutcome, domain.Order, error)
	FailOrderBySN(ctx context.Context, sn string) error
	CancelOrder(ctx context.Context, buyerID, orderID int64) (int64, error)
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	TotalOrders(ctx context.Context, uid int64) (int64, error)
	ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error)
	CloseExpiredOrders(ctx context.Context, orderIDs []int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) UpdateOrderPaymentInfo(ctx context.Context, buyerID, orderID, paymentID int64, paymentSN string) error {
	return o.d.UpdateOrderPaymentInfo(ctx, buyerID, orderID, paymentID, paymentSN)
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) SettleOrderBySN(ctx context.Context, sn string) (domain.SettleOutcome, domain.Order, error) {
	affected, err := o.d.MarkSuccessBySN(ctx, sn)
	if err != nil {
		return 0, domain.Order{}, fmt.Errorf("结算订单失败: %w", err)
	}
	order, err := o.FindOrderBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, dao.ErrOrderNotFound) {
			return domain.OutcomeNotFound, domain.Order{}, nil
		}
		return 0, domain.Order{}, fmt.Errorf("结算后查找订单失败: %w", err)
	}
	if affected > 0 {
		return domain.OutcomeSettled, order, nil
	}
	if order.Status == domain.StatusSuccess {
		return domain.OutcomeAlreadyPaid, order, nil
	}
	return domain.OutcomeClosed, order, nil
}

func (o *orderRepository) FailOrderBySN(ctx context.Context, sn string) error {
	_, err := o.d.MarkFailedBySN(ctx, sn)
	return err
}

func (o *orderRepository) CancelOrder(ctx context.Context, buyerID, orderID int64) (int64, error) {
	return o.d.CancelOrder(ctx, buyerID, orderID)
}

func (o *orderRepository) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		items, er := o.d.FindOrderItemsByOrderID(ctx, src.Id)
		if er != nil {
			return nil, er
		}
		res = append(res, o.toOrderDomain(src, items))
	}
	return res, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, uid int64) (int64, error) {
	return o.d.Count(ctx, uid)
}

func (o *orderRepository) ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := o.d.ListExpiredOrders(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error) {
	return o.d.TotalExpiredOrders(ctx, ctime)
}

func (o *orderRepository) CloseExpiredOrders(ctx context.Context, orderIDs []int64) error {
	return o.d.CloseExpiredOrders(ctx, orderIDs)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:               order.ID,
		SN:               order.SN,
		BuyerId:          order.BuyerID,
		PaymentId:        sql.NullInt64{Int64: order.PaymentID, Valid: order.PaymentID != 0},
		PaymentSn:        sql.NullString{String: order.PaymentSN, Valid: order.PaymentSN != ""},
		OriginalTotalAmt: order.OriginalTotalAmt,
		RealTotalAmt:     order.RealTotalAmt,
		ReceiptEmail:     sql.NullString{String: order.ReceiptEmail, Valid: order.ReceiptEmail != ""},
		ReceiptPhone:     sql.NullString{String: order.ReceiptPhone, Valid: order.ReceiptPhone != ""},
		ClosedAt:         order.ClosedAt,
		Status:           order.Status.ToUint8(),
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			PlanId:    src.PlanID,
			PlanSn:    src.PlanSN,
			PlanTitle: src.PlanTitle,
			Price:     src.Price,
			Quantity:  src.Quantity,
			Duration:  src.Duration,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:               order.Id,
		SN:               order.SN,
		BuyerID:          order.BuyerId,
		PaymentID:        order.PaymentId.Int64,
		PaymentSN:        order.PaymentSn.String,
		OriginalTotalAmt: order.OriginalTotalAmt,
		RealTotalAmt:     order.RealTotalAmt,
		ReceiptEmail:     order.ReceiptEmail.String,
		ReceiptPhone:     order.ReceiptPhone.String,
		ClosedAt:         order.ClosedAt,
		Status:           domain.OrderStatus(order.Status),
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				PlanID:    src.PlanId,
				PlanSN:    src.PlanSn,
				PlanTitle: src.PlanTitle,
				Price:     src.Price,
				Quantity:  src.Quantity,
				Duration:  src.Duration,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
