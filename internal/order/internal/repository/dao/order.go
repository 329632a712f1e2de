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

package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	UpdateOrderPaymentInfo(ctx context.Context, uid, oid, pid int64, psn string) error
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	// MarkSuccessBySN 只把未到终态的订单推进到支付成功, 返回受影响行数
	// 返回 0 说明订单不存在或已经是终态, 由上层查单区分
	MarkSuccessBySN(ctx context.Context, sn string) (int64, error)
	MarkFailedBySN(ctx context.Context, sn string) (int64, error)
	// CancelOrder 买家主动取消, 只允许取消未到终态的订单
	CancelOrder(ctx context.Context, uid, oid int64) (int64, error)
	List(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error)
	CloseExpiredOrders(ctx context.Context, orderIDs []int64) error
}

type OrderGORMDAO struct {
	db *gorm.DB
}

func NewOrderGORMDAO(db *gorm.DB) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("创建订单失败: %w", err)
		}
		for i := 0; i < len(items); i++ {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("创建订单项失败: %w", err)
		}
		return nil
	})
	return order.Id, err
}

// UpdateOrderPaymentInfo 冗余支付ID及SN, 同时把订单推进到支付中
func (g *OrderGORMDAO) UpdateOrderPaymentInfo(ctx context.Context, uid, oid, pid int64, psn string) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND buyer_id = ?", oid, uid).
		Updates(map[string]any{
			"payment_id": sql.NullInt64{Int64: pid, Valid: true},
			"payment_sn": sql.NullString{String: psn, Valid: true},
			"status":     domain.StatusProcessing.ToUint8(),
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (g *OrderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var order Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&order).Error
	return order, err
}

func (g *OrderGORMDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var order Order
	err := g.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&order).Error
	return order, err
}

func (g *OrderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", oid).Find(&items).Error
	return items, err
}

func (g *OrderGORMDAO) MarkSuccessBySN(ctx context.Context, sn string) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status IN ?", sn, nonTerminalStatuses()).
		Updates(map[string]any{
			"status": domain.StatusSuccess.ToUint8(),
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *OrderGORMDAO) MarkFailedBySN(ctx context.Context, sn string) (int64, error) {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status IN ?", sn, nonTerminalStatuses()).
		Updates(map[string]any{
			"status":    domain.StatusFailed.ToUint8(),
			"closed_at": now,
			"utime":     now,
		})
	return res.RowsAffected, res.Error
}

func (g *OrderGORMDAO) CancelOrder(ctx context.Context, uid, oid int64) (int64, error) {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND buyer_id = ? AND status IN ?", oid, uid, nonTerminalStatuses()).
		Updates(map[string]any{
			"status":    domain.StatusCanceled.ToUint8(),
			"closed_at": now,
			"utime":     now,
		})
	return res.RowsAffected, res.Error
}

func (g *OrderGORMDAO) List(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", uid).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", uid).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status IN ? AND ctime < ?", nonTerminalStatuses(), ctime).
		Offset(offset).Limit(limit).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("status IN ? AND ctime < ?", nonTerminalStatuses(), ctime).
		Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CloseExpiredOrders(ctx context.Context, orderIDs []int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status IN ?", orderIDs, nonTerminalStatuses()).
		Updates(map[string]any{
			"status":    domain.StatusTimeoutClosed.ToUint8(),
			"closed_at": now,
			"utime":     now,
		}).Error
}

func nonTerminalStatuses() []uint8 {
	return []uint8{
		domain.StatusInit.ToUint8(),
		domain.StatusProcessing.ToUint8(),
	}
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id,comment:购买者ID"`
	// 创建支付之后回填, 创建时为NULL
	PaymentId        sql.NullInt64  `gorm:"uniqueIndex:uniq_payment_id,comment:支付自增ID,冗余允许为NULL"`
	PaymentSn        sql.NullString `gorm:"type:varchar(255);uniqueIndex:uniq_payment_sn;comment:支付序列号,冗余允许为NULL"`
	OriginalTotalAmt int64          `gorm:"not null;comment:原始总价;单位为分, 999表示9.99元"`
	RealTotalAmt     int64          `gorm:"not null;comment:实付总价;单位为分, 999表示9.99元"`
	ReceiptEmail     sql.NullString `gorm:"type:varchar(255);comment:收据通知邮箱,允许为NULL"`
	ReceiptPhone     sql.NullString `gorm:"type:varchar(32);comment:收据通知手机号,允许为NULL"`
	ClosedAt         int64          `gorm:"comment:订单关闭时间"`
	Status           uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=初始化 2=支付中 3=支付成功 4=支付失败 5=超时关闭 6=已取消 7=转入退款"`
	Ctime            int64
	Utime            int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id,comment:订单自增ID"`
	PlanId    int64  `gorm:"not null;comment:套餐自增ID"`
	PlanSn    string `gorm:"type:varchar(255);not null;index:idx_plan_sn,comment:套餐序列号"`
	PlanTitle string `gorm:"type:varchar(255);not null;comment:套餐标题快照"`
	Price     int64  `gorm:"not null;comment:套餐单价快照;单位为分, 999表示9.99元"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Duration  int64  `gorm:"not null;comment:订阅时长快照, 单位为天"`
	Ctime     int64
	Utime     int64
}
