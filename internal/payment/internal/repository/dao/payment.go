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

	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = gorm.ErrRecordNotFound
)

type PaymentDAO interface {
	FindOrCreate(ctx context.Context, pmt Payment, records []PaymentRecord) (Payment, []PaymentRecord, error)
	FindPaymentByID(ctx context.Context, pmtID int64) (Payment, []PaymentRecord, error)
	FindPaymentBySN(ctx context.Context, sn string) (Payment, []PaymentRecord, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (Payment, []PaymentRecord, error)
	FindRecordsByPaymentID(ctx context.Context, pmtID int64) ([]PaymentRecord, error)
	Update(ctx context.Context, pmt Payment, records []PaymentRecord) error
	// MarkTerminalBySN 只把未到终态的支付推进到终态, 返回受影响的主记录行数
	// 返回 0 表示支付已经是终态, 渠道记录不会被改动
	MarkTerminalBySN(ctx context.Context, pmt Payment, records []PaymentRecord) (int64, error)
	FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]Payment, error)
	CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error)
}

type PaymentGORMDAO struct {
	db *gorm.DB
}

func NewPaymentGORMDAO(db *gorm.DB) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) FindOrCreate(ctx context.Context, pmt Payment, records []PaymentRecord) (Payment, []PaymentRecord, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		pmt.Ctime, pmt.Utime = now, now
		if err := tx.FirstOrCreate(&pmt, "order_id = ? AND order_sn = ?", pmt.OrderId, pmt.OrderSn).Error; err != nil {
			return fmt.Errorf("创建支付主记录失败: %w", err)
		}
		for i := 0; i < len(records); i++ {
			records[i].PaymentId = pmt.Id
			records[i].Ctime, records[i].Utime = now, now
			if err := tx.FirstOrCreate(&records[i], "payment_id = ? AND channel = ?", records[i].PaymentId, records[i].Channel).Error; err != nil {
				return fmt.Errorf("创建支付渠道记录失败: %w", err)
			}
		}
		return nil
	})
	return pmt, records, err
}

func (g *PaymentGORMDAO) FindPaymentByID(ctx context.Context, pmtID int64) (Payment, []PaymentRecord, error) {
	var (
		eg      errgroup.Group
		pmt     Payment
		records []PaymentRecord
	)
	eg.Go(func() error {
		return g.db.WithContext(ctx).Where("id = ?", pmtID).First(&pmt).Error
	})
	eg.Go(func() error {
		return g.db.WithContext(ctx).Where("payment_id = ?", pmtID).Order("channel desc").Find(&records).Error
	})
	return pmt, records, eg.Wait()
}

func (g *PaymentGORMDAO) FindPaymentBySN(ctx context.Context, sn string) (Payment, []PaymentRecord, error) {
	var pmt Payment
	if err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&pmt).Error; err != nil {
		return Payment{}, nil, err
	}
	records, err := g.FindRecordsByPaymentID(ctx, pmt.Id)
	return pmt, records, err
}

func (g *PaymentGORMDAO) FindPaymentByOrderSN(ctx context.Context, orderSN string) (Payment, []PaymentRecord, error) {
	var pmt Payment
	if err := g.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&pmt).Error; err != nil {
		return Payment{}, nil, err
	}
	records, err := g.FindRecordsByPaymentID(ctx, pmt.Id)
	return pmt, records, err
}

func (g *PaymentGORMDAO) FindRecordsByPaymentID(ctx context.Context, pmtID int64) ([]PaymentRecord, error) {
	var records []PaymentRecord
	err := g.db.WithContext(ctx).Where("payment_id = ?", pmtID).Order("channel desc").Find(&records).Error
	return records, err
}

// Update 预支付之后回填渠道信息, 主记录按 SN 定位, 渠道记录按 payment_id+channel 定位
func (g *PaymentGORMDAO) Update(ctx context.Context, pmt Payment, records []PaymentRecord) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pmt.Utime = now
		if err := tx.Model(&Payment{}).Where("sn = ?", pmt.SN).Updates(&pmt).Error; err != nil {
			return fmt.Errorf("更新支付主记录失败: %w", err)
		}
		for i := 0; i < len(records); i++ {
			records[i].Utime = now
			if err := tx.Model(&PaymentRecord{}).
				Where("payment_id = ? AND channel = ?", pmt.Id, records[i].Channel).
				Updates(&records[i]).Error; err != nil {
				return fmt.Errorf("更新支付渠道记录失败: %w", err)
			}
		}
		return nil
	})
}

func (g *PaymentGORMDAO) MarkTerminalBySN(ctx context.Context, pmt Payment, records []PaymentRecord) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Payment{}).
			Where("sn = ? AND status IN ?", pmt.SN, nonTerminalStatuses()).
			Updates(map[string]any{
				"status":  pmt.Status,
				"paid_at": pmt.PaidAt,
				"utime":   now,
			})
		if res.Error != nil {
			return fmt.Errorf("更新支付主记录失败: %w", res.Error)
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		var p Payment
		if err := tx.Where("sn = ?", pmt.SN).First(&p).Error; err != nil {
			return fmt.Errorf("查找支付主记录失败: %w", err)
		}
		for i := 0; i < len(records); i++ {
			vals := map[string]any{
				"status":  records[i].Status,
				"paid_at": records[i].PaidAt,
				"utime":   now,
			}
			if records[i].PaymentNO3rd.Valid {
				vals["payment_no_3rd"] = records[i].PaymentNO3rd
			}
			if err := tx.Model(&PaymentRecord{}).
				Where("payment_id = ? AND channel = ?", p.Id, records[i].Channel).
				Updates(vals).Error; err != nil {
				return fmt.Errorf("更新支付渠道记录失败: %w", err)
			}
		}
		return nil
	})
	return affected, err
}

func (g *PaymentGORMDAO) FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("status IN ? AND utime < ?", nonTerminalStatuses(), ctime).
		Offset(offset).Limit(limit).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Payment{}).
		Where("status IN ? AND utime < ?", nonTerminalStatuses(), ctime).
		Count(&res).Error
	return res, err
}

func nonTerminalStatuses() []uint8 {
	return []uint8{
		domain.PaymentStatusUnpaid.ToUint8(),
		domain.PaymentStatusProcessing.ToUint8(),
	}
}

type Payment struct {
	Id               int64          `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN               string         `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	PayerId          int64          `gorm:"index:idx_payer_id,comment:支付者ID"`
	OrderId          int64          `gorm:"uniqueIndex:uniq_order_id,comment:订单自增ID,冗余允许为NULL"`
	OrderSn          sql.NullString `gorm:"type:varchar(255);uniqueIndex:uniq_order_sn;comment:订单序列号,冗余允许为NULL"`
	OrderDescription string         `gorm:"type:varchar(255);not null;comment:订单简要描述"`
	TotalAmount      int64          `gorm:"not null;comment:支付总金额, 多种支付方式支付金额的总和"`
	Currency         string         `gorm:"type:varchar(8);not null;default:CNY;comment:展示货币"`
	Deadline         int64          `gorm:"comment:支付截止时间"`
	PaidAt           int64          `gorm:"comment:支付时间"`
	Status           uint8          `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=未支付 2=支付中 3=支付成功 4=支付失败 5=超时关闭 6=已退款"`
	Ctime            int64
	Utime            int64
}

type PaymentRecord struct {
	Id           int64          `gorm:"primaryKey;autoIncrement;comment:支付记录自增ID"`
	PaymentId    int64          `gorm:"not null;uniqueIndex:unq_idx_payment_id_channel;comment:支付自增ID"`
	PaymentNO3rd sql.NullString `gorm:"column:payment_no_3rd;type:varchar(255);uniqueIndex:uniq_payment_no_3rd;comment:支付单号, 支付渠道的事务ID"`
	Description  string         `gorm:"type:varchar(255);not null;comment:本次支付的简要描述"`
	Channel      uint8          `gorm:"type:tinyint unsigned;not null;default:1;uniqueIndex:unq_idx_payment_id_channel;comment:支付渠道 1=余额 2=微信 3=Stripe收银台 4=StripeIntent 5=易支付"`
	Amount       int64          `gorm:"not null;comment:支付金额, 展示货币最小单位"`
	// 渠道以非人民币结算时记录换算后的金额, 回调对账用
	ChannelAmount    int64  `gorm:"not null;default:0;comment:渠道结算金额, 渠道货币最小单位"`
	ChannelCurrency  string `gorm:"type:varchar(8);not null;default:'';comment:渠道结算货币"`
	DirectiveType    uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:支付指令类型 1=跳转链接 2=二维码 3=客户端密钥"`
	DirectivePayload string `gorm:"type:varchar(512);not null;default:'';comment:支付指令内容"`
	PaidAt           int64  `gorm:"comment:支付时间"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=未支付 2=支付中 3=支付成功 4=支付失败 5=超时关闭 6=已退款"`
	Ctime            int64
	Utime            int64
}
