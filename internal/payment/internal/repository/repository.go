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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/payment/internal/repository/dao"
)

var (
	ErrPaymentNotFound = dao.ErrPaymentNotFound
)

type PaymentRepository interface {
	// CreatePayment 以 OrderSN 去重, 重复创建返回已有的支付
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindPaymentByID(ctx context.Context, pmtID int64) (domain.Payment, error)
	FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// UpdatePayment 预支付之后回填渠道单号、支付指令和状态
	UpdatePayment(ctx context.Context, pmt domain.Payment) error
	// MarkTerminal 把支付推进到终态, 返回 false 表示支付早已是终态
	MarkTerminal(ctx context.Context, pmt domain.Payment) (bool, error)
	FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Payment, error)
	TotalTimeoutPayments(ctx context.Context, ctime int64) (int64, error)
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{
		dao: d,
	}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	e, records, err := p.dao.FindOrCreate(ctx, p.toEntity(pmt),
		slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) dao.PaymentRecord {
			return p.toRecordEntity(src)
		}))
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(e, records), nil
}

func (p *paymentRepository) FindPaymentByID(ctx context.Context, pmtID int64) (domain.Payment, error) {
	pmt, records, err := p.dao.FindPaymentByID(ctx, pmtID)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt, records), nil
}

func (p *paymentRepository) FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, records, err := p.dao.FindPaymentBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("通过支付序列号查找支付失败: %w", err)
	}
	return p.toDomain(pmt, records), nil
}

func (p *paymentRepository) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, records, err := p.dao.FindPaymentByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("通过订单序列号查找支付失败: %w", err)
	}
	return p.toDomain(pmt, records), nil
}

func (p *paymentRepository) UpdatePayment(ctx context.Context, pmt domain.Payment) error {
	return p.dao.Update(ctx, p.toEntity(pmt),
		slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) dao.PaymentRecord {
			return p.toRecordEntity(src)
		}))
}

func (p *paymentRepository) MarkTerminal(ctx context.Context, pmt domain.Payment) (bool, error) {
	affected, err := p.dao.MarkTerminalBySN(ctx, p.toEntity(pmt),
		slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) dao.PaymentRecord {
			return p.toRecordEntity(src)
		}))
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (p *paymentRepository) FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Payment, error) {
	pmts, err := p.dao.FindTimeoutPayments(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Payment, 0, len(pmts))
	for _, pmt := range pmts {
		records, err := p.dao.FindRecordsByPaymentID(ctx, pmt.Id)
		if err != nil {
			return nil, fmt.Errorf("查找支付渠道记录失败: %w", err)
		}
		res = append(res, p.toDomain(pmt, records))
	}
	return res, nil
}

func (p *paymentRepository) TotalTimeoutPayments(ctx context.Context, ctime int64) (int64, error) {
	return p.dao.CountTimeoutPayments(ctx, ctime)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:               pmt.ID,
		SN:               pmt.SN,
		PayerId:          pmt.PayerID,
		OrderId:          pmt.OrderID,
		OrderSn:          sql.NullString{String: pmt.OrderSN, Valid: pmt.OrderSN != ""},
		OrderDescription: pmt.OrderDescription,
		TotalAmount:      pmt.TotalAmount,
		Currency:         pmt.Currency,
		Deadline:         pmt.Deadline,
		PaidAt:           pmt.PaidAt,
		Status:           pmt.Status.ToUint8(),
	}
}

func (p *paymentRepository) toRecordEntity(r domain.PaymentRecord) dao.PaymentRecord {
	return dao.PaymentRecord{
		PaymentNO3rd:     sql.NullString{String: r.PaymentNO3rd, Valid: r.PaymentNO3rd != ""},
		Description:      r.Description,
		Channel:          r.Channel.ToUint8(),
		Amount:           r.Amount,
		ChannelAmount:    r.ChannelAmount,
		ChannelCurrency:  r.ChannelCurrency,
		DirectiveType:    r.Directive.Type.ToUint8(),
		DirectivePayload: directivePayload(r.Directive),
		PaidAt:           r.PaidAt,
		Status:           r.Status.ToUint8(),
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment, records []dao.PaymentRecord) domain.Payment {
	return domain.Payment{
		ID:               pmt.Id,
		SN:               pmt.SN,
		PayerID:          pmt.PayerId,
		OrderID:          pmt.OrderId,
		OrderSN:          pmt.OrderSn.String,
		OrderDescription: pmt.OrderDescription,
		TotalAmount:      pmt.TotalAmount,
		Currency:         pmt.Currency,
		Deadline:         pmt.Deadline,
		PaidAt:           pmt.PaidAt,
		Status:           domain.PaymentStatus(pmt.Status),
		Ctime:            pmt.Ctime,
		Utime:            pmt.Utime,
		Records: slice.Map(records, func(idx int, src dao.PaymentRecord) domain.PaymentRecord {
			return p.toRecordDomain(src)
		}),
	}
}

func (p *paymentRepository) toRecordDomain(r dao.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentNO3rd:    r.PaymentNO3rd.String,
		Description:     r.Description,
		Channel:         domain.ChannelType(r.Channel),
		Amount:          r.Amount,
		ChannelAmount:   r.ChannelAmount,
		ChannelCurrency: r.ChannelCurrency,
		PaidAt:          r.PaidAt,
		Status:          domain.PaymentStatus(r.Status),
		Directive:       toDirective(r.DirectiveType, r.DirectivePayload),
	}
}

func directivePayload(d domain.Directive) string {
	switch d.Type {
	case domain.DirectiveTypeRedirectURL:
		return d.RedirectURL
	case domain.DirectiveTypeQRCode:
		return d.QRCodeURL
	case domain.DirectiveTypeClientSecret:
		return d.ClientSecret
	default:
		return ""
	}
}

func toDirective(typ uint8, payload string) domain.Directive {
	d := domain.Directive{Type: domain.DirectiveType(typ)}
	switch d.Type {
	case domain.DirectiveTypeRedirectURL:
		d.RedirectURL = payload
	case domain.DirectiveTypeQRCode:
		d.QRCodeURL = payload
	case domain.DirectiveTypeClientSecret:
		d.ClientSecret = payload
	}
	return d
}
