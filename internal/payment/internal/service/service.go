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

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
	"github.com/ecodeclub/subpay/internal/payment/internal/event"
	"github.com/ecodeclub/subpay/internal/payment/internal/repository"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/balance"
	"github.com/ecodeclub/subpay/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrPaymentNotFound          = repository.ErrPaymentNotFound
	ErrUnknownChannel           = errors.New("未知的支付渠道")
	ErrInvalidAmount            = errors.New("支付金额非法")
	ErrPaymentTerminated        = errors.New("支付已处于终态")
	ErrCallbackAmountMismatched = errors.New("回调金额与支付记录不一致")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CreatePayment 创建支付及渠道支付记录, 以订单序列号去重, 重复创建返回已有支付
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	GetPaymentChannels(ctx context.Context) []domain.PaymentChannel
	FindPaymentByID(ctx context.Context, pmtID int64) (domain.Payment, error)
	FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// PayByID 执行预支付, 为每条渠道记录生成支付指令
	// 只包含余额渠道的支付没有第三方回调, 预扣成功后当场结清
	PayByID(ctx context.Context, pmtID int64) (domain.Payment, error)
	// HandleCallback 渠道回调、主动同步、超时关闭共同的收口, 第一个推进到终态的生效, 重复调用幂等
	HandleCallback(ctx context.Context, pmt domain.Payment) error
	FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Payment, int64, error)
	CloseTimeoutPayment(ctx context.Context, pmt domain.Payment) error
	SetPaymentStatusPaidFailed(ctx context.Context, pmt domain.Payment) error
	// SyncProviderInfo 主动向第三方渠道查询支付状态, 渠道不支持查询时直接超时关闭
	SyncProviderInfo(ctx context.Context, pmt domain.Payment) error
}

type service struct {
	repo           repository.PaymentRepository
	producer       event.PaymentEventProducer
	snGenerator    *sequencenumber.Generator
	balanceSvc     *balance.PaymentService
	channels       map[domain.ChannelType]ChannelPaymentService
	paymentDDLFunc func() int64
	l              *elog.Component
}

func NewService(repo repository.PaymentRepository,
	producer event.PaymentEventProducer,
	snGenerator *sequencenumber.Generator,
	paymentDDLFunc func() int64,
	balanceSvc *balance.PaymentService,
	channels ...ChannelPaymentService,
) Service {
	m := make(map[domain.ChannelType]ChannelPaymentService, len(channels)+1)
	m[balanceSvc.Name()] = balanceSvc
	for _, ch := range channels {
		m[ch.Name()] = ch
	}
	return &service{
		repo:           repo,
		producer:       producer,
		snGenerator:    snGenerator,
		balanceSvc:     balanceSvc,
		channels:       m,
		paymentDDLFunc: paymentDDLFunc,
		l:              elog.DefaultLogger,
	}
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if err := s.validate(pmt); err != nil {
		return domain.Payment{}, err
	}
	sn, err := s.snGenerator.Generate(pmt.PayerID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成支付序列号失败: %w", err)
	}
	pmt.SN = sn
	pmt.Status = domain.PaymentStatusUnpaid
	pmt.Deadline = s.paymentDDLFunc()
	if pmt.Currency == "" {
		pmt.Currency = domain.DefaultCurrency
	}
	pmt.Records = slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) domain.PaymentRecord {
		src.Status = domain.PaymentStatusUnpaid
		if src.Description == "" {
			src.Description = pmt.OrderDescription
		}
		return src
	})
	return s.repo.CreatePayment(ctx, pmt)
}

func (s *service) validate(pmt domain.Payment) error {
	if pmt.TotalAmount <= 0 || len(pmt.Records) == 0 {
		return fmt.Errorf("%w: 总金额=%d", ErrInvalidAmount, pmt.TotalAmount)
	}
	var sum int64
	for _, r := range pmt.Records {
		if r.Amount <= 0 {
			return fmt.Errorf("%w: 渠道=%d, 金额=%d", ErrInvalidAmount, r.Channel.ToUint8(), r.Amount)
		}
		if _, ok := s.channels[r.Channel]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownChannel, r.Channel.ToUint8())
		}
		sum += r.Amount
	}
	if sum != pmt.TotalAmount {
		return fmt.Errorf("%w: 渠道金额之和=%d, 总金额=%d", ErrInvalidAmount, sum, pmt.TotalAmount)
	}
	return nil
}

func (s *service) GetPaymentChannels(_ context.Context) []domain.PaymentChannel {
	channels := make([]domain.PaymentChannel, 0, len(s.channels))
	for _, ch := range s.channels {
		channels = append(channels, domain.PaymentChannel{Type: ch.Name(), Desc: ch.Desc()})
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Type < channels[j].Type
	})
	return channels
}

func (s *service) FindPaymentByID(ctx context.Context, pmtID int64) (domain.Payment, error) {
	return s.repo.FindPaymentByID(ctx, pmtID)
}

func (s *service) FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error) {
	return s.repo.FindPaymentBySN(ctx, sn)
}

func (s *service) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	return s.repo.FindPaymentByOrderSN(ctx, orderSN)
}

func (s *service) PayByID(ctx context.Context, pmtID int64) (domain.Payment, error) {
	pmt, err := s.repo.FindPaymentByID(ctx, pmtID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("查找支付记录失败: %w", err)
	}
	if pmt.Status.IsTerminal() {
		return domain.Payment{}, fmt.Errorf("%w: status=%d", ErrPaymentTerminated, pmt.Status.ToUint8())
	}
	if err = s.validate(pmt); err != nil {
		return domain.Payment{}, err
	}

	records := make([]domain.PaymentRecord, 0, len(pmt.Records))
	for _, record := range pmt.Records {
		r, err1 := s.channels[record.Channel].Prepay(ctx, pmt, record)
		if err1 != nil {
			s.cancelPrepaidBalance(ctx, pmt.PayerID, records)
			return domain.Payment{}, fmt.Errorf("渠道预支付失败: %w", err1)
		}
		records = append(records, r)
	}
	pmt.Records = records
	pmt.Status = domain.PaymentStatusProcessing
	if err = s.repo.UpdatePayment(ctx, pmt); err != nil {
		s.cancelPrepaidBalance(ctx, pmt.PayerID, records)
		return domain.Payment{}, fmt.Errorf("保存预支付结果失败: %w", err)
	}

	if s.balanceOnly(pmt) {
		if err = s.HandleCallback(ctx, s.asTerminal(pmt, domain.PaymentStatusPaidSuccess, time.Now().UnixMilli())); err != nil {
			return domain.Payment{}, fmt.Errorf("余额支付失败: %w", err)
		}
		return s.repo.FindPaymentByID(ctx, pmtID)
	}
	return pmt, nil
}

// cancelPrepaidBalance 预支付中途失败时释放已预扣的余额
func (s *service) cancelPrepaidBalance(ctx context.Context, payerID int64, records []domain.PaymentRecord) {
	for _, r := range records {
		if r.Channel != domain.ChannelTypeBalance || r.PaymentNO3rd == "" {
			continue
		}
		tid, _ := strconv.ParseInt(r.PaymentNO3rd, 10, 64)
		if err := s.balanceSvc.Cancel(ctx, payerID, tid); err != nil {
			s.l.Error("取消预扣余额失败",
				elog.FieldErr(err),
				elog.Int64("payer_id", payerID),
				elog.Int64("txn_id", tid))
		}
	}
}

func (s *service) balanceOnly(pmt domain.Payment) bool {
	for _, r := range pmt.Records {
		if r.Channel != domain.ChannelTypeBalance {
			return false
		}
	}
	return true
}

func (s *service) asTerminal(pmt domain.Payment, status domain.PaymentStatus, paidAt int64) domain.Payment {
	terminal := pmt
	terminal.Status = status
	terminal.PaidAt = paidAt
	terminal.Records = slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) domain.PaymentRecord {
		src.Status = status
		src.PaidAt = paidAt
		return src
	})
	return terminal
}

func (s *service) HandleCallback(ctx context.Context, pmt domain.Payment) error {
	current, err := s.repo.FindPaymentBySN(ctx, pmt.SN)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return fmt.Errorf("%w: sn=%s", ErrPaymentNotFound, pmt.SN)
		}
		return err
	}
	if err = s.checkCallbackAmount(current, pmt); err != nil {
		return err
	}
	pmt.PayerID = current.PayerID
	pmt.OrderSN = current.OrderSN
	// 回调一般只带外部渠道那一条记录, 其余渠道记录跟随主状态一起推进
	pmt.Records = slice.Map(current.Records, func(idx int, src domain.PaymentRecord) domain.PaymentRecord {
		cbr, ok := slice.Find(pmt.Records, func(r domain.PaymentRecord) bool {
			return r.Channel == src.Channel
		})
		if ok {
			return cbr
		}
		src.Status = pmt.Status
		src.PaidAt = pmt.PaidAt
		return src
	})

	ok, err := s.repo.MarkTerminal(ctx, pmt)
	if err != nil {
		return fmt.Errorf("更新支付状态失败: %w", err)
	}
	if !ok {
		s.l.Warn("支付已是终态, 忽略重复回调",
			elog.String("payment_sn", pmt.SN),
			elog.Any("status", pmt.Status.ToUint8()))
		return nil
	}

	s.settleBalanceRecords(ctx, current, pmt.Status)

	if pmt.Status == domain.PaymentStatusPaidSuccess || pmt.Status == domain.PaymentStatusPaidFailed {
		evt := event.PaymentEvent{
			OrderSN: pmt.OrderSN,
			PayerID: pmt.PayerID,
			Status:  pmt.Status.ToUint8(),
		}
		if err = s.producer.Produce(ctx, evt); err != nil {
			// 结算已落库, 事件丢失依赖对账任务补发
			s.l.Error("发送支付事件失败",
				elog.FieldErr(err),
				elog.Any("event", evt))
		}
	}
	return nil
}

// checkCallbackAmount 渠道上报的金额和本地记录对不上时拒绝结算
func (s *service) checkCallbackAmount(current domain.Payment, cb domain.Payment) error {
	for _, r := range cb.Records {
		if r.ChannelAmount == 0 {
			continue
		}
		local, ok := slice.Find(current.Records, func(src domain.PaymentRecord) bool {
			return src.Channel == r.Channel
		})
		if !ok {
			return fmt.Errorf("%w: 渠道=%d", ErrCallbackAmountMismatched, r.Channel.ToUint8())
		}
		expected := local.ChannelAmount
		if expected == 0 {
			expected = local.Amount
		}
		if r.ChannelAmount != expected {
			return fmt.Errorf("%w: 渠道=%d, 上报=%d, 本地=%d",
				ErrCallbackAmountMismatched, r.Channel.ToUint8(), r.ChannelAmount, expected)
		}
		if r.ChannelCurrency != "" && local.ChannelCurrency != "" &&
			r.ChannelCurrency != local.ChannelCurrency {
			return fmt.Errorf("%w: 渠道=%d, 上报货币=%s, 本地货币=%s",
				ErrCallbackAmountMismatched, r.Channel.ToUint8(), r.ChannelCurrency, local.ChannelCurrency)
		}
	}
	return nil
}

// settleBalanceRecords 支付到达终态后确认或取消余额预扣
// 失败不回滚支付状态, 记录日志走人工对账
func (s *service) settleBalanceRecords(ctx context.Context, current domain.Payment, status domain.PaymentStatus) {
	for _, r := range current.Records {
		if r.Channel != domain.ChannelTypeBalance || r.PaymentNO3rd == "" {
			continue
		}
		tid, _ := strconv.ParseInt(r.PaymentNO3rd, 10, 64)
		var err error
		if status == domain.PaymentStatusPaidSuccess {
			err = s.balanceSvc.Confirm(ctx, current.PayerID, tid)
		} else {
			err = s.balanceSvc.Cancel(ctx, current.PayerID, tid)
		}
		if err != nil {
			s.l.Error("余额渠道结算失败",
				elog.FieldErr(err),
				elog.String("payment_sn", current.SN),
				elog.Int64("payer_id", current.PayerID),
				elog.Int64("txn_id", tid))
		}
	}
}

func (s *service) FindTimeoutPayments(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Payment, int64, error) {
	var (
		eg    errgroup.Group
		pmts  []domain.Payment
		total int64
	)
	eg.Go(func() error {
		var err error
		pmts, err = s.repo.FindTimeoutPayments(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalTimeoutPayments(ctx, ctime)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, fmt.Errorf("查找超时支付失败: %w", err)
	}
	return pmts, total, nil
}

func (s *service) CloseTimeoutPayment(ctx context.Context, pmt domain.Payment) error {
	return s.HandleCallback(ctx, s.asTerminal(pmt, domain.PaymentStatusTimeoutClosed, 0))
}

func (s *service) SetPaymentStatusPaidFailed(ctx context.Context, pmt domain.Payment) error {
	return s.HandleCallback(ctx, s.asTerminal(pmt, domain.PaymentStatusPaidFailed, 0))
}

func (s *service) SyncProviderInfo(ctx context.Context, pmt domain.Payment) error {
	record, ok := slice.Find(pmt.Records, func(src domain.PaymentRecord) bool {
		_, yes := s.queryableChannel(src.Channel)
		return yes
	})
	if !ok {
		return s.CloseTimeoutPayment(ctx, pmt)
	}
	ch, _ := s.queryableChannel(record.Channel)
	cb, err := ch.QueryPayment(ctx, pmt, record)
	if err != nil {
		return fmt.Errorf("查询渠道支付状态失败: %w", err)
	}
	return s.HandleCallback(ctx, cb)
}

func (s *service) queryableChannel(t domain.ChannelType) (QueryablePaymentService, bool) {
	ch, ok := s.channels[t]
	if !ok {
		return nil, false
	}
	q, ok := ch.(QueryablePaymentService)
	return q, ok
}
