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

	"github.com/ecodeclub/subpay/internal/order/internal/domain"
	"github.com/ecodeclub/subpay/internal/order/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	// ErrOrderTerminated 订单已进入终态, 取消或失败等状态变更不再生效
	ErrOrderTerminated = errors.New("订单已处于终态")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	// UpdateOrderPaymentInfo 创建支付之后冗余支付ID及SN, 订单进入支付中
	UpdateOrderPaymentInfo(ctx context.Context, buyerID, orderID, paymentID int64, paymentSN string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	// SettleOrderBySN 收到支付成功通知后的幂等结算
	// 同一笔订单只有第一次调用返回 OutcomeSettled, 重复通知返回 OutcomeAlreadyPaid
	SettleOrderBySN(ctx context.Context, sn string) (domain.SettleOutcome, domain.Order, error)
	FailOrderBySN(ctx context.Context, sn string) error
	CancelOrder(ctx context.Context, buyerID, orderID int64) error
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	CloseExpiredOrders(ctx context.Context, orderIDs []int64) error
}

func NewService(repo repository.OrderRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.OrderRepository
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusInit
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) UpdateOrderPaymentInfo(ctx context.Context, buyerID, orderID, paymentID int64, paymentSN string) error {
	return s.repo.UpdateOrderPaymentInfo(ctx, buyerID, orderID, paymentID, paymentSN)
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) SettleOrderBySN(ctx context.Context, sn string) (domain.SettleOutcome, domain.Order, error) {
	return s.repo.SettleOrderBySN(ctx, sn)
}

func (s *service) FailOrderBySN(ctx context.Context, sn string) error {
	return s.repo.FailOrderBySN(ctx, sn)
}

func (s *service) CancelOrder(ctx context.Context, buyerID, orderID int64) error {
	affected, err := s.repo.CancelOrder(ctx, buyerID, orderID)
	if err != nil {
		return fmt.Errorf("取消订单失败: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrOrderTerminated, orderID)
	}
	return nil
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByUID(ctx, offset, limit, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpiredOrders(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredOrders(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return s.repo.CloseExpiredOrders(ctx, orderIDs)
}
