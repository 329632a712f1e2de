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

	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet/internal/repository"
)

var (
	ErrAccountNotFound      = repository.ErrAccountNotFound
	ErrAccountLogNotFound   = repository.ErrAccountLogNotFound
	ErrDuplicatedAccountLog = repository.ErrDuplicatedAccountLog
	ErrBalanceNotEnough     = repository.ErrBalanceNotEnough
	ErrInvalidAccountLog    = errors.New("钱包流水信息非法")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/wallet.mock.go -package=walletmocks -typed Service
type Service interface {
	// Recharge 充值入账, 以流水的 BizSN 去重, 重复充值返回 ErrDuplicatedAccountLog
	Recharge(ctx context.Context, account domain.Account) error
	GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error)
	ListAccountLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.AccountLog, int64, error)
	// TryDeduct 预扣余额, 返回预扣流水ID, 之后要么 ConfirmDeduct 要么 CancelDeduct
	TryDeduct(ctx context.Context, account domain.Account) (tid int64, err error)
	ConfirmDeduct(ctx context.Context, uid, tid int64) error
	CancelDeduct(ctx context.Context, uid, tid int64) error
	FindTimeoutLockedLogs(ctx context.Context, offset, limit int, ctime int64) ([]domain.AccountLog, int64, error)
}

type service struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) Service {
	return &service{repo: repo}
}

func (s *service) Recharge(ctx context.Context, account domain.Account) error {
	if err := s.validate(account); err != nil {
		return err
	}
	if account.Logs[0].ChangeAmount <= 0 {
		return fmt.Errorf("%w: 充值金额必须为正数", ErrInvalidAccountLog)
	}
	return s.repo.AddBalance(ctx, account)
}

func (s *service) GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error) {
	return s.repo.GetAccountByUID(ctx, uid)
}

func (s *service) ListAccountLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.AccountLog, int64, error) {
	logs, err := s.repo.ListAccountLogs(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.TotalAccountLogs(ctx, uid)
	return logs, total, err
}

func (s *service) TryDeduct(ctx context.Context, account domain.Account) (int64, error) {
	if err := s.validate(account); err != nil {
		return 0, err
	}
	if account.Logs[0].ChangeAmount >= 0 {
		return 0, fmt.Errorf("%w: 扣减金额必须为负数", ErrInvalidAccountLog)
	}
	return s.repo.TryDeduct(ctx, account)
}

func (s *service) ConfirmDeduct(ctx context.Context, uid, tid int64) error {
	return s.repo.ConfirmDeduct(ctx, uid, tid)
}

func (s *service) CancelDeduct(ctx context.Context, uid, tid int64) error {
	return s.repo.CancelDeduct(ctx, uid, tid)
}

func (s *service) FindTimeoutLockedLogs(ctx context.Context, offset, limit int, ctime int64) ([]domain.AccountLog, int64, error) {
	logs, err := s.repo.FindTimeoutLockedLogs(ctx, offset, limit, ctime)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.TotalTimeoutLockedLogs(ctx, ctime)
	return logs, total, err
}

func (s *service) validate(account domain.Account) error {
	if len(account.Logs) != 1 {
		return fmt.Errorf("%w: 有且仅有一条流水", ErrInvalidAccountLog)
	}
	if account.Logs[0].BizSN == "" {
		return fmt.Errorf("%w: 缺少业务序列号", ErrInvalidAccountLog)
	}
	return nil
}
