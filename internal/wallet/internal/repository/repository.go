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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet/internal/repository/dao"
)

var (
	ErrAccountNotFound      = dao.ErrAccountNotFound
	ErrAccountLogNotFound   = dao.ErrAccountLogNotFound
	ErrDuplicatedAccountLog = dao.ErrDuplicatedAccountLog
	ErrBalanceNotEnough     = dao.ErrBalanceNotEnough
)

type AccountRepository interface {
	AddBalance(ctx context.Context, account domain.Account) error
	GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error)
	ListAccountLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.AccountLog, error)
	TotalAccountLogs(ctx context.Context, uid int64) (int64, error)
	TryDeduct(ctx context.Context, account domain.Account) (int64, error)
	ConfirmDeduct(ctx context.Context, uid, tid int64) error
	CancelDeduct(ctx context.Context, uid, tid int64) error
	FindTimeoutLockedLogs(ctx context.Context, offset, limit int, ctime int64) ([]domain.AccountLog, error)
	TotalTimeoutLockedLogs(ctx context.Context, ctime int64) (int64, error)
}

type accountRepository struct {
	dao dao.AccountDAO
}

func NewAccountRepository(dao dao.AccountDAO) AccountRepository {
	return &accountRepository{dao: dao}
}

func (r *accountRepository) AddBalance(ctx context.Context, account domain.Account) error {
	logs := r.toAccountLogsEntity(account)
	return r.dao.Upsert(ctx, account.Uid, account.Currency, logs[0])
}

func (r *accountRepository) GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error) {
	a, err := r.dao.FindAccountByUID(ctx, uid)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomainAccount(a, nil), nil
}

func (r *accountRepository) ListAccountLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.AccountLog, error) {
	logs, err := r.dao.FindAccountLogsByUID(ctx, uid, offset, limit)
	return r.toDomainAccountLogs(logs), err
}

func (r *accountRepository) TotalAccountLogs(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountAccountLogsByUID(ctx, uid)
}

func (r *accountRepository) TryDeduct(ctx context.Context, account domain.Account) (int64, error) {
	logs := r.toAccountLogsEntity(account)
	return r.dao.CreateLockLog(ctx, logs[0])
}

func (r *accountRepository) ConfirmDeduct(ctx context.Context, uid, tid int64) error {
	return r.dao.ConfirmLockLog(ctx, uid, tid)
}

func (r *accountRepository) CancelDeduct(ctx context.Context, uid, tid int64) error {
	return r.dao.CancelLockLog(ctx, uid, tid)
}

func (r *accountRepository) FindTimeoutLockedLogs(ctx context.Context, offset, limit int, ctime int64) ([]domain.AccountLog, error) {
	logs, err := r.dao.FindTimeoutLockLogs(ctx, offset, limit, ctime)
	return r.toDomainAccountLogs(logs), err
}

func (r *accountRepository) TotalTimeoutLockedLogs(ctx context.Context, ctime int64) (int64, error) {
	return r.dao.TotalTimeoutLockLogs(ctx, ctime)
}

func (r *accountRepository) toAccountLogsEntity(a domain.Account) []dao.AccountLog {
	return slice.Map(a.Logs, func(idx int, src domain.AccountLog) dao.AccountLog {
		return dao.AccountLog{
			Uid:          a.Uid,
			BizSN:        src.BizSN,
			ChangeAmount: src.ChangeAmount,
			Desc:         src.Desc,
		}
	})
}

func (r *accountRepository) toDomainAccount(a dao.Account, logs []dao.AccountLog) domain.Account {
	return domain.Account{
		Uid:           a.Uid,
		Balance:       a.Balance,
		LockedBalance: a.LockedBalance,
		Currency:      a.Currency,
		Logs:          r.toDomainAccountLogs(logs),
	}
}

func (r *accountRepository) toDomainAccountLogs(logs []dao.AccountLog) []domain.AccountLog {
	return slice.Map(logs, func(idx int, src dao.AccountLog) domain.AccountLog {
		return domain.AccountLog{
			ID:           src.Id,
			Uid:          src.Uid,
			BizSN:        src.BizSN,
			ChangeAmount: src.ChangeAmount,
			Balance:      src.Balance,
			Desc:         src.Desc,
			Status:       domain.AccountLogStatus(src.Status),
		}
	})
}
