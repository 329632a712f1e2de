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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("钱包账户不存在")
	ErrAccountLogNotFound   = errors.New("钱包流水不存在")
	ErrDuplicatedAccountLog = errors.New("钱包流水重复")
	ErrBalanceNotEnough     = errors.New("余额不足")
	ErrConcurrentModified   = errors.New("记录已被并发修改")
)

type AccountDAO interface {
	FindAccountByUID(ctx context.Context, uid int64) (Account, error)
	FindAccountLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]AccountLog, error)
	CountAccountLogsByUID(ctx context.Context, uid int64) (int64, error)
	// Upsert 充值入账, biz_sn 相同的流水只会入账一次
	Upsert(ctx context.Context, uid int64, currency string, l AccountLog) error
	CreateLockLog(ctx context.Context, l AccountLog) (int64, error)
	ConfirmLockLog(ctx context.Context, uid, tid int64) error
	CancelLockLog(ctx context.Context, uid, tid int64) error
	FindTimeoutLockLogs(ctx context.Context, offset, limit int, ctime int64) ([]AccountLog, error)
	TotalTimeoutLockLogs(ctx context.Context, ctime int64) (int64, error)
}

type accountDAO struct {
	db *egorm.Component
}

func NewAccountGORMDAO(db *egorm.Component) AccountDAO {
	return &accountDAO{db: db}
}

func (g *accountDAO) FindAccountByUID(ctx context.Context, uid int64) (Account, error) {
	var res Account
	err := g.db.WithContext(ctx).First(&res, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("%w: uid=%d", ErrAccountNotFound, uid)
	}
	return res, err
}

func (g *accountDAO) FindAccountLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]AccountLog, error) {
	var res []AccountLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *accountDAO) CountAccountLogsByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&AccountLog{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *accountDAO) Upsert(ctx context.Context, uid int64, currency string, l AccountLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()

		var dup int64
		if err := tx.Model(&AccountLog{}).Where("biz_sn = ?", l.BizSN).Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fmt.Errorf("%w: biz_sn=%s", ErrDuplicatedAccountLog, l.BizSN)
		}

		var a Account
		res := tx.Where(Account{Uid: uid}).
			Attrs(Account{Balance: l.ChangeAmount, Currency: currency, Ctime: now, Utime: now}).
			FirstOrCreate(&a)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已有账户, 乐观锁更新余额
			a.Balance += l.ChangeAmount
			if err := g.updateAccount(tx, a); err != nil {
				return err
			}
		}

		l.Uid = uid
		l.Aid = a.Id
		l.Balance = a.Balance
		l.Status = AccountLogStatusActive
		l.Ctime, l.Utime = now, now
		if err := tx.Create(&l).Error; err != nil {
			if isDuplicatedKeyError(err) {
				return fmt.Errorf("%w: biz_sn=%s", ErrDuplicatedAccountLog, l.BizSN)
			}
			return fmt.Errorf("创建钱包流水失败: %w", err)
		}
		return nil
	})
}

// isDuplicatedKeyError 识别唯一索引冲突
// 线上 MySQL 驱动不走 gorm 的错误翻译, 要看 1062 错误码
func isDuplicatedKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (g *accountDAO) CreateLockLog(ctx context.Context, l AccountLog) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()

		var a Account
		if err := tx.First(&a, "uid = ?", l.Uid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: uid=%d", ErrAccountNotFound, l.Uid)
			}
			return err
		}

		amount := -l.ChangeAmount
		if a.Balance-a.LockedBalance < amount {
			return fmt.Errorf("%w: uid=%d", ErrBalanceNotEnough, l.Uid)
		}

		a.LockedBalance += amount
		a.Utime = now
		if err := g.updateAccount(tx, a); err != nil {
			return err
		}

		l.Aid = a.Id
		l.Balance = a.Balance
		l.Status = AccountLogStatusLocked
		l.Ctime, l.Utime = now, now
		if err := tx.Create(&l).Error; err != nil {
			if isDuplicatedKeyError(err) {
				return fmt.Errorf("%w: biz_sn=%s", ErrDuplicatedAccountLog, l.BizSN)
			}
			return fmt.Errorf("创建预扣流水失败: %w", err)
		}
		id = l.Id
		return nil
	})
	return id, err
}

func (g *accountDAO) ConfirmLockLog(ctx context.Context, uid, tid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()

		l, err := g.findLockLog(tx, uid, tid)
		if err != nil {
			return err
		}

		var a Account
		if err = tx.First(&a, "uid = ?", uid).Error; err != nil {
			return err
		}

		amount := -l.ChangeAmount
		a.Balance -= amount
		a.LockedBalance -= amount
		a.Utime = now
		if err = g.updateAccount(tx, a); err != nil {
			return err
		}

		return tx.Model(&AccountLog{}).
			Where("id = ?", tid).
			Updates(map[string]any{
				"Status":  AccountLogStatusActive,
				"Balance": a.Balance,
				"Utime":   now,
			}).Error
	})
}

func (g *accountDAO) CancelLockLog(ctx context.Context, uid, tid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()

		l, err := g.findLockLog(tx, uid, tid)
		if err != nil {
			return err
		}

		var a Account
		if err = tx.First(&a, "uid = ?", uid).Error; err != nil {
			return err
		}

		a.LockedBalance -= -l.ChangeAmount
		a.Utime = now
		if err = g.updateAccount(tx, a); err != nil {
			return err
		}

		return tx.Model(&AccountLog{}).
			Where("id = ?", tid).
			Updates(map[string]any{
				"Status": AccountLogStatusInactive,
				"Utime":  now,
			}).Error
	})
}

func (g *accountDAO) FindTimeoutLockLogs(ctx context.Context, offset, limit int, ctime int64) ([]AccountLog, error) {
	var res []AccountLog
	err := g.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", AccountLogStatusLocked, ctime).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *accountDAO) TotalTimeoutLockLogs(ctx context.Context, ctime int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&AccountLog{}).
		Where("status = ? AND ctime < ?", AccountLogStatusLocked, ctime).
		Count(&count).Error
	return count, err
}

func (g *accountDAO) findLockLog(tx *gorm.DB, uid, tid int64) (AccountLog, error) {
	var l AccountLog
	err := tx.First(&l, "id = ? AND uid = ? AND status = ?", tid, uid, AccountLogStatusLocked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountLog{}, fmt.Errorf("%w: id=%d", ErrAccountLogNotFound, tid)
	}
	return l, err
}

// updateAccount 带版本号更新账户, 版本不匹配说明并发冲突, 由调用方决定是否重试
func (g *accountDAO) updateAccount(tx *gorm.DB, a Account) error {
	version := a.Version
	a.Version++
	res := tx.Model(&Account{}).
		Where("uid = ? AND version = ?", a.Uid, version).
		Updates(map[string]any{
			"Balance":       a.Balance,
			"LockedBalance": a.LockedBalance,
			"Utime":         a.Utime,
			"Version":       a.Version,
		})
	if res.Error != nil {
		return fmt.Errorf("更新钱包账户失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: uid=%d", ErrConcurrentModified, a.Uid)
	}
	return nil
}

const (
	AccountLogStatusActive   = 1
	AccountLogStatusLocked   = 2
	AccountLogStatusInactive = 3
)

type Account struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:钱包账户表自增ID"`
	Uid           int64  `gorm:"not null;uniqueIndex:unq_uid;comment:用户ID"`
	Balance       int64  `gorm:"not null;default:0;comment:可用余额,最小货币单位"`
	LockedBalance int64  `gorm:"not null;default:0;comment:预扣中的余额"`
	Currency      string `gorm:"type:varchar(8);not null;default:'CNY';comment:币种"`
	Version       int64  `gorm:"not null;default:1;comment:版本号"`
	Ctime         int64
	Utime         int64
}

type AccountLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:钱包流水表自增ID"`
	Aid          int64  `gorm:"not null;index:idx_account_id;comment:钱包账户ID"`
	Uid          int64  `gorm:"not null;index:idx_user_id;comment:用户ID"`
	BizSN        string `gorm:"column:biz_sn;type:varchar(64);not null;uniqueIndex:unq_biz_sn;comment:业务序列号,用于去重"`
	ChangeAmount int64  `gorm:"not null;comment:变动金额,正数为增加,负数为减少"`
	Balance      int64  `gorm:"not null;comment:变动后可用余额"`
	Desc         string `gorm:"type:varchar(255);not null;comment:流水描述"`
	Status       int64  `gorm:"type:tinyint unsigned;not null;default:1;comment:流水状态 1=已生效, 2=预扣中, 3=已失效"`
	Ctime        int64
	Utime        int64
}
