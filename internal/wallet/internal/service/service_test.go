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
	"testing"

	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/stretchr/testify/assert"
)

// 非法入参不应该打到存储层, 所以 repo 传 nil 就够了
func TestService_RechargeValidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		account domain.Account
	}{
		{
			name:    "没有流水",
			account: domain.Account{Uid: 1},
		},
		{
			name: "多条流水",
			account: domain.Account{Uid: 1, Logs: []domain.AccountLog{
				{BizSN: "a", ChangeAmount: 100},
				{BizSN: "b", ChangeAmount: 100},
			}},
		},
		{
			name: "缺少业务序列号",
			account: domain.Account{Uid: 1, Logs: []domain.AccountLog{
				{ChangeAmount: 100},
			}},
		},
		{
			name: "充值金额非正数",
			account: domain.Account{Uid: 1, Logs: []domain.AccountLog{
				{BizSN: "a", ChangeAmount: -100},
			}},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewAccountService(nil)
			err := svc.Recharge(context.Background(), tc.account)
			assert.ErrorIs(t, err, ErrInvalidAccountLog)
		})
	}
}

func TestService_TryDeductValidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		account domain.Account
	}{
		{
			name:    "没有流水",
			account: domain.Account{Uid: 1},
		},
		{
			name: "扣减金额非负数",
			account: domain.Account{Uid: 1, Logs: []domain.AccountLog{
				{BizSN: "a", ChangeAmount: 100},
			}},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewAccountService(nil)
			_, err := svc.TryDeduct(context.Background(), tc.account)
			assert.ErrorIs(t, err, ErrInvalidAccountLog)
		})
	}
}
