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

package domain

type AccountLogStatus int64

const (
	AccountLogStatusActive   AccountLogStatus = 1 // 已生效
	AccountLogStatusLocked   AccountLogStatus = 2 // 预扣中
	AccountLogStatusInactive AccountLogStatus = 3 // 已失效
)

func (s AccountLogStatus) ToInt64() int64 {
	return int64(s)
}

// Account 用户钱包账户, 金额一律是最小货币单位
type Account struct {
	Uid           int64
	Balance       int64
	LockedBalance int64
	Currency      string
	Logs          []AccountLog
}

// AccountLog 钱包流水, BizSN 是业务侧的去重键, 充值单号、支付单号都可以
type AccountLog struct {
	ID           int64
	Uid          int64
	BizSN        string
	ChangeAmount int64
	Balance      int64
	Desc         string
	Status       AccountLogStatus
}
