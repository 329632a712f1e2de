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

package event

const rechargeEvents = "wallet_recharge_events"

// RechargeEvent 营销活动、运营后台充值都发这个事件, Key 用于去重
type RechargeEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Amount int64  `json:"amount"` // 充值金额, 最小货币单位
	Biz    string `json:"biz"`    // 事件来源业务, 例如 marketing
	Desc   string `json:"desc"`   // 流水描述, 例如 邀请有礼
}
