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

// Settlement 一次结算通知需要的全部素材
type Settlement struct {
	OrderSN string
	BuyerID int64
	// Amount 实付总价, 人民币最小单位
	Amount     int64
	PlanTitles []string
	// 买家下单时留的联系方式, 为空则跳过对应通知渠道
	BuyerEmail string
	BuyerPhone string
}
