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

const orderSettledEvents = "order_settled_events"

// OrderSettledEvent 订单侧发出的首次结算成功事件, 字段与订单侧保持一致
type OrderSettledEvent struct {
	OrderSN string
	BuyerID int64
	// Amount 实付总价, 人民币最小单位
	Amount     int64
	PlanTitles []string
	BuyerEmail string
	BuyerPhone string
}
