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

const paymentEvents = "payment_events"

// PaymentEvent 对账补发的支付终态通知, 字段与支付侧保持一致
// 订单消费者无法区分它和支付模块首发的事件, 也不需要区分
type PaymentEvent struct {
	OrderSN string
	PayerID int64
	Status  uint8
}
