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

const (
	paymentEvents      = "payment_events"
	orderSettledEvents = "order_settled_events"
)

// PaymentEvent 支付模块发出的支付终态通知, 字段与支付侧保持一致
type PaymentEvent struct {
	OrderSN string
	PayerID int64
	Status  uint8
}

// OrderSettledEvent 订单首次结算成功后发出, 下游据此做买家通知和订阅开通
// 重复的支付通知不会引起重复的结算事件
type OrderSettledEvent struct {
	OrderSN string
	BuyerID int64
	// Amount 实付总价, 人民币最小单位
	Amount     int64
	PlanTitles []string
	// 下单时留的收据联系方式, 可能为空, 为空时下游跳过对应通知渠道
	BuyerEmail string
	BuyerPhone string
}
