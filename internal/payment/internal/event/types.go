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

// PaymentEvent 最简设计, 只带订单号和支付终态
// 有一些人会习惯把支付详情也放进来, 但订单侧用不上, 要用再查
type PaymentEvent struct {
	OrderSN string
	PayerID int64
	Status  uint8
}

func (PaymentEvent) Topic() string {
	return "payment_events"
}
