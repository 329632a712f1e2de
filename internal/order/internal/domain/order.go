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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusInit          OrderStatus = iota + 1 // 订单已创建, 支付方式未确定
	StatusProcessing                           // 已生成支付单, 等待支付结果
	StatusSuccess                              // 支付成功
	StatusFailed                               // 支付失败
	StatusTimeoutClosed                        // 超时关闭
	StatusCanceled                             // 买家主动取消
	StatusRefund                               // 转入退款
)

// SettleOutcome 订单结算的几种结果, 回调重复投递时靠它区分首次结算和重复结算
type SettleOutcome uint8

const (
	// OutcomeSettled 本次调用把订单推进到支付成功, 只有它要触发后续通知
	OutcomeSettled SettleOutcome = iota + 1
	// OutcomeAlreadyPaid 订单早已支付成功, 重复通知, 按成功确认
	OutcomeAlreadyPaid
	// OutcomeNotFound 本地没有这笔订单
	OutcomeNotFound
	// OutcomeClosed 订单已经关闭或失败, 钱却到账了, 需要人工介入
	OutcomeClosed
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	// PaymentID 和 PaymentSN 在创建支付之后冗余回订单
	PaymentID        int64
	PaymentSN        string
	OriginalTotalAmt int64
	RealTotalAmt     int64
	// ReceiptEmail 和 ReceiptPhone 是下单时留的收据联系方式, 可以为空
	ReceiptEmail string
	ReceiptPhone string
	ClosedAt     int64
	Status       OrderStatus
	Items        []OrderItem
	Ctime        int64
	Utime        int64
}

// OrderItem 下单时从套餐目录快照下来, 套餐后续改价不影响已有订单
type OrderItem struct {
	PlanID    int64
	PlanSN    string
	PlanTitle string
	// Price 单价, 人民币最小单位
	Price    int64
	Quantity int64
	// Duration 订阅时长, 单位为天
	Duration int64
}
