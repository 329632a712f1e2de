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

package web

// PreviewOrderReq 预览订单请求
type PreviewOrderReq struct {
	Plans []Plan `json:"plans"` // 要购买的套餐及数量
}

type PreviewOrderResp struct {
	// Balance 钱包可用余额, 前端据此提示余额渠道是否够用
	Balance  int64         `json:"balance"`
	Channels []PaymentItem `json:"channels"` // 可用支付渠道
	Plans    []Plan        `json:"plans"`
	Policy   string        `json:"policy"` // 政策信息
}

type Plan struct {
	SN       string `json:"sn"`
	Title    string `json:"title"`
	Intro    string `json:"intro"`
	Price    int64  `json:"price"`
	Duration int64  `json:"duration"`
	Quantity int64  `json:"quantity"`
}

type PaymentItem struct {
	Type   uint8  `json:"type"` // 与支付模块的渠道类型一致
	Desc   string `json:"desc,omitempty"`
	Amount int64  `json:"amount,omitempty"`
}

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID string `json:"requestID"` // 请求去重, 防止订单重复提交
	Plans     []Plan `json:"plans"`
	// 前端展示过的总价, 服务端按套餐快照重新核算, 不一致直接拒绝
	OriginalTotalAmt int64         `json:"originalTotalAmt"`
	RealTotalAmt     int64         `json:"realTotalAmt"`
	PaymentItems     []PaymentItem `json:"paymentItems"` // 支付渠道及分摊金额
	// 收据联系方式, 支付成功后发收据用, 都可以为空
	ReceiptEmail string `json:"receiptEmail,omitempty"`
	ReceiptPhone string `json:"receiptPhone,omitempty"`
}

type CreateOrderResp struct {
	// OrderSN 前端用于轮询订单状态
	OrderSN string `json:"orderSN"`
	// PaymentSN 前端拿它调 /pay 获取各渠道支付指令
	PaymentSN string `json:"paymentSN"`
}

// RetrieveOrderStatusReq 获取订单状态
type RetrieveOrderStatusReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	OrderStatus uint8 `json:"status"`
}

// ListOrdersReq 分页查询用户所有订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	SN               string      `json:"sn"`
	Payment          Payment     `json:"payment"`
	OriginalTotalAmt int64       `json:"originalTotalAmt"`
	RealTotalAmt     int64       `json:"realTotalAmt"`
	Status           uint8       `json:"status"`
	Items            []OrderItem `json:"items"`
	Ctime            int64       `json:"ctime"`
	Utime            int64       `json:"utime"`
}

type Payment struct {
	SN    string        `json:"sn"`
	Items []PaymentItem `json:"items,omitempty"`
}

type OrderItem struct {
	Plan Plan `json:"plan"`
}

// CancelOrderReq 取消订单
type CancelOrderReq struct {
	OrderSN string `json:"sn"`
}
