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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/payment/internal/domain"
)

type PayReq struct {
	SN string `json:"sn"`
}

type Payment struct {
	SN          string          `json:"sn"`
	OrderSN     string          `json:"orderSn"`
	TotalAmount int64           `json:"totalAmount"`
	Currency    string          `json:"currency"`
	Deadline    int64           `json:"deadline"`
	Status      uint8           `json:"status"`
	Records     []PaymentRecord `json:"records"`
}

type PaymentRecord struct {
	Channel uint8 `json:"channel"`
	Amount  int64 `json:"amount"`
	// Directive 支付指令类型, 余额渠道没有指令
	Directive    uint8  `json:"directive,omitempty"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
	QRCodeURL    string `json:"qrCodeURL,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

func newPayment(pmt domain.Payment) Payment {
	return Payment{
		SN:          pmt.SN,
		OrderSN:     pmt.OrderSN,
		TotalAmount: pmt.TotalAmount,
		Currency:    pmt.Currency,
		Deadline:    pmt.Deadline,
		Status:      pmt.Status.ToUint8(),
		Records: slice.Map(pmt.Records, func(idx int, src domain.PaymentRecord) PaymentRecord {
			return PaymentRecord{
				Channel:      src.Channel.ToUint8(),
				Amount:       src.Amount,
				Directive:    src.Directive.Type.ToUint8(),
				RedirectURL:  src.Directive.RedirectURL,
				QRCodeURL:    src.Directive.QRCodeURL,
				ClientSecret: src.Directive.ClientSecret,
			}
		}),
	}
}
