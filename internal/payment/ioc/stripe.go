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

package ioc

import (
	"github.com/ecodeclub/subpay/internal/fxrate"
	"github.com/ecodeclub/subpay/internal/payment/internal/service/stripe"
	"github.com/ecodeclub/subpay/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stripe/stripe-go/v79/client"
)

func InitStripeClient(cfg StripeConfig) *client.API {
	return client.New(cfg.APIKey, nil)
}

// InitStripeKeyGenerator 幂等键生成器, 渠道号作为业务位
func InitStripeKeyGenerator(cfg StripeConfig) snowflake.Generator {
	gen, err := snowflake.NewMultiBizSnowFlake(cfg.NodeID, 8)
	if err != nil {
		panic(err)
	}
	return gen
}

func InitStripeCheckoutService(cli *client.API,
	fx fxrate.Service, keyGen snowflake.Generator, cfg StripeConfig) *stripe.CheckoutPaymentService {
	return stripe.NewCheckoutPaymentService(cli, fx, keyGen, stripe.Config{
		SettlementCurrency: cfg.SettlementCurrency,
		SuccessURL:         cfg.SuccessURL,
		CancelURL:          cfg.CancelURL,
	})
}

func InitStripeIntentService(cli *client.API,
	fx fxrate.Service, keyGen snowflake.Generator, cfg StripeConfig) *stripe.IntentPaymentService {
	return stripe.NewIntentPaymentService(cli, fx, keyGen, stripe.Config{
		SettlementCurrency: cfg.SettlementCurrency,
		SuccessURL:         cfg.SuccessURL,
		CancelURL:          cfg.CancelURL,
	})
}

func InitStripeWebhookService(cfg StripeConfig) *stripe.WebhookService {
	return stripe.NewWebhookService(stripe.NewWebhookVerifier(cfg.WebhookSecret))
}

func InitStripeConfig() StripeConfig {
	var cfg StripeConfig
	err := econf.UnmarshalKey("stripe.payment", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

type StripeConfig struct {
	APIKey        string
	WebhookSecret string
	// SettlementCurrency Stripe 侧的结算货币, 比如 USD
	SettlementCurrency string
	SuccessURL         string
	CancelURL          string
	// NodeID 幂等键生成器的节点号, 多实例部署时各不相同
	NodeID uint
}
