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

package stripe

import (
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

//go:generate mockgen -source=./verifier.go -package=stripemocks -destination=./mocks/verifier.mock.go -typed WebhookVerifier

// WebhookVerifier 校验 Stripe 回调签名并还原事件
type WebhookVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (stripego.Event, error)
}

type webhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) WebhookVerifier {
	return &webhookVerifier{secret: secret}
}

// ConstructEvent 容忍 Stripe 小版本升级带来的 API 版本差异, 事件筛选交给解析器
func (v *webhookVerifier) ConstructEvent(payload []byte, sigHeader string) (stripego.Event, error) {
	return webhook.ConstructEventWithOptions(payload, sigHeader, v.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}
