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

package wechat

import (
	"context"
	"net/http"

	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
)

//go:generate mockgen -source=./notify.go -package=wechatmocks -destination=./mocks/notify.mock.go -typed NotifyHandler

// NotifyHandler 微信回调的验签与解密, 生产环境用 wechatpay-go 的 notify.Handler
type NotifyHandler interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content any) (*notify.Request, error)
}
