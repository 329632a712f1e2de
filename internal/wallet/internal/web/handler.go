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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/subpay/internal/wallet/internal/domain"
	"github.com/ecodeclub/subpay/internal/wallet/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/wallet")
	g.POST("/detail", ginx.S(h.RetrieveAccount))
	g.POST("/transactions", ginx.BS[ListAccountLogsReq](h.ListAccountLogs))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) RetrieveAccount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.GetAccountByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil && !errors.Is(err, service.ErrAccountNotFound) {
		return systemErrorResult, fmt.Errorf("获取钱包账户失败: %w", err)
	}
	// 没有账户时返回零余额
	return ginx.Result{
		Data: AccountResp{
			Balance:       a.Balance,
			LockedBalance: a.LockedBalance,
			Currency:      a.Currency,
		},
	}, nil
}

func (h *Handler) ListAccountLogs(ctx *ginx.Context, req ListAccountLogsReq, sess session.Session) (ginx.Result, error) {
	logs, total, err := h.svc.ListAccountLogs(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取钱包流水失败: %w", err)
	}
	return ginx.Result{
		Data: ListAccountLogsResp{
			Total: total,
			Logs: slice.Map(logs, func(idx int, src domain.AccountLog) AccountLog {
				return AccountLog{
					BizSN:        src.BizSN,
					ChangeAmount: src.ChangeAmount,
					Balance:      src.Balance,
					Desc:         src.Desc,
					Status:       src.Status.ToInt64(),
				}
			}),
		},
	}, nil
}
