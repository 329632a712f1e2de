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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/subpay/internal/plan/internal/domain"
	"github.com/ecodeclub/subpay/internal/plan/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/plan")
	g.POST("/list", ginx.B[ListReq](h.ListPlans))
	g.POST("/detail", ginx.B[SNReq](h.RetrievePlanDetail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) ListPlans(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	total, plans, err := h.svc.ListPlans(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Plans: slice.Map(plans, func(idx int, src domain.Plan) Plan {
				return newPlan(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrievePlanDetail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	p, err := h.svc.FindPlanBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrPlanNotFound) {
		return planNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPlan(p),
	}, nil
}
