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

package service

import (
	"context"

	"github.com/ecodeclub/subpay/internal/plan/internal/domain"
	"github.com/ecodeclub/subpay/internal/plan/internal/repository"
)

var ErrPlanNotFound = repository.ErrPlanNotFound

//go:generate mockgen -source=./service.go -package=planmocks -destination=../../mocks/plan.mock.go -typed Service
type Service interface {
	// FindPlanBySN 只返回上架状态的套餐
	FindPlanBySN(ctx context.Context, sn string) (domain.Plan, error)
	ListPlans(ctx context.Context, offset, limit int) (int64, []domain.Plan, error)
	// SavePlan 新建或更新套餐，新建的套餐默认为下架状态
	SavePlan(ctx context.Context, plan domain.Plan) (int64, error)
	PublishPlan(ctx context.Context, sn string) error
}

func NewService(repo repository.PlanRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.PlanRepository
}

func (s *service) FindPlanBySN(ctx context.Context, sn string) (domain.Plan, error) {
	return s.repo.FindPlanBySN(ctx, sn)
}

func (s *service) ListPlans(ctx context.Context, offset, limit int) (int64, []domain.Plan, error) {
	return s.repo.FindPlans(ctx, offset, limit)
}

func (s *service) SavePlan(ctx context.Context, plan domain.Plan) (int64, error) {
	if plan.Status == 0 {
		plan.Status = domain.StatusOffShelf
	}
	return s.repo.SavePlan(ctx, plan)
}

func (s *service) PublishPlan(ctx context.Context, sn string) error {
	return s.repo.UpdatePlanStatus(ctx, sn, domain.StatusOnShelf)
}
