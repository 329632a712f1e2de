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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/subpay/internal/plan/internal/domain"
	"github.com/ecodeclub/subpay/internal/plan/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var ErrPlanNotFound = dao.ErrPlanNotFound

type PlanRepository interface {
	FindPlanBySN(ctx context.Context, sn string) (domain.Plan, error)
	FindPlans(ctx context.Context, offset, limit int) (int64, []domain.Plan, error)
	SavePlan(ctx context.Context, p domain.Plan) (int64, error)
	UpdatePlanStatus(ctx context.Context, sn string, status domain.Status) error
}

func NewPlanRepository(d dao.PlanDAO) PlanRepository {
	return &planRepository{dao: d}
}

type planRepository struct {
	dao dao.PlanDAO
}

func (p *planRepository) FindPlanBySN(ctx context.Context, sn string) (domain.Plan, error) {
	plan, err := p.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Plan{}, err
	}
	return p.toDomain(plan), nil
}

func (p *planRepository) FindPlans(ctx context.Context, offset, limit int) (int64, []domain.Plan, error) {
	var eg errgroup.Group
	var count int64
	var plans []dao.Plan
	eg.Go(func() error {
		var err error
		plans, err = p.dao.FindPlans(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		count, err = p.dao.CountPlans(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return count, slice.Map(plans, func(idx int, src dao.Plan) domain.Plan {
		return p.toDomain(src)
	}), nil
}

func (p *planRepository) SavePlan(ctx context.Context, plan domain.Plan) (int64, error) {
	entity := p.toEntity(plan)
	if entity.SN == "" {
		entity.SN = shortuuid.New()
	}
	return p.dao.Save(ctx, entity)
}

func (p *planRepository) UpdatePlanStatus(ctx context.Context, sn string, status domain.Status) error {
	return p.dao.UpdateStatusBySN(ctx, sn, status.ToUint8())
}

func (p *planRepository) toDomain(plan dao.Plan) domain.Plan {
	return domain.Plan{
		ID:       plan.Id,
		SN:       plan.SN,
		Title:    plan.Title,
		Intro:    plan.Intro,
		Price:    plan.Price,
		Duration: plan.Duration,
		Status:   domain.Status(plan.Status),
	}
}

func (p *planRepository) toEntity(plan domain.Plan) dao.Plan {
	return dao.Plan{
		Id:       plan.ID,
		SN:       plan.SN,
		Title:    plan.Title,
		Intro:    plan.Intro,
		Price:    plan.Price,
		Duration: plan.Duration,
		Status:   plan.Status.ToUint8(),
	}
}
