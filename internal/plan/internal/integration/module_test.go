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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/subpay/internal/plan"
	"github.com/ecodeclub/subpay/internal/plan/internal/domain"
	"github.com/ecodeclub/subpay/internal/plan/internal/errs"
	"github.com/ecodeclub/subpay/internal/plan/internal/web"
	"github.com/ecodeclub/subpay/internal/test"
	testioc "github.com/ecodeclub/subpay/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestPlanModule(t *testing.T) {
	suite.Run(t, new(PlanModuleTestSuite))
}

type PlanModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    plan.Service
}

func (s *PlanModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m := plan.InitModule(s.db)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *PlanModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `plans`").Error
	s.NoError(err)
}

func (s *PlanModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `plans`").Error
	s.NoError(err)
}

func (s *PlanModuleTestSuite) TestService_SaveAndPublish() {
	t := s.T()
	ctx := context.Background()

	id, err := s.svc.SavePlan(ctx, plan.Plan{
		Title:    "季度会员",
		Intro:    "按季度订阅",
		Price:    2700,
		Duration: 93,
	})
	require.NoError(t, err)
	require.True(t, id > 0)

	// 未上架之前对外不可见
	total, _, err := s.svc.ListPlans(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)

	var sn string
	err = s.db.WithContext(ctx).Raw("SELECT sn FROM `plans` WHERE id = ?", id).Scan(&sn).Error
	require.NoError(t, err)

	_, err = s.svc.FindPlanBySN(ctx, sn)
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)

	require.NoError(t, s.svc.PublishPlan(ctx, sn))

	p, err := s.svc.FindPlanBySN(ctx, sn)
	require.NoError(t, err)
	assert.Equal(t, "季度会员", p.Title)
	assert.Equal(t, plan.StatusOnShelf, p.Status)
}

func (s *PlanModuleTestSuite) TestHandler_ListPlans() {
	t := s.T()

	for i := 0; i < 3; i++ {
		s.publishPlan(t, fmt.Sprintf("套餐-%d", i))
	}
	// 下架套餐不会出现在列表里
	_, err := s.svc.SavePlan(context.Background(), plan.Plan{
		Title: "未上架套餐", Intro: "草稿", Price: 100, Duration: 31,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/plan/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	result := recorder.MustScan()
	assert.Equal(t, int64(3), result.Data.Total)
	assert.Len(t, result.Data.Plans, 3)
}

func (s *PlanModuleTestSuite) TestHandler_RetrievePlanDetail() {
	t := s.T()

	sn := s.publishPlan(t, "月度会员")

	testCases := []struct {
		name     string
		req      web.SNReq
		wantCode int
		wantResp test.Result[web.Plan]
	}{
		{
			name:     "查找成功",
			req:      web.SNReq{SN: sn},
			wantCode: 200,
			wantResp: test.Result[web.Plan]{
				Data: web.Plan{
					SN:       sn,
					Title:    "月度会员",
					Intro:    "订阅会员",
					Price:    1990,
					Duration: 31,
				},
			},
		},
		{
			name:     "SN不存在",
			req:      web.SNReq{SN: "plan-unknown"},
			wantCode: 500,
			wantResp: test.Result[web.Plan]{
				Code: errs.PlanNotFound.Code,
				Msg:  errs.PlanNotFound.Msg,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/plan/detail", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Plan]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *PlanModuleTestSuite) publishPlan(t *testing.T, title string) string {
	t.Helper()
	ctx := context.Background()
	id, err := s.svc.SavePlan(ctx, plan.Plan{
		Title:    title,
		Intro:    "订阅会员",
		Price:    1990,
		Duration: 31,
	})
	require.NoError(t, err)
	var sn string
	err = s.db.WithContext(ctx).Raw("SELECT sn FROM `plans` WHERE id = ?", id).Scan(&sn).Error
	require.NoError(t, err)
	require.NoError(t, s.svc.PublishPlan(ctx, sn))
	return sn
}
