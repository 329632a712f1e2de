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

import "github.com/ecodeclub/subpay/internal/plan/internal/domain"

type SNReq struct {
	SN string `json:"sn"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total int64  `json:"total,omitempty"`
	Plans []Plan `json:"plans,omitempty"`
}

type Plan struct {
	SN       string `json:"sn"`
	Title    string `json:"title"`
	Intro    string `json:"intro"`
	Price    int64  `json:"price"`
	Duration int64  `json:"duration"`
}

func newPlan(p domain.Plan) Plan {
	return Plan{
		SN:       p.SN,
		Title:    p.Title,
		Intro:    p.Intro,
		Price:    p.Price,
		Duration: p.Duration,
	}
}
