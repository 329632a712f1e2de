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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/subpay/internal/plan/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrPlanNotFound = gorm.ErrRecordNotFound

type PlanDAO interface {
	FindBySN(ctx context.Context, sn string) (Plan, error)
	FindPlans(ctx context.Context, offset, limit int) ([]Plan, error)
	CountPlans(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Plan) (int64, error)
	UpdateStatusBySN(ctx context.Context, sn string, status uint8) error
}

type PlanGORMDAO struct {
	db *egorm.Component
}

func NewPlanGORMDAO(db *egorm.Component) PlanDAO {
	return &PlanGORMDAO{db: db}
}

func (d *PlanGORMDAO) FindBySN(ctx context.Context, sn string) (Plan, error) {
	var res Plan
	err := d.db.WithContext(ctx).Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *PlanGORMDAO) FindPlans(ctx context.Context, offset, limit int) ([]Plan, error) {
	var res []Plan
	err := d.db.WithContext(ctx).Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *PlanGORMDAO) CountPlans(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Plan{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Count(&res).Error
	return res, err
}

func (d *PlanGORMDAO) Save(ctx context.Context, p Plan) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Plan{}).Where("id = ?", p.Id).
		Updates(map[string]any{
			"title":    p.Title,
			"intro":    p.Intro,
			"price":    p.Price,
			"duration": p.Duration,
			"utime":    now,
		}).Error
	return p.Id, err
}

func (d *PlanGORMDAO) UpdateStatusBySN(ctx context.Context, sn string, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Plan{}).Where("sn = ?", sn).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type Plan struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:套餐自增ID"`
	SN       string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_plan_sn;comment:套餐序列号"`
	Title    string `gorm:"type:varchar(255);not null;comment:套餐名称"`
	Intro    string `gorm:"not null;comment:套餐简介"`
	Price    int64  `gorm:"not null;comment:套餐价格;单位为分, 999表示9.99元"`
	Duration int64  `gorm:"not null;comment:订阅时长,单位为天"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime    int64
	Utime    int64
}
