package fxrate

import (
	"context"
	"strings"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

const cacheExpiration = 5 * time.Minute

type service struct {
	sources []RateSource
	cache   ecache.Cache
	logger  *elog.Component
}

// NewService 按 sources 的顺序逐个尝试, 第一个成功的结果会写入缓存。
// cache 允许为 nil, 此时每次都打到汇率源上。
func NewService(cache ecache.Cache, sources ...RateSource) Service {
	svc := &service{
		sources: sources,
		logger:  elog.DefaultLogger,
	}
	if cache != nil {
		svc.cache = &ecache.NamespaceCache{
			C:         cache,
			Namespace: "fxrate:",
		}
	}
	return svc
}

func (s *service) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	if rate, ok := s.getCachedRate(ctx, from, to); ok {
		return rate, nil
	}

	for _, src := range s.sources {
		rate, err := src.Rate(ctx, from, to)
		if err != nil {
			s.logger.Warn("获取汇率失败",
				elog.String("source", src.Name()),
				elog.String("from", from),
				elog.String("to", to),
				elog.FieldErr(err))
			continue
		}
		if !rate.IsPositive() {
			s.logger.Warn("汇率源返回了非法汇率",
				elog.String("source", src.Name()),
				elog.String("rate", rate.String()))
			continue
		}
		s.setCachedRate(ctx, from, to, rate)
		return rate, nil
	}
	return decimal.Zero, ErrRateUnavailable
}

func (s *service) Convert(ctx context.Context, from, to string, amount int64) (int64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return amount, nil
	}
	rate, err := s.Rate(ctx, from, to)
	if err != nil {
		return 0, err
	}
	// 先换算成主单位再乘汇率, 避免最小单位指数不同的货币算错
	converted := decimal.New(amount, -minorUnitExponent(from)).
		Mul(rate).
		Shift(minorUnitExponent(to)).
		Round(0)
	return converted.IntPart(), nil
}

func (s *service) getCachedRate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	if s.cache == nil {
		return decimal.Zero, false
	}
	val := s.cache.Get(ctx, s.rateKey(from, to))
	if val.KeyNotFound() {
		return decimal.Zero, false
	}
	if val.Err != nil {
		s.logger.Warn("读取汇率缓存失败", elog.FieldErr(val.Err))
		return decimal.Zero, false
	}
	str, err := val.String()
	if err != nil {
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return rate, true
}

func (s *service) setCachedRate(ctx context.Context, from, to string, rate decimal.Decimal) {
	if s.cache == nil {
		return
	}
	err := s.cache.Set(ctx, s.rateKey(from, to), rate.String(), cacheExpiration)
	if err != nil {
		s.logger.Warn("写入汇率缓存失败", elog.FieldErr(err))
	}
}

func (s *service) rateKey(from, to string) string {
	return from + "_" + to
}
