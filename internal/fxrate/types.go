package fxrate

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrRateUnavailable 所有汇率源都拿不到汇率
	ErrRateUnavailable = errors.New("汇率不可用")
)

//go:generate mockgen -source=./types.go -package=fxratemocks -destination=./mocks/fxrate.mock.go -typed Service
type Service interface {
	// Rate 返回 from -> to 的汇率, from 和 to 是 ISO 4217 货币代码
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
	// Convert 把以最小货币单位表示的金额从 from 换算到 to, 结果四舍五入到 to 的最小单位
	Convert(ctx context.Context, from, to string, amount int64) (int64, error)
}

// RateSource 单一汇率来源, 远程接口、固定表都实现它
type RateSource interface {
	Name() string
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// minorUnitExponent 货币的最小单位指数, CNY/USD 是 2(分), JPY 这类没有辅币的是 0
func minorUnitExponent(currency string) int32 {
	switch currency {
	case "JPY", "KRW", "VND":
		return 0
	default:
		return 2
	}
}
