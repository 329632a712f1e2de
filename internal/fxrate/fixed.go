package fxrate

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// FixedRateSource 固定汇率表, 作为远程接口不可用时的兜底。
// 表里只有 CNY/USD 时, USD/CNY 会按倒数算出来。
type FixedRateSource struct {
	rates map[string]decimal.Decimal
}

func NewFixedRateSource(rates map[string]decimal.Decimal) *FixedRateSource {
	return &FixedRateSource{rates: rates}
}

func (f *FixedRateSource) Name() string {
	return "fixed"
}

func (f *FixedRateSource) Rate(_ context.Context, from, to string) (decimal.Decimal, error) {
	if rate, ok := f.rates[f.pairKey(from, to)]; ok {
		return rate, nil
	}
	if inverse, ok := f.rates[f.pairKey(to, from)]; ok && inverse.IsPositive() {
		return decimal.NewFromInt(1).DivRound(inverse, 12), nil
	}
	return decimal.Zero, fmt.Errorf("固定汇率表里没有 %s/%s", from, to)
}

func (f *FixedRateSource) pairKey(from, to string) string {
	return from + "/" + to
}
