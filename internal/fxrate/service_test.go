package fxrate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name  string
	rate  decimal.Decimal
	err   error
	calls int
}

func (s *stubSource) Name() string {
	return s.name
}

func (s *stubSource) Rate(_ context.Context, _, _ string) (decimal.Decimal, error) {
	s.calls++
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.rate, nil
}

type fakeCache struct {
	ecache.Cache
	data map[string]any
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]any{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ecache.Value {
	val, ok := f.data[key]
	if !ok {
		return ecache.Value{}
	}
	return ecache.Value{AnyValue: ekit.AnyValue{Val: val}}
}

func (f *fakeCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	f.data[key] = val
	return nil
}

func TestService_Rate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		sources   []RateSource
		from      string
		to        string
		wantRate  string
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:      "同币种汇率为1",
			sources:   nil,
			from:      "CNY",
			to:        "cny",
			wantRate:  "1",
			assertErr: assert.NoError,
		},
		{
			name: "第一个源成功",
			sources: []RateSource{
				&stubSource{name: "primary", rate: decimal.RequireFromString("0.1382")},
				&stubSource{name: "fallback", rate: decimal.RequireFromString("0.2")},
			},
			from:      "CNY",
			to:        "USD",
			wantRate:  "0.1382",
			assertErr: assert.NoError,
		},
		{
			name: "第一个源失败退到第二个",
			sources: []RateSource{
				&stubSource{name: "primary", err: errors.New("接口超时")},
				&stubSource{name: "fallback", rate: decimal.RequireFromString("0.138")},
			},
			from:      "CNY",
			to:        "USD",
			wantRate:  "0.138",
			assertErr: assert.NoError,
		},
		{
			name: "非法汇率被跳过",
			sources: []RateSource{
				&stubSource{name: "primary", rate: decimal.Zero},
				&stubSource{name: "fallback", rate: decimal.RequireFromString("0.138")},
			},
			from:      "CNY",
			to:        "USD",
			wantRate:  "0.138",
			assertErr: assert.NoError,
		},
		{
			name: "全部源失败",
			sources: []RateSource{
				&stubSource{name: "primary", err: errors.New("接口超时")},
				&stubSource{name: "fallback", err: errors.New("表里没有")},
			},
			from: "CNY",
			to:   "USD",
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrRateUnavailable)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(nil, tc.sources...)
			rate, err := svc.Rate(context.Background(), tc.from, tc.to)
			tc.assertErr(t, err)
			if err == nil {
				assert.Equal(t, tc.wantRate, rate.String())
			}
		})
	}
}

func TestService_RateCached(t *testing.T) {
	t.Parallel()
	src := &stubSource{name: "primary", rate: decimal.RequireFromString("0.1382")}
	svc := NewService(newFakeCache(), src)

	rate, err := svc.Rate(context.Background(), "CNY", "USD")
	require.NoError(t, err)
	assert.Equal(t, "0.1382", rate.String())
	require.Equal(t, 1, src.calls)

	rate, err = svc.Rate(context.Background(), "CNY", "USD")
	require.NoError(t, err)
	assert.Equal(t, "0.1382", rate.String())
	assert.Equal(t, 1, src.calls)
}

func TestService_Convert(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		rate       string
		from       string
		to         string
		amount     int64
		wantAmount int64
		assertErr  assert.ErrorAssertionFunc
	}{
		{
			name:       "同币种原样返回",
			from:       "CNY",
			to:         "CNY",
			amount:     9900,
			wantAmount: 9900,
			assertErr:  assert.NoError,
		},
		{
			name:       "人民币转美元",
			rate:       "0.1382",
			from:       "CNY",
			to:         "USD",
			amount:     9999,
			wantAmount: 1382,
			assertErr:  assert.NoError,
		},
		{
			name:       "尾数小于半分舍弃",
			rate:       "0.134",
			from:       "CNY",
			to:         "USD",
			amount:     100,
			wantAmount: 13,
			assertErr:  assert.NoError,
		},
		{
			name:       "恰好半分进位",
			rate:       "0.135",
			from:       "CNY",
			to:         "USD",
			amount:     100,
			wantAmount: 14,
			assertErr:  assert.NoError,
		},
		{
			name:       "目标货币没有辅币",
			rate:       "20.5",
			from:       "CNY",
			to:         "JPY",
			amount:     150,
			wantAmount: 31,
			assertErr:  assert.NoError,
		},
		{
			name:   "汇率不可用",
			from:   "CNY",
			to:     "USD",
			amount: 100,
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrRateUnavailable)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var sources []RateSource
			if tc.rate != "" {
				sources = append(sources, &stubSource{name: "primary", rate: decimal.RequireFromString(tc.rate)})
			}
			svc := NewService(nil, sources...)
			got, err := svc.Convert(context.Background(), tc.from, tc.to, tc.amount)
			tc.assertErr(t, err)
			if err == nil {
				assert.Equal(t, tc.wantAmount, got)
			}
		})
	}
}
