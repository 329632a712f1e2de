package fxrate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPRateSource 从远程汇率接口取实时汇率。
// 接口约定: GET {endpoint}?base={from}&symbols={to}
// 响应: {"base": "CNY", "rates": {"USD": 0.1382}}
type HTTPRateSource struct {
	endpoint string
	client   *http.Client
}

func NewHTTPRateSource(endpoint string) *HTTPRateSource {
	return &HTTPRateSource{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (h *HTTPRateSource) Name() string {
	return "http " + h.endpoint
}

func (h *HTTPRateSource) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s?base=%s&symbols=%s", h.endpoint, url.QueryEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("请求汇率接口失败: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("汇率接口返回状态码 %d", resp.StatusCode)
	}

	var body struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("解析汇率接口响应失败: %w", err)
	}
	rate, ok := body.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("汇率接口响应里没有 %s 的汇率", to)
	}
	return rate, nil
}
