package fxrate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRateSource(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		handler   http.HandlerFunc
		wantRate  string
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "正常返回",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "CNY", r.URL.Query().Get("base"))
				assert.Equal(t, "USD", r.URL.Query().Get("symbols"))
				_, _ = fmt.Fprint(w, `{"base":"CNY","rates":{"USD":0.1382}}`)
			},
			wantRate:  "0.1382",
			assertErr: assert.NoError,
		},
		{
			name: "响应里没有目标货币",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"base":"CNY","rates":{}}`)
			},
			assertErr: assert.Error,
		},
		{
			name: "非200状态码",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			assertErr: assert.Error,
		},
		{
			name: "响应不是合法JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `rate=0.1382`)
			},
			assertErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			src := NewHTTPRateSource(server.URL)
			rate, err := src.Rate(context.Background(), "CNY", "USD")
			tc.assertErr(t, err)
			if err == nil {
				require.Equal(t, tc.wantRate, rate.String())
			}
		})
	}
}
