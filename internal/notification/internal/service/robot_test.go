package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWechatRobotService_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		newServer     func(t *testing.T) *httptest.Server
		post          HTTPPOSTFunc
		robot         string
		content       string
		errAssertFunc assert.ErrorAssertionFunc
		after         func(t *testing.T, received []byte)
	}{
		{
			name: "发送成功",
			newServer: func(t *testing.T) *httptest.Server {
				t.Helper()
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					w.WriteHeader(http.StatusOK)
				}))
			},
			robot:         "adminRobot",
			content:       "订单结算成功",
			errAssertFunc: assert.NoError,
			after: func(t *testing.T, received []byte) {
				var msg WechatRobotMessage
				require.NoError(t, json.Unmarshal(received, &msg))
				assert.Equal(t, "text", msg.MsgType)
				assert.Equal(t, "订单结算成功", msg.Text.Content)
			},
		},
		{
			name: "超长内容被截断且不切坏多字节字符",
			newServer: func(t *testing.T) *httptest.Server {
				t.Helper()
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))
			},
			robot: "adminRobot",
			// 中文每个字符3字节, 总长远超 maxTextBytes
			content:       strings.Repeat("结", maxTextBytes),
			errAssertFunc: assert.NoError,
			after: func(t *testing.T, received []byte) {
				var msg WechatRobotMessage
				require.NoError(t, json.Unmarshal(received, &msg))
				assert.LessOrEqual(t, len(msg.Text.Content), maxTextBytes)
				assert.True(t, utf8.ValidString(msg.Text.Content))
			},
		},
		{
			name: "未配置的机器人",
			newServer: func(t *testing.T) *httptest.Server {
				t.Helper()
				return httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
					t.Error("不应该发出请求")
				}))
			},
			robot:         "unknownRobot",
			content:       "any",
			errAssertFunc: assert.Error,
		},
		{
			name: "webhook返回非200",
			newServer: func(t *testing.T) *httptest.Server {
				t.Helper()
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				}))
			},
			robot:         "adminRobot",
			content:       "any",
			errAssertFunc: assert.Error,
		},
		{
			name: "请求发送失败",
			post: func(_, _ string, _ io.Reader) (*http.Response, error) {
				return nil, errors.New("mock: 网络不可达")
			},
			robot:         "adminRobot",
			content:       "any",
			errAssertFunc: assert.Error,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var received []byte
			post, webhookURL := tc.post, "http://invalid"
			if tc.newServer != nil {
				server := tc.newServer(t)
				defer server.Close()
				webhookURL = server.URL
				post = func(url, contentType string, body io.Reader) (*http.Response, error) {
					data, err := io.ReadAll(body)
					require.NoError(t, err)
					received = data
					return http.Post(url, contentType, strings.NewReader(string(data)))
				}
			}

			svc := NewWechatRobotService(post, WechatRobotConfig{ChatRobots: map[string]string{
				"adminRobot": webhookURL,
			}})

			err := svc.Send(tc.robot, tc.content)

			tc.errAssertFunc(t, err)
			if tc.after != nil {
				tc.after(t, received)
			}
		})
	}
}
