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

package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// maxTextBytes 企业微信机器人text消息的内容上限
const maxTextBytes = 2048

type Text struct {
	Content string `json:"content"`
}

type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

// WechatRobotConfig key 是业务内的机器人名字, value 是对应群的 webhook 地址
type WechatRobotConfig struct {
	ChatRobots map[string]string `yaml:"chatRobots"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

// WechatRobotService 企业微信群机器人, 运营告警和结算播报都走它
type WechatRobotService struct {
	post   HTTPPOSTFunc
	config WechatRobotConfig
}

func NewWechatRobotService(post HTTPPOSTFunc, config WechatRobotConfig) *WechatRobotService {
	return &WechatRobotService{post: post, config: config}
}

func (s *WechatRobotService) Send(robot, content string) error {
	webhookURL, ok := s.config.ChatRobots[robot]
	if !ok {
		return errors.New("未配置的机器人: " + robot)
	}
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(content, maxTextBytes)},
	})
	if err != nil {
		return errors.Wrap(err, "序列化机器人消息失败")
	}
	resp, err := s.post(webhookURL, "application/json", bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "向机器人webhook发送请求失败")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.New("机器人webhook拒绝请求: " + http.StatusText(resp.StatusCode))
	}
	return nil
}
