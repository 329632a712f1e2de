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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TimestampFunc 生成时间戳部分
type TimestampFunc func(time.Time) int64

// SuffixFunc 生成随机后缀部分
type SuffixFunc func() string

// Generator 业务序列号生成器, 订单号、支付单号、钱包流水号都用它
type Generator struct {
	timestampFunc TimestampFunc
	suffixFunc    SuffixFunc
}

func NewGeneratorWith(timestampFunc TimestampFunc, suffixFunc SuffixFunc) *Generator {
	return &Generator{
		timestampFunc: timestampFunc,
		suffixFunc:    suffixFunc,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() },
	)
}

// Generate 生成 32 位长度的序列号
// 毫秒时间戳 + id 后四位 + shortuuid 凑足位数
func (g *Generator) Generate(id int64) (string, error) {
	timestamp := g.timestampFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", id%10000)
	return fmt.Sprintf("%d%s%s", timestamp, lastFour, g.suffixFunc())[:32], nil
}
