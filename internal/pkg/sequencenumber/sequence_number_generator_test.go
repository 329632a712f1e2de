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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		id            int64
		timestampFunc TimestampFunc
		suffixFunc    SuffixFunc
		wantPrefix    string
	}{
		{
			name:          "ID不足四位需要补零",
			id:            789,
			timestampFunc: func(t time.Time) int64 { return 1716800000000 },
			suffixFunc:    func() string { return strings.Repeat("x", 20) },
			wantPrefix:    "17168000000000789",
		},
		{
			name:          "ID超过四位只取后四位",
			id:            1234567,
			timestampFunc: func(t time.Time) int64 { return 1716800000000 },
			suffixFunc:    func() string { return strings.Repeat("x", 20) },
			wantPrefix:    "17168000000004567",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewGeneratorWith(tc.timestampFunc, tc.suffixFunc)
			sn, err := g.Generate(tc.id)
			require.NoError(t, err)
			assert.Len(t, sn, 32)
			assert.True(t, strings.HasPrefix(sn, tc.wantPrefix))
		})
	}
}

func TestGenerator_GenerateUnique(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		sn, err := g.Generate(int64(i))
		require.NoError(t, err)
		require.Len(t, sn, 32)
		_, ok := seen[sn]
		require.False(t, ok)
		seen[sn] = struct{}{}
	}
}
