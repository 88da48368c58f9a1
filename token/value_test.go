// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/natsort/token"
)

func TestValueCompare(t *testing.T) {
	t.Parallel()

	huge, _ := new(big.Int).SetString("100000000000000000000", 10)
	negHuge := new(big.Int).Neg(huge)

	tests := []struct {
		a, b token.Value
		want int
	}{
		{a: token.Int(1), b: token.Int(2), want: -1},
		{a: token.Int(2), b: token.Int(2), want: 0},
		{a: token.Int(-1), b: token.Int(-2), want: 1},
		{a: token.Float(1.5), b: token.Float(1.25), want: 1},
		{a: token.Int(2), b: token.Float(2), want: 0},
		{a: token.Int(2), b: token.Float(2.5), want: -1},
		{a: token.Float(-0.5), b: token.Int(0), want: -1},
		{a: token.BigInt(huge), b: token.Int(math.MaxInt64), want: 1},
		{a: token.BigInt(negHuge), b: token.Int(math.MinInt64), want: -1},
		{a: token.BigInt(huge), b: token.BigInt(huge), want: 0},
		{a: token.BigInt(huge), b: token.Float(1e20), want: 0},
		{a: token.BigInt(huge), b: token.Float(math.Inf(1)), want: -1},
		{a: token.Float(math.Inf(-1)), b: token.BigInt(negHuge), want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%v <=> %v", tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Compare(tt.a), "%v <=> %v", tt.b, tt.a)
		assert.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var zero token.Value
	assert.False(zero.IsFloat())
	assert.Equal("0", zero.String())
	assert.True(zero.Equal(token.Int(0)))

	v := token.Int(-7)
	n, ok := v.Int64()
	assert.True(ok)
	assert.Equal(int64(-7), n)
	assert.InDelta(-7.0, v.Float64(), 0)

	b, ok := v.Big()
	assert.True(ok)
	assert.Equal("-7", b.String())

	f := token.Float(2.5)
	assert.True(f.IsFloat())
	_, ok = f.Int64()
	assert.False(ok)
	_, ok = f.Big()
	assert.False(ok)
	assert.Equal("2.5", f.String())

	// Small big.Ints are normalized.
	small := token.BigInt(big.NewInt(12))
	n, ok = small.Int64()
	assert.True(ok)
	assert.Equal(int64(12), n)

	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	h := token.BigInt(huge)
	huge.SetInt64(0) // BigInt must not retain its argument.
	assert.Equal("340282366920938463463374607431768211456", h.String())
	assert.InEpsilon(3.402823669209385e38, h.Float64(), 1e-12)
}
