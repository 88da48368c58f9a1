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

package token

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
)

// Value is the numeric value of a [Number] token.
//
// A Value is either an integer or a float. Integers that do not fit in an
// int64 are stored as a [big.Int]; this mirrors how digit runs of any length
// are valid in an input string.
//
// The zero Value is the integer zero.
type Value struct {
	small   int64
	big     *big.Int // Non-nil only if the value does not fit in small.
	float   float64
	isFloat bool
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{small: v}
}

// BigInt returns an integer Value for an arbitrary-precision integer.
//
// If v fits in an int64, the result is identical to calling [Int]. v is not
// retained.
func BigInt(v *big.Int) Value {
	if v.IsInt64() {
		return Int(v.Int64())
	}
	return Value{big: new(big.Int).Set(v)}
}

// Float returns a floating-point Value.
func Float(v float64) Value {
	return Value{float: v, isFloat: true}
}

// IsFloat returns whether this is a floating-point value.
func (v Value) IsFloat() bool {
	return v.isFloat
}

// Int64 returns this value as an int64, if it is an integer that fits.
func (v Value) Int64() (int64, bool) {
	if v.isFloat || v.big != nil {
		return 0, false
	}
	return v.small, true
}

// Big returns this value as a [big.Int], if it is an integer.
//
// The returned value is a fresh copy.
func (v Value) Big() (*big.Int, bool) {
	switch {
	case v.isFloat:
		return nil, false
	case v.big != nil:
		return new(big.Int).Set(v.big), true
	default:
		return big.NewInt(v.small), true
	}
}

// Float64 returns this value as a float64, rounding if necessary.
//
// Integers too large for a float64 become infinities.
func (v Value) Float64() float64 {
	switch {
	case v.isFloat:
		return v.float
	case v.big != nil:
		f, _ := new(big.Float).SetInt(v.big).Float64()
		return f
	default:
		return float64(v.small)
	}
}

// Compare compares two values by magnitude, returning -1, 0, or 1 like
// [cmp.Compare].
//
// Integers and floats are compared exactly; Compare(Int(2), Float(2)) is
// zero.
func (v Value) Compare(w Value) int {
	switch {
	case v.isFloat && w.isFloat:
		return cmp.Compare(v.float, w.float)

	case !v.isFloat && !w.isFloat:
		if v.big == nil && w.big == nil {
			return cmp.Compare(v.small, w.small)
		}
		a, _ := v.Big()
		b, _ := w.Big()
		return a.Cmp(b)

	default:
		return v.bigFloat().Cmp(w.bigFloat())
	}
}

// Equal returns whether two values are numerically equal.
func (v Value) Equal(w Value) bool {
	return v.Compare(w) == 0
}

// String implements [fmt.Stringer].
func (v Value) String() string {
	switch {
	case v.isFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case v.big != nil:
		return v.big.String()
	default:
		return strconv.FormatInt(v.small, 10)
	}
}

// bigFloat converts this value into an exact big.Float.
func (v Value) bigFloat() *big.Float {
	switch {
	case v.isFloat:
		if math.IsNaN(v.float) {
			// big.Float has no NaN. No grammar produces one; treat it as zero.
			return new(big.Float)
		}
		return new(big.Float).SetFloat64(v.float)
	case v.big != nil:
		return new(big.Float).SetInt(v.big)
	default:
		return new(big.Float).SetInt64(v.small)
	}
}
