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

package grammar

import (
	"fmt"
	"strings"
)

const (
	BaseDigit Base = iota // Unsigned integers, regardless of sign and exponent settings.
	BaseInt               // Integers.
	BaseFloat             // Floating-point numbers.
)

// Base is the base kind of number to search for: one of the three choices
// a user makes before the sign and exponent settings are applied.
type Base byte

// ParseBase parses the name of a base kind.
//
// Accepts "digit", "int", and "float", as well as "version" and "ver", which
// are aliases for "digit".
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(name) {
	case "digit", "version", "ver":
		return BaseDigit, nil
	case "int":
		return BaseInt, nil
	case "float":
		return BaseFloat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBase, name)
	}
}

// BaseNames returns the names accepted by [ParseBase], in the order they are
// usually documented.
func BaseNames() []string {
	return []string{"digit", "int", "float", "version", "ver"}
}

// String implements [fmt.Stringer].
func (b Base) String() string {
	switch b {
	case BaseDigit:
		return "digit"
	case BaseInt:
		return "int"
	case BaseFloat:
		return "float"
	default:
		return fmt.Sprintf("grammar.Base(%d)", int(b))
	}
}

const (
	Int              NumberKind = iota // Unsigned integers: 12.
	SignedInt                          // Integers with an optional sign: -12.
	Float                              // Unsigned floats with an optional exponent: 1.5e-3.
	SignedFloat                        // Floats with an optional sign and exponent: -1.5e-3.
	FloatNoExp                         // Unsigned floats without exponents: 1.5.
	SignedFloatNoExp                   // Floats with an optional sign, without exponents: -1.5.

	numberKinds = iota

	FloatWithExp       = Float       // Alias for Float.
	SignedFloatWithExp = SignedFloat // Alias for SignedFloat.
)

// NumberKind identifies one [Grammar].
type NumberKind byte

// IsFloat returns whether numbers of this kind are converted to floats.
func (k NumberKind) IsFloat() bool {
	return k >= Float && k < numberKinds
}

// IsSigned returns whether numbers of this kind may carry a sign.
func (k NumberKind) IsSigned() bool {
	switch k {
	case SignedInt, SignedFloat, SignedFloatNoExp:
		return true
	default:
		return false
	}
}

// HasExp returns whether numbers of this kind may carry an exponent.
func (k NumberKind) HasExp() bool {
	return k == Float || k == SignedFloat
}

// String implements [fmt.Stringer].
func (k NumberKind) String() string {
	switch k {
	case Int:
		return "Int"
	case SignedInt:
		return "SignedInt"
	case Float:
		return "Float"
	case SignedFloat:
		return "SignedFloat"
	case FloatNoExp:
		return "FloatNoExp"
	case SignedFloatNoExp:
		return "SignedFloatNoExp"
	default:
		return fmt.Sprintf("grammar.NumberKind(%d)", int(k))
	}
}
