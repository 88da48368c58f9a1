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

import "fmt"

const (
	Invalid Kind = iota // The zero token.

	Number // A numeric run, converted to a Value.
	Text   // A run of characters containing no number.
)

// Kind identifies what kind of token a particular [Token] is.
//
// Kinds are ordered: Number sorts before Text. Natural keys rely on this
// when two keys have a number and some text at the same position.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Number:
		return "Number"
	case Text:
		return "Text"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
