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
	"fmt"
	"strconv"

	"github.com/bufbuild/natsort/internal/ext/cmpx"
)

// Token is a single run of an input string: either some [Text], or a [Number]
// along with its [Value].
//
// The zero Token has kind [Invalid].
type Token struct {
	kind  Kind
	text  string
	value Value
}

// NewText returns a new [Text] token.
func NewText(text string) Token {
	return Token{kind: Text, text: text}
}

// NewNumber returns a new [Number] token.
func NewNumber(value Value) Token {
	return Token{kind: Number, value: value}
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.kind == Invalid
}

// Kind returns this token's kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the text of a [Text] token.
//
// Returns "" for any other kind of token.
func (t Token) Text() string {
	return t.text
}

// Value returns the value of a [Number] token.
//
// Returns false for any other kind of token.
func (t Token) Value() (Value, bool) {
	return t.value, t.kind == Number
}

// tokenOrder orders tokens by kind first. Tokens of the same kind differ only
// in the field their kind uses, so comparing both fields in turn is enough.
var tokenOrder = cmpx.Join(
	cmpx.Key(Token.Kind),
	cmpx.Map[Token, Value](func(t Token) Value { return t.value }, Value.Compare),
	cmpx.Key(Token.Text),
)

// Compare orders two tokens.
//
// Tokens of different kinds are ordered by [Kind], so numbers sort before
// text. Two numbers are ordered by [Value.Compare], and two texts by
// codepoint.
func (t Token) Compare(u Token) int {
	return tokenOrder(t, u)
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.kind {
	case Number:
		return fmt.Sprintf("Number(%v)", t.value)
	case Text:
		return fmt.Sprintf("Text(%s)", strconv.Quote(t.text))
	default:
		return "Invalid"
	}
}
