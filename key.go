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

package natsort

import (
	"slices"
	"strings"

	"github.com/bufbuild/natsort/grammar"
	"github.com/bufbuild/natsort/internal/ext/cmpx"
	"github.com/bufbuild/natsort/token"
)

// Key is a natural sort key: the tokens of a string, compared in order.
type Key []token.Token

var keyOrder = cmpx.Slice[Key](token.Token.Compare)

// BuildKey builds a key out of a sequence of tokens.
//
// tokens is not retained.
func BuildKey(tokens []token.Token) Key {
	return Key(slices.Clone(tokens))
}

// KeyOf tokenizes s with g and returns its key.
func KeyOf(s string, g grammar.Grammar) Key {
	return Key(token.Tokenize(s, g))
}

// Compare compares two keys, returning -1, 0, or 1 like [cmp.Compare].
func Compare(a, b Key) int {
	return keyOrder(a, b)
}

// CompareStrings compares two strings in natural order, using g to find
// numbers in them.
func CompareStrings(a, b string, g grammar.Grammar) int {
	return Compare(KeyOf(a, g), KeyOf(b, g))
}

// Compare compares this key to another, returning -1, 0, or 1 like
// [cmp.Compare].
//
// Elements are compared pairwise; the first pair that differs decides. A
// number sorts before text at the same position, and a key that is a prefix
// of another sorts first.
func (k Key) Compare(other Key) int {
	return keyOrder(k, other)
}

// Len returns the number of elements in this key.
func (k Key) Len() int {
	return len(k)
}

// At returns the element at index i.
func (k Key) At(i int) token.Token {
	return k[i]
}

// String implements [fmt.Stringer].
func (k Key) String() string {
	var out strings.Builder
	out.WriteByte('(')
	for i, tok := range k {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(tok.String())
	}
	out.WriteByte(')')
	return out.String()
}
