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
	"iter"
)

// Grammar locates and converts numeric runs.
type Grammar interface {
	// FindIndex returns the byte range of the leftmost numeric run in s, in the
	// same format as [regexp.Regexp.FindStringIndex]. Returns nil if s
	// contains no numbers.
	//
	// The returned range must not be empty.
	FindIndex(s string) []int

	// Convert converts a run returned by FindIndex into a value.
	Convert(run string) (Value, error)
}

// ConvertError is the panic value raised by [All] and [Tokenize] when a
// [Grammar] fails to convert a run that it matched itself.
//
// This is an invariant violation in the grammar, not a property of the
// input.
type ConvertError struct {
	Input      string // The string being tokenized.
	Start, End int    // The byte range of the offending run within Input.
	Err        error  // The error returned by Grammar.Convert.
}

// Error implements [error].
func (e *ConvertError) Error() string {
	return fmt.Sprintf("token: cannot convert %q at offset %d: %v", e.Input[e.Start:e.End], e.Start, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ConvertError) Unwrap() error {
	return e.Err
}

// Tokenize splits input into [Text] and [Number] tokens, using g to find
// numbers.
//
// Numeric runs are found left to right and never overlap. Text between them
// becomes a [Text] token; text before the first run and after the last one
// does too, if it is non-empty. An input with no numbers is a single [Text]
// token, and the empty string has no tokens at all.
//
// Panics with a [*ConvertError] if g cannot convert one of its own matches.
func Tokenize(input string, g Grammar) []Token {
	var tokens []Token
	for tok := range All(input, g) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// All is like [Tokenize], but returns an iterator instead of a slice.
func All(input string, g Grammar) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var offset int
		rest := input
		for rest != "" {
			loc := g.FindIndex(rest)
			if loc == nil {
				yield(NewText(rest))
				return
			}

			start, end := loc[0], loc[1]
			if start >= end {
				panic(fmt.Sprintf("token: grammar matched an empty run at offset %d of %q", offset+start, input))
			}

			if start > 0 && !yield(NewText(rest[:start])) {
				return
			}

			value, err := g.Convert(rest[start:end])
			if err != nil {
				panic(&ConvertError{
					Input: input,
					Start: offset + start,
					End:   offset + end,
					Err:   err,
				})
			}
			if !yield(NewNumber(value)) {
				return
			}

			rest = rest[end:]
			offset += end
		}
	}
}

// Numbers returns an iterator over the values of the [Number] tokens in
// input.
func Numbers(input string, g Grammar) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for tok := range All(input, g) {
			if v, ok := tok.Value(); ok && !yield(v) {
				return
			}
		}
	}
}
