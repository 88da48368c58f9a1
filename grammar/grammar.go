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

// Package grammar contains the numeric grammars used to find numbers inside
// of strings.
//
// There is exactly one [Grammar] per [NumberKind]. They are built once when
// the package is initialized and are never modified, so they may be shared
// freely between goroutines.
package grammar

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"

	"github.com/bufbuild/natsort/token"
)

// Grammar pairs a pattern for locating numeric runs with a converter for the
// runs it locates.
//
// The zero Grammar is not valid; use [Lookup] or [Get].
type Grammar struct {
	kind    NumberKind
	pattern *regexp.Regexp // Finds the leftmost, longest run.
	exact   *regexp.Regexp // pattern, anchored at both ends.
}

var _ token.Grammar = Grammar{}

var grammars = [numberKinds]Grammar{
	Int:              compile(Int, `\d+`),
	SignedInt:        compile(SignedInt, `[-+]?\d+`),
	Float:            compile(Float, `\d*\.?\d+(?:[eE][-+]?\d+)?`),
	SignedFloat:      compile(SignedFloat, `[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`),
	FloatNoExp:       compile(FloatNoExp, `\d*\.?\d+`),
	SignedFloatNoExp: compile(SignedFloatNoExp, `[-+]?\d*\.?\d+`),
}

func compile(kind NumberKind, pattern string) Grammar {
	return Grammar{
		kind:    kind,
		pattern: regexp.MustCompile(pattern),
		exact:   regexp.MustCompile(`^(?:` + pattern + `)$`),
	}
}

// Lookup returns the grammar for a base kind and its sign and exponent
// settings.
//
// The settings only apply where they make sense: [BaseDigit] always selects
// unsigned integers, and exp is ignored for [BaseInt].
func Lookup(base Base, signed, exp bool) Grammar {
	switch base {
	case BaseDigit:
		return grammars[Int]
	case BaseInt:
		if signed {
			return grammars[SignedInt]
		}
		return grammars[Int]
	case BaseFloat:
		switch {
		case signed && exp:
			return grammars[SignedFloat]
		case exp:
			return grammars[Float]
		case signed:
			return grammars[SignedFloatNoExp]
		default:
			return grammars[FloatNoExp]
		}
	default:
		panic(fmt.Sprintf("grammar: invalid base kind %v", base))
	}
}

// Get returns the grammar for the given kind.
func Get(kind NumberKind) Grammar {
	if kind >= numberKinds {
		panic(fmt.Sprintf("grammar: invalid number kind %v", kind))
	}
	return grammars[kind]
}

// All returns every grammar, ordered by kind.
func All() []Grammar {
	return grammars[:]
}

// IsZero returns whether this is the zero Grammar.
func (g Grammar) IsZero() bool {
	return g.pattern == nil
}

// Kind returns this grammar's kind.
func (g Grammar) Kind() NumberKind {
	return g.kind
}

// Pattern returns the regular expression this grammar uses to find numbers.
func (g Grammar) Pattern() *regexp.Regexp {
	return g.pattern
}

// FindIndex returns the byte range of the leftmost numeric run in s, or nil
// if there is none.
//
// FindIndex implements [token.Grammar].
func (g Grammar) FindIndex(s string) []int {
	return g.pattern.FindStringIndex(s)
}

// Convert converts a numeric run into a value.
//
// Integer kinds produce integers, promoted to a [big.Int] if they do not fit
// in 64 bits. Float kinds produce floats; runs too large for a float64
// become infinities.
//
// Returns a [*ParseError] if run is not, in its entirety, a number this
// grammar would have found.
//
// Convert implements [token.Grammar].
func (g Grammar) Convert(run string) (token.Value, error) {
	if !g.exact.MatchString(run) {
		return token.Value{}, &ParseError{Kind: g.kind, Text: run, Err: errNoMatch}
	}

	if g.kind.IsFloat() {
		// ParseFloat rounds ties-to-even, and overflows to infinity with
		// ErrRange, which we want to keep.
		v, err := strconv.ParseFloat(run, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return token.Value{}, &ParseError{Kind: g.kind, Text: run, Err: err}
		}
		return token.Float(v), nil
	}

	v, err := strconv.ParseInt(run, 10, 64)
	switch {
	case err == nil:
		return token.Int(v), nil
	case errors.Is(err, strconv.ErrRange):
		n, ok := new(big.Int).SetString(run, 10)
		if !ok {
			return token.Value{}, &ParseError{Kind: g.kind, Text: run, Err: err}
		}
		return token.BigInt(n), nil
	default:
		return token.Value{}, &ParseError{Kind: g.kind, Text: run, Err: err}
	}
}

// String implements [fmt.Stringer].
func (g Grammar) String() string {
	if g.IsZero() {
		return "grammar.Grammar{}"
	}
	return fmt.Sprintf("%v(%s)", g.kind, g.pattern)
}
