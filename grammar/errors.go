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
	"errors"
	"fmt"
)

var (
	// ErrParse is a sentinel matched by every [*ParseError].
	ErrParse = errors.New("invalid numeric run")

	// ErrUnknownBase is returned by [ParseBase] for names it does not know.
	ErrUnknownBase = errors.New("unknown number type")

	errNoMatch = errors.New("does not match pattern")
)

// ParseError is returned by [Grammar.Convert] when asked to convert text that
// is not a number of the grammar's kind.
//
// Text located by the same grammar never produces a ParseError.
type ParseError struct {
	Kind NumberKind // The kind of the grammar that failed.
	Text string     // The text that failed to convert.
	Err  error      // The underlying cause, e.g. a *strconv.NumError.
}

// Error implements [error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %v: %v", e.Text, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
