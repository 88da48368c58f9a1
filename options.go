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
	"fmt"

	"github.com/bufbuild/natsort/grammar"
)

// Options selects how strings are sorted.
type Options struct {
	// The kind of number to look for.
	Base grammar.Base
	// Whether a leading + or - is part of a number.
	Signed bool
	// Whether an exponent, like the e4 in 1e4, is part of a float.
	Exp bool
	// Whether to sort in descending order.
	Reverse bool
}

// DefaultOptions returns the default options: ascending order, with signed
// floats that may have exponents.
func DefaultOptions() Options {
	return Options{
		Base:   grammar.BaseFloat,
		Signed: true,
		Exp:    true,
	}
}

// Grammar returns the grammar these options select.
func (o Options) Grammar() grammar.Grammar {
	return grammar.Lookup(o.Base, o.Signed, o.Exp)
}

// Sort sorts entries according to these options. See [Sort].
func (o Options) Sort(entries []string) []string {
	return Sort(entries, o.Grammar(), o.Reverse)
}

// String implements [fmt.Stringer].
func (o Options) String() string {
	return fmt.Sprintf("%v (grammar %v, reverse %v)", o.Base, o.Grammar().Kind(), o.Reverse)
}
