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
	"iter"
	"slices"
	"strings"

	"github.com/bufbuild/natsort/grammar"
	"github.com/bufbuild/natsort/internal/interval"
	"github.com/bufbuild/natsort/token"
)

// Range is a closed numeric range, used for filtering.
type Range struct {
	Low, High float64
}

// Contains returns whether v lies within this range.
func (r Range) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Low, r.High)
}

// ValidateRanges checks that every range has a low end below its high end.
//
// Returns a [*ConfigurationError] for the first range that does not.
func ValidateRanges(ranges ...Range) error {
	for i, r := range ranges {
		// Written this way so that NaNs are rejected too.
		if !(r.Low < r.High) {
			return &ConfigurationError{
				Option: "filter",
				Index:  i,
				Range:  r,
				Err:    ErrInvalidRange,
			}
		}
	}
	return nil
}

// RangeFilter keeps entries containing a number in any of a set of ranges.
type RangeFilter struct {
	set interval.Set[float64]
}

// NewRangeFilter validates ranges and builds a filter out of them.
//
// An empty RangeFilter keeps nothing.
func NewRangeFilter(ranges ...Range) (*RangeFilter, error) {
	if err := ValidateRanges(ranges...); err != nil {
		return nil, err
	}

	f := new(RangeFilter)
	for _, r := range ranges {
		f.set.Insert(r.Low, r.High)
	}
	return f, nil
}

// Len returns the number of disjoint ranges in this filter, after
// overlapping ranges have been merged.
func (f *RangeFilter) Len() int {
	return f.set.Len()
}

// Ranges returns an iterator over the merged ranges of this filter, in
// ascending order.
func (f *RangeFilter) Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := range f.set.Intervals() {
			if !yield(Range{Low: i.Start, High: i.End}) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (f *RangeFilter) String() string {
	var out strings.Builder
	out.WriteByte('{')
	for r := range f.Ranges() {
		if out.Len() > 1 {
			out.WriteString(", ")
		}
		out.WriteString(r.String())
	}
	out.WriteByte('}')
	return out.String()
}

// Keep returns whether some number in entry, as found by g, lies within one
// of this filter's ranges.
func (f *RangeFilter) Keep(entry string, g grammar.Grammar) bool {
	for v := range token.Numbers(entry, g) {
		if f.set.Contains(v.Float64()) {
			return true
		}
	}
	return false
}

// InAnyRange returns whether some number in entry, as found by g, lies within
// [lows[i], highs[i]] for some i.
//
// Ranges are paired up positionally; if the slices differ in length, the
// extra elements of the longer one are ignored. The ranges are not
// validated, and a range with lows[i] > highs[i] contains nothing.
func InAnyRange(entry string, g grammar.Grammar, lows, highs []float64) bool {
	n := min(len(lows), len(highs))
	for v := range token.Numbers(entry, g) {
		f := v.Float64()
		for i := range n {
			if (Range{lows[i], highs[i]}).Contains(f) {
				return true
			}
		}
	}
	return false
}

// Excluder drops entries containing any of a set of numbers.
type Excluder struct {
	values map[float64]struct{}
}

// NewExcluder returns an excluder for the given values.
func NewExcluder(values ...float64) *Excluder {
	e := &Excluder{values: make(map[float64]struct{}, len(values))}
	for _, v := range values {
		e.values[v] = struct{}{}
	}
	return e
}

// Len returns the number of distinct excluded values.
func (e *Excluder) Len() int {
	return len(e.values)
}

// Keep returns whether no number in entry, as found by g, is equal to an
// excluded value.
func (e *Excluder) Keep(entry string, g grammar.Grammar) bool {
	for v := range token.Numbers(entry, g) {
		if _, ok := e.values[v.Float64()]; ok {
			return false
		}
	}
	return true
}

// NoneExcluded returns whether no number in entry, as found by g, is equal
// to one of values.
func NoneExcluded(entry string, g grammar.Grammar, values []float64) bool {
	return NewExcluder(values...).Keep(entry, g)
}

// Filter returns the entries that contain a number within one of ranges and
// that do not contain any of the excluded values, in their original order.
//
// A nil or empty ranges does not filter by range, and a nil or empty
// excluded excludes nothing. The ranges are validated before any entry is
// examined; an invalid range results in a [*ConfigurationError].
func Filter(entries []string, g grammar.Grammar, ranges []Range, excluded []float64) ([]string, error) {
	var rf *RangeFilter
	if len(ranges) > 0 {
		var err error
		if rf, err = NewRangeFilter(ranges...); err != nil {
			return nil, err
		}
	}

	var ex *Excluder
	if len(excluded) > 0 {
		ex = NewExcluder(excluded...)
	}

	return slices.DeleteFunc(slices.Clone(entries), func(entry string) bool {
		return (rf != nil && !rf.Keep(entry, g)) || (ex != nil && !ex.Keep(entry, g))
	}), nil
}
