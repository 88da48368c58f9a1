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

// Package interval provides sets of closed numeric intervals.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint interface {
	constraints.Integer | constraints.Float
}

// Set is a union of closed intervals with endpoints in K.
//
// Overlapping intervals are merged on insertion, so the intervals in a Set
// are always pairwise disjoint.
//
// A zero value is ready to use.
type Set[K Endpoint] struct {
	// Keys in this map are the ends of intervals in the set; values are the
	// starts.
	tree btree.Map[K, K]
}

// Interval is a closed interval yielded by [Set.Intervals].
type Interval[K Endpoint] struct {
	Start, End K // Both inclusive.
}

// Contains returns whether an interval contains a given point.
func (i Interval[K]) Contains(point K) bool {
	return i.Start <= point && point <= i.End
}

// Len returns the number of disjoint intervals in this set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Contains returns whether some interval in this set contains point.
func (s *Set[K]) Contains(point K) bool {
	return s.Get(point) != nil
}

// Get returns the interval that contains point, or nil if there is none.
func (s *Set[K]) Get(point K) *Interval[K] {
	iter := s.tree.Iter()
	if !iter.Seek(point) || point < iter.Value() {
		// Seek found the least interval with point <= end, so it suffices to
		// check its start.
		return nil
	}
	return &Interval[K]{Start: iter.Value(), End: iter.Key()}
}

// Insert adds the closed interval [start, end] to this set.
//
// Any intervals it overlaps are merged with it. Returns the merged interval
// that now contains [start, end].
func (s *Set[K]) Insert(start, end K) Interval[K] {
	//nolint:gocritic // x != x is the generic NaN check.
	if start > end || start != start || end != end {
		panic(fmt.Sprintf("interval: invalid interval [%v, %v]", start, end))
	}

	for {
		// The least interval with start <= its end. If it also begins no later
		// than end, it overlaps [start, end].
		iter := s.tree.Iter()
		if !iter.Seek(start) || iter.Value() > end {
			break
		}

		start = min(start, iter.Value())
		end = max(end, iter.Key())
		s.tree.Delete(iter.Key())
	}

	s.tree.Set(end, start)
	return Interval[K]{Start: start, End: end}
}

// Intervals returns an iterator over the intervals in this set, in order.
func (s *Set[K]) Intervals() iter.Seq[Interval[K]] {
	return func(yield func(Interval[K]) bool) {
		iter := s.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(Interval[K]{Start: iter.Value(), End: iter.Key()}) {
				return
			}
		}
	}
}
