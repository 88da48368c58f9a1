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

	"github.com/bufbuild/natsort/grammar"
)

// Sort returns a copy of entries sorted in natural order, using g to find
// numbers.
//
// The sort is stable: entries with equal keys keep their relative order.
// If reverse is set, the result is exactly the ascending result reversed,
// so entries with equal keys appear in the opposite of their input order.
func Sort(entries []string, g grammar.Grammar, reverse bool) []string {
	return SortFunc(entries, func(s string) string { return s }, g, reverse)
}

// SortFunc is like [Sort], but sorts arbitrary items by the natural order of
// the string key returns for them.
//
// key is called exactly once per item.
func SortFunc[T any](items []T, key func(T) string, g grammar.Grammar, reverse bool) []T {
	perm := indices(len(items), func(i int) string { return key(items[i]) }, g, reverse)
	out := make([]T, len(items))
	for i, j := range perm {
		out[i] = items[j]
	}
	return out
}

// Indices returns the order in which [Sort] would place entries: the
// element at index i of the result is the index into entries of the i-th
// sorted entry.
func Indices(entries []string, g grammar.Grammar, reverse bool) []int {
	return indices(len(entries), func(i int) string { return entries[i] }, g, reverse)
}

func indices(n int, at func(int) string, g grammar.Grammar, reverse bool) []int {
	keys := make([]Key, n)
	perm := make([]int, n)
	for i := range n {
		keys[i] = KeyOf(at(i), g)
		perm[i] = i
	}

	slices.SortStableFunc(perm, func(a, b int) int {
		return keys[a].Compare(keys[b])
	})
	if reverse {
		slices.Reverse(perm)
	}
	return perm
}
