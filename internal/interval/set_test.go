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

package interval_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/natsort/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type r = interval.Interval[int]

	tests := []struct {
		name   string
		ranges []r // Ranges to insert.
		want   []r // The disjoint intervals afterwards.
	}{
		{
			name:   "empty-set",
			ranges: []r{{0, 9}},
			want:   []r{{0, 9}},
		},
		{
			name:   "disjoint",
			ranges: []r{{30, 39}, {0, 9}, {20, 25}},
			want:   []r{{0, 9}, {20, 25}, {30, 39}},
		},
		{
			name:   "adjacent-not-merged",
			ranges: []r{{0, 9}, {10, 19}},
			want:   []r{{0, 9}, {10, 19}},
		},
		{
			name:   "subset",
			ranges: []r{{0, 9}, {1, 2}},
			want:   []r{{0, 9}},
		},
		{
			name:   "superset",
			ranges: []r{{0, 9}, {30, 39}, {-2, 40}},
			want:   []r{{-2, 40}},
		},
		{
			name:   "touching-end",
			ranges: []r{{0, 9}, {9, 12}},
			want:   []r{{0, 12}},
		},
		{
			name:   "touching-start",
			ranges: []r{{0, 10}, {-2, 0}},
			want:   []r{{-2, 10}},
		},
		{
			name:   "bridge",
			ranges: []r{{0, 9}, {30, 39}, {50, 59}, {5, 31}},
			want:   []r{{0, 39}, {50, 59}},
		},
		{
			name:   "point",
			ranges: []r{{5, 5}, {7, 7}},
			want:   []r{{5, 5}, {7, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := new(interval.Set[int])
			for _, e := range tt.ranges {
				merged := s.Insert(e.Start, e.End)
				assert.True(t, merged.Contains(e.Start) && merged.Contains(e.End))
				t.Logf("%v", s)
			}
			assert.Equal(t, tt.want, slices.Collect(s.Intervals()))
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	s := new(interval.Set[float64])
	assert.False(t, s.Contains(0))

	s.Insert(2, 6)
	s.Insert(10.5, 11)

	tests := map[float64]bool{
		1.999:       false,
		2:           true,
		5.9:         true,
		6:           true,
		6.0001:      false,
		10.5:        true,
		11:          true,
		math.Inf(1): false,
		-1:          false,
	}
	for point, want := range tests {
		assert.Equal(t, want, s.Contains(point), "Contains(%v)", point)
	}

	got := s.Get(5)
	require.NotNil(t, got)
	assert.Equal(t, interval.Interval[float64]{Start: 2, End: 6}, *got)
	assert.Nil(t, s.Get(8))
}

func TestInsertInvalid(t *testing.T) {
	t.Parallel()

	s := new(interval.Set[float64])
	assert.Panics(t, func() { s.Insert(6, 5) })
	assert.Panics(t, func() { s.Insert(math.NaN(), 5) })
	assert.Equal(t, 0, s.Len())
}
