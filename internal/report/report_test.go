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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/natsort/internal/report"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    report.Diagnostic
		want string
	}{
		{
			name: "message-only",
			d:    report.Diagnostic{Message: "boom"},
			want: "natsort: boom\n",
		},
		{
			name: "ascii",
			d: report.Diagnostic{Message: "Error in --filter: low >= high"}.
				Snippet("--filter 6,5", 9, 12).
				Note("the low end of a range must be below the high end"),
			want: "natsort: Error in --filter: low >= high\n" +
				"   |  --filter 6,5\n" +
				"   |           ^^^\n" +
				"   = note: the low end of a range must be below the high end\n",
		},
		{
			name: "wide",
			d:    report.Diagnostic{Message: "bad"}.Snippet("第2章", 3, 4),
			want: "natsort: bad\n" +
				"   |  第2章\n" +
				"   |    ^\n",
		},
		{
			name: "tab",
			d:    report.Diagnostic{Message: "bad"}.Snippet("a\tb12", 3, 5),
			want: "natsort: bad\n" +
				"   |  a   b12\n" +
				"   |       ^^\n",
		},
		{
			name: "nonprint",
			d:    report.Diagnostic{Message: "bad"}.Snippet("\x01x9", 2, 3),
			want: "natsort: bad\n" +
				"   |  <U+0001>x9\n" +
				"   |           ^\n",
		},
		{
			name: "empty-span",
			d:    report.Diagnostic{Message: "bad"}.Snippet("abc", 3, 3),
			want: "natsort: bad\n" +
				"   |  abc\n" +
				"   |     ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			require.NoError(t, report.Render(&out, "natsort", tt.d))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRenderOutOfBounds(t *testing.T) {
	t.Parallel()

	d := report.Diagnostic{Message: "bad"}.Snippet("abc", 2, 9)
	assert.Panics(t, func() { _ = report.Render(new(strings.Builder), "", d) })
}

func TestNoteDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := report.Diagnostic{Message: "m", Notes: make([]string, 0, 4)}
	a := base.Note("a")
	b := base.Note("b")
	assert.Equal(t, []string{"a"}, a.Notes)
	assert.Equal(t, []string{"b"}, b.Notes)
}
