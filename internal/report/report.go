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

// Package report renders user-facing error messages that point at the part
// of a line of input they are about.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostic is an error message, optionally annotated with a snippet of the
// input it is about.
type Diagnostic struct {
	// The primary message. Rendered as-is.
	Message string

	// The line of input to show, if any. Must not contain newlines.
	Source string
	// The byte range within Source to underline.
	Start, End int

	// Additional lines printed after the snippet.
	Notes []string
}

// Snippet returns a copy of d that underlines source[start:end].
func (d Diagnostic) Snippet(source string, start, end int) Diagnostic {
	d.Source = source
	d.Start, d.End = start, end
	return d
}

// Note returns a copy of d with an extra note appended.
func (d Diagnostic) Note(format string, args ...any) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], fmt.Sprintf(format, args...))
	return d
}

// Render writes d to w, prefixed with the name of the program.
//
// For example:
//
//	natsort: Error in --filter: low >= high
//	   |  --filter 6,5
//	   |           ^^^
//	   = note: the low end of a range must be below the high end
func Render(w io.Writer, program string, d Diagnostic) error {
	var out strings.Builder
	if program != "" {
		out.WriteString(program)
		out.WriteString(": ")
	}
	out.WriteString(d.Message)
	out.WriteByte('\n')

	if d.Source != "" {
		if d.Start < 0 || d.End > len(d.Source) || d.Start > d.End {
			panic(fmt.Sprintf("report: span [%d, %d) out of bounds for %q", d.Start, d.End, d.Source))
		}

		out.WriteString("   |  ")
		stringWidth(0, d.Source, &out)
		out.WriteByte('\n')

		start := stringWidth(0, d.Source[:d.Start], nil)
		end := stringWidth(start, d.Source[d.Start:d.End], nil)
		out.WriteString("   |  ")
		out.WriteString(strings.Repeat(" ", start))
		out.WriteString(strings.Repeat("^", max(1, end-start)))
		out.WriteByte('\n')
	}

	for _, note := range d.Notes {
		out.WriteString("   = note: ")
		out.WriteString(note)
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}
