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

package cli

import (
	"errors"
	"strings"

	"github.com/bufbuild/natsort"
	"github.com/bufbuild/natsort/grammar"
	"github.com/bufbuild/natsort/internal/report"
	"github.com/bufbuild/natsort/token"
)

// usageError wraps errors from parsing the command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// diagnose converts an error returned by the command into a diagnostic,
// pointing at the offending flag or entry where possible.
func (c *command) diagnose(err error) report.Diagnostic {
	d := report.Diagnostic{Message: err.Error()}

	var (
		configErr  *natsort.ConfigurationError
		convertErr *token.ConvertError
		usageErr   *usageError
	)
	switch {
	case errors.As(err, &configErr):
		if configErr.Option == flagFilter && configErr.Index < len(c.filters.raw) {
			prefix := "--" + flagFilter + " "
			raw := c.filters.raw[configErr.Index]
			d = d.Snippet(prefix+raw, len(prefix), len(prefix)+len(raw))
		}
		return d.Note("the low end of a range must be below its high end")

	case errors.As(err, &convertErr):
		if !strings.ContainsAny(convertErr.Input, "\r\n") {
			d = d.Snippet(convertErr.Input, convertErr.Start, convertErr.End)
		}
		return d.Note("this is a bug in %s; please report it", program)

	case errors.Is(err, grammar.ErrUnknownBase):
		return d.Note("expected one of %s", strings.Join(grammar.BaseNames(), ", "))

	case errors.Is(err, errUnknownLevel):
		return d.Note("expected one of %s", strings.Join(logLevels, ", "))

	case errors.As(err, &usageErr):
		return d.Note("run '%s --help' for usage", program)
	}
	return d
}
