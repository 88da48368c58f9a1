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
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bufbuild/natsort"
)

// Flag names. These double as viper keys.
const (
	flagFilter     = "filter"
	flagExclude    = "exclude"
	flagReverse    = "reverse"
	flagNumberType = "number-type"
	flagNoSign     = "nosign"
	flagNoExp      = "noexp"
	flagLogLevel   = "log-level"
)

var _ pflag.Value = (*rangesFlag)(nil)

// rangesFlag is the repeatable --filter flag. Each occurrence is a closed
// range written LOW,HIGH.
type rangesFlag struct {
	raw    []string
	ranges []natsort.Range
}

// String implements [pflag.Value].
func (f *rangesFlag) String() string {
	return strings.Join(f.raw, " ")
}

// Set implements [pflag.Value].
func (f *rangesFlag) Set(s string) error {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return errors.New("expected LOW,HIGH")
	}

	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return fmt.Errorf("invalid LOW: %w", err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return fmt.Errorf("invalid HIGH: %w", err)
	}

	f.raw = append(f.raw, s)
	f.ranges = append(f.ranges, natsort.Range{Low: low, High: high})
	return nil
}

// Type implements [pflag.Value].
func (f *rangesFlag) Type() string {
	return "LOW,HIGH"
}

var _ pflag.Value = (*valuesFlag)(nil)

// valuesFlag is the repeatable --exclude flag. Each occurrence is a single
// number.
type valuesFlag struct {
	values []float64
}

// String implements [pflag.Value].
func (f *valuesFlag) String() string {
	strs := make([]string, len(f.values))
	for i, v := range f.values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, " ")
}

// Set implements [pflag.Value].
func (f *valuesFlag) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid VALUE: %w", err)
	}
	f.values = append(f.values, v)
	return nil
}

// Type implements [pflag.Value].
func (f *valuesFlag) Type() string {
	return "VALUE"
}

// logLevels lists the names accepted by --log-level.
var logLevels = []string{"debug", "info", "warn", "error"}

var errUnknownLevel = errors.New("unknown level")

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid --%s: %w %q", flagLogLevel, errUnknownLevel, name)
	}
}
