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

// Package cli implements the natsort command.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bufbuild/natsort"
	"github.com/bufbuild/natsort/grammar"
	"github.com/bufbuild/natsort/internal/report"
	"github.com/bufbuild/natsort/token"
)

// Version is printed by --version. Overridden at link time for releases.
var Version = "devel"

const (
	program = "natsort"

	// EnvPrefix is the prefix of environment variables that set flags, e.g.
	// NATSORT_NUMBER_TYPE.
	EnvPrefix = "NATSORT"
)

// Run executes natsort with the given arguments (not including the program
// name) and returns its exit code.
//
// Errors are rendered to stderr; they are never returned.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := newCommand()
	c.cobra.SetArgs(args)
	c.cobra.SetIn(stdin)
	c.cobra.SetOut(stdout)
	c.cobra.SetErr(stderr)

	if err := c.cobra.ExecuteContext(ctx); err != nil {
		_ = report.Render(stderr, program, c.diagnose(err))
		return 1
	}
	return 0
}

// command is the state of a single invocation of natsort.
type command struct {
	cobra   *cobra.Command
	viper   *viper.Viper
	filters rangesFlag
	exclude valuesFlag
}

func newCommand() *command {
	c := &command{viper: viper.New()}
	c.cobra = &cobra.Command{
		Use:   program + " [flags] [entries...]",
		Short: "Sort entries naturally",
		Long: `Performs a natural sort on entries given on the command line.

A natural sort sorts numerically then alphabetically, and will sort by
numbers in the middle of an entry. Entries are read from stdin, one per line,
if none are given on the command line.

Every flag except --filter and --exclude may also be set through the
environment, e.g. NATSORT_NUMBER_TYPE=int.`,
		Args:              cobra.ArbitraryArgs,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE:              c.run,
	}
	c.cobra.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	c.cobra.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := c.cobra.Flags()
	flags.VarP(&c.filters, flagFilter, "f",
		"keep only the entries that have a number falling in the range; may be repeated")
	flags.VarP(&c.exclude, flagExclude, "e",
		"exclude entries that contain a specific number; may be repeated")
	flags.BoolP(flagReverse, "r", false, "return in reversed order")
	flags.StringP(flagNumberType, "t", grammar.BaseFloat.String(),
		fmt.Sprintf("the type of number to search for: one of %s; "+
			`"digit", "version" and "ver" are shortcuts for "int" with --nosign`,
			strings.Join(grammar.BaseNames(), ", ")))
	flags.Bool(flagNoSign, false, `do not consider "+" or "-" as part of a number`)
	flags.Bool(flagNoExp, false, "do not consider an exponent as part of a number, "+
		`i.e. 1e4 is 1, "e" and 4, not 10000; only affects --number-type=float`)
	flags.String(flagLogLevel, "warn",
		fmt.Sprintf("log verbosity: one of %s", strings.Join(logLevels, ", ")))

	c.viper.SetEnvPrefix(EnvPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()
	for _, name := range []string{flagReverse, flagNumberType, flagNoSign, flagNoExp, flagLogLevel} {
		// Cannot fail: the flag was registered above.
		_ = c.viper.BindPFlag(name, flags.Lookup(name))
	}

	return c
}

// options resolves the sorting options from flags and the environment.
func (c *command) options() (natsort.Options, error) {
	base, err := grammar.ParseBase(c.viper.GetString(flagNumberType))
	if err != nil {
		return natsort.Options{}, fmt.Errorf("invalid --%s: %w", flagNumberType, err)
	}
	return natsort.Options{
		Base:    base,
		Signed:  !c.viper.GetBool(flagNoSign),
		Exp:     !c.viper.GetBool(flagNoExp),
		Reverse: c.viper.GetBool(flagReverse),
	}, nil
}

func (c *command) logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(c.viper.GetString(flagLogLevel))
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise on a terminal.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})), nil
}

func (c *command) run(cmd *cobra.Command, args []string) (err error) {
	logger, err := c.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts, err := c.options()
	if err != nil {
		return err
	}

	g := opts.Grammar()
	logger.Debug("resolved options",
		slog.String("number-type", opts.Base.String()),
		slog.String("grammar", g.Kind().String()),
		slog.Bool("reverse", opts.Reverse),
		slog.Int("filters", len(c.filters.ranges)),
		slog.Int("excluded", len(c.exclude.values)),
	)

	// Reject bad ranges before reading any entries.
	if len(c.filters.ranges) > 0 {
		rf, err := natsort.NewRangeFilter(c.filters.ranges...)
		if err != nil {
			return err
		}
		logger.Debug("merged filter ranges", slog.Int("ranges", rf.Len()), slog.String("union", rf.String()))
	}

	entries := slices.Clone(args)
	if len(entries) == 0 {
		logger.Debug("reading entries from stdin")
		if entries, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	for i, e := range entries {
		entries[i] = strings.TrimSpace(e)
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			cerr, ok := r.(*token.ConvertError)
			if !ok {
				panic(r)
			}
			err = cerr
		}
	}()

	kept, err := natsort.Filter(entries, g, c.filters.ranges, c.exclude.values)
	if err != nil {
		return err
	}
	logger.Debug("filtered entries", slog.Int("read", len(entries)), slog.Int("kept", len(kept)))

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, entry := range natsort.Sort(kept, g, opts.Reverse) {
		out.WriteString(entry)
		out.WriteByte('\n')
	}
	return out.Flush()
}

// readLines reads all lines of r, without their line endings. A final line
// without a newline is still a line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		switch {
		case errors.Is(err, io.EOF):
			return lines, nil
		case err != nil:
			return lines, err
		}
	}
}
