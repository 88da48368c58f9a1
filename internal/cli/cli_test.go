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

package cli_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/natsort/internal/cli"
	"github.com/bufbuild/natsort/internal/corpora"
)

// testCase is the contents of a testdata/**/*.yaml file.
type testCase struct {
	Args  []string          `yaml:"args"`
	Stdin string            `yaml:"stdin"`
	Env   map[string]string `yaml:"env"`
}

// TestGolden is not parallel, since cases may set environment variables.
func TestGolden(t *testing.T) {
	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "NATSORT_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "stdout"},
			{Extension: "stderr"},
			{Extension: "exit"},
		},
		Test: func(t *testing.T, _, text string) []string {
			var tc testCase
			corpora.Decode(t, text, &tc)
			for k, v := range tc.Env {
				t.Setenv(k, v)
			}

			stdout, stderr, code := run(t, tc.Stdin, tc.Args...)
			var exit string
			if code != 0 {
				exit = fmt.Sprintln(code)
			}
			return []string{stdout, stderr, exit}
		},
	}
	corpus.Run(t)
}

func TestMalformedFilter(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"6", "a,5", "5,b", ""} {
		stdout, stderr, code := run(t, "", "--filter", arg, "x5")
		assert.Equal(t, 1, code, "%q", arg)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "natsort: invalid argument")
		assert.Contains(t, stderr, "run 'natsort --help' for usage")
	}
}

func TestExcludeSyntax(t *testing.T) {
	t.Parallel()

	stdout, _, code := run(t, "", "--exclude", "3", "-e", "7", "a3", "a5", "a7")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a5\n", stdout)

	// Each --exclude takes exactly one number.
	for _, arg := range []string{"3,7", "three"} {
		stdout, stderr, code := run(t, "", "--exclude", arg, "a3")
		assert.Equal(t, 1, code, "%q", arg)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "run 'natsort --help' for usage")
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := run(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	for _, want := range []string{
		"natsort [flags] [entries...]",
		"--filter LOW,HIGH",
		"--exclude VALUE",
		"--number-type",
		"--nosign",
		"--noexp",
		"--reverse",
		"--version",
	} {
		assert.Contains(t, stdout, want)
	}
}

func TestEmptyLines(t *testing.T) {
	t.Parallel()

	// Blank lines are entries too, and sort first.
	stdout, _, code := run(t, "b\n\n a \n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\na\nb\n", stdout)

	stdout, _, code = run(t, "b\r\na1\r\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a1\nb\n", stdout)
}

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var out, err strings.Builder
	code = cli.Run(t.Context(), args, strings.NewReader(stdin), &out, &err)
	return out.String(), err.String(), code
}
