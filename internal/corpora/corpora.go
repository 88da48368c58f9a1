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

// Package corpora runs golden tests out of a directory of test cases.
//
// Each test case is a file with a particular extension; each of its expected
// outputs lives next to it, in a file with the same name plus an extra
// extension. Setting the refresh environment variable to a glob regenerates
// the expected outputs of every matching test case.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Corpus describes a directory of golden tests.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases to refresh.
	Refresh string

	// The extension (without a dot) of files which define a test case, e.g.
	// "yaml".
	Extension string
	// The outputs of each test case. A missing output file is treated as
	// expecting the empty string.
	Outputs []Output

	// Test executes one test case. Returns one string per element of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents the output of a test case.
type Output struct {
	// The extension of the output, appended to the test case's file name. If
	// Corpus.Extension is "yaml" and this is "stdout", the test "foo.yaml"
	// expects the contents of "foo.yaml.stdout".
	Extension string

	// The comparison function for this output. May be nil, in which case the
	// values are compared byte-for-byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns empty string if the strings match, otherwise returns an error message.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	tests, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatal("corpora: error while searching testdata:", err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// Refreshing never counts as a passing run.
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, name := range tests {
		path := filepath.Join(root, filepath.FromSlash(name))
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			results := c.Test(t, name, string(bytes))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					if err := write(path, results[i]); err != nil {
						t.Logf("corpora: %v", err)
						t.Fail()
					}
					continue
				}

				bytes, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Logf("corpora: error while loading output file %q: %v", path, err)
					t.Fail()
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(bytes)); diff != "" {
					t.Logf("output mismatch for %q:\n%s", path, diff)
					t.Fail()
				}
			}
		})
	}
}

// Decode parses the YAML text of a test case into v, failing the test if it
// is malformed or has unknown fields.
func Decode(t *testing.T, text string, v any) {
	t.Helper()

	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		t.Fatalf("corpora: invalid test case: %v", err)
	}
}

// write replaces the output file at path, removing it if the output is
// empty.
func write(path, output string) error {
	if output == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error while deleting output file %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error while writing output file %q: %w", path, err)
	}
	return nil
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read.
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
