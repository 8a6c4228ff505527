// Copyright 2025 The Trim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

// run executes the trim command with the given stdin and arguments,
// returning everything written to stdout and stderr combined.
func run(t *testing.T, input string, args ...string) (output string, err error) {
	t.Helper()
	c := New(args)
	var buf bytes.Buffer
	c.SetOutput(&buf)
	c.SetInput(bytes.NewReader([]byte(input)))
	defer func() { stdin = nil }()
	err = c.Run(context.Background())
	return buf.String(), err
}

func TestStdinDefault(t *testing.T) {
	got, err := run(t, "a \nb\t\n\n\n", "-S", "-V")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "a\nb\n"))
}

func TestStdinSuppressNewline(t *testing.T) {
	got, err := run(t, "a \nb\t\n\n\n", "-N", "-S", "-V")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "a\nb"))
}

func TestStdinDash(t *testing.T) {
	got, err := run(t, "x  ", "-S", "-V", "-")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "x\n"))
}

func TestStdinInvalidEncoding(t *testing.T) {
	got, err := run(t, "\xff\xfe", "-S", "-V")
	qt.Assert(t, qt.ErrorIs(err, ErrPrintedError))
	qt.Assert(t, qt.StringContains(got, "invalid UTF-8 encoding"))
}

func TestMissingFileContinues(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	qt.Assert(t, qt.IsNil(os.WriteFile(a, []byte("one \n"), 0o644)))
	qt.Assert(t, qt.IsNil(os.WriteFile(b, []byte("two\t\n"), 0o644)))

	got, err := run(t, "", "-S", "-V", a, filepath.Join(dir, "missing.txt"), b)
	qt.Assert(t, qt.ErrorIs(err, ErrPrintedError))
	qt.Assert(t, qt.StringContains(got, "one\n"))
	qt.Assert(t, qt.StringContains(got, "two\n"))
	qt.Assert(t, qt.StringContains(got, "missing.txt"))
}

func TestInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("a \nb\t\n\n\n"), 0o644)))

	got, err := run(t, "", "-i", "-S", path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, ""))

	content, err := os.ReadFile(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(content), "a\nb\n"))
}

// Standard input has no file to write back to, so --in-place falls back to
// standard output for a "-" target while still rewriting named files.
func TestInPlaceStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("file \n"), 0o644)))

	got, err := run(t, "stdin \n", "-i", "-S", path, "-")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "stdin\n"))

	content, err := os.ReadFile(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(content), "file\n"))
}

func TestSummary(t *testing.T) {
	got, err := run(t, "a \nb\t\n\n\n", "-V")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(got, "     2 trailing `\\n` trimmed"))
	qt.Assert(t, qt.StringContains(got, "     4 bytes saved overall"))
}

func TestResolveTargets(t *testing.T) {
	got := resolveTargets(nil)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.IsTrue(got[0].isStdin()))

	got = resolveTargets([]string{"a.txt", "-", "b.txt"})
	qt.Assert(t, qt.HasLen(got, 3))
	qt.Assert(t, qt.Equals(got[0].String(), "a.txt"))
	qt.Assert(t, qt.IsTrue(got[1].isStdin()))
	qt.Assert(t, qt.Equals(got[2].String(), "b.txt"))
}
