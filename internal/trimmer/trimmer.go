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

// Package trimmer normalizes trailing whitespace in text.
//
// Trimming removes trailing horizontal whitespace from every line and
// collapses trailing blank lines into a single terminating newline. It never
// reorders lines, never touches leading or interior whitespace, and is
// idempotent: trimming already-trimmed content yields identical output.
package trimmer

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// A Line records a single input line that lost bytes during trimming.
// Number is 1-based. Text holds the line after trimming and Removed the
// number of trailing whitespace bytes that were cut from it.
type Line struct {
	Number  int
	Text    string
	Removed int
}

// Result holds the trimmed content together with the metadata needed for
// reporting.
type Result struct {
	// Content is the trimmed output.
	Content []byte

	// Changed lists the lines that lost trailing whitespace, in input
	// order. Trailing blank lines that were dropped entirely appear here
	// too when they contained whitespace.
	Changed []Line

	// TrailingTrimmed is the number of newline characters removed when
	// collapsing trailing blank lines.
	TrailingTrimmed int

	// BytesSaved is how many bytes smaller the content became. It is zero
	// when trimming only appended a missing final newline.
	BytesSaved int
}

// LinesChanged reports how many input lines lost trailing whitespace.
func (r Result) LinesChanged() int { return len(r.Changed) }

// Validate reports whether src is decodable as UTF-8 text. The driver calls
// this before trimming so that binary files are skipped rather than mangled.
func Validate(src []byte) error {
	if !utf8.Valid(src) {
		return fmt.Errorf("invalid UTF-8 encoding")
	}
	return nil
}

// Trim normalizes src:
//
//  1. trailing horizontal whitespace (spaces, tabs, carriage returns) is
//     removed from the end of every line;
//  2. trailing blank lines are collapsed into a single terminating newline;
//  3. non-empty content always ends in exactly one newline, unless
//     suppressNewline is set, in which case it ends in none;
//  4. empty input stays empty in both modes.
//
// Trim is a pure function of src and suppressNewline. Lines are split on
// '\n' only; a '\r' before the newline counts as trailing whitespace, so
// CRLF input is normalized to LF.
func Trim(src []byte, suppressNewline bool) Result {
	var r Result
	if len(src) == 0 {
		return r
	}

	lines := bytes.Split(src, []byte{'\n'})

	// last is the index of the last line that is non-blank after
	// trimming; everything beyond it is a trailing blank line.
	trimmed := make([][]byte, len(lines))
	last := -1
	for i, line := range lines {
		t := trimRight(line)
		trimmed[i] = t
		if len(t) > 0 {
			last = i
		}
		if removed := len(line) - len(t); removed > 0 {
			r.Changed = append(r.Changed, Line{
				Number:  i + 1,
				Text:    string(t),
				Removed: removed,
			})
		}
	}

	var buf bytes.Buffer
	buf.Grow(len(src))
	for i := 0; i <= last; i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(trimmed[i])
	}
	if !suppressNewline {
		buf.WriteByte('\n')
	}
	r.Content = buf.Bytes()

	if n := bytes.Count(src, []byte{'\n'}) - bytes.Count(r.Content, []byte{'\n'}); n > 0 {
		r.TrailingTrimmed = n
	}
	if n := len(src) - len(r.Content); n > 0 {
		r.BytesSaved = n
	}
	return r
}

func trimRight(line []byte) []byte {
	i := len(line)
	for i > 0 {
		switch line[i-1] {
		case ' ', '\t', '\r':
			i--
		default:
			return line[:i]
		}
	}
	return line[:0]
}
