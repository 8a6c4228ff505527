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

// Package visual renders the human-facing side channel of a trim run: a
// per-line marking of where whitespace was removed, and the end-of-run
// summary. Both are presentation only and are written to stderr by the
// caller, never mixed into the trimmed output.
package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trimws.dev/trim/internal/trimmer"
)

// padding marks the removed whitespace: one '_' per removed byte, white on
// red. lipgloss degrades this to plain underscores when the output is not a
// terminal.
var padding = lipgloss.NewStyle().
	Background(lipgloss.Color("1")).
	Foreground(lipgloss.Color("15"))

// RenderLines writes one marker line per changed input line, in the form
//
//	     3|some text____
//
// where the underscores stand in for the removed bytes. A non-empty header
// names the file the lines came from.
func RenderLines(w io.Writer, header string, changed []trimmer.Line) {
	if header != "" {
		fmt.Fprintf(w, "%6s|%s\n", "file", header)
	}
	for _, l := range changed {
		fmt.Fprintf(w, "%6d|%s%s\n", l.Number, l.Text, padding.Render(strings.Repeat("_", l.Removed)))
	}
}

// RenderSummary writes the aggregate counts for the whole run.
func RenderSummary(w io.Writer, trailingTrimmed, bytesSaved int) {
	fmt.Fprintf(w, "\n%6d trailing `\\n` trimmed\n", trailingTrimmed)
	fmt.Fprintf(w, "%6d bytes saved overall\n", bytesSaved)
}
