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
	"fmt"
	"io"
	"os"

	"trimws.dev/trim/internal/atomicfile"
	"trimws.dev/trim/internal/trimmer"
	"trimws.dev/trim/internal/visual"
)

// options configures a single run. It is built once from the parsed flags
// and passed down; there is no other run state.
type options struct {
	inPlace         bool
	suppressNewline bool
	suppressSummary bool
	suppressVisual  bool
}

// A target is a single input source, either a named file or standard input.
type target struct {
	path string // empty for standard input
}

func (t target) isStdin() bool { return t.path == "" }

func (t target) String() string {
	if t.isStdin() {
		return "<stdin>"
	}
	return t.path
}

func (t target) read() ([]byte, error) {
	if t.isStdin() {
		data, err := io.ReadAll(stdinReader())
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(t.path)
}

// resolveTargets maps the positional arguments to targets. No arguments
// means standard input; a "-" argument means standard input at that
// position and may be mixed with named files.
func resolveTargets(args []string) []target {
	if len(args) == 0 {
		return []target{{}}
	}
	targets := make([]target, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			targets = append(targets, target{})
			continue
		}
		targets = append(targets, target{path: arg})
	}
	return targets
}

func runTrim(cmd *Command, args []string) error {
	opts := options{
		inPlace:         flagInPlace.Bool(cmd),
		suppressNewline: flagSuppressNewline.Bool(cmd),
		suppressSummary: flagSuppressSummary.Bool(cmd),
		suppressVisual:  flagSuppressVisual.Bool(cmd),
	}
	targets := resolveTargets(args)

	out := cmd.OutOrStdout()
	// Presentation channel. Unlike cmd.Stderr, writing here does not turn
	// the exit code non-zero.
	info := cmd.OutOrStderr()

	var trailingTrimmed, bytesSaved int
	for _, t := range targets {
		src, err := t.read()
		if err != nil {
			if t.isStdin() {
				// There is no other input source to fall back on.
				return err
			}
			fmt.Fprintln(cmd.Stderr(), err)
			continue
		}
		if err := trimmer.Validate(src); err != nil {
			fmt.Fprintf(cmd.Stderr(), "%s: %v\n", t, err)
			continue
		}

		res := trimmer.Trim(src, opts.suppressNewline)

		if opts.inPlace && !t.isStdin() {
			// Leave the file alone when trimming changed nothing.
			if !bytes.Equal(res.Content, src) {
				if err := atomicfile.WriteFile(t.path, res.Content); err != nil {
					fmt.Fprintln(cmd.Stderr(), err)
					continue
				}
			}
		} else {
			// A stdin target has no file to write back to, so it goes to
			// stdout even under --in-place.
			if _, err := out.Write(res.Content); err != nil {
				fmt.Fprintf(cmd.Stderr(), "%s: %v\n", t, err)
				continue
			}
			if !opts.suppressVisual && len(res.Changed) > 0 {
				var header string
				if len(targets) > 1 && !t.isStdin() {
					header = t.path
				}
				visual.RenderLines(info, header, res.Changed)
			}
		}

		trailingTrimmed += res.TrailingTrimmed
		bytesSaved += res.BytesSaved
	}

	if !opts.suppressSummary {
		visual.RenderSummary(info, trailingTrimmed, bytesSaved)
	}
	return nil
}
