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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the trim command.
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "trim [flags] [files]",
		Short: "trim removes trailing whitespace from text",
		Long: `Trim removes trailing whitespace from each line of its input and
collapses trailing blank lines into a single terminating newline.

Each file argument is trimmed independently. Without file arguments, or
where an argument is '-', standard input is trimmed instead. By default the
trimmed content is written to standard output in argument order; with
--in-place each named file is rewritten atomically (a '-' argument is still
written to standard output, as standard input has no file to write back to).

A visualization of the removed whitespace and a summary of the run are
written to standard error so that they never mix with the trimmed output.

A file that cannot be read, or whose content is not valid UTF-8 text, is
reported and skipped; the remaining files are still processed and the exit
status is nonzero.`,
		Version: trimVersion(),

		// Run errors are reported by Main; without this cobra would
		// print them a second time.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: cmd, root: cmd}

	cmd.RunE = mkRunE(c, runTrim)
	addTrimFlags(cmd.Flags())

	return c
}

// Main runs the trim tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:])
	if err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	cmd := New(args)
	err := cmd.Run(ctx)
	stdin = nil
	return err
}

// A Command wraps the cobra command and tracks whether any error message was
// written, so that the process exit code reflects failures on individual
// files even though processing continued past them.
type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.OutOrStderr().Write(b)
}

// Hint: output written via OutOrStderr directly, such as the visualization
// and the summary, does not trigger a non-zero exit code. os.Stderr may
// never be used directly.

// Stderr returns a writer that should be used for error messages.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

func (c *Command) SetOutput(w io.Writer) {
	c.root.SetOut(w)
	c.root.SetErr(w)
}

// SetInput overrides standard input, for tests.
func (c *Command) SetInput(r io.Reader) {
	stdin = r
}

// stdin is read in place of os.Stdin when non-nil.
var stdin io.Reader

func stdinReader() io.Reader {
	if stdin != nil {
		return stdin
	}
	return os.Stdin
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) error {
	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

// New creates the trim command with the given arguments.
func New(args []string) *Command {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd
}
