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
	"fmt"

	"github.com/spf13/pflag"
)

const (
	flagInPlace flagName = "in-place"

	// The long forms keep the historical "supress" spelling for
	// compatibility with existing scripts.
	flagSuppressNewline flagName = "supress-newline"
	flagSuppressSummary flagName = "supress-summary"
	flagSuppressVisual  flagName = "supress-visual"
)

func addTrimFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagInPlace), "i", false,
		"trim files in place, overwriting the content of each file atomically")
	f.BoolP(string(flagSuppressNewline), "N", false,
		"suppress outputting the trailing newline in the last line")
	f.BoolP(string(flagSuppressSummary), "S", false,
		"suppress the summary")
	f.BoolP(string(flagSuppressVisual), "V", false,
		"suppress visualizations of the trim")
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}
