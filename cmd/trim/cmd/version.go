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
	"runtime"
	"runtime/debug"
	"time"

	"golang.org/x/mod/module"
)

const defaultVersion = "(devel)"

// version may be set by a builder using
// -ldflags='-X trimws.dev/trim/cmd/trim/cmd.version=<version>'.
// Builds resolved as a module dependency get their version from
// *debug.BuildInfo instead (see below), so this mechanism is
// really considered legacy.
var version = defaultVersion

// trimVersion resolves the version reported by --version: the ldflags
// override if set, then the main module version from build info, then a
// pseudo-version derived from VCS metadata stamped into the binary.
func trimVersion() string {
	v := version
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}

	if v == defaultVersion && bi.Main.Version != "" && bi.Main.Version != defaultVersion {
		v = bi.Main.Version
	}

	if v == defaultVersion {
		var vcsTime time.Time
		var vcsRevision string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.time":
				// If the format is invalid, we'll print a zero timestamp.
				vcsTime, _ = time.Parse(time.RFC3339Nano, s.Value)
			case "vcs.revision":
				vcsRevision = s.Value
				// module.PseudoVersion recommends the revision to be a 12-byte
				// commit hash prefix, which is what cmd/go uses as well.
				if len(vcsRevision) > 12 {
					vcsRevision = vcsRevision[:12]
				}
			}
		}
		if vcsRevision != "" {
			v = module.PseudoVersion("", "", vcsTime, vcsRevision)
		}
	}

	return fmt.Sprintf("%s %s/%s", v, runtime.GOOS, runtime.GOARCH)
}
