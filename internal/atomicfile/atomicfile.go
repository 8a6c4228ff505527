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

// Package atomicfile replaces a file's contents so that other processes
// observe either the complete old contents or the complete new contents,
// never anything in between.
package atomicfile

import (
	"os"
	"path/filepath"
)

// WriteFile replaces the contents of the file at path with data.
//
// The data is staged in a temporary file in the same directory, so the final
// rename never crosses a filesystem boundary. The permission bits of an
// existing file at path are preserved. On any failure the temporary file is
// removed and the original file is left untouched.
func WriteFile(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	perm := os.FileMode(0o666)
	if fi, statErr := os.Stat(path); statErr == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	// TODO: on non-POSIX platforms os.Rename might not be atomic. Note
	// that Windows NTFS is also atomic.
	return os.Rename(tmp.Name(), path)
}
