// Copyright 2026 cloudygreybeard
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

// Package export copies the persisted links file to a user-chosen directory.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used in export file names.
const TimeLayout = "2006-01-02T15.04.05"

var (
	// ErrNoDestination is returned when no destination directory was given.
	ErrNoDestination = errors.New("no destination folder selected")

	// ErrNothingToExport is returned when the links file does not exist.
	ErrNothingToExport = errors.New("nothing to export")
)

// FileName returns the export file name for the given instant.
func FileName(now time.Time) string {
	return "LinksFolder_JsonFile_" + now.Format(TimeLayout) + ".json"
}

// Export copies src byte for byte into destDir and returns the new file path.
func Export(src, destDir string, now time.Time) (string, error) {
	if strings.TrimSpace(destDir) == "" {
		return "", ErrNoDestination
	}

	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNothingToExport
		}
		return "", fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := os.Stat(destDir)
	if err != nil {
		return "", fmt.Errorf("destination: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("destination %s is not a directory", destDir)
	}

	dest := filepath.Join(destDir, FileName(now))
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}
