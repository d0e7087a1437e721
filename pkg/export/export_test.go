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

package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)
	assert.Equal(t, "LinksFolder_JsonFile_2024-03-05T09.07.03.json", FileName(now))
}

func TestExport_CopiesVerbatim(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "links.json")
	content := []byte("{\n  \"items\" : [ ]\n}")
	require.NoError(t, os.WriteFile(src, content, 0644))

	dest := t.TempDir()
	now := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)

	path, err := Export(src, dest, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "LinksFolder_JsonFile_2025-12-31T23.59.59.json"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestExport_NoDestination(t *testing.T) {
	_, err := Export("/does/not/matter", "  ", time.Now())
	assert.ErrorIs(t, err, ErrNoDestination)
}

func TestExport_NothingToExport(t *testing.T) {
	_, err := Export(filepath.Join(t.TempDir(), "missing.json"), t.TempDir(), time.Now())
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExport_DestinationNotDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "links.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"items":[]}`), 0644))

	_, err := Export(src, src, time.Now())
	assert.Error(t, err)
}
