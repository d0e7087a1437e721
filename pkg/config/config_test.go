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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`storage_path: /data/links.json
inputs:
  firefox:
    enabled: false
    profile: work
import:
  max_url_length: 4096
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/links.json", cfg.StoragePath)
	assert.False(t, cfg.Inputs.Firefox.Enabled)
	assert.Equal(t, "work", cfg.Inputs.Firefox.Profile)
	assert.True(t, cfg.Inputs.Chrome.Enabled)
	assert.Equal(t, 4096, cfg.Import.MaxURLLength)
	assert.Equal(t, []string{"data", "javascript"}, cfg.Import.ExcludeProtocols)
	assert.Equal(t, "textual", cfg.Render.Style)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.ExportDir = "/tmp/exports"
	cfg.StoragePath = "/tmp/links.json"
	cfg.Render.IncludeMetadata = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "/explicit.yaml", Resolve("/explicit.yaml"))
	assert.Equal(t, filepath.Join(SupportDir(), "config.yaml"), DefaultPath())
}

func TestGetInputConfig(t *testing.T) {
	cfg := Default()
	cfg.Inputs.Brave.Profile = "Profile 2"

	assert.Equal(t, "Profile 2", cfg.GetInputConfig("brave").Profile)
	assert.True(t, cfg.GetInputConfig("opml").Enabled)
}

func TestFilterOptions(t *testing.T) {
	cfg := Default()
	cfg.Import.MaxURLLength = 100

	opts := cfg.FilterOptions()
	assert.Equal(t, 100, opts.MaxURLLength)
	assert.Equal(t, 2048, opts.WarnURLLength)
	assert.Equal(t, cfg.Import.WarnProtocols, opts.WarnProtocols)
}
