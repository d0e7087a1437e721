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

// Package chromium imports bookmarks from Chromium-based browsers.
package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// chromiumPaths maps browser names to their config directories per platform.
var chromiumPaths = map[string]map[string]string{
	"chrome": {
		"linux":   ".config/google-chrome",
		"darwin":  "Library/Application Support/Google/Chrome",
		"windows": "Google/Chrome/User Data",
	},
	"edge": {
		"linux":   ".config/microsoft-edge",
		"darwin":  "Library/Application Support/Microsoft Edge",
		"windows": "Microsoft/Edge/User Data",
	},
	"chromium": {
		"linux":   ".config/chromium",
		"darwin":  "Library/Application Support/Chromium",
		"windows": "Chromium/User Data",
	},
	"brave": {
		"linux":   ".config/BraveSoftware/Brave-Browser",
		"darwin":  "Library/Application Support/BraveSoftware/Brave-Browser",
		"windows": "BraveSoftware/Brave-Browser/User Data",
	},
}

var displayNames = map[string]string{
	"chrome":   "Google Chrome",
	"edge":     "Microsoft Edge",
	"chromium": "Chromium",
	"brave":    "Brave",
}

// rootOrder is the order roots appear in the browser's bookmark manager.
var rootOrder = []string{"bookmark_bar", "other", "synced"}

func init() {
	for browser := range chromiumPaths {
		adapter.RegisterInput(New(browser))
	}
}

// Adapter implements input.Adapter for Chromium-based browsers.
type Adapter struct {
	browser  string
	config   input.Config
	profiles []input.ProfileInfo
}

// New creates an importer for the given browser.
func New(browser string) *Adapter {
	a := &Adapter{browser: browser}
	a.profiles = discoverProfiles(a.basePath())
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return a.browser
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	if name, ok := displayNames[a.browser]; ok {
		return name
	}
	return cases.Title(language.English).String(a.browser)
}

// Available returns true if a Bookmarks file can be read.
func (a *Adapter) Available() bool {
	if a.config.CustomPath != "" {
		_, err := os.Stat(a.config.CustomPath)
		return err == nil
	}
	return len(a.profiles) > 0
}

// Configure applies configuration to the adapter.
func (a *Adapter) Configure(cfg input.Config) error {
	a.config = cfg
	if cfg.CustomPath == "" {
		a.profiles = discoverProfiles(a.basePath())
	}
	return nil
}

// Path returns the file being read.
func (a *Adapter) Path() string {
	if a.config.CustomPath != "" {
		return a.config.CustomPath
	}
	switch len(a.profiles) {
	case 0:
		return a.basePath() + " (no profiles found)"
	case 1:
		return a.profiles[0].Path
	}
	names := make([]string, 0, len(a.profiles))
	for _, p := range a.profiles {
		names = append(names, p.Name)
	}
	return a.basePath() + " [" + strings.Join(names, ", ") + "]"
}

// ListProfiles returns the discovered profiles.
func (a *Adapter) ListProfiles() ([]input.ProfileInfo, error) {
	return a.profiles, nil
}

// Read returns the bookmark roots as folders. With several profiles and no
// profile selected, each profile gets its own folder.
func (a *Adapter) Read(ctx context.Context) ([]item.Item, error) {
	if a.config.CustomPath != "" {
		return ReadFile(a.config.CustomPath)
	}

	if a.config.Profile != "" {
		for _, p := range a.profiles {
			if p.Name == a.config.Profile {
				return ReadFile(p.Path)
			}
		}
		return nil, fmt.Errorf("%s profile %q not found", a.browser, a.config.Profile)
	}

	if len(a.profiles) == 1 {
		return ReadFile(a.profiles[0].Path)
	}

	var folders []item.Item
	for _, p := range a.profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := ReadFile(p.Path)
		if err != nil {
			continue
		}
		folder := item.NewFolder(p.Name, "")
		folder.Items = items
		folders = append(folders, folder)
	}
	return folders, nil
}

func (a *Adapter) basePath() string {
	rel, ok := chromiumPaths[a.browser][runtime.GOOS]
	if !ok {
		return ""
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("LOCALAPPDATA")
	} else {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, rel)
}

func discoverProfiles(basePath string) []input.ProfileInfo {
	if basePath == "" {
		return nil
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil
	}

	var profiles []input.ProfileInfo
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || (name != "Default" && !strings.HasPrefix(name, "Profile ")) {
			continue
		}
		path := filepath.Join(basePath, name, "Bookmarks")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		profiles = append(profiles, input.ProfileInfo{
			Name:      name,
			Path:      path,
			IsDefault: name == "Default",
		})
	}
	return profiles
}

type chromiumNode struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Children []chromiumNode `json:"children"`
}

// ReadFile parses a Chromium Bookmarks file. Empty roots are dropped.
func ReadFile(path string) ([]item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Roots map[string]json.RawMessage `json:"roots"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var folders []item.Item
	for _, key := range rootOrder {
		raw, ok := doc.Roots[key]
		if !ok {
			continue
		}
		var node chromiumNode
		if err := json.Unmarshal(raw, &node); err != nil || node.Type != "folder" {
			continue
		}
		folder := convert(node)
		if len(folder.Items) > 0 {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

func convert(node chromiumNode) item.Item {
	if node.Type == "url" {
		return item.NewLink(node.Name, node.URL, "", nil)
	}

	folder := item.NewFolder(node.Name, "")
	for _, child := range node.Children {
		if child.Type != "url" && child.Type != "folder" {
			continue
		}
		folder.Items = append(folder.Items, convert(child))
	}
	return folder
}
