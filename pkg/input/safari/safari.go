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

// Package safari imports bookmarks from Safari (macOS only).
package safari

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"howett.net/plist"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// folderTitles renames Safari's internal folder titles.
var folderTitles = map[string]string{
	"BookmarksBar":          "Favorites",
	"BookmarksMenu":         "Bookmarks Menu",
	"com.apple.ReadingList": "Reading List",
}

func init() {
	adapter.RegisterInput(New())
}

// Adapter implements input.Adapter for Safari.
type Adapter struct {
	config input.Config
	path   string
}

// New creates a Safari importer.
func New() *Adapter {
	a := &Adapter{}
	a.path = a.bookmarkPath()
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "safari"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Apple Safari"
}

// Available returns true if the bookmarks plist can be read.
func (a *Adapter) Available() bool {
	if a.path == "" {
		return false
	}
	_, err := os.Stat(a.path)
	return err == nil
}

// Configure applies configuration to the adapter.
func (a *Adapter) Configure(cfg input.Config) error {
	a.config = cfg
	a.path = a.bookmarkPath()
	return nil
}

// Path returns the bookmarks plist path.
func (a *Adapter) Path() string {
	return a.path
}

// ListProfiles returns the single Safari profile.
func (a *Adapter) ListProfiles() ([]input.ProfileInfo, error) {
	if !a.Available() {
		return nil, nil
	}
	return []input.ProfileInfo{{Name: "default", Path: a.path, IsDefault: true}}, nil
}

// Read returns Safari's top-level bookmark folders.
func (a *Adapter) Read(ctx context.Context) ([]item.Item, error) {
	if a.path == "" {
		return nil, nil
	}
	return ReadFile(a.path)
}

func (a *Adapter) bookmarkPath() string {
	if a.config.CustomPath != "" {
		return a.config.CustomPath
	}
	if runtime.GOOS != "darwin" {
		return ""
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Safari", "Bookmarks.plist")
}

type safariNode struct {
	WebBookmarkType string            `plist:"WebBookmarkType"`
	Title           string            `plist:"Title"`
	URLString       string            `plist:"URLString"`
	URIDictionary   map[string]string `plist:"URIDictionary"`
	Children        []safariNode      `plist:"Children"`
}

// ReadFile parses a Safari Bookmarks.plist, binary or XML.
func ReadFile(path string) ([]item.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var root safariNode
	if err := plist.NewDecoder(file).Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return convertChildren(root.Children), nil
}

func convertChildren(nodes []safariNode) []item.Item {
	var items []item.Item
	for _, n := range nodes {
		if converted, ok := convert(n); ok {
			items = append(items, converted)
		}
	}
	return items
}

func convert(n safariNode) (item.Item, bool) {
	switch n.WebBookmarkType {
	case "WebBookmarkTypeLeaf":
		url := n.URLString
		title := n.Title
		if n.URIDictionary != nil {
			if url == "" {
				url = n.URIDictionary[""]
			}
			if title == "" {
				title = n.URIDictionary["title"]
			}
		}
		if url == "" {
			return item.Item{}, false
		}
		if title == "" {
			title = url
		}
		return item.NewLink(title, url, "", nil), true

	case "WebBookmarkTypeList":
		title := n.Title
		if renamed, ok := folderTitles[title]; ok {
			title = renamed
		}
		folder := item.NewFolder(title, "")
		folder.Items = append(folder.Items, convertChildren(n.Children)...)
		return folder, true
	}

	// Proxies such as History carry no bookmarks.
	return item.Item{}, false
}
