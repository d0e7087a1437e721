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

// Package firefox imports bookmarks from a Firefox places database.
package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// firefoxPaths maps platform to Firefox profiles directory.
var firefoxPaths = map[string]string{
	"linux":   ".mozilla/firefox",
	"darwin":  "Library/Application Support/Firefox/Profiles",
	"windows": "Mozilla/Firefox/Profiles",
}

const (
	typeBookmark = 1
	typeFolder   = 2

	placesRootID = 1
	tagsRootGUID = "tags________"
)

// rootTitles names the built-in roots, whose stored titles are internal keys.
var rootTitles = map[string]string{
	"menu________": "Bookmarks Menu",
	"toolbar_____": "Bookmarks Toolbar",
	"unfiled_____": "Other Bookmarks",
	"mobile______": "Mobile Bookmarks",
	"root________": "",
	tagsRootGUID:   "Tags",
}

func init() {
	adapter.RegisterInput(New())
}

// Adapter implements input.Adapter for Firefox.
type Adapter struct {
	config  input.Config
	path    string
	profile string
}

// New creates a Firefox importer.
func New() *Adapter {
	a := &Adapter{}
	a.path, a.profile = a.findDatabase()
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "firefox"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Mozilla Firefox"
}

// Available returns true if a places database exists.
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
	a.path, a.profile = a.findDatabase()
	return nil
}

// Path returns the database path.
func (a *Adapter) Path() string {
	return a.path
}

// ListProfiles returns the profiles that have a places database.
func (a *Adapter) ListProfiles() ([]input.ProfileInfo, error) {
	dir := profilesDir()
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var profiles []input.ProfileInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		places := filepath.Join(dir, entry.Name(), "places.sqlite")
		if _, err := os.Stat(places); err == nil {
			profiles = append(profiles, input.ProfileInfo{
				Name:      entry.Name(),
				Path:      places,
				IsDefault: entry.Name() == a.profile,
			})
		}
	}
	return profiles, nil
}

// Read returns the bookmark roots as folders.
func (a *Adapter) Read(ctx context.Context) ([]item.Item, error) {
	if a.path == "" {
		return nil, nil
	}
	return ReadFile(ctx, a.path)
}

// ReadFile reads a places database. Firefox keeps the live database locked,
// so it is copied to a temporary file first.
func ReadFile(ctx context.Context, path string) ([]item.Item, error) {
	tmp, err := os.CreateTemp("", "linksfolder-places-*.sqlite")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, fmt.Errorf("copying %s: %w", path, err)
	}
	tmp.Close()

	db, err := sql.Open("sqlite3", "file:"+tmp.Name()+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return ReadDB(ctx, db)
}

type node struct {
	id       int64
	kind     int
	title    string
	url      string
	guid     string
	children []int64
}

// ReadDB rebuilds the folder hierarchy from moz_bookmarks, keeping each
// folder's stored order. Tags and place: queries are skipped.
func ReadDB(ctx context.Context, db *sql.DB) ([]item.Item, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT b.id, b.type, b.parent, b.title, b.guid, p.url
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON b.fk = p.id
		WHERE b.type IN (?, ?)
		ORDER BY b.parent, b.position
	`, typeBookmark, typeFolder)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	nodes := make(map[int64]*node)
	var order [][2]int64
	for rows.Next() {
		var (
			id, parent  int64
			kind        int
			title, guid sql.NullString
			url         sql.NullString
		)
		if err := rows.Scan(&id, &kind, &parent, &title, &guid, &url); err != nil {
			continue
		}
		nodes[id] = &node{id: id, kind: kind, title: title.String, url: url.String, guid: guid.String}
		order = append(order, [2]int64{parent, id})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, edge := range order {
		if parent, ok := nodes[edge[0]]; ok {
			parent.children = append(parent.children, edge[1])
		}
	}

	root, ok := nodes[placesRootID]
	if !ok {
		return nil, nil
	}

	var folders []item.Item
	for _, childID := range root.children {
		child := nodes[childID]
		if child.guid == tagsRootGUID {
			continue
		}
		converted, ok := convert(nodes, child)
		if ok && (!converted.IsFolder() || len(converted.Items) > 0) {
			folders = append(folders, converted)
		}
	}
	return folders, nil
}

func convert(nodes map[int64]*node, n *node) (item.Item, bool) {
	if n.kind == typeBookmark {
		if n.url == "" || strings.HasPrefix(n.url, "place:") {
			return item.Item{}, false
		}
		title := n.title
		if title == "" {
			title = n.url
		}
		return item.NewLink(title, n.url, "", nil), true
	}

	title := n.title
	if name, ok := rootTitles[n.guid]; ok {
		title = name
	}
	folder := item.NewFolder(title, "")
	for _, childID := range n.children {
		if converted, ok := convert(nodes, nodes[childID]); ok {
			folder.Items = append(folder.Items, converted)
		}
	}
	return folder, true
}

func profilesDir() string {
	rel, ok := firefoxPaths[runtime.GOOS]
	if !ok {
		return ""
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
	} else {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, rel)
}

func (a *Adapter) findDatabase() (string, string) {
	if a.config.CustomPath != "" {
		return a.config.CustomPath, filepath.Base(filepath.Dir(a.config.CustomPath))
	}

	dir := profilesDir()
	if dir == "" {
		return "", ""
	}
	if _, err := os.Stat(dir); err != nil {
		return "", ""
	}

	if a.config.Profile != "" {
		return filepath.Join(dir, a.config.Profile, "places.sqlite"), a.config.Profile
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		places := filepath.Join(dir, entry.Name(), "places.sqlite")
		if _, err := os.Stat(places); err == nil {
			return places, entry.Name()
		}
	}
	return "", ""
}
