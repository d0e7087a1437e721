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

// Package item provides the link tree model.
//
// A tree is an ordered forest of items. Each item is either a link (a URL,
// optionally bound to a specific application) or a folder holding further
// items. Order is significant everywhere: it is the display order, the order
// links are opened in and the order they are exported in.
//
// # Core Types
//
// Item is a single node of the tree:
//
//	work := item.NewFolder("Work", "💼")
//	work.Items = append(work.Items,
//	    item.NewLink("Gmail", "https://mail.google.com", "", nil),
//	)
//
// Tree is the persisted document:
//
//	doc := item.Tree{Items: []item.Item{work}}
//
// # Invariants
//
//  1. Every item carries a non-empty ID, unique within the tree.
//     NewLink, NewFolder and Clone always generate one.
//
//  2. Titles are never empty: links fall back to their URL and then to
//     "Unnamed", folders fall back to "Unnamed Folder".
//
//  3. Trees are acyclic by construction. Items are only ever created fresh
//     or deep-cloned with Clone, never re-parented by reference.
package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/francescopioparadiso/Links-Folder/pkg/id"
)

// Kind discriminates the item variants.
type Kind string

const (
	KindLink   Kind = "link"
	KindFolder Kind = "folder"
)

// Title placeholders used when the user supplies nothing.
const (
	UnnamedLink   = "Unnamed"
	UnnamedFolder = "Unnamed Folder"
)

// ErrNotFound is returned by lookups that name an id absent from the tree.
var ErrNotFound = errors.New("item not found")

// SavedApp references an application used to open a link instead of the
// default browser.
type SavedApp struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	BundleID string `json:"bundleId,omitempty" yaml:"bundle_id,omitempty"`
}

// Item is a link or a folder.
//
// Fields that only apply to one variant are left zero on the other:
// folders have no URL or App, links have no Items.
type Item struct {
	// ID identifies the item within the whole tree and never changes.
	ID string

	// Type selects the variant.
	Type Kind

	// Title is the display name.
	Title string

	// Icon is an optional short string, typically a single emoji.
	Icon string

	// URL is the link target (links only).
	URL string

	// App optionally overrides the application used to open the link.
	App *SavedApp

	// Items are the direct children, in order (folders only).
	Items []Item
}

// Tree is the whole persisted document: the ordered top-level items.
type Tree struct {
	Items []Item `json:"items"`
}

// NewLink creates a link with a fresh id, applying the title fallbacks.
func NewLink(title, url, icon string, app *SavedApp) Item {
	return Item{
		ID:    id.New(),
		Type:  KindLink,
		Title: LinkTitle(title, url),
		Icon:  strings.TrimSpace(icon),
		URL:   strings.TrimSpace(url),
		App:   app,
	}
}

// NewFolder creates an empty folder with a fresh id.
func NewFolder(title, icon string) Item {
	return Item{
		ID:    id.New(),
		Type:  KindFolder,
		Title: FolderTitle(title),
		Icon:  strings.TrimSpace(icon),
		Items: []Item{},
	}
}

// LinkTitle returns title, or url when title is blank, or UnnamedLink.
func LinkTitle(title, url string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if u := strings.TrimSpace(url); u != "" {
		return u
	}
	return UnnamedLink
}

// FolderTitle returns title, or UnnamedFolder when it is blank.
func FolderTitle(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return UnnamedFolder
}

// IsFolder reports whether the item is a folder.
func (it Item) IsFolder() bool {
	return it.Type == KindFolder
}

// IsLink reports whether the item is a link.
func (it Item) IsLink() bool {
	return it.Type == KindLink
}

// Clone returns a deep copy of the item with new ids at every level.
func Clone(it Item) Item {
	c := it
	c.ID = id.New()
	if it.App != nil {
		app := *it.App
		c.App = &app
	}
	if it.Items != nil {
		c.Items = make([]Item, len(it.Items))
		for i, child := range it.Items {
			c.Items[i] = Clone(child)
		}
	}
	return c
}

// CollectLinks returns every link reachable from items, depth-first in
// pre-order.
func CollectLinks(items []Item) []Item {
	var links []Item
	collect(items, &links)
	return links
}

func collect(items []Item, links *[]Item) {
	for _, it := range items {
		if it.IsLink() {
			*links = append(*links, it)
			continue
		}
		collect(it.Items, links)
	}
}

// Count returns the number of links and folders in items, recursively.
func Count(items []Item) (links, folders int) {
	for _, it := range items {
		if it.IsFolder() {
			folders++
			l, f := Count(it.Items)
			links += l
			folders += f
			continue
		}
		links++
	}
	return links, folders
}

// Find returns the item with the given id anywhere under items.
func Find(items []Item, itemID string) (Item, bool) {
	for _, it := range items {
		if it.ID == itemID {
			return it, true
		}
		if it.IsFolder() {
			if found, ok := Find(it.Items, itemID); ok {
				return found, true
			}
		}
	}
	return Item{}, false
}

// IDs returns every id under items in pre-order.
func IDs(items []Item) []string {
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
		ids = append(ids, IDs(it.Items)...)
	}
	return ids
}

// ValidationError reports user input rejected before any file I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the fields a user must supply for the item's variant.
func (it Item) Validate() error {
	switch it.Type {
	case KindLink:
		if strings.TrimSpace(it.URL) == "" {
			return &ValidationError{Field: "url", Message: "url is required"}
		}
	case KindFolder:
	default:
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown item type %q", it.Type)}
	}
	return nil
}

type linkJSON struct {
	ID    string    `json:"id"`
	Type  Kind      `json:"type"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
	Icon  string    `json:"icon,omitempty"`
	App   *SavedApp `json:"app,omitempty"`
}

type folderJSON struct {
	ID    string `json:"id"`
	Type  Kind   `json:"type"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	Items []Item `json:"items"`
}

// MarshalJSON writes the variant-specific shape of the item.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.IsFolder() {
		items := it.Items
		if items == nil {
			items = []Item{}
		}
		return json.Marshal(folderJSON{
			ID:    it.ID,
			Type:  KindFolder,
			Title: it.Title,
			Icon:  it.Icon,
			Items: items,
		})
	}
	return json.Marshal(linkJSON{
		ID:    it.ID,
		Type:  it.Type,
		Title: it.Title,
		URL:   it.URL,
		Icon:  it.Icon,
		App:   it.App,
	})
}

// UnmarshalJSON reads either variant. Documents written without a type
// are classified by the presence of items or url.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string    `json:"id"`
		Type  Kind      `json:"type"`
		Title string    `json:"title"`
		URL   string    `json:"url"`
		Icon  string    `json:"icon"`
		App   *SavedApp `json:"app"`
		Items []Item    `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	kind := raw.Type
	if kind == "" {
		kind = KindLink
		if raw.Items != nil || raw.URL == "" {
			kind = KindFolder
		}
	}

	*it = Item{
		ID:    raw.ID,
		Type:  kind,
		Title: raw.Title,
		Icon:  raw.Icon,
	}
	if kind == KindFolder {
		it.Items = raw.Items
		if it.Items == nil {
			it.Items = []Item{}
		}
		return nil
	}
	it.URL = raw.URL
	it.App = raw.App
	return nil
}
