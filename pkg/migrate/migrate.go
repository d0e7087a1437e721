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

// Package migrate upgrades stored documents to the current schema.
//
// Two shapes are recognized. The current schema is a unified
// {"items": [...]} document of links and folders. The legacy schema keyed
// content by kind instead:
//
//	{"folders": [{"id": "...", "name": "...", "folders": [...], "links": [...]}]}
//
// Legacy documents are converted on read and never written back in that
// shape. Anything else decodes as an empty tree.
package migrate

import (
	"encoding/json"
	"fmt"

	"github.com/francescopioparadiso/Links-Folder/pkg/id"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Schema identifies which document shape was recognized.
type Schema int

const (
	SchemaUnknown Schema = iota
	SchemaCurrent
	SchemaLegacy
)

func (s Schema) String() string {
	switch s {
	case SchemaCurrent:
		return "current"
	case SchemaLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Result is the outcome of decoding a stored document.
type Result struct {
	Schema Schema
	Tree   item.Tree
}

// LegacyDocument is the historical top-level shape.
type LegacyDocument struct {
	Folders []LegacyFolder `json:"folders"`
}

// LegacyFolder is a folder in the historical shape.
type LegacyFolder struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Title   string         `json:"title"`
	Icon    string         `json:"icon"`
	Folders []LegacyFolder `json:"folders"`
	Links   []LegacyLink   `json:"links"`
}

// LegacyLink is a link in the historical shape.
type LegacyLink struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	URL   string         `json:"url"`
	Icon  string         `json:"icon"`
	App   *item.SavedApp `json:"app"`
}

// Decode classifies raw and converts it to the current schema.
//
// An error is returned when raw is not a JSON object, or when its items or
// folders array does not decode. A JSON object of neither shape decodes to
// an empty tree with SchemaUnknown.
func Decode(raw []byte) (Result, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Result{Tree: empty()}, fmt.Errorf("parsing document: %w", err)
	}

	if items, ok := probe["items"]; ok && isArray(items) {
		var current item.Tree
		if err := json.Unmarshal(raw, &current); err != nil {
			return Result{Tree: empty()}, fmt.Errorf("decoding items: %w", err)
		}
		return Result{Schema: SchemaCurrent, Tree: current}, nil
	}

	if folders, ok := probe["folders"]; ok && isArray(folders) {
		var legacy LegacyDocument
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return Result{Tree: empty()}, fmt.Errorf("decoding legacy folders: %w", err)
		}
		return Result{Schema: SchemaLegacy, Tree: FromLegacy(legacy)}, nil
	}

	return Result{Schema: SchemaUnknown, Tree: empty()}, nil
}

// Migrate converts raw to the current schema, returning an empty tree for
// anything it cannot interpret.
func Migrate(raw []byte) item.Tree {
	res, err := Decode(raw)
	if err != nil {
		return empty()
	}
	return res.Tree
}

// FromLegacy converts a legacy document. Each folder lists its converted
// subfolders first, then its links.
func FromLegacy(doc LegacyDocument) item.Tree {
	tree := item.Tree{Items: make([]item.Item, 0, len(doc.Folders))}
	for _, f := range doc.Folders {
		tree.Items = append(tree.Items, convertFolder(f))
	}
	return tree
}

func convertFolder(f LegacyFolder) item.Item {
	title := f.Name
	if title == "" {
		title = f.Title
	}

	folder := item.Item{
		ID:    orNew(f.ID),
		Type:  item.KindFolder,
		Title: item.FolderTitle(title),
		Icon:  f.Icon,
		Items: make([]item.Item, 0, len(f.Folders)+len(f.Links)),
	}
	for _, sub := range f.Folders {
		folder.Items = append(folder.Items, convertFolder(sub))
	}
	for _, l := range f.Links {
		folder.Items = append(folder.Items, item.Item{
			ID:    orNew(l.ID),
			Type:  item.KindLink,
			Title: item.LinkTitle(l.Title, l.URL),
			Icon:  l.Icon,
			URL:   l.URL,
			App:   l.App,
		})
	}
	return folder
}

func orNew(v string) string {
	if v != "" {
		return v
	}
	return id.New()
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

func empty() item.Tree {
	return item.Tree{Items: []item.Item{}}
}
