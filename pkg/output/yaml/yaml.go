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

// Package yaml renders the link tree as YAML.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for YAML.
type Adapter struct{}

// New creates a YAML renderer.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "yaml"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "YAML"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Document is the top-level YAML structure.
type Document struct {
	Metadata *output.Metadata `yaml:"metadata,omitempty"`
	Items    []Entry          `yaml:"items"`
}

// Entry is a folder or link in the YAML output.
type Entry struct {
	Title string         `yaml:"title"`
	Type  item.Kind      `yaml:"type"`
	Icon  string         `yaml:"icon,omitempty"`
	URL   string         `yaml:"url,omitempty"`
	App   *item.SavedApp `yaml:"app,omitempty"`
	Items []Entry        `yaml:"items,omitempty"`
}

// Entries converts items to YAML entries.
func Entries(items []item.Item) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		e := Entry{Title: it.Title, Type: it.Type, Icon: it.Icon}
		if it.IsFolder() {
			e.Items = Entries(it.Items)
		} else {
			e.URL = it.URL
			e.App = it.App
		}
		entries = append(entries, e)
	}
	return entries
}

// Render converts the tree to YAML.
func (a *Adapter) Render(tree item.Tree, opts output.RenderOptions) ([]byte, error) {
	doc := Document{Items: Entries(tree.Items)}
	if opts.IncludeMetadata {
		meta := output.NewMetadata(tree, opts)
		doc.Metadata = &meta
	}
	return yaml.Marshal(doc)
}
