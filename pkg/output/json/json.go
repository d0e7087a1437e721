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

// Package json renders the link tree in the persisted JSON schema.
package json

import (
	"encoding/json"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for JSON.
type Adapter struct{}

// New creates a JSON renderer.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "json"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "JSON"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".json"}
}

// Document is the JSON output: the persisted document plus optional
// metadata. Without metadata the output can be loaded as a links file.
type Document struct {
	Metadata *output.Metadata `json:"metadata,omitempty"`
	Items    []item.Item      `json:"items"`
}

// Render converts the tree to indented JSON.
func (a *Adapter) Render(tree item.Tree, opts output.RenderOptions) ([]byte, error) {
	doc := Document{Items: tree.Items}
	if doc.Items == nil {
		doc.Items = []item.Item{}
	}

	if opts.IncludeMetadata {
		meta := output.NewMetadata(tree, opts)
		doc.Metadata = &meta
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
