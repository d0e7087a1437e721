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

// Package output defines renderers that convert the link tree into other
// formats. Renderers register themselves with the adapter registry from
// init() and are selected with the render command's --format flag.
package output

import (
	"runtime"
	"time"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Adapter is the interface for link tree renderers.
type Adapter interface {
	// Name returns the identifier used with --format, e.g. "markdown".
	Name() string

	// DisplayName returns a human-friendly name.
	DisplayName() string

	// Extensions returns file extensions for this format; the first is the
	// default.
	Extensions() []string

	// Render converts the tree. Item order is preserved.
	Render(tree item.Tree, opts RenderOptions) ([]byte, error)
}

// RenderOptions configures what information to include in the output.
type RenderOptions struct {
	// IncludeMetadata adds generation time, platform and counts.
	IncludeMetadata bool

	// IncludeIcons prefixes titles with their icon.
	IncludeIcons bool

	// Style selects a format variant. For markdown: "textual", "table",
	// "yaml".
	Style string

	// Title is the document heading. Defaults to "Links Folder".
	Title string

	// Generated is the timestamp written with metadata. Zero means now.
	Generated time.Time
}

// DefaultRenderOptions returns the options used when no config is present.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{IncludeIcons: true}
}

// Heading returns the document title.
func (o RenderOptions) Heading() string {
	if o.Title != "" {
		return o.Title
	}
	return "Links Folder"
}

// GeneratedAt returns the generation timestamp.
func (o RenderOptions) GeneratedAt() time.Time {
	if o.Generated.IsZero() {
		return time.Now()
	}
	return o.Generated
}

// Metadata describes a rendered document.
type Metadata struct {
	Generated string `json:"generated" yaml:"generated"`
	Platform  string `json:"platform" yaml:"platform"`
	Links     int    `json:"links" yaml:"links"`
	Folders   int    `json:"folders" yaml:"folders"`
}

// NewMetadata summarises tree for a document header.
func NewMetadata(tree item.Tree, opts RenderOptions) Metadata {
	links, folders := item.Count(tree.Items)
	return Metadata{
		Generated: opts.GeneratedAt().Format(time.RFC3339),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Links:     links,
		Folders:   folders,
	}
}

// DisplayTitle returns the item's title, prefixed with its icon when asked.
func DisplayTitle(it item.Item, opts RenderOptions) string {
	if opts.IncludeIcons && it.Icon != "" {
		return it.Icon + " " + it.Title
	}
	return it.Title
}
