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

// Package markdown renders the link tree as markdown.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
	yamlout "github.com/francescopioparadiso/Links-Folder/pkg/output/yaml"
)

// Style defines the markdown sub-format.
type Style string

const (
	StyleTextual Style = "textual" // Nested markdown lists
	StyleTable   Style = "table"   // One table row per link
	StyleYAML    Style = "yaml"    // Embedded YAML in code fence
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for markdown.
type Adapter struct{}

// New creates a markdown renderer.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "markdown"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Markdown"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Render converts the tree to markdown in the requested style.
func (a *Adapter) Render(tree item.Tree, opts output.RenderOptions) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# " + opts.Heading() + "\n\n")
	if opts.IncludeMetadata {
		meta := output.NewMetadata(tree, opts)
		sb.WriteString(fmt.Sprintf("*Generated: %s*\n", meta.Generated))
		sb.WriteString(fmt.Sprintf("*Platform: %s*\n", meta.Platform))
		sb.WriteString(fmt.Sprintf("*Total: %d links in %d folders*\n\n", meta.Links, meta.Folders))
	}

	switch Style(opts.Style) {
	case StyleTable:
		renderTable(&sb, tree.Items, opts)
	case StyleYAML:
		data, err := yaml.Marshal(map[string]any{"items": yamlout.Entries(tree.Items)})
		if err != nil {
			return nil, err
		}
		sb.WriteString("```yaml\n")
		sb.Write(data)
		sb.WriteString("```\n")
	default:
		renderList(&sb, tree.Items, 0, opts)
	}

	return []byte(sb.String()), nil
}

func renderList(sb *strings.Builder, items []item.Item, indent int, opts output.RenderOptions) {
	prefix := strings.Repeat("  ", indent) + "- "
	for _, it := range items {
		title := output.DisplayTitle(it, opts)
		if it.IsFolder() {
			sb.WriteString(fmt.Sprintf("%s**%s**\n", prefix, title))
			renderList(sb, it.Items, indent+1, opts)
			continue
		}
		sb.WriteString(fmt.Sprintf("%s[%s](%s)\n", prefix, escapeLinkText(title), it.URL))
	}
}

func renderTable(sb *strings.Builder, items []item.Item, opts output.RenderOptions) {
	sb.WriteString("| Title | Folder | App |\n")
	sb.WriteString("|---|---|---|\n")

	var walk func(items []item.Item, path []string)
	walk = func(items []item.Item, path []string) {
		for _, it := range items {
			if it.IsFolder() {
				walk(it.Items, append(path[:len(path):len(path)], it.Title))
				continue
			}
			app := ""
			if it.App != nil {
				app = it.App.Name
			}
			sb.WriteString(fmt.Sprintf("| [%s](%s) | %s | %s |\n",
				escapeTableCell(escapeLinkText(output.DisplayTitle(it, opts))),
				it.URL,
				escapeTableCell(strings.Join(path, "/")),
				escapeTableCell(app)))
		}
	}
	walk(items, nil)
}

func escapeLinkText(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	return strings.ReplaceAll(s, "]", "\\]")
}

func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
