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

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

var (
	accent = lipgloss.Color("#7C3AED")
	muted  = lipgloss.Color("#6B7280")

	folderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	linkStyle   = lipgloss.NewStyle()
	urlStyle    = lipgloss.NewStyle().Foreground(muted)
	idStyle     = lipgloss.NewStyle().Foreground(muted).Faint(true)
	branchStyle = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func displayTitle(it item.Item) string {
	if it.Icon != "" {
		return it.Icon + " " + it.Title
	}
	return it.Title
}

// formatRow renders one item on a single line.
func formatRow(it item.Item) string {
	if it.IsFolder() {
		return fmt.Sprintf("%s %s %s",
			folderStyle.Render(displayTitle(it)),
			urlStyle.Render(fmt.Sprintf("(%d)", len(it.Items))),
			idStyle.Render(it.ID))
	}

	row := fmt.Sprintf("%s %s", linkStyle.Render(displayTitle(it)), urlStyle.Render(it.URL))
	if it.App != nil {
		row += urlStyle.Render(" → " + it.App.Name)
	}
	return row + " " + idStyle.Render(it.ID)
}

// printList writes items one per line.
func printList(w io.Writer, items []item.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, urlStyle.Render("No links yet. Add one with: linksfolder add <url>"))
		return
	}
	for _, it := range items {
		fmt.Fprintln(w, formatRow(it))
	}
}

// printTree writes items with box-drawing branches.
func printTree(w io.Writer, items []item.Item, prefix string) {
	for i, it := range items {
		last := i == len(items)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		fmt.Fprintln(w, branchStyle.Render(prefix+branch)+formatRow(it))
		if it.IsFolder() {
			printTree(w, it.Items, prefix+next)
		}
	}
}

func printMatches(w io.Writer, matches []item.Match) {
	for _, m := range matches {
		line := formatRow(m.Item)
		if len(m.Path) > 0 {
			line += " " + urlStyle.Render("in "+strings.Join(m.Path, " / "))
		}
		fmt.Fprintln(w, line)
	}
}
