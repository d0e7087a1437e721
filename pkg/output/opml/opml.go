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

// Package opml renders the link tree as OPML or a Netscape HTML bookmark
// file.
package opml

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

func init() {
	adapter.RegisterOutput(&OPMLAdapter{})
	adapter.RegisterOutput(&HTMLAdapter{})
}

// OPMLAdapter renders OPML 2.0.
type OPMLAdapter struct{}

// Name returns the adapter identifier.
func (a *OPMLAdapter) Name() string { return "opml" }

// DisplayName returns a human-friendly name.
func (a *OPMLAdapter) DisplayName() string { return "OPML" }

// Extensions returns file extensions for this format.
func (a *OPMLAdapter) Extensions() []string { return []string{".opml", ".xml"} }

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated,omitempty"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Text     string        `xml:"text,attr"`
	Type     string        `xml:"type,attr,omitempty"`
	URL      string        `xml:"url,attr,omitempty"`
	Children []opmlOutline `xml:"outline,omitempty"`
}

// Render converts the tree to OPML. Folders become outlines with children
// and links become type="link" outlines.
func (a *OPMLAdapter) Render(tree item.Tree, opts output.RenderOptions) ([]byte, error) {
	doc := opmlDocument{
		Version: "2.0",
		Head:    opmlHead{Title: opts.Heading()},
		Body:    opmlBody{Outlines: outlines(tree.Items, opts)},
	}
	if opts.IncludeMetadata {
		doc.Head.DateCreated = opts.GeneratedAt().Format(time.RFC1123)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling OPML: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

func outlines(items []item.Item, opts output.RenderOptions) []opmlOutline {
	result := make([]opmlOutline, 0, len(items))
	for _, it := range items {
		o := opmlOutline{Text: output.DisplayTitle(it, opts)}
		if it.IsFolder() {
			o.Children = outlines(it.Items, opts)
		} else {
			o.Type = "link"
			o.URL = it.URL
		}
		result = append(result, o)
	}
	return result
}

// HTMLAdapter renders a Netscape bookmark file, importable by browsers.
type HTMLAdapter struct{}

// Name returns the adapter identifier.
func (a *HTMLAdapter) Name() string { return "html" }

// DisplayName returns a human-friendly name.
func (a *HTMLAdapter) DisplayName() string { return "Netscape HTML" }

// Extensions returns file extensions for this format.
func (a *HTMLAdapter) Extensions() []string { return []string{".html", ".htm"} }

// Render converts the tree to Netscape HTML.
func (a *HTMLAdapter) Render(tree item.Tree, opts output.RenderOptions) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
`)
	title := html.EscapeString(opts.Heading())
	sb.WriteString("<TITLE>" + title + "</TITLE>\n")
	sb.WriteString("<H1>" + title + "</H1>\n")
	sb.WriteString("<DL><p>\n")
	renderHTML(&sb, tree.Items, 1, opts)
	sb.WriteString("</DL><p>\n")

	return []byte(sb.String()), nil
}

func renderHTML(sb *strings.Builder, items []item.Item, depth int, opts output.RenderOptions) {
	indent := strings.Repeat("    ", depth)
	for _, it := range items {
		title := html.EscapeString(output.DisplayTitle(it, opts))
		if it.IsFolder() {
			sb.WriteString(fmt.Sprintf("%s<DT><H3>%s</H3>\n", indent, title))
			sb.WriteString(fmt.Sprintf("%s<DL><p>\n", indent))
			renderHTML(sb, it.Items, depth+1, opts)
			sb.WriteString(fmt.Sprintf("%s</DL><p>\n", indent))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s<DT><A HREF=\"%s\">%s</A>\n", indent, html.EscapeString(it.URL), title))
	}
}
