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

// Package opml imports OPML outlines and Netscape HTML bookmark files.
package opml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

func init() {
	adapter.RegisterInput(&Adapter{})
}

// Adapter reads links from an OPML or Netscape HTML file.
type Adapter struct {
	path string
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string { return "opml" }

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string { return "OPML/HTML Import" }

// Available returns true if a file path is configured.
func (a *Adapter) Available() bool { return a.path != "" }

// Path returns the configured file path.
func (a *Adapter) Path() string { return a.path }

// Configure sets the file to read.
func (a *Adapter) Configure(cfg input.Config) error {
	a.path = cfg.CustomPath
	return nil
}

// ListProfiles returns nil; files have no profiles.
func (a *Adapter) ListProfiles() ([]input.ProfileInfo, error) {
	return nil, nil
}

// Read imports the configured file.
func (a *Adapter) Read(ctx context.Context) ([]item.Item, error) {
	if a.path == "" {
		return nil, fmt.Errorf("no file path configured")
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return Parse(data)
}

// Parse detects the format of data and converts it.
func Parse(data []byte) ([]item.Item, error) {
	upper := bytes.ToUpper(data)
	if bytes.Contains(upper, []byte("<!DOCTYPE NETSCAPE-BOOKMARK-FILE")) || bytes.Contains(upper, []byte("<DL>")) {
		return ParseNetscape(string(data)), nil
	}
	return ParseOPML(data)
}

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Body    struct {
		Outlines []opmlOutline `xml:"outline"`
	} `xml:"body"`
}

type opmlOutline struct {
	Text     string        `xml:"text,attr"`
	Title    string        `xml:"title,attr"`
	URL      string        `xml:"url,attr"`
	HTMLURL  string        `xml:"htmlUrl,attr"`
	XMLURL   string        `xml:"xmlUrl,attr"`
	Children []opmlOutline `xml:"outline"`
}

// ParseOPML converts outlines with children into folders and outlines with a
// URL into links.
func ParseOPML(data []byte) ([]item.Item, error) {
	var doc opmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing OPML: %w", err)
	}
	return convertOutlines(doc.Body.Outlines), nil
}

func convertOutlines(outlines []opmlOutline) []item.Item {
	var items []item.Item
	for _, o := range outlines {
		title := o.Text
		if title == "" {
			title = o.Title
		}

		if len(o.Children) > 0 {
			folder := item.NewFolder(title, "")
			folder.Items = append(folder.Items, convertOutlines(o.Children)...)
			items = append(items, folder)
			continue
		}

		url := firstNonEmpty(o.URL, o.HTMLURL, o.XMLURL)
		if url == "" {
			continue
		}
		items = append(items, item.NewLink(title, url, "", nil))
	}
	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	folderPattern    = regexp.MustCompile(`(?i)<DT><H3[^>]*>([^<]*)</H3>`)
	linkPattern      = regexp.MustCompile(`(?i)<DT><A\s[^>]*HREF="([^"]+)"[^>]*>([^<]*)</A>`)
	listOpenPattern  = regexp.MustCompile(`(?i)<DL>`)
	listClosePattern = regexp.MustCompile(`(?i)</DL>`)
)

// ParseNetscape converts a Netscape bookmark file, the format browsers use
// for HTML exports. Each <DL> following an <H3> opens that folder.
func ParseNetscape(content string) []item.Item {
	root := item.NewFolder("", "")
	stack := []*item.Item{&root}
	var opened []bool
	var pending *item.Item

	current := func() *item.Item { return stack[len(stack)-1] }
	flush := func() {
		if pending != nil {
			current().Items = append(current().Items, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case folderPattern.MatchString(line):
			flush()
			m := folderPattern.FindStringSubmatch(line)
			folder := item.NewFolder(html.UnescapeString(m[1]), "")
			pending = &folder

		case linkPattern.MatchString(line):
			flush()
			m := linkPattern.FindStringSubmatch(line)
			url := html.UnescapeString(m[1])
			title := html.UnescapeString(m[2])
			if title == "" {
				title = url
			}
			current().Items = append(current().Items, item.NewLink(title, url, "", nil))

		case listOpenPattern.MatchString(line):
			if pending != nil {
				stack = append(stack, pending)
				pending = nil
				opened = append(opened, true)
			} else {
				opened = append(opened, false)
			}

		case listClosePattern.MatchString(line):
			flush()
			if len(opened) == 0 {
				continue
			}
			wasFolder := opened[len(opened)-1]
			opened = opened[:len(opened)-1]
			if wasFolder && len(stack) > 1 {
				done := *current()
				stack = stack[:len(stack)-1]
				current().Items = append(current().Items, done)
			}
		}
	}
	flush()

	for len(stack) > 1 {
		done := *current()
		stack = stack[:len(stack)-1]
		current().Items = append(current().Items, done)
	}

	return root.Items
}
