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

package opml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francescopioparadiso/Links-Folder/pkg/input"
)

const netscapeHTML = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1700000000">Example</A>
    <DT><H3 ADD_DATE="1700000000">Dev &amp; Tools</H3>
    <DL><p>
        <DT><A HREF="https://go.dev">Go</A>
        <DT><H3>Empty</H3>
        <DL><p>
        </DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
    </DL><p>
    <DT><a href="https://last.example">Last</a>
</DL><p>
`

func TestParseNetscape(t *testing.T) {
	items := ParseNetscape(netscapeHTML)
	require.Len(t, items, 3)

	assert.Equal(t, "Example", items[0].Title)

	dev := items[1]
	assert.Equal(t, "Dev & Tools", dev.Title)
	require.Len(t, dev.Items, 3)
	assert.Equal(t, "https://go.dev", dev.Items[0].URL)
	assert.Equal(t, "Empty", dev.Items[1].Title)
	assert.True(t, dev.Items[1].IsFolder())
	assert.Empty(t, dev.Items[1].Items)
	assert.Equal(t, "GitHub", dev.Items[2].Title)

	assert.Equal(t, "https://last.example", items[2].URL)
}

const opmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head><title>Links</title></head>
  <body>
    <outline text="News">
      <outline text="Go Blog" type="rss" xmlUrl="https://go.dev/blog/feed.atom" htmlUrl="https://go.dev/blog"/>
      <outline text="Feed only" xmlUrl="https://feed.example/rss"/>
    </outline>
    <outline text="Search" type="link" url="https://duckduckgo.com"/>
    <outline text="No URL"/>
  </body>
</opml>
`

func TestParseOPML(t *testing.T) {
	items, err := Parse([]byte(opmlDoc))
	require.NoError(t, err)
	require.Len(t, items, 2)

	news := items[0]
	assert.True(t, news.IsFolder())
	require.Len(t, news.Items, 2)
	assert.Equal(t, "https://go.dev/blog", news.Items[0].URL)
	assert.Equal(t, "https://feed.example/rss", news.Items[1].URL)

	assert.Equal(t, "https://duckduckgo.com", items[1].URL)
}

func TestParseOPML_Invalid(t *testing.T) {
	_, err := ParseOPML([]byte("<opml><body>"))
	assert.Error(t, err)
}

func TestAdapter_Read(t *testing.T) {
	a := &Adapter{}
	assert.False(t, a.Available())

	_, err := a.Read(context.Background())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte(netscapeHTML), 0644))
	require.NoError(t, a.Configure(input.Config{CustomPath: path}))

	items, err := a.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
