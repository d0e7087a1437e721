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

package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/launcher"
	"github.com/francescopioparadiso/Links-Folder/pkg/store"
)

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(url string, _ *item.SavedApp) error {
	r.urls = append(r.urls, url)
	return nil
}

func (r *recordingOpener) SupportsApps() bool { return true }

func newTestServer(t *testing.T) (*Server, *store.Store, *recordingOpener) {
	t.Helper()
	st := store.New(store.Options{SupportDir: t.TempDir()})
	opener := &recordingOpener{}
	return NewServer(st, launcher.New(opener, nil), nil, "test"), st, opener
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestAddAndList(t *testing.T) {
	s, st, _ := newTestServer(t)

	out, isErr := call(t, s.handleAddFolder, map[string]any{"title": "Work", "icon": "💼"})
	require.False(t, isErr, out)
	folderID := strings.TrimPrefix(out, "Added folder ")

	out, isErr = call(t, s.handleAddLink, map[string]any{"url": "https://go.dev", "folder_id": folderID})
	require.False(t, isErr, out)

	tr := st.Load()
	require.Len(t, tr.Items, 1)
	require.Len(t, tr.Items[0].Items, 1)
	assert.Equal(t, "https://go.dev", tr.Items[0].Items[0].Title)

	out, _ = call(t, s.handleList, nil)
	assert.Contains(t, out, "[folder] 💼 Work (1 items)")

	out, _ = call(t, s.handleList, map[string]any{"folder_id": folderID})
	assert.Contains(t, out, "<https://go.dev>")
}

func TestAddLink_Rejections(t *testing.T) {
	s, st, _ := newTestServer(t)

	_, isErr := call(t, s.handleAddLink, map[string]any{"url": "  "})
	assert.True(t, isErr)

	out, isErr := call(t, s.handleAddLink, map[string]any{"url": "https://x.test", "folder_id": "nope"})
	assert.True(t, isErr)
	assert.Contains(t, out, "not found")

	assert.Empty(t, st.Load().Items)
}

func TestMoveDuplicateDelete(t *testing.T) {
	s, st, _ := newTestServer(t)
	a := item.NewLink("a", "https://a.test", "", nil)
	b := item.NewLink("b", "https://b.test", "", nil)
	require.NoError(t, st.Save(item.Tree{Items: []item.Item{a, b}}))

	_, isErr := call(t, s.handleMove, map[string]any{"id": b.ID, "direction": "up"})
	require.False(t, isErr)
	assert.Equal(t, []string{b.ID, a.ID}, item.IDs(st.Load().Items))

	_, isErr = call(t, s.handleMove, map[string]any{"id": b.ID, "direction": "sideways"})
	assert.True(t, isErr)

	out, isErr := call(t, s.handleDuplicate, map[string]any{"id": a.ID})
	require.False(t, isErr)
	items := st.Load().Items
	require.Len(t, items, 3)
	assert.Equal(t, "a (Copy)", items[2].Title)
	assert.Equal(t, "Duplicated as "+items[2].ID, out)

	_, isErr = call(t, s.handleDelete, map[string]any{"id": a.ID})
	require.False(t, isErr)
	assert.Len(t, st.Load().Items, 2)

	_, isErr = call(t, s.handleDelete, map[string]any{"id": a.ID})
	assert.True(t, isErr)
}

func TestSearchAndTree(t *testing.T) {
	s, st, _ := newTestServer(t)
	docs := item.NewFolder("Docs", "")
	docs.Items = []item.Item{item.NewLink("Go spec", "https://go.dev/ref/spec", "", nil)}
	require.NoError(t, st.Save(item.Tree{Items: []item.Item{docs}}))

	out, isErr := call(t, s.handleSearch, map[string]any{"query": "SPEC"})
	require.False(t, isErr)
	assert.Contains(t, out, "Go spec")
	assert.Contains(t, out, "in Docs")

	out, _ = call(t, s.handleSearch, map[string]any{"query": "nothing"})
	assert.Equal(t, "No results.", out)

	out, _ = call(t, s.handleTree, nil)
	assert.Contains(t, out, `"items"`)
	assert.Contains(t, out, "https://go.dev/ref/spec")
}

func TestOpen(t *testing.T) {
	s, st, opener := newTestServer(t)
	empty := item.NewFolder("Empty", "")
	full := item.NewFolder("Full", "")
	full.Items = []item.Item{
		item.NewLink("a", "https://a.test", "", nil),
		item.NewLink("b", "https://b.test", "", nil),
	}
	require.NoError(t, st.Save(item.Tree{Items: []item.Item{empty, full}}))

	out, isErr := call(t, s.handleOpen, map[string]any{"id": full.ID})
	require.False(t, isErr)
	assert.Equal(t, "Opened 2 links", out)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, opener.urls)

	out, isErr = call(t, s.handleOpen, map[string]any{"id": empty.ID})
	assert.True(t, isErr)
	assert.Equal(t, launcher.ErrNothingToOpen.Error(), out)

	out, isErr = call(t, s.handleOpen, map[string]any{"id": full.Items[1].ID})
	require.False(t, isErr)
	assert.Equal(t, "Opened https://b.test", out)
}
