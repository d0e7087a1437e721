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

// Package mcp exposes the link tree to MCP clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/launcher"
	"github.com/francescopioparadiso/Links-Folder/pkg/store"
	"github.com/francescopioparadiso/Links-Folder/pkg/tree"
)

// Server serves the link tree as MCP tools. Every call reloads the tree
// from the store, so edits made by the CLI are visible immediately.
type Server struct {
	store    *store.Store
	launcher *launcher.Launcher
	log      logrus.FieldLogger
	mcp      *server.MCPServer
}

// NewServer creates a server and registers its tools.
func NewServer(st *store.Store, l *launcher.Launcher, log logrus.FieldLogger, version string) *Server {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	s := &Server{
		store:    st,
		launcher: l,
		log:      log,
		mcp: server.NewMCPServer(
			"linksfolder",
			version,
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Run serves requests on stdin/stdout until the input closes.
func (s *Server) Run() error {
	s.log.WithField("path", s.store.Path()).Debug("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("tree",
		mcp.WithDescription("Return the whole link tree as JSON"),
	), s.handleTree)

	s.mcp.AddTool(mcp.NewTool("list",
		mcp.WithDescription("List the direct children of a folder, or the top level"),
		mcp.WithString("folder_id",
			mcp.Description("Folder id. Omit for the top level."),
		),
	), s.handleList)

	s.mcp.AddTool(mcp.NewTool("search",
		mcp.WithDescription("Find links and folders whose title or URL contains the query"),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to look for"),
			mcp.Required(),
		),
	), s.handleSearch)

	s.mcp.AddTool(mcp.NewTool("add_link",
		mcp.WithDescription("Add a link to a folder, or to the top level"),
		mcp.WithString("url",
			mcp.Description("URL to open"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Title. Defaults to the URL."),
		),
		mcp.WithString("icon",
			mcp.Description("Emoji shown next to the title"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Destination folder id. Omit for the top level."),
		),
	), s.handleAddLink)

	s.mcp.AddTool(mcp.NewTool("add_folder",
		mcp.WithDescription("Create an empty folder"),
		mcp.WithString("title",
			mcp.Description("Folder title"),
			mcp.Required(),
		),
		mcp.WithString("icon",
			mcp.Description("Emoji shown next to the title"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Parent folder id. Omit for the top level."),
		),
	), s.handleAddFolder)

	s.mcp.AddTool(mcp.NewTool("delete",
		mcp.WithDescription("Delete a link, or a folder with everything in it"),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
	), s.handleDelete)

	s.mcp.AddTool(mcp.NewTool("move",
		mcp.WithDescription("Move an item one position up or down within its folder"),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("up or down"),
			mcp.Required(),
		),
	), s.handleMove)

	s.mcp.AddTool(mcp.NewTool("duplicate",
		mcp.WithDescription("Copy an item right after itself, with new ids"),
		mcp.WithString("id",
			mcp.Description("Item id"),
			mcp.Required(),
		),
	), s.handleDuplicate)

	s.mcp.AddTool(mcp.NewTool("open",
		mcp.WithDescription("Open a link, or every link inside a folder"),
		mcp.WithString("id",
			mcp.Description("Link or folder id"),
			mcp.Required(),
		),
	), s.handleOpen)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func (s *Server) handleTree(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(s.store.Load(), "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleList(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID := req.GetString("folder_id", "")
	items := s.store.Load().Items

	if folderID != "" {
		folder, ok := item.Find(items, folderID)
		if !ok || !folder.IsFolder() {
			return toolError(fmt.Errorf("folder %s: %w", folderID, item.ErrNotFound))
		}
		items = folder.Items
	}

	if len(items) == 0 {
		return mcp.NewToolResultText("No items."), nil
	}

	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(formatItem(it))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleSearch(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return toolError(errors.New("query is required"))
	}

	matches := item.Search(s.store.Load().Items, query)
	if len(matches) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}

	var sb strings.Builder
	for _, m := range matches {
		sb.WriteString(formatItem(m.Item))
		if len(m.Path) > 0 {
			sb.WriteString("  in " + strings.Join(m.Path, " / "))
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleAddLink(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	link := item.NewLink(req.GetString("title", ""), req.GetString("url", ""), req.GetString("icon", ""), nil)
	if err := link.Validate(); err != nil {
		return toolError(err)
	}

	err := s.store.Update(func(t *item.Tree) error {
		return tree.Insert(t, req.GetString("folder_id", ""), link)
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Added link " + link.ID), nil
}

func (s *Server) handleAddFolder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := item.NewFolder(req.GetString("title", ""), req.GetString("icon", ""))

	err := s.store.Update(func(t *item.Tree) error {
		return tree.Insert(t, req.GetString("folder_id", ""), folder)
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Added folder " + folder.ID), nil
}

func (s *Server) handleDelete(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if err := s.store.Update(func(t *item.Tree) error { return tree.Delete(t, id) }); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Deleted " + id), nil
}

func (s *Server) handleMove(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	var delta int
	switch strings.ToLower(req.GetString("direction", "")) {
	case "up":
		delta = -1
	case "down":
		delta = 1
	default:
		return toolError(errors.New("direction must be up or down"))
	}

	if err := s.store.Update(func(t *item.Tree) error { return tree.Shift(t, id, delta) }); err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Moved " + id), nil
}

func (s *Server) handleDuplicate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	var dup item.Item
	err := s.store.Update(func(t *item.Tree) error {
		var err error
		dup, err = tree.Copy(t, id)
		return err
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Duplicated as " + dup.ID), nil
}

func (s *Server) handleOpen(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	it, ok := item.Find(s.store.Load().Items, id)
	if !ok {
		return toolError(fmt.Errorf("item %s: %w", id, item.ErrNotFound))
	}

	if it.IsLink() {
		if err := s.launcher.Open(it); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Opened " + it.URL), nil
	}

	res, err := s.launcher.OpenAll(it)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Opened %d links", res.Attempted)), nil
}

func formatItem(it item.Item) string {
	title := it.Title
	if it.Icon != "" {
		title = it.Icon + " " + title
	}
	if it.IsFolder() {
		return fmt.Sprintf("%s  [folder] %s (%d items)", it.ID, title, len(it.Items))
	}
	return fmt.Sprintf("%s  %s <%s>", it.ID, title, it.URL)
}
