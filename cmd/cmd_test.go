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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francescopioparadiso/Links-Folder/pkg/config"
	"github.com/francescopioparadiso/Links-Folder/pkg/host"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/launcher"
	"github.com/francescopioparadiso/Links-Folder/pkg/store"
)

type fakeOpener struct {
	urls []string
	apps []*item.SavedApp
}

func (f *fakeOpener) Open(url string, app *item.SavedApp) error {
	f.urls = append(f.urls, url)
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeOpener) SupportsApps() bool { return true }

type env struct {
	t       *testing.T
	dir     string
	storage string
	config  string
	opener  *fakeOpener
	clip    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{
		t:       t,
		dir:     dir,
		storage: filepath.Join(dir, "links.json"),
		config:  filepath.Join(dir, "config.yaml"),
		opener:  &fakeOpener{},
	}

	oldOpener, oldTab, oldApps, oldSupport, oldAssets, oldClip := newOpener, readActiveTab, listApps, supportDir, assetsPath, writeClipboard
	t.Cleanup(func() {
		newOpener, readActiveTab, listApps, supportDir, assetsPath, writeClipboard = oldOpener, oldTab, oldApps, oldSupport, oldAssets, oldClip
	})

	newOpener = func() launcher.Opener { return e.opener }
	readActiveTab = func(context.Context) (host.Tab, error) {
		return host.Tab{URL: "https://tab.test/page", Title: "Tab Title", Browser: "Safari"}, nil
	}
	listApps = func() ([]item.SavedApp, error) {
		return []item.SavedApp{{Name: "Firefox", Path: "/Applications/Firefox.app", BundleID: "org.mozilla.firefox"}}, nil
	}
	supportDir = func() string { return filepath.Join(dir, "support") }
	assetsPath = func() string { return "" }
	writeClipboard = func(s string) error {
		e.clip = s
		return nil
	}
	return e
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", e.config, "--storage", e.storage}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

func (e *env) tree() item.Tree {
	return store.New(store.Options{ConfiguredPath: e.storage}).Load()
}

func TestAddListAndTree(t *testing.T) {
	e := newEnv(t)

	e.mustRun("add-folder", "Work", "--icon", "💼")
	tr := e.tree()
	require.Len(t, tr.Items, 1)
	work := tr.Items[0]
	assert.Equal(t, "Work", work.Title)

	e.mustRun("add", "https://go.dev", "--folder", work.ID, "--title", "Go")
	e.mustRun("add", "https://example.com")

	tr = e.tree()
	require.Len(t, tr.Items, 2)
	require.Len(t, tr.Items[0].Items, 1)
	assert.Equal(t, "Go", tr.Items[0].Items[0].Title)
	assert.Equal(t, "https://example.com", tr.Items[1].Title)

	out := e.mustRun("list")
	assert.Contains(t, out, "💼 Work")
	assert.Contains(t, out, "https://example.com")

	out = e.mustRun("list", work.ID)
	assert.Contains(t, out, "https://go.dev")

	out = e.mustRun("tree")
	assert.Contains(t, out, "2 links in 1 folders")
	assert.Contains(t, out, "└── ")

	out = e.mustRun("search", "GO.DEV")
	assert.Contains(t, out, "in Work")
}

func TestAdd_Rejections(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("add")
	assert.Error(t, err)

	_, err = e.run("add", "https://x.test", "--folder", "missing")
	assert.ErrorIs(t, err, item.ErrNotFound)

	_, err = e.run("add", "https://x.test", "--app", "Opera")
	assert.Error(t, err)

	assert.Empty(t, e.tree().Items)
}

func TestAdd_FromTabWithApp(t *testing.T) {
	e := newEnv(t)

	e.mustRun("add", "--from-tab", "--app", "firefox")

	tr := e.tree()
	require.Len(t, tr.Items, 1)
	link := tr.Items[0]
	assert.Equal(t, "Tab Title", link.Title)
	assert.Equal(t, "https://tab.test/page", link.URL)
	require.NotNil(t, link.App)
	assert.Equal(t, "org.mozilla.firefox", link.App.BundleID)

	e.mustRun("open", link.ID)
	assert.Equal(t, []string{"https://tab.test/page"}, e.opener.urls)
	assert.Equal(t, "Firefox", e.opener.apps[0].Name)
}

func TestEditMoveDuplicateDelete(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "https://a.test", "--title", "a")
	e.mustRun("add", "https://b.test", "--title", "b")
	tr := e.tree()
	a, b := tr.Items[0], tr.Items[1]

	e.mustRun("edit", a.ID, "--title", "alpha", "--icon", "🅰️")
	edited, _ := item.Find(e.tree().Items, a.ID)
	assert.Equal(t, "alpha", edited.Title)
	assert.Equal(t, "🅰️", edited.Icon)
	assert.Equal(t, "https://a.test", edited.URL)

	e.mustRun("move", b.ID, "up")
	assert.Equal(t, []string{b.ID, a.ID}, item.IDs(e.tree().Items))

	e.mustRun("move", b.ID, "up")
	assert.Equal(t, []string{b.ID, a.ID}, item.IDs(e.tree().Items))

	e.mustRun("duplicate", a.ID)
	items := e.tree().Items
	require.Len(t, items, 3)
	assert.Equal(t, "alpha (Copy)", items[2].Title)

	e.mustRun("delete", a.ID)
	assert.Len(t, e.tree().Items, 2)

	_, err := e.run("delete", a.ID)
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestOpenAll(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add-folder", "Empty")
	e.mustRun("add-folder", "Full")
	tr := e.tree()
	empty, full := tr.Items[0], tr.Items[1]

	e.mustRun("add", "https://1.test", "--folder", full.ID)
	e.mustRun("add-folder", "Nested", "--folder", full.ID)
	nested := e.tree().Items[1].Items[1]
	e.mustRun("add", "https://2.test", "--folder", nested.ID)
	e.mustRun("add", "https://3.test", "--folder", full.ID)

	out := e.mustRun("open-all", full.ID)
	assert.Contains(t, out, "Opened 3 links")
	assert.Equal(t, []string{"https://1.test", "https://2.test", "https://3.test"}, e.opener.urls)

	_, err := e.run("open-all", empty.ID)
	assert.ErrorIs(t, err, launcher.ErrNothingToOpen)

	e.mustRun("copy", full.ID)
	assert.Equal(t, "https://1.test\nhttps://2.test\nhttps://3.test", e.clip)
}

func TestExport_RemembersDestination(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("export", filepath.Join(e.dir, "out"))
	assert.Error(t, err, "nothing stored yet")

	e.mustRun("add", "https://a.test")
	dest := filepath.Join(e.dir, "out")
	require.NoError(t, os.MkdirAll(dest, 0755))

	out := e.mustRun("export", dest)
	assert.Contains(t, out, "LinksFolder_JsonFile_")

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	exported, err := os.ReadFile(filepath.Join(dest, entries[0].Name()))
	require.NoError(t, err)
	original, err := os.ReadFile(e.storage)
	require.NoError(t, err)
	assert.Equal(t, original, exported)

	cfg, err := config.Load(e.config)
	require.NoError(t, err)
	assert.Equal(t, dest, cfg.ExportDir)
}

func TestImportFileAndRender(t *testing.T) {
	e := newEnv(t)
	bookmarks := filepath.Join(e.dir, "bookmarks.html")
	require.NoError(t, os.WriteFile(bookmarks, []byte(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev">Go</A>
        <DT><A HREF="javascript:alert(1)">Bookmarklet</A>
    </DL><p>
</DL><p>
`), 0644))

	out := e.mustRun("import", bookmarks, "--title", "Browser")
	assert.Contains(t, out, "Imported 1 links")

	tr := e.tree()
	require.Len(t, tr.Items, 1)
	assert.Equal(t, "Browser", tr.Items[0].Title)
	dev := tr.Items[0].Items[0]
	assert.Equal(t, "Dev", dev.Title)
	require.Len(t, dev.Items, 1)

	out = e.mustRun("render", "--format", "markdown")
	assert.Contains(t, out, "- **Browser**\n  - **Dev**\n    - [Go](https://go.dev)\n")

	_, err := e.run("render", "--format", "pdf")
	assert.Error(t, err)
}

func TestConfigSetStorage(t *testing.T) {
	e := newEnv(t)
	target := filepath.Join(e.dir, "elsewhere.json")

	e.mustRun("config", "set-storage", target)
	cfg, err := config.Load(e.config)
	require.NoError(t, err)
	assert.Equal(t, target, cfg.StoragePath)

	out := e.mustRun("config", "show")
	assert.True(t, strings.HasPrefix(out, "# config file: "+e.config))
	assert.Contains(t, out, "storage_path: "+target)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun("version")
	assert.Equal(t, "linksfolder dev (commit: none, built: unknown)\n", out)
}

func TestOpenSingleAndAppsAndAdapters(t *testing.T) {
	e := newEnv(t)
	e.mustRun("add", "https://a.test", "--app", "firefox")
	a := e.tree().Items[0]

	e.mustRun("open", a.ID)
	assert.Equal(t, []string{"https://a.test"}, e.opener.urls)
	require.NotNil(t, e.opener.apps[0])
	assert.Equal(t, "org.mozilla.firefox", e.opener.apps[0].BundleID)

	_, err := e.run("open", "missing")
	assert.ErrorIs(t, err, item.ErrNotFound)

	out := e.mustRun("apps")
	assert.Contains(t, out, "Firefox")
	assert.Contains(t, out, "org.mozilla.firefox")

	out = e.mustRun("adapters")
	assert.Contains(t, out, "Importers")
	assert.Contains(t, out, "opml")
	assert.Contains(t, out, "markdown")
}
