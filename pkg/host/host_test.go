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

package host

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// fakeScripts answers "is running" queries from running and tab scripts
// from tabs, keyed by browser name.
func fakeScripts(running map[string]bool, tabs map[string]string) ScriptRunner {
	return func(_ context.Context, script string) (string, error) {
		for name := range running {
			if strings.Contains(script, `"`+name+`" is running`) {
				if running[name] {
					return "true", nil
				}
				return "false", nil
			}
		}
		for name, out := range tabs {
			if strings.Contains(script, `tell application "`+name+`"`) {
				return out, nil
			}
		}
		return "", errors.New("unexpected script")
	}
}

func TestReadActiveTab_Unsupported(t *testing.T) {
	_, err := NewTabReader("linux").ReadActiveTab(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestReadActiveTab_FirstRunningBrowserWins(t *testing.T) {
	r := NewTabReader("darwin").WithRunner(fakeScripts(
		map[string]bool{"Safari": false, "Google Chrome": true, "Arc": true},
		map[string]string{
			"Google Chrome": "https://go.dev/doc\nDocumentation - The Go Programming Language",
			"Arc":           "https://arc.test\nArc",
		},
	))

	tab, err := r.ReadActiveTab(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/doc", tab.URL)
	assert.Equal(t, "Documentation - The Go Programming Language", tab.Title)
	assert.Equal(t, "Google Chrome", tab.Browser)
}

func TestReadActiveTab_SkipsEmptyWindows(t *testing.T) {
	r := NewTabReader("darwin").WithRunner(fakeScripts(
		map[string]bool{"Safari": true, "Brave Browser": true},
		map[string]string{"Safari": "", "Brave Browser": "https://brave.test\n"},
	))

	tab, err := r.ReadActiveTab(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Brave Browser", tab.Browser)
	assert.Empty(t, tab.Title)
}

func TestReadActiveTab_NoneFound(t *testing.T) {
	r := NewTabReader("darwin").WithRunner(fakeScripts(map[string]bool{}, nil))
	_, err := r.ReadActiveTab(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveTab)
}

const infoPlistXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>%NAME%</string>
	<key>CFBundleIdentifier</key>
	<string>%ID%</string>
</dict>
</plist>
`

func makeBundle(t *testing.T, dir, file, name, bundleID string) {
	t.Helper()
	contents := filepath.Join(dir, file, "Contents")
	require.NoError(t, os.MkdirAll(contents, 0755))
	if name == "" {
		return
	}
	data := strings.NewReplacer("%NAME%", name, "%ID%", bundleID).Replace(infoPlistXML)
	require.NoError(t, os.WriteFile(filepath.Join(contents, "Info.plist"), []byte(data), 0644))
}

func TestScanApplications(t *testing.T) {
	dir := t.TempDir()
	makeBundle(t, dir, "Safari.app", "Safari", "com.apple.Safari")
	makeBundle(t, dir, "Firefox.app", "Firefox", "org.mozilla.firefox")
	makeBundle(t, dir, "Bare.app", "", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	apps, err := ScanApplications(dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, "Bare", apps[0].Name)
	assert.Empty(t, apps[0].BundleID)
	assert.Equal(t, item.SavedApp{Name: "Firefox", Path: filepath.Join(dir, "Firefox.app"), BundleID: "org.mozilla.firefox"}, apps[1])
	assert.Equal(t, "com.apple.Safari", apps[2].BundleID)
}

func TestListApplications_Unsupported(t *testing.T) {
	_, err := ListApplications("windows")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFindApplication(t *testing.T) {
	apps := []item.SavedApp{
		{Name: "Safari", Path: "/Applications/Safari.app", BundleID: "com.apple.Safari"},
		{Name: "Firefox", Path: "/Applications/Firefox.app"},
	}

	app, ok := FindApplication(apps, "firefox")
	require.True(t, ok)
	assert.Equal(t, "Firefox", app.Name)

	app, ok = FindApplication(apps, "com.apple.safari")
	require.True(t, ok)
	assert.Equal(t, "Safari", app.Name)

	_, ok = FindApplication(apps, "Opera")
	assert.False(t, ok)
}
