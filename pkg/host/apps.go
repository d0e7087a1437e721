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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// ApplicationDirs returns the directories scanned for .app bundles.
func ApplicationDirs() []string {
	dirs := []string{"/Applications", "/System/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}
	return dirs
}

// ListApplications returns the installed applications on macOS.
func ListApplications(goos string) ([]item.SavedApp, error) {
	if goos != "darwin" {
		return nil, ErrUnsupported
	}
	return ScanApplications(ApplicationDirs()...)
}

type infoPlist struct {
	Name        string `plist:"CFBundleName"`
	DisplayName string `plist:"CFBundleDisplayName"`
	BundleID    string `plist:"CFBundleIdentifier"`
}

// ScanApplications lists the .app bundles directly inside dirs, sorted by
// name. Missing directories and unreadable bundles are skipped.
func ScanApplications(dirs ...string) ([]item.SavedApp, error) {
	var apps []item.SavedApp
	seen := make(map[string]bool)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ".app") {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			app := item.SavedApp{
				Name: strings.TrimSuffix(entry.Name(), ".app"),
				Path: path,
			}
			if info, ok := readInfo(path); ok {
				if info.DisplayName != "" {
					app.Name = info.DisplayName
				} else if info.Name != "" {
					app.Name = info.Name
				}
				app.BundleID = info.BundleID
			}

			key := app.BundleID
			if key == "" {
				key = path
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			apps = append(apps, app)
		}
	}

	sort.Slice(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps, nil
}

func readInfo(bundle string) (infoPlist, bool) {
	file, err := os.Open(filepath.Join(bundle, "Contents", "Info.plist"))
	if err != nil {
		return infoPlist{}, false
	}
	defer file.Close()

	var info infoPlist
	if err := plist.NewDecoder(file).Decode(&info); err != nil {
		return infoPlist{}, false
	}
	return info, true
}

// FindApplication returns the app whose name, bundle id or path matches
// query, ignoring case.
func FindApplication(apps []item.SavedApp, query string) (item.SavedApp, bool) {
	q := strings.TrimSpace(query)
	for _, app := range apps {
		if strings.EqualFold(app.Name, q) || strings.EqualFold(app.BundleID, q) || app.Path == q {
			return app, true
		}
	}
	return item.SavedApp{}, false
}
