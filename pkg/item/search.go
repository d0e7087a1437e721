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

package item

import (
	"strings"
)

// Match is a search hit together with the titles of its enclosing folders.
type Match struct {
	Item Item
	Path []string
}

// Search returns links and folders whose title or URL contains query,
// case-insensitively, in tree order.
func Search(items []Item, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []Match
	search(items, q, nil, &matches)
	return matches
}

func search(items []Item, q string, path []string, matches *[]Match) {
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			(it.IsLink() && strings.Contains(strings.ToLower(it.URL), q)) {
			*matches = append(*matches, Match{Item: it, Path: append([]string{}, path...)})
		}
		if it.IsFolder() {
			search(it.Items, q, append(append([]string{}, path...), it.Title), matches)
		}
	}
}
