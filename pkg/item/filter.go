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
	"fmt"
	"regexp"
	"strings"
)

// FilterOptions configures link filtering.
type FilterOptions struct {
	ExcludeURLPatterns []string // Exclude URLs matching these regex patterns

	// URL protocol filtering
	ExcludeProtocols []string // Protocols to exclude (e.g., "data", "javascript")
	WarnProtocols    []string // Protocols to warn about but include
	MaxURLLength     int      // Exclude URLs longer than this (0 = no limit)
	WarnURLLength    int      // Warn on URLs longer than this (0 = no warning)
}

// FilterResult contains the filtered items and any warnings generated.
type FilterResult struct {
	Items    []Item
	Warnings []string
	Excluded int // Count of excluded links
}

// Filter prunes links from items according to opts, recursing into folders.
// Folders are kept even when all their links are excluded.
func Filter(items []Item, opts FilterOptions) FilterResult {
	f := filter{
		excludeProtos: lookup(opts.ExcludeProtocols),
		warnProtos:    lookup(opts.WarnProtocols),
		opts:          opts,
	}
	for _, p := range opts.ExcludeURLPatterns {
		if re, err := regexp.Compile(p); err == nil {
			f.patterns = append(f.patterns, re)
		}
	}

	var result FilterResult
	result.Items = f.apply(items, &result)
	return result
}

type filter struct {
	patterns      []*regexp.Regexp
	excludeProtos map[string]bool
	warnProtos    map[string]bool
	opts          FilterOptions
}

func lookup(protos []string) map[string]bool {
	m := make(map[string]bool, len(protos))
	for _, p := range protos {
		m[strings.ToLower(p)] = true
	}
	return m
}

func (f *filter) apply(items []Item, result *FilterResult) []Item {
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsFolder() {
			it.Items = f.apply(it.Items, result)
			kept = append(kept, it)
			continue
		}

		if f.excluded(it.URL) {
			result.Excluded++
			continue
		}

		proto := extractProtocol(it.URL)
		if f.warnProtos[proto] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("link '%s' uses protocol '%s': %s", truncate(it.Title, 40), proto, truncate(it.URL, 60)))
		}
		if f.opts.WarnURLLength > 0 && len(it.URL) > f.opts.WarnURLLength {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("link '%s' has long URL (%d chars): %s", truncate(it.Title, 40), len(it.URL), truncate(it.URL, 60)))
		}

		kept = append(kept, it)
	}
	return kept
}

func (f *filter) excluded(url string) bool {
	if f.excludeProtos[extractProtocol(url)] {
		return true
	}
	if f.opts.MaxURLLength > 0 && len(url) > f.opts.MaxURLLength {
		return true
	}
	for _, p := range f.patterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// extractProtocol extracts the protocol/scheme from a URL.
func extractProtocol(url string) string {
	idx := strings.Index(url, ":")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(url[:idx])
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
