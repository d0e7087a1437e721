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

// Package host wraps the operating system services the link tree relies on:
// reading the active browser tab and listing installed applications.
package host

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrUnsupported is returned when the current platform cannot provide
	// the requested service.
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrNoActiveTab is returned when no known browser has an open tab.
	ErrNoActiveTab = errors.New("no active browser tab found")
)

// Tab is the active tab of a browser.
type Tab struct {
	URL     string
	Title   string
	Browser string
}

// Browser describes how to query a browser's front tab with AppleScript.
type Browser struct {
	Name   string
	Script string
}

const chromiumTabScript = `tell application "%s"
	if (count of windows) is 0 then return ""
	set t to active tab of front window
	return (URL of t) & linefeed & (title of t)
end tell`

// Browsers are queried in this order; the first with a tab wins.
var Browsers = []Browser{
	{Name: "Safari", Script: `tell application "Safari"
	if (count of documents) is 0 then return ""
	return (URL of front document) & linefeed & (name of front document)
end tell`},
	{Name: "Google Chrome", Script: fmt.Sprintf(chromiumTabScript, "Google Chrome")},
	{Name: "Arc", Script: fmt.Sprintf(chromiumTabScript, "Arc")},
	{Name: "Brave Browser", Script: fmt.Sprintf(chromiumTabScript, "Brave Browser")},
	{Name: "Microsoft Edge", Script: fmt.Sprintf(chromiumTabScript, "Microsoft Edge")},
	{Name: "Chromium", Script: fmt.Sprintf(chromiumTabScript, "Chromium")},
}

// ScriptRunner runs an AppleScript and returns its trimmed output.
type ScriptRunner func(ctx context.Context, script string) (string, error)

func osascript(ctx context.Context, script string) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// TabReader reads the active tab of the first running known browser.
type TabReader struct {
	goos     string
	run      ScriptRunner
	browsers []Browser
}

// NewTabReader creates a reader for the given GOOS.
func NewTabReader(goos string) *TabReader {
	return &TabReader{goos: goos, run: osascript, browsers: Browsers}
}

// WithRunner replaces the AppleScript runner.
func (r *TabReader) WithRunner(run ScriptRunner) *TabReader {
	r.run = run
	return r
}

// ReadActiveTab returns the front tab of the first running browser.
func (r *TabReader) ReadActiveTab(ctx context.Context) (Tab, error) {
	if r.goos != "darwin" {
		return Tab{}, ErrUnsupported
	}

	for _, b := range r.browsers {
		running, err := r.isRunning(ctx, b.Name)
		if err != nil || !running {
			continue
		}

		out, err := r.run(ctx, b.Script)
		if err != nil {
			continue
		}

		tab, ok := parseTab(out)
		if !ok {
			continue
		}
		tab.Browser = b.Name
		return tab, nil
	}

	return Tab{}, ErrNoActiveTab
}

func (r *TabReader) isRunning(ctx context.Context, app string) (bool, error) {
	out, err := r.run(ctx, fmt.Sprintf(`application %q is running`, app))
	if err != nil {
		return false, err
	}
	return out == "true", nil
}

// parseTab splits "url\ntitle" script output.
func parseTab(out string) (Tab, bool) {
	url, title, _ := strings.Cut(strings.TrimSpace(out), "\n")
	url = strings.TrimSpace(url)
	if url == "" {
		return Tab{}, false
	}
	return Tab{URL: url, Title: strings.TrimSpace(title)}, true
}
