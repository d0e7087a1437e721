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

package launcher

import (
	"fmt"
	"os/exec"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Opener hands a URL to the host operating system.
type Opener interface {
	// Open opens url, in app when app is non-nil and SupportsApps is true.
	Open(url string, app *item.SavedApp) error

	// SupportsApps reports whether links can target a specific application.
	SupportsApps() bool
}

// Platform names the URL-open mechanism of a host.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
	PlatformXDG     Platform = "xdg"
)

// PlatformFor maps a GOOS value to its open mechanism.
func PlatformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformXDG
	}
}

// Runner executes a command to completion.
type Runner func(name string, args ...string) error

func runCommand(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, out)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// SystemOpener opens URLs with the platform's open command.
type SystemOpener struct {
	platform Platform
	run      Runner
}

// NewSystemOpener creates an opener for the given GOOS.
func NewSystemOpener(goos string) *SystemOpener {
	return &SystemOpener{platform: PlatformFor(goos), run: runCommand}
}

// WithRunner replaces the command runner.
func (o *SystemOpener) WithRunner(run Runner) *SystemOpener {
	o.run = run
	return o
}

// Platform returns the open mechanism in use.
func (o *SystemOpener) Platform() Platform {
	return o.platform
}

// SupportsApps reports whether the platform can open a URL in a chosen
// application.
func (o *SystemOpener) SupportsApps() bool {
	return o.platform != PlatformXDG
}

// Open runs the open command and waits for it to exit.
func (o *SystemOpener) Open(url string, app *item.SavedApp) error {
	name, args := o.Command(url, app)
	return o.run(name, args...)
}

// Command returns the argv used to open url.
func (o *SystemOpener) Command(url string, app *item.SavedApp) (string, []string) {
	if app != nil && !o.SupportsApps() {
		app = nil
	}

	switch o.platform {
	case PlatformDarwin:
		switch {
		case app != nil && app.BundleID != "":
			return "open", []string{"-b", app.BundleID, url}
		case app != nil && app.Path != "":
			return "open", []string{"-a", app.Path, url}
		}
		return "open", []string{url}

	case PlatformWindows:
		// cmd.exe is avoided: it would split URLs at & and |.
		if app != nil && app.Path != "" {
			return app.Path, []string{url}
		}
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}

	default:
		return "xdg-open", []string{url}
	}
}
