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

// Package input defines importers that read links from browsers and
// bookmark files into the link tree.
//
// Importers register themselves with the adapter registry from init() and
// are linked into the binary by a blank import in cmd/root.go. Read returns
// a forest of folders and links with fresh ids; the caller decides where in
// the tree it lands.
package input

import (
	"context"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Adapter is the interface for link import sources.
type Adapter interface {
	// Name returns the identifier used in configuration and on the
	// command line, e.g. "chrome".
	Name() string

	// DisplayName returns a human-friendly name, also used as the title of
	// the folder an import lands in.
	DisplayName() string

	// Available reports whether the source's data exists on this machine.
	// It must not perform network I/O.
	Available() bool

	// Path returns the file being read, for logging.
	Path() string

	// Configure applies runtime configuration. Called before Read.
	Configure(cfg Config) error

	// ListProfiles returns the profiles of a multi-profile source, or nil.
	ListProfiles() ([]ProfileInfo, error)

	// Read returns the source's folders and links in their original order.
	Read(ctx context.Context) ([]item.Item, error)
}

// Config holds adapter configuration passed at runtime.
type Config struct {
	Enabled bool

	// Profile selects a browser profile; empty means the default one.
	Profile string

	// CustomPath overrides the default location of the source file.
	CustomPath string
}

// ProfileInfo describes a browser profile.
type ProfileInfo struct {
	Name      string
	Path      string
	IsDefault bool
}
