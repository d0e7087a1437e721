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

// Package store loads and saves the link tree.
//
// The store holds no state between calls: every Load reads the file again
// and every Update follows load, mutate, save. The file on disk is the
// single source of truth. There is no locking; concurrent writers race and
// the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/migrate"
)

// FileName is the name of the data file inside the support directory.
const FileName = "links.json"

// Options configures where the store reads and writes.
type Options struct {
	// ConfiguredPath is a user-chosen data file that overrides the default
	// location when set.
	ConfiguredPath string

	// SupportDir is the per-install directory holding FileName.
	SupportDir string

	// AssetsPath is a bundled default document, read only as a last resort.
	AssetsPath string

	// Logger receives parse failures and other diagnostics.
	Logger logrus.FieldLogger
}

// Store is the persistence gateway for the link tree.
type Store struct {
	opts Options
	log  logrus.FieldLogger
}

// New creates a store.
func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{opts: opts, log: log}
}

// Candidates returns the paths Load tries, in order.
func (s *Store) Candidates() []string {
	var paths []string
	if s.opts.ConfiguredPath != "" {
		paths = append(paths, s.opts.ConfiguredPath)
	}
	if s.opts.SupportDir != "" {
		paths = append(paths, filepath.Join(s.opts.SupportDir, FileName))
	}
	if s.opts.AssetsPath != "" {
		paths = append(paths, s.opts.AssetsPath)
	}
	return paths
}

// Path returns the file Save writes to.
func (s *Store) Path() string {
	if s.opts.ConfiguredPath != "" {
		return s.opts.ConfiguredPath
	}
	return filepath.Join(s.opts.SupportDir, FileName)
}

// Load returns the current tree. Missing or unparsable candidates are
// skipped; when none can be read the tree is empty.
func (s *Store) Load() item.Tree {
	tree, _, ok := s.load()
	if !ok {
		return item.Tree{Items: []item.Item{}}
	}
	return tree
}

// Source returns the path Load reads from, if any candidate is readable.
func (s *Store) Source() (string, bool) {
	_, path, ok := s.load()
	return path, ok
}

func (s *Store) load() (item.Tree, string, bool) {
	for _, path := range s.Candidates() {
		log := s.log.WithField("path", path)

		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.WithError(err).Warn("skipping unreadable links file")
			}
			continue
		}

		res, err := migrate.Decode(data)
		if err != nil {
			log.WithError(err).Warn("skipping malformed links file")
			continue
		}

		if res.Schema == migrate.SchemaUnknown {
			log.Warn("links file has no items or folders; treating it as empty")
		} else {
			log.WithField("schema", res.Schema.String()).Debug("loaded links file")
		}
		return res.Tree, path, true
	}
	return item.Tree{}, "", false
}

// Save writes tree to Path, creating parent directories as needed.
func (s *Store) Save(tree item.Tree) error {
	if tree.Items == nil {
		tree.Items = []item.Item{}
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding links: %w", err)
	}

	path := s.Path()
	if err := writeFile(path, append(data, '\n')); err != nil {
		return err
	}

	s.log.WithField("path", path).Debug("saved links file")
	return nil
}

// Update loads the tree, applies fn and saves the result. Nothing is
// written when fn returns an error.
func (s *Store) Update(fn func(*item.Tree) error) error {
	tree := s.Load()
	if err := fn(&tree); err != nil {
		return err
	}
	return s.Save(tree)
}

// writeFile replaces path through a temporary file in the same directory.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".links-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing links: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing links: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("writing links: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing links file: %w", err)
	}
	return nil
}
