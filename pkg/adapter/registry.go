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

// Package adapter holds the registries of importers and renderers.
package adapter

import (
	"sort"
	"sync"

	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

type named interface {
	Name() string
}

// registry is a name-keyed set of adapters safe for concurrent use.
type registry[T named] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newRegistry[T named]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) add(a T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.Name()] = a
}

func (r *registry[T]) get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[name]
	return a, ok
}

func (r *registry[T]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// all returns the adapters sorted by name.
func (r *registry[T]) all() []T {
	names := r.names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(names))
	for _, name := range names {
		out = append(out, r.items[name])
	}
	return out
}

var (
	inputs  = newRegistry[input.Adapter]()
	outputs = newRegistry[output.Adapter]()
)

// RegisterInput registers an importer.
func RegisterInput(a input.Adapter) { inputs.add(a) }

// RegisterOutput registers a renderer.
func RegisterOutput(a output.Adapter) { outputs.add(a) }

// GetInput returns an importer by name.
func GetInput(name string) (input.Adapter, bool) { return inputs.get(name) }

// GetOutput returns a renderer by name.
func GetOutput(name string) (output.Adapter, bool) { return outputs.get(name) }

// ListInputs returns all registered importer names.
func ListInputs() []string { return inputs.names() }

// ListOutputs returns all registered renderer names.
func ListOutputs() []string { return outputs.names() }

// AllInputs returns all registered importers sorted by name.
func AllInputs() []input.Adapter { return inputs.all() }

// AllOutputs returns all registered renderers sorted by name.
func AllOutputs() []output.Adapter { return outputs.all() }

// AvailableInputs returns importers whose data can be read on this machine.
func AvailableInputs() []input.Adapter {
	var available []input.Adapter
	for _, a := range inputs.all() {
		if a.Available() {
			available = append(available, a)
		}
	}
	return available
}
