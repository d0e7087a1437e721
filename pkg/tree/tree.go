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

// Package tree applies mutations to a folder's children.
//
// Every mutation is expressed as an Updater: a function from the current
// child sequence to the new one. UpdateFolder locates the target folder as
// an index path and writes the updater's result back along that path, so
// no caller ever holds a reference into the middle of the tree while it
// changes.
package tree

import (
	"slices"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Updater maps a child sequence to its replacement.
type Updater func([]item.Item) []item.Item

// Path is the sequence of child indexes leading from the top level to a
// folder.
type Path []int

// Locate finds the folder with the given id, depth-first.
func Locate(items []item.Item, folderID string) (Path, bool) {
	for i, it := range items {
		if !it.IsFolder() {
			continue
		}
		if it.ID == folderID {
			return Path{i}, true
		}
		if sub, ok := Locate(it.Items, folderID); ok {
			return append(Path{i}, sub...), true
		}
	}
	return nil, false
}

// UpdateFolder applies fn to the children of the folder folderID, or to the
// top level when folderID is empty. An unknown folder is a silent no-op;
// the return value reports whether fn was applied.
func UpdateFolder(t *item.Tree, folderID string, fn Updater) bool {
	if folderID == "" {
		t.Items = fn(slices.Clone(t.Items))
		return true
	}

	path, ok := Locate(t.Items, folderID)
	if !ok {
		return false
	}
	t.Items = rewrite(t.Items, path, fn)
	return true
}

func rewrite(items []item.Item, path Path, fn Updater) []item.Item {
	out := slices.Clone(items)
	target := out[path[0]]
	if len(path) == 1 {
		target.Items = fn(slices.Clone(target.Items))
	} else {
		target.Items = rewrite(target.Items, path[1:], fn)
	}
	out[path[0]] = target
	return out
}

// ParentOf returns the id of the folder directly containing itemID, or ""
// when the item sits at the top level.
func ParentOf(items []item.Item, itemID string) (string, bool) {
	return parentOf(items, "", itemID)
}

func parentOf(items []item.Item, parentID, itemID string) (string, bool) {
	for _, it := range items {
		if it.ID == itemID {
			return parentID, true
		}
	}
	for _, it := range items {
		if !it.IsFolder() {
			continue
		}
		if p, ok := parentOf(it.Items, it.ID, itemID); ok {
			return p, true
		}
	}
	return "", false
}

// UpdateItem applies fn to the sequence containing itemID, wherever it is.
func UpdateItem(t *item.Tree, itemID string, fn Updater) bool {
	parentID, ok := ParentOf(t.Items, itemID)
	if !ok {
		return false
	}
	return UpdateFolder(t, parentID, fn)
}

// Append adds it to the end of the sequence.
func Append(it item.Item) Updater {
	return func(items []item.Item) []item.Item {
		return append(items, it)
	}
}

// Remove drops the item with the given id.
func Remove(itemID string) Updater {
	return func(items []item.Item) []item.Item {
		return slices.DeleteFunc(items, func(it item.Item) bool {
			return it.ID == itemID
		})
	}
}

// Replace substitutes the item with the same id as it.
func Replace(it item.Item) Updater {
	return func(items []item.Item) []item.Item {
		for i := range items {
			if items[i].ID == it.ID {
				items[i] = it
			}
		}
		return items
	}
}

// Move shifts the item by delta positions, swapping it with its neighbor
// for ±1. Moves past either end leave the sequence unchanged.
func Move(itemID string, delta int) Updater {
	return func(items []item.Item) []item.Item {
		i := slices.IndexFunc(items, func(it item.Item) bool {
			return it.ID == itemID
		})
		j := i + delta
		if i < 0 || delta == 0 || j < 0 || j >= len(items) {
			return items
		}
		moved := items[i]
		items = slices.Delete(items, i, i+1)
		return slices.Insert(items, j, moved)
	}
}

// Duplicate inserts a deep clone of the item right after it, with new ids
// throughout and " (Copy)" appended to its title.
func Duplicate(itemID string) Updater {
	return func(items []item.Item) []item.Item {
		i := slices.IndexFunc(items, func(it item.Item) bool {
			return it.ID == itemID
		})
		if i < 0 {
			return items
		}
		clone := item.Clone(items[i])
		clone.Title += " (Copy)"
		return slices.Insert(items, i+1, clone)
	}
}
