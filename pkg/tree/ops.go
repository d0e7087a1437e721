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

package tree

import (
	"fmt"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// The functions below wrap the updaters for callers that act on a single
// item by id and need to know whether it existed.

// Insert appends it to the folder, or to the top level when folderID is
// empty.
func Insert(t *item.Tree, folderID string, it item.Item) error {
	if folderID != "" {
		if f, ok := item.Find(t.Items, folderID); !ok || !f.IsFolder() {
			return fmt.Errorf("folder %s: %w", folderID, item.ErrNotFound)
		}
	}
	UpdateFolder(t, folderID, Append(it))
	return nil
}

// Delete removes the item and, for folders, everything inside it.
func Delete(t *item.Tree, itemID string) error {
	if !UpdateItem(t, itemID, Remove(itemID)) {
		return fmt.Errorf("item %s: %w", itemID, item.ErrNotFound)
	}
	return nil
}

// Edit replaces the stored item with the same id as it.
func Edit(t *item.Tree, it item.Item) error {
	if !UpdateItem(t, it.ID, Replace(it)) {
		return fmt.Errorf("item %s: %w", it.ID, item.ErrNotFound)
	}
	return nil
}

// Shift moves the item by delta within its folder.
func Shift(t *item.Tree, itemID string, delta int) error {
	if !UpdateItem(t, itemID, Move(itemID, delta)) {
		return fmt.Errorf("item %s: %w", itemID, item.ErrNotFound)
	}
	return nil
}

// Copy duplicates the item in place and returns the copy.
func Copy(t *item.Tree, itemID string) (item.Item, error) {
	parentID, ok := ParentOf(t.Items, itemID)
	if !ok {
		return item.Item{}, fmt.Errorf("item %s: %w", itemID, item.ErrNotFound)
	}
	UpdateFolder(t, parentID, Duplicate(itemID))

	siblings := t.Items
	if parentID != "" {
		parent, _ := item.Find(t.Items, parentID)
		siblings = parent.Items
	}
	for i, it := range siblings {
		if it.ID == itemID && i+1 < len(siblings) {
			return siblings[i+1], nil
		}
	}
	return item.Item{}, fmt.Errorf("item %s: %w", itemID, item.ErrNotFound)
}
