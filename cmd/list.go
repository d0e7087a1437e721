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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

var listCmd = &cobra.Command{
	Use:   "list [folder-id]",
	Short: "List the top level or the contents of a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show every folder and link",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find links and folders by title or URL",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(listCmd, treeCmd, searchCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	items := current.store.Load().Items

	if len(args) == 1 {
		folder, err := current.find(args[0])
		if err != nil {
			return err
		}
		if !folder.IsFolder() {
			return fmt.Errorf("%s is a link, not a folder", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(displayTitle(folder)))
		items = folder.Items
	}

	printList(cmd.OutOrStdout(), items)
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	tr := current.store.Load()
	if len(tr.Items) == 0 {
		printList(cmd.OutOrStdout(), nil)
		return nil
	}

	links, folders := item.Count(tr.Items)
	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(fmt.Sprintf("%d links in %d folders", links, folders)))
	printTree(cmd.OutOrStdout(), tr.Items, "")
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	matches := item.Search(current.store.Load().Items, query)
	if len(matches) == 0 {
		return fmt.Errorf("no matches for %q", query)
	}
	printMatches(cmd.OutOrStdout(), matches)
	return nil
}
