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
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/launcher"
)

var writeClipboard = clipboard.WriteAll

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a link, or every link in a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

var openAllCmd = &cobra.Command{
	Use:   "open-all [folder-id]",
	Short: "Open every link in a folder and its subfolders",
	Long: `Opens every link in the folder, depth-first in display order. Without a
folder id every link in the tree is opened. Failures are reported but do
not stop the remaining links from opening.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpenAll,
}

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a link's URL, or all URLs in a folder, to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopy,
}

func init() {
	rootCmd.AddCommand(openCmd, openAllCmd, copyCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	it, err := current.find(args[0])
	if err != nil {
		return err
	}
	if it.IsFolder() {
		return openAll(cmd, it.Title, func() (launcher.Result, error) {
			return current.launcher.OpenAll(it)
		})
	}
	return current.launcher.Open(it)
}

func runOpenAll(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		tr := current.store.Load()
		return openAll(cmd, "all folders", func() (launcher.Result, error) {
			return current.launcher.OpenAllTree(tr)
		})
	}

	folder, err := current.find(args[0])
	if err != nil {
		return err
	}
	if !folder.IsFolder() {
		return fmt.Errorf("%s is a link, not a folder; use: linksfolder open %s", args[0], args[0])
	}
	return openAll(cmd, folder.Title, func() (launcher.Result, error) {
		return current.launcher.OpenAll(folder)
	})
}

func openAll(cmd *cobra.Command, name string, open func() (launcher.Result, error)) error {
	res, err := open()
	if errors.Is(err, launcher.ErrNothingToOpen) {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opened %d links from %s\n", res.Attempted, name)
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	it, err := current.find(args[0])
	if err != nil {
		return err
	}

	var urls []string
	for _, link := range item.CollectLinks([]item.Item{it}) {
		if link.URL != "" {
			urls = append(urls, link.URL)
		}
	}
	if len(urls) == 0 {
		return fmt.Errorf("%s: %w", it.Title, launcher.ErrNothingToOpen)
	}

	if err := writeClipboard(strings.Join(urls, "\n")); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	if len(urls) == 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %s\n", urls[0])
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d URLs\n", len(urls))
	}
	return nil
}
