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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/host"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/tree"
)

var addCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Add a link",
	Long: `Adds a link to the top level, or to a folder with --folder.

The title defaults to the URL. With --from-tab the URL and title are read
from the active tab of a running browser (macOS).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var addFolderCmd = &cobra.Command{
	Use:   "add-folder [title]",
	Short: "Add an empty folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAddFolder,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a link or folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a link, or a folder and everything in it",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var moveCmd = &cobra.Command{
	Use:       "move <id> up|down",
	Short:     "Move an item one position within its folder",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"up", "down"},
	RunE:      runMove,
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy an item right after itself",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func init() {
	addCmd.Flags().String("title", "", "link title (default: the URL)")
	addCmd.Flags().String("icon", "", "emoji shown next to the title")
	addCmd.Flags().String("folder", "", "destination folder id (default: top level)")
	addCmd.Flags().String("app", "", "application to open the link with (name, bundle id or path)")
	addCmd.Flags().Bool("from-tab", false, "use the active browser tab")

	addFolderCmd.Flags().String("icon", "", "emoji shown next to the title")
	addFolderCmd.Flags().String("folder", "", "parent folder id (default: top level)")

	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("icon", "", "new icon; empty removes it")
	editCmd.Flags().String("url", "", "new URL (links only)")
	editCmd.Flags().String("app", "", "application to open the link with (links only)")
	editCmd.Flags().Bool("no-app", false, "open the link with the default handler")

	rootCmd.AddCommand(addCmd, addFolderCmd, editCmd, deleteCmd, moveCmd, duplicateCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	icon, _ := cmd.Flags().GetString("icon")
	folderID, _ := cmd.Flags().GetString("folder")
	appName, _ := cmd.Flags().GetString("app")
	fromTab, _ := cmd.Flags().GetBool("from-tab")

	var url string
	if len(args) == 1 {
		url = args[0]
	}

	if fromTab {
		tab, err := readActiveTab(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading active tab: %w", err)
		}
		current.log.WithField("url", tab.URL).Debugf("read active tab from %s", tab.Browser)
		if url == "" {
			url = tab.URL
		}
		if title == "" {
			title = tab.Title
		}
	}

	app, err := resolveApp(appName)
	if err != nil {
		return err
	}

	link := item.NewLink(title, url, icon, app)
	if err := link.Validate(); err != nil {
		return err
	}

	if err := current.store.Update(func(t *item.Tree) error {
		return tree.Insert(t, folderID, link)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatRow(link))
	return nil
}

func runAddFolder(cmd *cobra.Command, args []string) error {
	icon, _ := cmd.Flags().GetString("icon")
	parentID, _ := cmd.Flags().GetString("folder")

	var title string
	if len(args) == 1 {
		title = args[0]
	}

	folder := item.NewFolder(title, icon)
	if err := current.store.Update(func(t *item.Tree) error {
		return tree.Insert(t, parentID, folder)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatRow(folder))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var edited item.Item
	err := current.store.Update(func(t *item.Tree) error {
		it, ok := item.Find(t.Items, args[0])
		if !ok {
			return fmt.Errorf("item %s: %w", args[0], item.ErrNotFound)
		}

		if flags.Changed("title") {
			title, _ := flags.GetString("title")
			if it.IsFolder() {
				it.Title = item.FolderTitle(title)
			} else {
				it.Title = title
			}
		}
		if flags.Changed("icon") {
			it.Icon, _ = flags.GetString("icon")
			it.Icon = strings.TrimSpace(it.Icon)
		}

		if it.IsFolder() && (flags.Changed("url") || flags.Changed("app") || flags.Changed("no-app")) {
			return &item.ValidationError{Field: "url", Message: "folders have no url or application"}
		}
		if flags.Changed("url") {
			it.URL, _ = flags.GetString("url")
			it.URL = strings.TrimSpace(it.URL)
		}
		if flags.Changed("app") {
			name, _ := flags.GetString("app")
			app, err := resolveApp(name)
			if err != nil {
				return err
			}
			it.App = app
		}
		if noApp, _ := flags.GetBool("no-app"); noApp {
			it.App = nil
		}
		if it.IsLink() {
			it.Title = item.LinkTitle(it.Title, it.URL)
		}

		if err := it.Validate(); err != nil {
			return err
		}
		edited = it
		return tree.Edit(t, it)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatRow(edited))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	it, err := current.find(args[0])
	if err != nil {
		return err
	}

	if err := current.store.Update(func(t *item.Tree) error {
		return tree.Delete(t, args[0])
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", displayTitle(it))
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	var delta int
	switch strings.ToLower(args[1]) {
	case "up":
		delta = -1
	case "down":
		delta = 1
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[1])
	}

	return current.store.Update(func(t *item.Tree) error {
		return tree.Shift(t, args[0], delta)
	})
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	var dup item.Item
	err := current.store.Update(func(t *item.Tree) error {
		var err error
		dup, err = tree.Copy(t, args[0])
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatRow(dup))
	return nil
}

// resolveApp turns --app into a saved application. A path to a .app bundle
// or executable is used as is; anything else is looked up among the
// installed applications.
func resolveApp(name string) (*item.SavedApp, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	if strings.ContainsAny(name, `/\`) {
		base := filepath.Base(name)
		return &item.SavedApp{
			Name: strings.TrimSuffix(base, filepath.Ext(base)),
			Path: name,
		}, nil
	}

	apps, err := listApps()
	if err != nil {
		if errors.Is(err, host.ErrUnsupported) {
			return nil, fmt.Errorf("looking up %q: %w; pass the application path instead", name, err)
		}
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	app, ok := host.FindApplication(apps, name)
	if !ok {
		return nil, fmt.Errorf("application %q not found; see: linksfolder apps", name)
	}
	return &app, nil
}
