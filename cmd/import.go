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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/input"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/tree"
)

// Browser preference order when no source is given.
var inputPreference = []string{"chrome", "firefox", "edge", "safari", "chromium", "brave"}

var importCmd = &cobra.Command{
	Use:   "import [source | file]",
	Short: "Import bookmarks from a browser or a bookmark file",
	Long: `Imports bookmarks into a new folder named after the source.

The source is an importer name (see: linksfolder adapters) or the path of
an OPML or Netscape HTML bookmark file. Without a source the first
available browser is used.

Examples:
  linksfolder import                      # First available browser
  linksfolder import firefox -p work      # Specific browser and profile
  linksfolder import bookmarks.html       # Exported bookmark file
  linksfolder import chrome --folder <id> # Into an existing folder
  linksfolder import --list               # Show browsers and profiles`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringP("profile", "p", "", "browser profile (default: all profiles)")
	importCmd.Flags().String("folder", "", "folder id to import into (default: top level)")
	importCmd.Flags().String("title", "", "title of the created folder (default: source name)")
	importCmd.Flags().Bool("list", false, "list available browsers and profiles and exit")

	importCmd.Flags().StringSlice("exclude-protocols", nil, "protocols to exclude (e.g., data,javascript)")
	importCmd.Flags().StringSlice("warn-protocols", nil, "protocols that trigger warnings (e.g., file,chrome)")
	importCmd.Flags().Int("max-url-length", 0, "exclude URLs longer than this (0 = use config default)")
	importCmd.Flags().Int("warn-url-length", 0, "warn on URLs longer than this (0 = use config default)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return runListProfiles(cmd)
	}

	profile, _ := cmd.Flags().GetString("profile")
	src, err := selectInput(args, profile)
	if err != nil {
		return err
	}

	log := current.log.WithFields(logrus.Fields{"source": src.Name(), "path": src.Path()})
	log.Debug("reading bookmarks")

	items, err := src.Read(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading from %s: %w", src.Name(), err)
	}

	filterOpts := current.cfg.FilterOptions()
	if v, _ := cmd.Flags().GetStringSlice("exclude-protocols"); len(v) > 0 {
		filterOpts.ExcludeProtocols = v
	}
	if v, _ := cmd.Flags().GetStringSlice("warn-protocols"); len(v) > 0 {
		filterOpts.WarnProtocols = v
	}
	if v, _ := cmd.Flags().GetInt("max-url-length"); v > 0 {
		filterOpts.MaxURLLength = v
	}
	if v, _ := cmd.Flags().GetInt("warn-url-length"); v > 0 {
		filterOpts.WarnURLLength = v
	}

	result := item.Filter(items, filterOpts)
	for _, w := range result.Warnings {
		log.Warn(w)
	}
	if result.Excluded > 0 {
		log.Debugf("excluded %d links by filter rules", result.Excluded)
	}

	links, folders := item.Count(result.Items)
	if links == 0 {
		return fmt.Errorf("no bookmarks found in %s", src.DisplayName())
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = src.DisplayName()
	}
	folder := item.NewFolder(title, "")
	folder.Items = result.Items

	into, _ := cmd.Flags().GetString("folder")
	if err := current.store.Update(func(t *item.Tree) error {
		return tree.Insert(t, into, folder)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d links in %d folders into %s\n", links, folders, formatRow(folder))
	return nil
}

// selectInput picks and configures the importer for args.
func selectInput(args []string, profile string) (input.Adapter, error) {
	var src input.Adapter

	switch {
	case len(args) == 1:
		if a, ok := adapter.GetInput(args[0]); ok {
			src = a
			break
		}
		if _, err := os.Stat(args[0]); err != nil {
			return nil, fmt.Errorf("unknown source %q (available: %v)", args[0], adapter.ListInputs())
		}
		file, _ := adapter.GetInput("opml")
		if err := file.Configure(input.Config{Enabled: true, CustomPath: args[0]}); err != nil {
			return nil, err
		}
		return file, nil

	default:
		for _, name := range inputPreference {
			a, ok := adapter.GetInput(name)
			if !ok || !current.cfg.GetInputConfig(name).Enabled {
				continue
			}
			if a.Available() {
				src = a
				break
			}
		}
		if src == nil {
			return nil, fmt.Errorf("no available browser found")
		}
	}

	inputCfg := current.cfg.GetInputConfig(src.Name())
	if profile != "" {
		inputCfg.Profile = profile
	}
	if err := src.Configure(input.Config{
		Enabled:    true,
		Profile:    inputCfg.Profile,
		CustomPath: inputCfg.CustomPath,
	}); err != nil {
		return nil, fmt.Errorf("configuring %s: %w", src.Name(), err)
	}
	if !src.Available() {
		return nil, fmt.Errorf("%s has no bookmarks on this machine", src.DisplayName())
	}
	return src, nil
}

func runListProfiles(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Available browser profiles:")
	fmt.Fprintln(w)

	for _, name := range inputPreference {
		inp, ok := adapter.GetInput(name)
		if !ok {
			continue
		}

		status := "not available"
		if inp.Available() {
			status = "available"
		}
		fmt.Fprintf(w, "  %s (%s)\n", inp.DisplayName(), status)
		fmt.Fprintf(w, "    Path: %s\n", inp.Path())

		if !inp.Available() {
			fmt.Fprintln(w)
			continue
		}
		if profiles, err := inp.ListProfiles(); err == nil && len(profiles) > 0 {
			fmt.Fprintln(w, "    Profiles:")
			for _, p := range profiles {
				def := ""
				if p.IsDefault {
					def = " (default)"
				}
				fmt.Fprintf(w, "      - %s%s\n", p.Name, def)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
