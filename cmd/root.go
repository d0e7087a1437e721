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

// Package cmd implements the linksfolder CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/config"
	"github.com/francescopioparadiso/Links-Folder/pkg/host"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/launcher"
	"github.com/francescopioparadiso/Links-Folder/pkg/store"

	// Import adapters to trigger init() registration
	_ "github.com/francescopioparadiso/Links-Folder/pkg/input/chromium"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/input/firefox"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/input/opml"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/input/safari"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/json"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/markdown"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/opml"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/yaml"
)

var (
	cfgFile     string
	verbose     bool
	storageFlag string
)

// Host services, replaced in tests.
var (
	newOpener = func() launcher.Opener {
		return launcher.NewSystemOpener(runtime.GOOS)
	}
	readActiveTab = func(ctx context.Context) (host.Tab, error) {
		return host.NewTabReader(runtime.GOOS).ReadActiveTab(ctx)
	}
	listApps = func() ([]item.SavedApp, error) {
		return host.ListApplications(runtime.GOOS)
	}
	supportDir = config.SupportDir
	assetsPath = config.AssetsPath
)

// app holds what every command needs, built once per invocation.
type app struct {
	cfg      config.Config
	cfgPath  string
	log      *logrus.Logger
	store    *store.Store
	launcher *launcher.Launcher
}

var current *app

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "linksfolder",
	Short: "Keep your links in folders and open them together",
	Long: `linksfolder keeps a tree of links and folders in a single JSON file
and opens a link, or every link in a folder, with one command.

Links can remember the application they should open in (macOS and
Windows). Links can be added from the active browser tab, imported from
browsers and bookmark files, rendered to other formats, exported as a
timestamped copy, and served to AI assistants over MCP.

Data file lookup order:
  1. storage_path from the config file, or --storage
  2. ~/.linksfolder/links.json
  3. assets/links.json next to the executable

Examples:
  linksfolder                          # List the top level
  linksfolder tree                     # Show everything
  linksfolder add-folder Work --icon 💼
  linksfolder add https://go.dev --folder <id>
  linksfolder add --from-tab           # Add the active browser tab
  linksfolder open-all <folder-id>     # Open every link in a folder
  linksfolder import chrome            # Import Chrome bookmarks
  linksfolder export ~/Backups         # Timestamped copy of links.json
  linksfolder serve                    # Run as MCP server`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runList,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./linksfolder.yaml or ~/.linksfolder/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output to stderr")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "links file to use instead of the configured one")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("linksfolder %s (commit: %s, built: %s)\n", Version, Commit, Date))
}

func setup(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	path := config.Resolve(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.WithField("path", path).Debug("configuration loaded")

	storage := cfg.StoragePath
	if storageFlag != "" {
		storage = storageFlag
	}

	opener := newOpener()
	if so, ok := opener.(*launcher.SystemOpener); ok {
		log.WithField("platform", so.Platform()).Debug("using system opener")
	}

	current = &app{
		cfg:     cfg,
		cfgPath: path,
		log:     log,
		store: store.New(store.Options{
			ConfiguredPath: storage,
			SupportDir:     supportDir(),
			AssetsPath:     assetsPath(),
			Logger:         log,
		}),
		launcher: launcher.New(opener, log),
	}
	return nil
}

// saveConfig persists the current configuration.
func (a *app) saveConfig() error {
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	a.log.WithField("path", a.cfgPath).Debug("configuration saved")
	return nil
}

// find looks an item up by id in the current tree.
func (a *app) find(id string) (item.Item, error) {
	it, ok := item.Find(a.store.Load().Items, id)
	if !ok {
		return item.Item{}, fmt.Errorf("item %s: %w", id, item.ErrNotFound)
	}
	return it, nil
}
