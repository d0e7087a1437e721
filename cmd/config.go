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
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and file locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetStorageCmd = &cobra.Command{
	Use:   "set-storage [path]",
	Short: "Store links in a different file; no path restores the default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigSetStorage,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetStorageCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "# config file: %s\n", current.cfgPath)
	fmt.Fprintf(w, "# links file:  %s\n", current.store.Path())
	if src, ok := current.store.Source(); ok && src != current.store.Path() {
		fmt.Fprintf(w, "# loaded from: %s\n", src)
	}

	data, err := yaml.Marshal(current.cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runConfigSetStorage(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		path = abs
	}

	current.cfg.StoragePath = path
	if err := current.saveConfig(); err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Links are stored in the default location")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Links are stored in %s\n", path)
	}
	return nil
}
