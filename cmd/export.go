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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Copy the links file to a folder under a timestamped name",
	Long: `Copies the links file, unchanged, to
<dir>/LinksFolder_JsonFile_<YYYY-MM-DDTHH.MM.SS>.json.

The directory is remembered in the config file and used when dir is
omitted next time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dest := current.cfg.ExportDir
	if len(args) == 1 {
		dest = args[0]
	}
	if strings.TrimSpace(dest) == "" {
		return export.ErrNoDestination
	}
	if abs, err := filepath.Abs(dest); err == nil {
		dest = abs
	}

	src, ok := current.store.Source()
	if !ok {
		return export.ErrNothingToExport
	}

	path, err := export.Export(src, dest, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)

	if current.cfg.ExportDir != dest {
		current.cfg.ExportDir = dest
		if err := current.saveConfig(); err != nil {
			current.log.WithError(err).Warn("could not remember export folder")
		}
	}
	return nil
}
