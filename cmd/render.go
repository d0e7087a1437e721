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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the links in another format",
	Long: `Renders the whole tree, or one folder, with an output adapter.

By default output goes to stdout. Use -o/--output to write to a file.

Examples:
  linksfolder render                      # Markdown nested list
  linksfolder render --style table        # Markdown table
  linksfolder render --format html -o bookmarks.html
  linksfolder render --format json --folder <id>`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	renderCmd.Flags().String("format", "markdown", "output format (see: linksfolder adapters)")
	renderCmd.Flags().String("style", "", "markdown style: textual, table, or yaml")
	renderCmd.Flags().String("folder", "", "render only this folder")
	renderCmd.Flags().Bool("metadata", false, "include a metadata header")
	renderCmd.Flags().Bool("icons", true, "prefix titles with their icon")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, ok := adapter.GetOutput(format)
	if !ok {
		return fmt.Errorf("unknown output format: %s (available: %v)", format, adapter.ListOutputs())
	}

	opts := output.RenderOptions{
		IncludeMetadata: current.cfg.Render.IncludeMetadata,
		IncludeIcons:    current.cfg.Render.IncludeIcons,
		Style:           current.cfg.Render.Style,
	}
	if cmd.Flags().Changed("metadata") {
		opts.IncludeMetadata, _ = cmd.Flags().GetBool("metadata")
	}
	if cmd.Flags().Changed("icons") {
		opts.IncludeIcons, _ = cmd.Flags().GetBool("icons")
	}
	if style, _ := cmd.Flags().GetString("style"); style != "" {
		opts.Style = style
	}

	tr := current.store.Load()
	if folderID, _ := cmd.Flags().GetString("folder"); folderID != "" {
		folder, err := current.find(folderID)
		if err != nil {
			return err
		}
		if !folder.IsFolder() {
			return fmt.Errorf("%s is a link, not a folder", folderID)
		}
		tr = item.Tree{Items: folder.Items}
		opts.Title = folder.Title
	}

	data, err := out.Render(tr, opts)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" || outPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	current.log.WithField("path", outPath).Debug("output written")
	return nil
}
