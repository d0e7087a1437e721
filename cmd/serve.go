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
	"github.com/spf13/cobra"

	"github.com/francescopioparadiso/Links-Folder/pkg/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server",
	Long: `Runs linksfolder as an MCP (Model Context Protocol) server over
stdin/stdout.

Tools:
  - tree, list, search      Read the link tree
  - add_link, add_folder    Add items
  - delete, move, duplicate Rearrange items
  - open                    Open a link or every link in a folder

Add to your MCP client configuration:

  {
    "mcpServers": {
      "linksfolder": {
        "command": "/path/to/linksfolder",
        "args": ["serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	return mcp.NewServer(current.store, current.launcher, current.log, Version).Run()
}
