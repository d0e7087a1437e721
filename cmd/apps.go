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

	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List installed applications usable with --app (macOS)",
	Args:  cobra.NoArgs,
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
}

func runApps(cmd *cobra.Command, args []string) error {
	apps, err := listApps()
	if err != nil {
		return fmt.Errorf("listing applications: %w", err)
	}

	for _, app := range apps {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-32s %s\n", app.Name, urlStyle.Render(app.BundleID))
	}
	return nil
}
