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

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
)

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List registered importers and renderers",
	Long:  `Lists the import sources usable with "import" and the formats usable with "render --format".`,
	Args:  cobra.NoArgs,
	RunE:  runAdapters,
}

func init() {
	rootCmd.AddCommand(adaptersCmd)
}

func runAdapters(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, headerStyle.Render("Importers"))
	for _, inp := range adapter.AllInputs() {
		status := "not available"
		if inp.Available() {
			status = "available"
		}
		fmt.Fprintf(w, "  %-12s %-20s %s\n", inp.Name(), inp.DisplayName(), urlStyle.Render("["+status+"]"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Renderers"))
	for _, out := range adapter.AllOutputs() {
		fmt.Fprintf(w, "  %-12s %-20s %s\n", out.Name(), out.DisplayName(), urlStyle.Render(fmt.Sprint(out.Extensions())))
	}
	return nil
}
