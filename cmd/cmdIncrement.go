/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var incrementCmd = &cobra.Command{
	Use:     "increment PATH...",
	Short:   "Increment console.log version markers",
	Long:    helpIncrement,
	Example: exampleIncrement,
	Args:    cobra.MinimumNArgs(1),

	Run: runIncrement,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(incrementCmd)

	incrementCmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Consider every file, not only .js & .page")
	incrementCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Report changes without writing")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// incrementResult records the markers rewritten in one file
type incrementResult struct {
	path    string
	markers int
}

func runIncrement(cmd *cobra.Command, args []string) {
	exts := saveExtensions
	if flags.all {
		exts = nil
	}

	files, err := resolveSourceFiles(args, exts)
	checkErr(err, "increment.resolve", "resolving paths")
	diagnose("%d candidate files", len(files))

	results, err := incrementFiles(files, flags.dryRun)
	checkErr(err, "increment.write", "incrementing versions")

	emitIncrements(cmd.OutOrStdout(), results, flags.dryRun)
}

// incrementFiles rewrites every file holding at least one marker
func incrementFiles(files []string, dryRun bool) ([]incrementResult, error) {
	var results []incrementResult
	for _, path := range files {
		doc, err := readSource(path, nil)
		if err != nil {
			return results, err
		}

		updated, n := incrementConsoleVersions(doc)
		if n == 0 {
			continue
		}
		if !dryRun {
			if err := writeSource(path, updated); err != nil {
				return results, fmt.Errorf("writing %s: %w", path, err)
			}
		}
		results = append(results, incrementResult{path: path, markers: n})
	}
	return results, nil
}

func emitIncrements(w io.Writer, results []incrementResult, dryRun bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No version markers found.")
		return
	}

	verb := "updated"
	if dryRun {
		verb = "would update"
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s %s (%d)\n", chalk.Green.Color(verb), r.path, r.markers)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
