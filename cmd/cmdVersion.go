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

	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var versionCmd = &cobra.Command{
	Use:     "version [FILE]",
	Short:   "Print the version tag of a header comment",
	Long:    helpVersion,
	Example: exampleVersion,
	Args:    cobra.MaximumNArgs(1),

	Run: runVersion,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&flags.file, "file", "f", "", "Source file (default stdin)")
	versionCmd.Flags().BoolVarP(&flags.bump, "bump", "b", false, "Print the next version instead")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// a positional path takes precedence over --file
func runVersion(cmd *cobra.Command, args []string) {
	path := flags.file
	if len(args) == 1 {
		path = args[0]
	}
	doc := loadSource(path, cmd.InOrStdin())

	version, err := headerVersion(doc)
	checkErr(err, "version.read", "reading header version")

	if flags.bump {
		version, err = bumpVersion(version)
		checkErr(err, "version.bump", "bumping header version")
	}

	fmt.Fprintln(cmd.OutOrStdout(), version)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
