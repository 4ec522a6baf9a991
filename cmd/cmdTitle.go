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
	"strings"

	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var titleCmd = &cobra.Command{
	Use:     "title [text...]",
	Short:   "Wrap text as a section title comment",
	Long:    helpTitle,
	Example: exampleTitle,

	Run: runTitle,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(titleCmd)

	titleCmd.Flags().IntVarP(&flags.offset, "offset", "o", 0, "Columns already used on the line")
	titleCmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "Text preceding the title on its line, overrides --offset")
	titleCmd.Flags().IntVarP(&flags.width, "width", "w", defaultTitleWidth, "Line width to fill (default from config)")
	titleCmd.Flags().StringVarP(&flags.fill, "fill", "f", defaultTitleFill, "Fill character (default from config)")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runTitle(cmd *cobra.Command, args []string) {
	s := currentSettings()
	if cmd.Flags().Changed("width") {
		s.titleWidth = flags.width
	}
	if cmd.Flags().Changed("fill") && flags.fill != "" {
		s.titleFill = flags.fill
	}

	offset := flags.offset
	if cmd.Flags().Changed("prefix") {
		offset = titleOffset(flags.prefix, s.tabSize)
	}
	diagnose("title width %d, offset %d", s.titleWidth, offset)

	fmt.Fprintln(cmd.OutOrStdout(), sectionTitle(strings.Join(args, " "), offset, s.titleWidth, s.titleFill))
}

////////////////////////////////////////////////////////////////////////////////////////////////////
