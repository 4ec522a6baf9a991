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
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var glyphsCmd = &cobra.Command{
	Use:     "glyphs",
	Short:   "List supported banner characters",
	Long:    helpGlyphs,
	Example: exampleGlyphs,

	Run: runGlyphs,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(glyphsCmd)

	glyphsCmd.Flags().StringVarP(&flags.font, "font", "f", "", "TOML file with extra glyphs (default from config)")
	glyphsCmd.Flags().BoolVarP(&flags.render, "render", "r", false, "Draw every glyph below the table")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runGlyphs(cmd *cobra.Command, args []string) {
	emitGlyphTable(cmd.OutOrStdout(), resolveFont(), flags.render)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// emitGlyphTable prints the font as a Markdown table, optionally followed by each glyph
func emitGlyphTable(w io.Writer, f font, render bool) {
	if len(f) == 0 {
		fmt.Fprintln(w, "No glyphs found.")
		return
	}

	fmt.Fprintln(w, "| Char  | Width |")
	fmt.Fprintln(w, "|-------|-------|")
	for _, r := range f.runes() {
		fmt.Fprintf(w, "| %-5s | %-5d |\n", glyphLabel(r), f[r].width())
	}

	if !render {
		return
	}
	for _, r := range f.runes() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, glyphLabel(r))
		for _, row := range f[r] {
			fmt.Fprintln(w, row)
		}
	}
}

func glyphLabel(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
