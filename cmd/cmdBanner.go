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

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var bannerCmd = &cobra.Command{
	Use:     "banner [text...]",
	Short:   "Render text as a block-art comment banner",
	Long:    helpBanner,
	Example: exampleBanner,

	Run: runBanner,
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(bannerCmd)

	bannerCmd.Flags().StringVarP(&flags.font, "font", "f", "", "TOML file with extra glyphs (default from config)")
	bannerCmd.Flags().StringVarP(&flags.emit, "emit", "e", emitText, "Output format: text, edn")

	horus.CheckErr(
		bannerCmd.RegisterFlagCompletionFunc("emit", completeEmitFormat),
		horus.WithOp("banner.init"),
		horus.WithMessage("registering completion for flag emit"),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func completeEmitFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{emitText, emitEDN}, cobra.ShellCompDirectiveNoFileComp
}

// each argument is one title, stdin is read when none is given
func runBanner(cmd *cobra.Command, args []string) {
	titles := args
	if len(titles) == 0 {
		titles = []string{strings.TrimRight(loadSource("-", cmd.InOrStdin()), "\r\n")}
	}

	fnt := resolveFont()
	for _, title := range titles {
		diagnose("formatting as figlet ANSI Shadow: %s", upperTitle(title))
	}

	out, err := emitLines(fnt.bannerBlock(titles), flags.emit)
	checkErr(err, "banner.emit", "emitting banner")

	fmt.Fprintln(cmd.OutOrStdout(), out)
}

// resolveFont prefers --font over the configured font file
func resolveFont() font {
	path := flags.font
	if path == "" {
		path = currentSettings().font
	}
	if path != "" {
		diagnose("loading glyphs from %s", path)
	}

	fnt, err := loadFont(path)
	checkErr(err, "banner.font", "loading font")
	return fnt
}

////////////////////////////////////////////////////////////////////////////////////////////////////
