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

var dateCmd = &cobra.Command{
	Use:     "date",
	Short:   "Print today's date",
	Long:    helpDate,
	Example: exampleDate,
	Args:    cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), today())
	},
}

var timeCmd = &cobra.Command{
	Use:     "time",
	Short:   "Print the current time",
	Long:    helpTime,
	Example: exampleTime,
	Args:    cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), clockTime())
	},
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(timeCmd)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
