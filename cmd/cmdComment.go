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

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var commentCmd = &cobra.Command{
	Use:     "comment",
	Short:   "Generate comment templates",
	Long:    helpComment,
	Example: exampleComment,
}

var commentClassCmd = &cobra.Command{
	Use:   "class",
	Short: "Class header comment",
	Args:  cobra.NoArgs,
	Run:   runCommentClass,
}

var commentMethodCmd = &cobra.Command{
	Use:    "method",
	Short:  "Method comment, or version line when the line is inside a comment",
	Args:   cobra.NoArgs,
	PreRun: preCommentMethod,
	Run:    runCommentMethod,
}

var commentInnerCmd = &cobra.Command{
	Use:   "inner",
	Short: "Inner class with its comment",
	Args:  cobra.NoArgs,
	Run:   runCommentInner,
}

var commentInnerCommentCmd = &cobra.Command{
	Use:   "inner-comment",
	Short: "Inner class comment",
	Args:  cobra.NoArgs,
	Run:   runCommentInnerComment,
}

var commentExceptionCmd = &cobra.Command{
	Use:   "exception",
	Short: "Exception class with its comment",
	Args:  cobra.NoArgs,
	Run:   runCommentException,
}

var commentTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test method with start/stop sections",
	Args:  cobra.NoArgs,
	Run:   runCommentTest,
}

var commentVariableCmd = &cobra.Command{
	Use:   "variable",
	Short: "Variable comment carrying the header version",
	Args:  cobra.NoArgs,
	Run:   runCommentVariable,
}

var commentDescriptionCmd = &cobra.Command{
	Use:   "description",
	Short: "Description tag",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), descriptionComment)
	},
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(
		commentClassCmd,
		commentMethodCmd,
		commentInnerCmd,
		commentInnerCommentCmd,
		commentExceptionCmd,
		commentTestCmd,
		commentVariableCmd,
		commentDescriptionCmd,
	)

	commentCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "Source file the comment is written for (default stdin)")

	commentMethodCmd.Flags().IntVarP(&flags.line, "line", "l", 1, "Line the cursor is on, 1-based")
	commentMethodCmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Apply the comment to --file instead of printing it")

	commentInnerCmd.Flags().StringVarP(&flags.innerName, "name", "n", "InnerClass", "Inner class name")
	commentInnerCommentCmd.Flags().StringVarP(&flags.innerCommentName, "name", "n", "InnerClass", "Inner class name")

	commentExceptionCmd.Flags().StringVarP(&flags.exceptionName, "name", "n", "Test", "Exception name, without the Exception suffix")
	commentExceptionCmd.Flags().StringVarP(&flags.exceptionParent, "extends", "e", "", "Parent exception prefix")

	commentTestCmd.Flags().StringVarP(&flags.testName, "name", "n", "Utilities", "Tested unit, appended to the method name")
	commentTestCmd.Flags().StringVarP(&flags.testPrefix, "prefix", "p", "\t", "Current line, measured with its newline to size the titles")
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func commentContext(cmd *cobra.Command) (string, docContext) {
	doc := loadSource(flags.file, cmd.InOrStdin())
	ctx := newDocContext(doc, currentSettings())
	diagnose("class %q, test %t, version %q", ctx.className, ctx.isTest, ctx.version)
	return doc, ctx
}

func emitComment(cmd *cobra.Command, text string, err error, op string) {
	checkErr(err, op, "rendering comment")
	fmt.Fprintln(cmd.OutOrStdout(), text)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runCommentClass(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	emitComment(cmd, classHeaderComment(ctx), nil, "comment.class")
}

func preCommentMethod(cmd *cobra.Command, args []string) {
	if !flags.write {
		return
	}
	horus.CheckEmpty(
		flags.file,
		"",
		horus.WithMessage("`--file` is required with `--write`"),
		horus.WithExitCode(2),
		horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
	)
}

func runCommentMethod(cmd *cobra.Command, args []string) {
	doc, ctx := commentContext(cmd)

	edit, err := methodComment(doc, flags.line, ctx)
	checkErr(err, "comment.method", "rendering method comment")

	if !flags.write {
		fmt.Fprintln(cmd.OutOrStdout(), edit.text)
		return
	}

	updated, err := applyMethodEdit(doc, edit)
	checkErr(err, "comment.method", "applying method comment")
	checkErr(writeSource(flags.file, updated), "comment.method", "writing "+flags.file)
	diagnose("line %d of %s rewritten", edit.line, flags.file)
}

// applyMethodEdit replaces the edited line, or inserts the comment above it
func applyMethodEdit(doc string, edit methodEdit) (string, error) {
	ls, _, err := lineAt(doc, edit.line)
	if err != nil {
		return "", err
	}
	if edit.replace {
		return replaceSpan(doc, ls, edit.text), nil
	}
	return replaceSpan(doc, span{start: ls.start, end: ls.start}, edit.text+"\n"), nil
}

func runCommentInner(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	text, err := innerClass(flags.innerName, ctx)
	emitComment(cmd, text, err, "comment.inner")
}

func runCommentInnerComment(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	text, err := innerClassComment(flags.innerCommentName, ctx)
	emitComment(cmd, text, err, "comment.inner-comment")
}

func runCommentException(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	text, err := exceptionClass(flags.exceptionName, flags.exceptionParent, ctx)
	emitComment(cmd, text, err, "comment.exception")
}

func runCommentTest(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	s := currentSettings()
	text, err := testMethod(flags.testName, lineOffset(flags.testPrefix, s.tabSize), s, ctx)
	emitComment(cmd, text, err, "comment.test")
}

func runCommentVariable(cmd *cobra.Command, args []string) {
	_, ctx := commentContext(cmd)
	text, err := variableComment(ctx)
	emitComment(cmd, text, err, "comment.variable")
}

////////////////////////////////////////////////////////////////////////////////////////////////////
