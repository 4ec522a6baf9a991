////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"

	"github.com/DanielRivasMD/domovoi"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var helpRoot = domovoi.FormatHelp(
	"Daniel Rivas",
	"danielrivasmd@gmail.com",
	"Comment banners, titles, stamps & version tags for source files",
)

var helpBanner = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Render text as an ANSI Shadow block-art comment",
)

var helpGlyphs = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"List the characters a banner can render",
)

var helpDate = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Print today's date",
)

var helpTime = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Print the current time",
)

var helpTitle = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Wrap text as a padded section title comment",
)

var helpVersion = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Read or bump the version tag of a header comment",
)

var helpIncrement = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Increment console.log version markers in place",
)

var helpComment = domovoi.FormatHelp(
	"Daniel Rivas",
	"<danielrivasmd@gmail.com>",
	"Generate class, method & test comment templates",
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// formatExample renders one colored usage line per invocation
func formatExample(lines ...string) string {
	var out []string
	for _, l := range lines {
		fields := strings.SplitN(l, " ", 2)
		line := chalk.Cyan.Color("scribe") + " " + fields[0]
		if len(fields) > 1 {
			line += " " + chalk.Yellow.Color(fields[1])
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

var exampleRoot = formatExample(
	"help banner",
	"help comment",
)

var exampleBanner = formatExample(
	"banner hello world",
	"banner --emit edn v1.0",
	"banner --font ~/.scribe/font.toml @home",
)

var exampleGlyphs = formatExample(
	"glyphs",
	"glyphs --render",
)

var exampleDate = formatExample("date")

var exampleTime = formatExample("time")

var exampleTitle = formatExample(
	"title Setup",
	"title --offset 8 Teardown",
)

var exampleVersion = formatExample(
	"version Account.cls",
	"version --bump --file Account.cls",
)

var exampleIncrement = formatExample(
	"increment src/",
	"increment --dry-run app.js",
)

var exampleComment = formatExample(
	"comment class --file Account.cls",
	"comment method --file Account.cls --line 42 --write",
	"comment test --file Account_Test.cls --name Insert",
)

////////////////////////////////////////////////////////////////////////////////////////////////////
