////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"
	"unicode/utf8"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// sectionTitle centers title between two fill bars so the line ends near width,
// counting offset runes already taken on the line
func sectionTitle(title string, offset, width int, fill string) string {
	fillWidth := width - offset
	if title != "" {
		fillWidth = (fillWidth - utf8.RuneCountInString(title) - 7) / 2
	}
	if fillWidth < 0 {
		fillWidth = 0
	}
	bar := strings.Repeat(fill, fillWidth)
	return "// " + bar + "  " + title + "  " + bar
}

func expandTabs(text string, tabSize int) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabSize))
}

// titleOffset measures the text preceding a title on its line
func titleOffset(prefix string, tabSize int) int {
	return utf8.RuneCountInString(expandTabs(prefix, tabSize))
}

// lineOffset measures prefix as a whole line, trailing newline included
func lineOffset(prefix string, tabSize int) int {
	return titleOffset(prefix+"\n", tabSize)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
