////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const glyphHeight = 6

const (
	bannerOpen  = "/*"
	bannerClose = "*/"
)


// glyphRows holds the block-art rows of one character, top to bottom
type glyphRows [glyphHeight]string

// font maps an uppercase rune to its glyph. never written after construction
type font map[rune]glyphRows

////////////////////////////////////////////////////////////////////////////////////////////////////

// bannerLines renders title as a banner framed by comment delimiters.
// runes missing from the font are skipped, every row is emitted even when empty
func (f font) bannerLines(title string) []string {
	upper := upperTitle(title)

	lines := make([]string, 0, glyphHeight+2)
	lines = append(lines, bannerOpen)
	for row := 0; row < glyphHeight; row++ {
		var line strings.Builder
		for _, r := range upper {
			g, ok := f[r]
			if !ok {
				continue
			}
			line.WriteString(g[row])
		}
		lines = append(lines, line.String())
	}
	lines = append(lines, bannerClose)
	return lines
}

// upperTitle applies full case mapping, so ß widens to SS.
// casers carry state, one per call
func upperTitle(title string) string {
	return cases.Upper(language.Und).String(title)
}

func (f font) formatBanner(title string) string {
	return strings.Join(f.bannerLines(title), "\n")
}

// bannerBlock concatenates the banners of several titles, ignoring empty ones.
// when nothing is left, the empty banner is still framed
func (f font) bannerBlock(titles []string) []string {
	var out []string
	for _, title := range titles {
		if title == "" {
			continue
		}
		out = append(out, f.bannerLines(title)...)
	}
	if len(out) == 0 {
		return f.bannerLines("")
	}
	return out
}

// merge returns a new font with overrides layered on top of f
func (f font) merge(overrides map[rune]glyphRows) font {
	out := make(font, len(f)+len(overrides))
	for r, g := range f {
		out[r] = g
	}
	for r, g := range overrides {
		out[r] = g
	}
	return out
}

// runes lists the supported characters in code point order
func (f font) runes() []rune {
	out := make([]rune, 0, len(f))
	for r := range f {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// width is the widest row of the glyph, in runes
func (g glyphRows) width() int {
	w := 0
	for _, row := range g {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func renderBanner(title string) []string {
	return defaultFont.bannerLines(title)
}

func formatBanner(title string) string {
	return defaultFont.formatBanner(title)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// ANSI Shadow, see https://github.com/patorjk/figlet-cli
// '&' reuses the '/' glyph
var defaultFont = font{
	'A': {
		" █████╗ ",
		"██╔══██╗",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'B': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██████╔╝",
		"╚═════╝ ",
	},
	'C': {
		" █████╗",
		"██╔═══╝",
		"██║    ",
		"██║    ",
		"╚█████╗",
		" ╚════╝",
	},
	'D': {
		"█████╗ ",
		"██╔═██╗",
		"██║ ██║",
		"██║ ██║",
		"█████╔╝",
		"╚════╝ ",
	},
	'E': {
		"██████╗",
		"██╔═══╝",
		"████╗  ",
		"██╔═╝  ",
		"██████╗",
		"╚═════╝",
	},
	'F': {
		"██████╗",
		"██╔═══╝",
		"████╗  ",
		"██╔═╝  ",
		"██║    ",
		"╚═╝    ",
	},
	'G': {
		" █████╗ ",
		"██╔═══╝ ",
		"██║ ███╗",
		"██║  ██║",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'H': {
		"██╗ ██╗",
		"██║ ██║",
		"██████║",
		"██╔═██║",
		"██║ ██║",
		"╚═╝ ╚═╝",
	},
	'I': {
		"██╗",
		"██║",
		"██║",
		"██║",
		"██║",
		"╚═╝",
	},
	'J': {
		"    ██╗",
		"    ██║",
		"    ██║",
		"██  ██║",
		"╚████╔╝",
		" ╚═══╝ ",
	},
	'K': {
		"██╗  ██╗",
		"██║ ██╔╝",
		"█████╔╝ ",
		"██╔═██╗ ",
		"██║  ██╗",
		"╚═╝  ╚═╝",
	},
	'L': {
		"██╗    ",
		"██║    ",
		"██║    ",
		"██║    ",
		"██████╗",
		"╚═════╝",
	},
	'M': {
		"███╗   ███╗",
		"████╗ ████║",
		"██╔████╔██║",
		"██║╚██╔╝██║",
		"██║ ╚═╝ ██║",
		"╚═╝     ╚═╝",
	},
	'N': {
		"███╗   ██╗",
		"████╗  ██║",
		"██╔██╗ ██║",
		"██║╚██╗██║",
		"██║ ╚████║",
		"╚═╝  ╚═══╝",
	},
	'O': {
		" █████╗ ",
		"██╔══██╗",
		"██║  ██║",
		"██║  ██║",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'P': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔═══╝ ",
		"██║     ",
		"╚═╝     ",
	},
	'Q': {
		" █████╗  ",
		"██╔═══██╗",
		"██║   ██║",
		"██║▄▄ ██║",
		"╚██████╔╝",
		" ╚══▀▀═╝ ",
	},
	'R': {
		"█████╗ ",
		"██╔═██╗",
		"█████╔╝",
		"██╔═██╗",
		"██║ ██║",
		"╚═╝ ╚═╝",
	},
	'S': {
		"██████╗",
		"██╔═══╝",
		"██████╗",
		"╚═══██║",
		"██████║",
		"╚═════╝",
	},
	'T': {
		"██████╗",
		"╚═██╔═╝",
		"  ██║  ",
		"  ██║  ",
		"  ██║  ",
		"  ╚═╝  ",
	},
	'U': {
		"██╗  ██╗",
		"██║  ██║",
		"██║  ██║",
		"██║  ██║",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'V': {
		"██╗  ██╗",
		"██║  ██║",
		"██║  ██║",
		"╚██╗██╔╝",
		" ╚███╔╝ ",
		"  ╚══╝  ",
	},
	'W': {
		"██╗    ██╗",
		"██║    ██║",
		"██║ █╗ ██║",
		"██║███╗██║",
		"╚███╔███╔╝",
		" ╚══╝╚══╝ ",
	},
	'X': {
		"██╗  ██╗",
		"╚██╗██╔╝",
		" ╚███╔╝ ",
		" ██╔██╗ ",
		"██╔╝ ██╗",
		"╚═╝  ╚═╝",
	},
	'Y': {
		"██╗   ██╗",
		"╚██╗ ██╔╝",
		" ╚████╔╝ ",
		"  ╚██╔╝  ",
		"   ██║   ",
		"   ╚═╝   ",
	},
	'Z': {
		"██████╗",
		"╚══██╔╝",
		"  ██╔╝ ",
		" ██╔╝  ",
		"██████╗",
		"╚═════╝",
	},
	'0': {
		" █████╗ ",
		"██╔═███╗",
		"██║██╔█║",
		"████╔╝█║",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'1': {
		" ██╗",
		"███║",
		"╚██║",
		" ██║",
		" ██║",
		" ╚═╝",
	},
	'2': {
		"█████╗ ",
		"╚═══██╗",
		" ████╔╝",
		"██═══╝ ",
		"██████╗",
		"╚═════╝",
	},
	'3': {
		"█████╗ ",
		"╚═══██╗",
		" ████╔╝",
		" ╚══██╗",
		"█████╔╝",
		"╚════╝ ",
	},
	'4': {
		"██╗ ██╗",
		"██║ ██║",
		"██████║",
		"╚═══██║",
		"    ██║",
		"    ╚═╝",
	},
	'5': {
		"██████╗",
		"██╔═══╝",
		"██████╗",
		"╚═══██║",
		"██████║",
		"╚═════╝",
	},
	'6': {
		" █████╗ ",
		"██╔═══╝ ",
		"██████╗ ",
		"██╔══██╗",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'7': {
		"██████╗",
		"╚═══██║",
		"   ██╔╝",
		"  ██╔╝ ",
		"  ██║  ",
		"  ╚═╝  ",
	},
	'8': {
		" █████╗ ",
		"██╔══██╗",
		"╚█████╔╝",
		"██╔══██╗",
		"╚█████╔╝",
		" ╚════╝ ",
	},
	'9': {
		" █████╗ ",
		"██╔══██╗",
		"╚██████║",
		" ╚═══██║",
		" █████╔╝",
		" ╚════╝ ",
	},
	' ': {
		"  ",
		"  ",
		"  ",
		"  ",
		"  ",
		"  ",
	},
	'-': {
		"      ",
		"      ",
		"█████╗",
		"╚════╝",
		"      ",
		"      ",
	},
	'/': {
		"    █╗",
		"   █╔╝",
		"  █╔╝ ",
		" █╔╝  ",
		"█╔╝   ",
		"═╝    ",
	},
	'&': {
		"    █╗",
		"   █╔╝",
		"  █╔╝ ",
		" █╔╝  ",
		"█╔╝   ",
		"═╝    ",
	},
	'_': {
		"       ",
		"       ",
		"       ",
		"       ",
		"██████╗",
		"╚═════╝",
	},
	'.': {
		"   ",
		"   ",
		"   ",
		"   ",
		"██╗",
		"╚═╝",
	},
}

////////////////////////////////////////////////////////////////////////////////////////////////////
