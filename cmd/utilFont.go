////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"olympos.io/encoding/edn"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	errGlyphKey  = errors.New("glyph key must be a single character")
	errGlyphRows = errors.New("glyph must have exactly 6 rows")
	errEmit      = errors.New("unsupported emit format")
)

const (
	emitText = "text"
	emitEDN  = "edn"
)

// fontFile is the on-disk layout of a glyph override file
//
//	[glyphs]
//	"@" = ["...", "...", "...", "...", "...", "..."]
type fontFile struct {
	Glyphs map[string][]string `toml:"glyphs"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// loadFont layers the glyphs declared in path over the default font.
// an empty path returns the default font untouched
func loadFont(path string) (font, error) {
	if path == "" {
		return defaultFont, nil
	}

	var ff fontFile
	if _, err := toml.DecodeFile(path, &ff); err != nil {
		return nil, fmt.Errorf("decoding font %s: %w", path, err)
	}

	overrides, err := parseGlyphs(ff.Glyphs)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return defaultFont.merge(overrides), nil
}

func parseGlyphs(raw map[string][]string) (map[rune]glyphRows, error) {
	out := make(map[rune]glyphRows, len(raw))
	for key, rows := range raw {
		upper := strings.ToUpper(key)
		if utf8.RuneCountInString(upper) != 1 {
			return nil, fmt.Errorf("%q: %w", key, errGlyphKey)
		}
		if len(rows) != glyphHeight {
			return nil, fmt.Errorf("%q has %d rows: %w", key, len(rows), errGlyphRows)
		}
		r, _ := utf8.DecodeRuneInString(upper)
		var g glyphRows
		copy(g[:], rows)
		out[r] = g
	}
	return out, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// emitLines serializes banner lines in the requested format
func emitLines(lines []string, format string) (string, error) {
	switch strings.ToLower(format) {
	case emitText, "":
		return strings.Join(lines, "\n"), nil
	case emitEDN:
		if lines == nil {
			lines = []string{}
		}
		bs, err := edn.Marshal(lines)
		if err != nil {
			return "", fmt.Errorf("encoding edn: %w", err)
		}
		return string(bs), nil
	default:
		return "", fmt.Errorf("%q: %w", format, errEmit)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
