////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	reHeader         = regexp.MustCompile(`(?m)^/\*\*([\s\S]*?)\*/`)
	reVersionTag     = regexp.MustCompile(`@Version-[0-9.]+`)
	reTrailingDigits = regexp.MustCompile(`\d+$`)
	reDigits         = regexp.MustCompile(`\d+`)
	reClassName      = regexp.MustCompile(` class (\w+)`)
	reConsoleVersion = regexp.MustCompile(`console\.log\('Version: \d+'\);`)
)

const testAnnotation = "@IsTest"

var (
	errNoHeader   = errors.New("no header comment")
	errNoVersion  = errors.New("no version tag in header")
	errBadVersion = errors.New("version tag does not end in a number")
	errLineRange  = errors.New("line out of range")
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// span is a half-open byte range of a document
type span struct {
	start, end int
}

func (s span) contains(o span) bool {
	return s.start <= o.start && o.end <= s.end
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// headerSpan locates the first /** ... */ block opening at a line start
func headerSpan(doc string) (span, bool) {
	loc := reHeader.FindStringIndex(doc)
	if loc == nil {
		return span{}, false
	}
	return span{start: loc[0], end: loc[1]}, true
}

// versionFrom returns the last version tag found in header
func versionFrom(header string) (string, error) {
	tags := reVersionTag.FindAllString(header, -1)
	if len(tags) == 0 {
		return "", errNoVersion
	}
	return tags[len(tags)-1], nil
}

// headerVersion returns the current version tag of the document header
func headerVersion(doc string) (string, error) {
	hs, ok := headerSpan(doc)
	if !ok {
		return "", errNoHeader
	}
	return versionFrom(doc[hs.start:hs.end])
}

// bumpVersion increments the trailing number of a version tag
func bumpVersion(tag string) (string, error) {
	last := reTrailingDigits.FindString(tag)
	if last == "" {
		return "", fmt.Errorf("%q: %w", tag, errBadVersion)
	}
	return strings.TrimSuffix(tag, last) + incrementDecimal(last), nil
}

func className(doc string) string {
	m := reClassName.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return m[1]
}

func isTestClass(doc string) bool {
	return strings.Contains(doc, testAnnotation)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// incrementConsoleVersions bumps every console.log('Version: N'); marker.
// returns the new document and the number of markers rewritten
func incrementConsoleVersions(doc string) (string, int) {
	count := 0
	out := reConsoleVersion.ReplaceAllStringFunc(doc, func(marker string) string {
		digits := reDigits.FindAllString(marker, -1)
		next := incrementDecimal(digits[len(digits)-1])
		count++
		return reDigits.ReplaceAllLiteralString(marker, next)
	})
	return out, count
}

// incrementDecimal adds one to a string of decimal digits of any length
func incrementDecimal(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return digits
	}
	return n.Add(n, big.NewInt(1)).String()
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// lineAt returns the byte span (newline excluded) and text of 1-based line n
func lineAt(doc string, n int) (span, string, error) {
	if n < 1 {
		return span{}, "", fmt.Errorf("line %d: %w", n, errLineRange)
	}
	start := 0
	for i := 1; i < n; i++ {
		idx := strings.IndexByte(doc[start:], '\n')
		if idx < 0 {
			return span{}, "", fmt.Errorf("line %d: %w", n, errLineRange)
		}
		start += idx + 1
	}
	end := len(doc)
	if idx := strings.IndexByte(doc[start:], '\n'); idx >= 0 {
		end = start + idx
	}
	return span{start: start, end: end}, doc[start:end], nil
}

// replaceSpan swaps the bytes covered by s for text
func replaceSpan(doc string, s span, text string) string {
	return doc[:s.start] + text + doc[s.end:]
}

////////////////////////////////////////////////////////////////////////////////////////////////////
