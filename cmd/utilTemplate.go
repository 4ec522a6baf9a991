////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"strings"
	"unicode/utf8"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	initialVersion   = "@Version-1.0.0"
	commentDelimiter = "\n *  "
	commentClose     = "\n*/"
	testSuffix       = "_Test"
)

const descriptionComment = "@Description\n*  \t"

// placeholders under @Methods/@Public
const (
	memberSlot       = "\t\t\t\t\t"
	headerMethodSlot = "\t\t\t\t\t\t\t"
)

// docContext carries what the templates read from the surrounding document
type docContext struct {
	className  string
	isTest     bool
	version    string
	versionErr error
	author     string
	date       string
}

func newDocContext(doc string, s settings) docContext {
	version, err := headerVersion(doc)
	return docContext{
		className:  className(doc),
		isTest:     isTestClass(doc),
		version:    version,
		versionErr: err,
		author:     s.author,
		date:       today(),
	}
}

func (c docContext) currentVersion() (string, error) {
	return c.version, c.versionErr
}

// methodEdit describes how a method comment lands in the document
type methodEdit struct {
	// replace marks text as a substitute for the whole line, otherwise it is inserted at the line
	replace bool
	line    int
	text    string
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func equalsBar(name string) string {
	return strings.Repeat("=", utf8.RuneCountInString(name))
}

// memberTree lists the member sections of a revision tree. methodSlot is the
// placeholder line under @Methods/@Public, which class headers indent deeper
func memberTree(withVariables bool, methodSlot string) []string {
	var out []string
	if withVariables {
		out = append(out,
			"\t\t\t@Variables",
			"\t\t\t\t@Private",
			"\t\t\t\t\t",
		)
	}
	return append(out,
		"\t\t\t@Constructors",
		"\t\t\t\t@Public",
		"\t\t\t\t\t",
		"\t\t\t@Methods",
		"\t\t\t\t@Public",
		methodSlot,
		"\t\t\t@Static",
		"\t\t\t\t@Methods",
		"\t\t\t\t\t@Public",
		"\t\t\t\t\t\t",
		"\t\t\t@InnerClass",
		"\t\t\t\t@Constructors",
		"\t\t\t\t\t@Public",
		"\t\t\t\t\t\t",
		"\t\t\t\t@Methods",
		"\t\t\t\t\t@Public",
		"\t\t\t\t\t\t",
	)
}

// revisionLines is the date/author block followed by the Added tree
func revisionLines(c docContext, methodSlot string) []string {
	lines := []string{
		"\t@Date",
		"\t\t" + c.date,
		"\t@Author",
		"\t\t" + c.author,
		"\t@Created",
		"\t@Description",
		"\t@Added",
		"\t\t@" + c.className,
	}
	return append(lines, memberTree(true, methodSlot)...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// classHeaderComment opens a new class file
func classHeaderComment(c docContext) string {
	border := strings.Repeat("=", utf8.RuneCountInString(c.className)+6)

	tests := ""
	if !c.isTest {
		tests = strings.Join([]string{
			"",
			"@UnitTests",
			"\t" + c.className + "_test",
		}, commentDelimiter)
	}

	lines := []string{
		"/**",
		border,
		"   " + c.className + "   ",
		border + tests,
		initialVersion,
	}
	lines = append(lines, revisionLines(c, headerMethodSlot)...)
	return strings.Join(lines, commentDelimiter) + commentClose
}

// methodComment picks the comment for line n from its context:
// inside a comment the version line is rewritten (bumped within the header),
// on the first line a class header is produced, elsewhere a method comment
func methodComment(doc string, n int, c docContext) (methodEdit, error) {
	ls, text, err := lineAt(doc, n)
	if err != nil {
		return methodEdit{}, err
	}

	if star := strings.LastIndex(text, "*"); star >= 0 {
		delimiter := "\n" + text[:star] + "*  "

		hs, ok := headerSpan(doc)
		if !ok {
			return methodEdit{}, errNoHeader
		}
		version, err := versionFrom(doc[hs.start:hs.end])
		if err != nil {
			return methodEdit{}, err
		}

		footer := "\t"
		if hs.contains(ls) {
			version, err = bumpVersion(version)
			if err != nil {
				return methodEdit{}, err
			}
			changed := append([]string{"\t@Changed", "\t\t@" + c.className}, memberTree(false, memberSlot)...)
			footer = strings.Join(append(revisionLines(c, memberSlot), changed...), delimiter)
		}

		head := text[:strings.Index(text, "*")] + "*  " + version
		return methodEdit{replace: true, line: n, text: head + delimiter + footer}, nil
	}

	if n == 1 {
		return methodEdit{line: n, text: classHeaderComment(c)}, nil
	}

	version, err := c.currentVersion()
	if err != nil {
		return methodEdit{}, err
	}
	lines := []string{
		"/**",
		version,
		"\t@Created",
		"\t@Throws",
		"\t\t@Exception",
		"\t\t\t@When",
		"\t\t\t\t",
		"\t@Sets",
		"\t\t",
		"\t@Returns",
		"\t\t",
	}
	return methodEdit{line: n, text: strings.Join(lines, commentDelimiter) + commentClose}, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func innerClassCommentLines(name, version, outer string) []string {
	return []string{
		"/**",
		" *  ===" + equalsBar(name) + "===",
		" *     " + name,
		" *  ===" + equalsBar(name) + "===",
		" *  " + version,
		" *  \t@Created",
		" *  \t@Description",
		" *  \t@Added",
		" *  \t\t@" + outer,
		" *  \t\t\t@" + name,
		" *  \t\t\t\t@Variables",
		" *  \t\t\t\t\t@Private",
		" *  \t\t\t\t\t\t",
		" *  \t\t\t\t@Constructors",
		" *  \t\t\t\t\t@Public",
		" *  \t\t\t\t\t\t" + name + "()",
		" *  \t\t\t\t@Methods",
		" *  \t\t\t\t\t@Public",
		" *  \t\t\t\t\t\t",
		"*/",
	}
}

func innerClassComment(name string, c docContext) (string, error) {
	version, err := c.currentVersion()
	if err != nil {
		return "", err
	}
	return strings.Join(innerClassCommentLines(name, version, c.className), "\n"), nil
}

// innerClass wraps the inner class comment in a class skeleton, indented one level
func innerClass(name string, c docContext) (string, error) {
	version, err := c.currentVersion()
	if err != nil {
		return "", err
	}

	lines := []string{"public with sharing class " + name + " {"}
	for _, l := range innerClassCommentLines(name, version, c.className) {
		lines = append(lines, "\t"+l)
	}
	lines = append(lines, "}", "")
	return strings.Join(lines, "\n"), nil
}

func exceptionClass(name, parent string, c docContext) (string, error) {
	version, err := c.currentVersion()
	if err != nil {
		return "", err
	}

	lines := []string{
		"public virtual with sharing class " + name + parent + "Exception extends " + parent + "Exception {",
		"\t/**",
		"\t *  ===" + equalsBar(name) + "============",
		"\t *     " + name + "Exception",
		"\t *  ===" + equalsBar(name) + "============",
		"\t *  " + version,
		"\t *  \t@Creatd",
		"\t *  \t@Added",
		"\t *  \t\t@" + c.className,
		"\t *  \t\t\t@" + name + parent + "Exception",
		"\t *  \t\t\t\t@Extends",
		"\t *  \t\t\t\t\t@" + parent + "Exception",
		"\t*/",
		"}",
		"",
	}
	return strings.Join(lines, "\n"), nil
}

// testMethod builds an @IsTest method; offset sizes the start/stop titles
func testMethod(name string, offset int, s settings, c docContext) (string, error) {
	version, err := c.currentVersion()
	if err != nil {
		return "", err
	}
	subject := strings.TrimSuffix(c.className, testSuffix)

	body := []string{
		"/**",
		" *  " + version,
		" *  \t@Created",
		" *  \t@Description",
		" *  \t@Added",
		" *  \t\t@" + subject,
		" *  \t\t\t@" + name,
		" *  \t\t\t\t@Constructors",
		" *  \t\t\t\t\t",
		" *  \t\t\t\t@Methods",
		" *  \t\t\t\t\t",
		"*/",
		"// Data",
		"",
		sectionTitle("Start Test", offset, s.titleWidth, s.titleFill),
		"Test.startTest();",
		"",
		"",
		"Test.stopTest();",
		sectionTitle("Stop Test", offset, s.titleWidth, s.titleFill),
	}

	return strings.Join([]string{
		"@IsTest",
		"public static void test" + name + "() {",
		"\t" + strings.Join(body, "\n\t"),
		"}",
	}, "\n"), nil
}

func variableComment(c docContext) (string, error) {
	version, err := c.currentVersion()
	if err != nil {
		return "", err
	}
	return "// " + version, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
