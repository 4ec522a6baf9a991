package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2026, 10, 19, 9, 5, 3, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func testSettings() settings {
	return settings{
		author:     "Ada Lovelace",
		tabSize:    4,
		titleWidth: defaultTitleWidth,
		titleFill:  defaultTitleFill,
	}
}

func TestNewDocContext(t *testing.T) {
	fixedClock(t)
	c := newDocContext(accountDoc, testSettings())

	if c.className != "Account" || c.isTest {
		t.Errorf("context = %+v", c)
	}
	if c.version != "@Version-1.0.3" || c.versionErr != nil {
		t.Errorf("version = %q, %v", c.version, c.versionErr)
	}
	if c.date != "2026-10-19" || c.author != "Ada Lovelace" {
		t.Errorf("date/author = %q, %q", c.date, c.author)
	}
}

func TestClassHeaderComment(t *testing.T) {
	fixedClock(t)
	c := newDocContext("public class Foo {}\n", testSettings())

	got := classHeaderComment(c)
	wantHead := strings.Join([]string{
		"/**",
		" *  =========",
		" *     Foo   ",
		" *  =========",
		" *  @UnitTests",
		" *  \tFoo_test",
		" *  @Version-1.0.0",
		" *  \t@Date",
		" *  \t\t2026-10-19",
		" *  \t@Author",
		" *  \t\tAda Lovelace",
	}, "\n")

	if !strings.HasPrefix(got, wantHead) {
		t.Errorf("classHeaderComment() head =\n%s\nwant\n%s", got, wantHead)
	}
	if !strings.HasSuffix(got, "\n*/") {
		t.Errorf("classHeaderComment() not closed: %q", got)
	}
	if !strings.Contains(got, " *  \t\t@Foo\n *  \t\t\t@Variables") {
		t.Errorf("classHeaderComment() missing Added tree: %q", got)
	}
	if !strings.Contains(got, " *  \t\t\t@Methods\n *  \t\t\t\t@Public\n *  \t\t\t\t\t\t\t\n *  \t\t\t@Static") {
		t.Errorf("classHeaderComment() methods placeholder: %q", got)
	}
}

func TestClassHeaderComment_TestClass(t *testing.T) {
	fixedClock(t)
	c := newDocContext("@IsTest\nprivate class Foo_Test {}\n", testSettings())

	got := classHeaderComment(c)
	if strings.Contains(got, "@UnitTests") {
		t.Error("test classes should not list unit tests")
	}
	if !strings.Contains(got, " *  ==============\n *  @Version-1.0.0") {
		t.Errorf("classHeaderComment() = %q", got)
	}
}

func TestMethodComment_HeaderVersionLine(t *testing.T) {
	fixedClock(t)
	c := newDocContext(accountDoc, testSettings())

	edit, err := methodComment(accountDoc, 5, c)
	if err != nil {
		t.Fatalf("methodComment() error = %v", err)
	}
	if !edit.replace || edit.line != 5 {
		t.Errorf("edit = %+v, want replacement of line 5", edit)
	}
	if !strings.HasPrefix(edit.text, " *  @Version-1.0.4\n *  \t@Date\n *  \t\t2026-10-19\n") {
		t.Errorf("edit.text = %q", edit.text)
	}
	if !strings.Contains(edit.text, "\n *  \t@Changed\n *  \t\t@Account\n *  \t\t\t@Constructors") {
		t.Errorf("edit.text missing Changed tree: %q", edit.text)
	}
	if strings.Contains(edit.text, "\t\t\t\t\t\t\t") {
		t.Errorf("edit.text uses the class header placeholder: %q", edit.text)
	}
}

func TestMethodComment_InsideMethodComment(t *testing.T) {
	fixedClock(t)
	c := newDocContext(accountDoc, testSettings())

	edit, err := methodComment(accountDoc, 10, c)
	if err != nil {
		t.Fatalf("methodComment() error = %v", err)
	}
	if !edit.replace {
		t.Error("edit.replace = false, want true")
	}
	if edit.text != "\t *  @Version-1.0.3\n\t *  \t" {
		t.Errorf("edit.text = %q", edit.text)
	}
}

func TestMethodComment_OutsideComment(t *testing.T) {
	fixedClock(t)
	c := newDocContext(accountDoc, testSettings())

	edit, err := methodComment(accountDoc, 12, c)
	if err != nil {
		t.Fatalf("methodComment() error = %v", err)
	}
	want := strings.Join([]string{
		"/**",
		" *  @Version-1.0.3",
		" *  \t@Created",
		" *  \t@Throws",
		" *  \t\t@Exception",
		" *  \t\t\t@When",
		" *  \t\t\t\t",
		" *  \t@Sets",
		" *  \t\t",
		" *  \t@Returns",
		" *  \t\t",
		"*/",
	}, "\n")
	if edit.replace || edit.text != want {
		t.Errorf("edit = %+v, want insertion of\n%s", edit, want)
	}
}

func TestMethodComment_FirstLineIsClassHeader(t *testing.T) {
	fixedClock(t)
	doc := "public class Foo {}\n"
	c := newDocContext(doc, testSettings())

	edit, err := methodComment(doc, 1, c)
	if err != nil {
		t.Fatalf("methodComment() error = %v", err)
	}
	if edit.replace || edit.text != classHeaderComment(c) {
		t.Errorf("edit = %+v, want class header", edit)
	}
}

func TestMethodComment_Errors(t *testing.T) {
	fixedClock(t)
	doc := "public class Foo {\n\tvoid go() {}\n // *\n}\n"
	c := newDocContext(doc, testSettings())

	if _, err := methodComment(doc, 2, c); !errors.Is(err, errNoHeader) {
		t.Errorf("methodComment() error = %v, want %v", err, errNoHeader)
	}
	if _, err := methodComment(doc, 3, c); !errors.Is(err, errNoHeader) {
		t.Errorf("methodComment() error = %v, want %v", err, errNoHeader)
	}
	if _, err := methodComment(doc, 40, c); !errors.Is(err, errLineRange) {
		t.Errorf("methodComment() error = %v, want %v", err, errLineRange)
	}
}

func TestApplyMethodEdit(t *testing.T) {
	doc := "a\nb\nc\n"

	got, err := applyMethodEdit(doc, methodEdit{replace: true, line: 2, text: "B1\nB2"})
	if err != nil {
		t.Fatalf("applyMethodEdit() error = %v", err)
	}
	if got != "a\nB1\nB2\nc\n" {
		t.Errorf("applyMethodEdit() replace = %q", got)
	}

	got, err = applyMethodEdit(doc, methodEdit{line: 3, text: "/**\n*/"})
	if err != nil {
		t.Fatalf("applyMethodEdit() error = %v", err)
	}
	if got != "a\nb\n/**\n*/\nc\n" {
		t.Errorf("applyMethodEdit() insert = %q", got)
	}
}

func TestInnerClassComment(t *testing.T) {
	c := newDocContext(accountDoc, testSettings())

	got, err := innerClassComment("Row", c)
	if err != nil {
		t.Fatalf("innerClassComment() error = %v", err)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "/**" || lines[len(lines)-1] != "*/" {
		t.Errorf("innerClassComment() framing = %q", got)
	}
	if lines[1] != " *  =========" || lines[2] != " *     Row" || lines[4] != " *  @Version-1.0.3" {
		t.Errorf("innerClassComment() head = %q", lines[:5])
	}
	if !strings.Contains(got, " *  \t\t@Account\n *  \t\t\t@Row\n") {
		t.Errorf("innerClassComment() = %q", got)
	}
	if !strings.Contains(got, " *  \t\t\t\t\t\tRow()\n") {
		t.Errorf("innerClassComment() missing constructor: %q", got)
	}
}

func TestInnerClass(t *testing.T) {
	c := newDocContext(accountDoc, testSettings())

	got, err := innerClass("Row", c)
	if err != nil {
		t.Fatalf("innerClass() error = %v", err)
	}
	if !strings.HasPrefix(got, "public with sharing class Row {\n\t/**\n\t *  =========\n") {
		t.Errorf("innerClass() = %q", got)
	}
	if !strings.HasSuffix(got, "\t*/\n}\n") {
		t.Errorf("innerClass() tail = %q", got)
	}
}

func TestExceptionClass(t *testing.T) {
	c := newDocContext(accountDoc, testSettings())

	got, err := exceptionClass("Query", "Base", c)
	if err != nil {
		t.Fatalf("exceptionClass() error = %v", err)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "public virtual with sharing class QueryBaseException extends BaseException {" {
		t.Errorf("declaration = %q", lines[0])
	}
	if lines[2] != "\t *  ====================" {
		t.Errorf("border = %q", lines[2])
	}
	if lines[3] != "\t *     QueryException" {
		t.Errorf("name = %q", lines[3])
	}
	if lines[6] != "\t *  \t@Creatd" {
		t.Errorf("created tag = %q", lines[6])
	}
	if !strings.Contains(got, "\t *  \t\t\t@QueryBaseException\n\t *  \t\t\t\t@Extends\n\t *  \t\t\t\t\t@BaseException\n") {
		t.Errorf("exceptionClass() = %q", got)
	}
}

func TestTestMethod(t *testing.T) {
	doc := "/**\n *  @Version-2.1.0\n*/\n@IsTest\nprivate class Account_Test {\n}\n"
	c := newDocContext(doc, testSettings())

	got, err := testMethod("Insert", 4, testSettings(), c)
	if err != nil {
		t.Fatalf("testMethod() error = %v", err)
	}
	if !strings.HasPrefix(got, "@IsTest\npublic static void testInsert() {\n\t/**\n\t *  @Version-2.1.0\n") {
		t.Errorf("testMethod() head = %q", got)
	}
	if !strings.Contains(got, "\t *  \t\t@Account\n\t *  \t\t\t@Insert\n") {
		t.Errorf("testMethod() should strip the _Test suffix: %q", got)
	}
	start := sectionTitle("Start Test", 4, defaultTitleWidth, defaultTitleFill)
	stop := sectionTitle("Stop Test", 4, defaultTitleWidth, defaultTitleFill)
	body := "\t" + start + "\n\tTest.startTest();\n\t\n\t\n\tTest.stopTest();\n\t" + stop + "\n}"
	if !strings.HasSuffix(got, body) {
		t.Errorf("testMethod() tail = %q, want suffix %q", got, body)
	}
}

func TestVariableComment(t *testing.T) {
	c := newDocContext(accountDoc, testSettings())
	got, err := variableComment(c)
	if err != nil || got != "// @Version-1.0.3" {
		t.Errorf("variableComment() = %q, %v", got, err)
	}
}

func TestTemplates_RequireVersion(t *testing.T) {
	c := newDocContext("public class Foo {}\n", testSettings())

	if _, err := variableComment(c); !errors.Is(err, errNoHeader) {
		t.Errorf("variableComment() error = %v, want %v", err, errNoHeader)
	}
	if _, err := innerClass("Row", c); !errors.Is(err, errNoHeader) {
		t.Errorf("innerClass() error = %v, want %v", err, errNoHeader)
	}
	if _, err := exceptionClass("Q", "", c); !errors.Is(err, errNoHeader) {
		t.Errorf("exceptionClass() error = %v, want %v", err, errNoHeader)
	}
	if _, err := testMethod("X", 0, testSettings(), c); !errors.Is(err, errNoHeader) {
		t.Errorf("testMethod() error = %v, want %v", err, errNoHeader)
	}
}

func TestStamps(t *testing.T) {
	fixedClock(t)
	if got := today(); got != "2026-10-19" {
		t.Errorf("today() = %q", got)
	}
	if got := clockTime(); got != "09:05:03 UTC" {
		t.Errorf("clockTime() = %q", got)
	}
}
