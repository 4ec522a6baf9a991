package cmd

import (
	"strings"
	"testing"
)

func TestSectionTitle(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		offset int
		width  int
		fill   string
		want   string
	}{
		{
			name:  "centered",
			title: "Setup",
			width: 110,
			fill:  "-",
			want:  "// " + strings.Repeat("-", 49) + "  Setup  " + strings.Repeat("-", 49),
		},
		{
			name:   "offset shrinks bars",
			title:  "Setup",
			offset: 8,
			width:  110,
			fill:   "-",
			want:   "// " + strings.Repeat("-", 45) + "  Setup  " + strings.Repeat("-", 45),
		},
		{
			name:  "empty title fills the width",
			width: 10,
			fill:  "=",
			want:  "// " + strings.Repeat("=", 10) + "    " + strings.Repeat("=", 10),
		},
		{
			name:  "too narrow",
			title: "Overflowing title",
			width: 12,
			fill:  "-",
			want:  "//   Overflowing title  ",
		},
		{
			name:  "runes not bytes",
			title: "Ñandú",
			width: 21,
			fill:  "*",
			want:  "// " + strings.Repeat("*", 4) + "  Ñandú  " + strings.Repeat("*", 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionTitle(tt.title, tt.offset, tt.width, tt.fill)
			if got != tt.want {
				t.Errorf("sectionTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleOffset(t *testing.T) {
	if got := titleOffset("\t\tx = ", 4); got != 12 {
		t.Errorf("titleOffset() = %d, want 12", got)
	}
	if got := titleOffset("", 4); got != 0 {
		t.Errorf("titleOffset(\"\") = %d, want 0", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := expandTabs("\ta\t", 2); got != "  a  " {
		t.Errorf("expandTabs() = %q", got)
	}
}

func TestLineOffset(t *testing.T) {
	if got := lineOffset("\t", 4); got != 5 {
		t.Errorf("lineOffset(tab) = %d, want 5", got)
	}
	if got := lineOffset("", 4); got != 1 {
		t.Errorf("lineOffset(\"\") = %d, want 1", got)
	}
}
