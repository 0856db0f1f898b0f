package patchdiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatPretty(t *testing.T) {
	patch := Patch{
		{Op: OpAdd, Path: "/a", Value: Number("5")},
		{Op: OpReplace, Path: "/b", Value: String("x")},
		{Op: OpRemove, Path: "/c/0"},
		{Op: OpMove, From: "/d", Path: "/e"},
		{Op: OpReplace, Path: "", Value: Null()},
	}
	expect := `+ /a: 5
~ /b: "x"
- /c/0
> /e: /d
~ "": null
`

	got, err := FormatPrettyString(patch, false)
	if err != nil {
		t.Fatal(err)
	}
	if expect != got {
		t.Errorf("result mismatch.\nwant:\n%s\ngot:\n%s", expect, got)
	}

	colored, err := FormatPrettyString(patch, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored, "\x1b[32m+ /a: 5") {
		t.Errorf("expected green add line, got: %q", colored)
	}
	if !strings.Contains(colored, "\x1b[31m- /c/0") {
		t.Errorf("expected red remove line, got: %q", colored)
	}

	empty, err := FormatPrettyString(nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if empty != "" {
		t.Errorf("expected empty output for an empty patch, got: %q", empty)
	}
}

func TestShouldColor(t *testing.T) {
	if ShouldColor(&bytes.Buffer{}) {
		t.Error("buffers should never get color")
	}
	t.Setenv("NO_COLOR", "1")
	if ShouldColor(nil) {
		t.Error("NO_COLOR should disable color")
	}
}

func TestFormatPrettyStats(t *testing.T) {
	cases := []struct {
		stats  *Stats
		expect string
	}{
		{nil, "<nil>"},
		{&Stats{Left: 2, Right: 6, Adds: 6, Replaces: 2, Removes: 2}, "+4 elements. 6 adds. 2 removes. 2 replaces.\n"},
		{&Stats{Left: 2, Right: 1, Adds: 1, Replaces: 1, Removes: 1}, "-1 element. 1 add. 1 remove. 1 replace.\n"},
		{&Stats{Left: 3, Right: 3}, "0 elements. 0 adds. 0 removes. 0 replaces.\n"},
	}

	for i, c := range cases {
		if got := FormatPrettyStats(c.stats); c.expect != got {
			t.Errorf("case %d result mismatch.\nwant: %q\ngot:  %q", i, c.expect, got)
		}
	}

	colored := FormatPrettyStatsColor(&Stats{Left: 1, Right: 2, Adds: 1})
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected ANSI escapes, got: %q", colored)
	}
	if got := FormatPrettyStatsColor(nil); got != "<nil>" {
		t.Errorf("expected <nil>, got: %q", got)
	}
}
