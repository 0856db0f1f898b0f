package patchdiff

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(patch Patch, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, patch, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per operation. if
// colorTTY is true it will add
// green "+" for adds
// red "-" for removes
// blue "~" for replaces
func FormatPretty(w io.Writer, patch Patch, colorTTY bool) error {
	for _, op := range patch {
		line, err := formatOperation(op)
		if err != nil {
			return err
		}
		if colorTTY {
			line = opColor(op.Op).Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatOperation(op Operation) (string, error) {
	path := op.Path
	if path == "" {
		path = `""`
	}

	switch op.Op {
	case OpAdd, OpReplace, OpTest:
		data, err := op.Value.MarshalJSON()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s: %s", opSymbol(op.Op), path, data), nil
	case OpMove, OpCopy:
		return fmt.Sprintf("%s %s: %s", opSymbol(op.Op), path, op.From), nil
	default:
		return fmt.Sprintf("%s %s", opSymbol(op.Op), path), nil
	}
}

func opSymbol(op OpType) string {
	switch op {
	case OpAdd:
		return "+"
	case OpRemove:
		return "-"
	case OpReplace:
		return "~"
	case OpMove:
		return ">"
	case OpCopy:
		return "="
	default:
		return "?"
	}
}

func opColor(op OpType) *color.Color {
	var c *color.Color
	switch op {
	case OpAdd:
		c = color.New(color.FgGreen)
	case OpRemove:
		c = color.New(color.FgRed)
	case OpReplace:
		c = color.New(color.FgBlue)
	default:
		c = color.New(color.FgWhite)
	}
	c.EnableColor()
	return c
}

// ShouldColor reports whether w is a terminal that should get colored output.
// Setting the NO_COLOR environment variable always disables color
func ShouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, useColor bool) string {
	if ds == nil {
		return "<nil>"
	}

	paint := func(attr color.Attribute, format string, args ...interface{}) string {
		if !useColor {
			return fmt.Sprintf(format, args...)
		}
		c := color.New(attr)
		c.EnableColor()
		return c.Sprintf(format, args...)
	}

	buf := &bytes.Buffer{}

	elsColor := color.FgGreen
	change := ds.NodeChange()
	elementsWord := "elements"
	sign := "+"
	if change < 0 {
		elsColor = color.FgRed
		sign = ""
	} else if change == 0 {
		elsColor = color.FgWhite
		sign = ""
	}
	if change == 1 || change == -1 {
		elementsWord = "element"
	}
	buf.WriteString(paint(elsColor, "%s%d", sign, change))
	buf.WriteString(" " + elementsWord + ".")

	buf.WriteString(" " + paint(color.FgGreen, "%d %s.", ds.Adds, plural(ds.Adds, "add", "adds")))
	buf.WriteString(" " + paint(color.FgRed, "%d %s.", ds.Removes, plural(ds.Removes, "remove", "removes")))
	buf.WriteString(" " + paint(color.FgBlue, "%d %s.", ds.Replaces, plural(ds.Replaces, "replace", "replaces")))
	buf.WriteRune('\n')

	return buf.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
