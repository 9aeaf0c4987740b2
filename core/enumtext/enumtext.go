/*
Package enumtext renders icon lists as enum definitions.

Every icon becomes one line, with names, values and comments aligned in
columns:

	    Home          = 0xf015, // supported styles: solid
	    House         = Home,   // supported styles: solid
	 // Github        - <unsupported>, supported styles: brands

The output is meant to be pasted, or redirected by a build step, into the
body of an enum declaration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package enumtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}

// Unsupported marks icons which have no value for the selected style.
const Unsupported = "<unsupported>"

// ErrEmptyList is returned when rendering an icon list without icons.
var ErrEmptyList = core.Error(core.EINVALID, "icon list is empty")

// columns holds the widths of the name and value columns.
type columns struct {
	name  int // longest name
	value int // longest value, plus room for the trailing comma
}

func measure(icons iconlist.List) columns {
	var c columns
	for _, icon := range icons {
		c.name = max(c.name, utf8.RuneCountInString(icon.Name))
		c.value = max(c.value, utf8.RuneCountInString(icon.Value.Unwrap()))
	}
	c.value++
	return c
}

// pad left-justifies s in a field of width characters.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func (c columns) line(icon iconlist.Icon) string {
	value, supported := icon.Value.Get()
	comment := icon.Comment.Unwrap()
	name := pad(icon.Name, c.name)
	switch {
	case supported && !icon.Comment.IsBlank():
		return fmt.Sprintf("    %s = %s // %s", name, pad(value+",", c.value), comment)
	case supported:
		return fmt.Sprintf("    %s = %s,", name, value)
	case !icon.Comment.IsBlank():
		return fmt.Sprintf(" // %s - %s %s", name, pad(Unsupported+",", c.value+3), comment)
	}
	return fmt.Sprintf(" // %s - %s", name, Unsupported)
}

// Render formats icons as aligned enum definitions, one line per icon.
// Icons with a value become assignments, icons without one become comment
// lines. Empty comments are treated like missing ones.
func Render(icons iconlist.List) ([]string, error) {
	if len(icons) == 0 {
		return nil, ErrEmptyList
	}
	c := measure(icons)
	tracer().Debugf("rendering %d icons, column widths %d/%d", len(icons), c.name, c.value)
	lines := make([]string, len(icons))
	for i, icon := range icons {
		lines[i] = c.line(icon)
	}
	return lines, nil
}

// Write renders icons to w, terminating every line with a newline.
func Write(w io.Writer, icons iconlist.List) error {
	lines, err := Render(icons)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
