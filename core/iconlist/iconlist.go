package iconlist

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/iconfonts/core/option"
)

// Icon is an entry of an icon list. Icons are treated as immutable values.
type Icon struct {
	Name    string         // enum key
	Value   option.StringT // codepoint literal or name of aliased icon; None if unsupported
	Comment option.StringT // free text, e.g. a list of supported styles
}

// Codepoint creates an icon with a codepoint literal as its value.
// hex is the codepoint in hexadecimal notation without prefix.
func Codepoint(name, hex string, comment option.StringT) Icon {
	return Icon{Name: name, Value: option.SomeString("0x" + hex), Comment: comment}
}

// Alias creates an icon which refers to another icon named target.
func Alias(name, target string, comment option.StringT) Icon {
	return Icon{Name: name, Value: option.SomeString(target), Comment: comment}
}

// Unsupported creates an icon without a value.
func Unsupported(name string, comment option.StringT) Icon {
	return Icon{Name: name, Comment: comment}
}

// IsSupported returns true if the icon has a value.
func (icon Icon) IsSupported() bool {
	return !icon.Value.IsNone()
}

var codepointLiteral = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// IsCodepoint returns true if the icon's value is a codepoint literal,
// as opposed to an alias or no value at all.
func (icon Icon) IsCodepoint() bool {
	v, ok := icon.Value.Get()
	return ok && codepointLiteral.MatchString(v)
}

// IsAlias returns true if the icon's value refers to another icon.
func (icon Icon) IsAlias() bool {
	return icon.IsSupported() && !icon.IsCodepoint()
}

// Renamed returns a copy of icon with a different name.
func (icon Icon) Renamed(name string) Icon {
	icon.Name = name
	return icon
}

func (icon Icon) String() string {
	return fmt.Sprintf("%s=%s (%s)", icon.Name, icon.Value, icon.Comment)
}

// List is an ordered sequence of icons.
type List []Icon

// Names returns the names of all icons in l, in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, icon := range l {
		names[i] = icon.Name
	}
	return names
}
