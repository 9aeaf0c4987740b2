package enumkey

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/iconfonts/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyName is returned for names which do not contain anything but
// separators.
var ErrEmptyName = core.Error(core.EMALFORMED, "icon name is empty")

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '_' || r == '-'
}

// Make converts name into a camel-cased enum key.
// name is split at spaces, tabs, underscores and hyphens. Every section gets
// its first character upper-cased and the remainder lower-cased.
func Make(name string) (string, error) {
	var key strings.Builder
	for _, section := range strings.FieldsFunc(name, isSeparator) {
		first, size := utf8.DecodeRuneInString(section)
		key.WriteString(upper.String(string(first)))
		key.WriteString(lower.String(section[size:]))
	}
	if key.Len() == 0 {
		tracer().Errorf("cannot make enum key from %q", name)
		return "", ErrEmptyName
	}
	s := key.String()
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(first) {
		s = "_" + s
	}
	return s, nil
}

// MustMake is like Make, but panics if name is empty.
func MustMake(name string) string {
	key, err := Make(name)
	if err != nil {
		panic(err)
	}
	return key
}
