package metadata

import (
	"strings"

	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/iconfonts/core/option"
	"github.com/tidwall/gjson"
)

// FreeLicense is the license name which selects the list of free styles
// instead of the list of all styles an icon ships with.
const FreeLicense = "free"

// FontAwesome parses Font-Awesome-style icon metadata ("icons.json").
// License and Style filter the list: icons not available with Style under
// License are reported as unsupported.
type FontAwesome struct {
	License string // "free" or the name of a commercial license, e.g. "pro"
	Style   string // e.g. "solid", "regular", "brands"
}

var _ Parser = FontAwesome{}

func (fa FontAwesome) stylesKey() string {
	if fa.License == FreeLicense {
		return "free"
	}
	return "styles"
}

// Parse reads a JSON object mapping icon names to icon descriptions.
// Icons appear in the result in document order, each supported icon directly
// followed by its aliases.
func (fa FontAwesome) Parse(data []byte) (iconlist.List, error) {
	if !gjson.ValidBytes(data) {
		return nil, errMalformed("Font Awesome metadata is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errMalformed("Font Awesome metadata must be a JSON object")
	}
	var icons iconlist.List
	var err error
	root.ForEach(func(name, info gjson.Result) bool {
		icons, err = fa.appendIcon(icons, name.String(), info)
		return err == nil
	})
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	tracer().Debugf("Font Awesome metadata: %d entries for %s/%s", len(icons), fa.License, fa.Style)
	return icons, nil
}

func (fa FontAwesome) appendIcon(icons iconlist.List, name string, info gjson.Result) (iconlist.List, error) {
	codepoint := info.Get("unicode")
	if !codepoint.Exists() {
		return icons, errMalformed("icon %q: missing key \"unicode\"", name)
	}
	styles := info.Get(fa.stylesKey())
	if !styles.Exists() {
		return icons, errMalformed("icon %q: missing key %q", name, fa.stylesKey())
	}
	if !styles.IsArray() {
		return icons, errMalformed("icon %q: key %q is not a list", name, fa.stylesKey())
	}
	k, err := key(name)
	if err != nil {
		return icons, err
	}
	var supported []string
	hasStyle := false
	for _, s := range styles.Array() {
		supported = append(supported, s.String())
		hasStyle = hasStyle || s.String() == fa.Style
	}
	comment := option.SomeString("supported styles: " + strings.Join(supported, ", "))
	if !hasStyle {
		return append(icons, iconlist.Unsupported(k, comment)), nil
	}
	icons = append(icons, iconlist.Codepoint(k, codepoint.String(), comment))
	for _, alias := range info.Get("aliases.names").Array() {
		ak, err := key(alias.String())
		if err != nil {
			return icons, err
		}
		icons = append(icons, iconlist.Alias(ak, k, comment))
	}
	return icons, nil
}
