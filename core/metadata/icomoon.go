package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/iconfonts/core/option"
	"github.com/tidwall/gjson"
)

// SelectionFileName is the name under which the IcoMoon app exports a
// selection.
const SelectionFileName = "selection.json"

// ErrUnsupportedFileType is returned for JSON files which are not IcoMoon
// selections.
var ErrUnsupportedFileType = core.Error(core.EUNSUPPORTED, "Unsupported file type")

// IcoMoon parses selections exported from the IcoMoon app ("selection.json").
type IcoMoon struct{}

var _ Parser = IcoMoon{}

// Parse reads the list of icons of an IcoMoon selection. Codepoints are given
// in decimal notation in the selection and are converted to hexadecimal.
// Icon tags end up in the comment.
func (IcoMoon) Parse(data []byte) (iconlist.List, error) {
	if !gjson.ValidBytes(data) {
		return nil, errMalformed("IcoMoon selection is not valid JSON")
	}
	selection := gjson.ParseBytes(data)
	if selection.Get("IcoMoonType").String() != "selection" {
		tracer().Errorf("IcoMoonType is %q", selection.Get("IcoMoonType").String())
		return nil, ErrUnsupportedFileType
	}
	list := selection.Get("icons")
	if !list.IsArray() {
		return nil, errMalformed("IcoMoon selection: missing list \"icons\"")
	}
	var icons iconlist.List
	for i, icon := range list.Array() {
		name := icon.Get("properties.name")
		if !name.Exists() {
			return nil, errMalformed("IcoMoon icon #%d: missing key \"properties.name\"", i)
		}
		code, err := decimalCodepoint(icon.Get("properties.code"))
		if err != nil {
			return nil, errMalformed("IcoMoon icon %q: %v", name.String(), err)
		}
		k, err := key(name.String())
		if err != nil {
			return nil, err
		}
		var tags []string
		for _, tag := range icon.Get("icon.tags").Array() {
			tags = append(tags, tag.String())
		}
		comment := strings.Join(tags, ", ")
		if comment != "" {
			comment = "tags: " + comment
		}
		icons = append(icons, iconlist.Codepoint(k, strconv.FormatInt(code, 16), option.SomeString(comment)))
	}
	tracer().Debugf("IcoMoon selection: %d icons", len(icons))
	return icons, nil
}

// decimalCodepoint accepts codepoints as JSON numbers or as strings holding
// a decimal number.
func decimalCodepoint(code gjson.Result) (int64, error) {
	switch code.Type {
	case gjson.Number:
		if code.Num != float64(int64(code.Num)) {
			return 0, fmt.Errorf("codepoint %s is not an integer", code.Raw)
		}
		return code.Int(), nil
	case gjson.String:
		return strconv.ParseInt(strings.TrimSpace(code.Str), 10, 64)
	case gjson.Null:
		if !code.Exists() {
			return 0, fmt.Errorf("missing key \"properties.code\"")
		}
	}
	return 0, fmt.Errorf("codepoint %s is not a number", code.Raw)
}
