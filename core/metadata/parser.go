package metadata

import (
	"os"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/enumkey"
	"github.com/npillmayer/iconfonts/core/iconlist"
)

// Parser converts the contents of a metadata file into an icon list.
// The list may contain duplicate names.
type Parser interface {
	Parse(data []byte) (iconlist.List, error)
}

// ParseFile reads the metadata file at path and parses it with p.
func ParseFile(p Parser, path string) (iconlist.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		tracer().Errorf("cannot read metadata file %s: %v", path, err)
		return nil, core.WrapError(err, core.EMISSING, "cannot read metadata file %s", path)
	}
	icons, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	tracer().Infof("%s: %d icons", path, len(icons))
	return icons, nil
}

// key makes an enum key for an icon name, reporting empty names as
// malformed input.
func key(name string) (string, error) {
	k, err := enumkey.Make(name)
	if err != nil {
		return "", errMalformed("cannot use %q as icon name", name)
	}
	return k, nil
}
