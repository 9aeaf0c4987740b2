package metadata

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/enumtext"
	"github.com/npillmayer/iconfonts/core/iconlist"
)

func errUsage(msg string) error {
	return core.Error(core.EUSAGE, "%s", msg)
}

// Select chooses a parser for a metadata file. args[0] is the path of the
// metadata file, Font-Awesome-style metadata additionally requires a license
// name and a style name:
//
//	selection.json                 IcoMoon selection
//	<name>.json <license> <style>  Font-Awesome-style metadata
//	<name>.codepoints              Material-Symbols-style codepoints
//
// Missing arguments and unknown file names are reported as usage errors.
func Select(args []string) (Parser, error) {
	if len(args) < 1 {
		return nil, errUsage("The filename is missing")
	}
	filename := filepath.Base(args[0])
	switch {
	case filename == SelectionFileName:
		return IcoMoon{}, nil
	case strings.HasSuffix(filename, ".json"):
		if len(args) < 3 {
			return nil, errUsage("The required arguments are missing")
		}
		return FontAwesome{License: args[1], Style: args[2]}, nil
	case strings.HasSuffix(filename, CodepointsSuffix):
		return MaterialSymbols{}, nil
	}
	return nil, errUsage("Unsupported filename")
}

// Load selects a parser for args, parses the metadata file and removes
// duplicate names from the resulting icon list.
func Load(args []string) (iconlist.List, error) {
	p, err := Select(args)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsing %s with %T", args[0], p)
	icons, err := ParseFile(p, args[0])
	if err != nil {
		return nil, err
	}
	return iconlist.Deduplicate(icons), nil
}

// Convert loads the metadata file given by args and writes its icons as enum
// definitions to w.
func Convert(w io.Writer, args []string) error {
	icons, err := Load(args)
	if err != nil {
		return err
	}
	return enumtext.Write(w, icons)
}
