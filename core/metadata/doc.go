/*
Package metadata reads icon font metadata files and converts them into icon
lists.

Three formats are supported:

▪ Font-Awesome-style metadata (icons.json), a JSON object mapping icon names
to codepoints, supported styles and aliases.

▪ IcoMoon selections (selection.json), as exported by the IcoMoon app.

▪ Material-Symbols-style codepoint lists (*.codepoints), a text file with one
"name codepoint" pair per line.

Every format has a Parser. Select chooses a parser from command line
arguments, and Convert runs the whole pipeline of parsing, deduplication and
rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package metadata

import (
	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}

// errMalformed produces user level errors for metadata parsing.
func errMalformed(format string, v ...interface{}) error {
	return core.Error(core.EMALFORMED, format, v...)
}
