/*
Package iconlist holds the normalized form of icon font metadata: an ordered
list of icons, each with an enum key, an optional value and an optional
comment.

A value is either a codepoint literal ("0xf015") or the enum key of another
icon in the list (an alias). Icons without a value exist in the icon font
family, but are not available for the selected style.

Lists produced by parsers may contain duplicate names. Deduplicate renames
later occurences by appending "Alt", "Alt1", "Alt2", … .

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iconlist

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}
