/*
Package enumkey converts icon names into enum keys.

An enum key is the camel-cased form of an icon name, usable as a symbol in
generated source code: "arrow-right" becomes "ArrowRight", and names starting
with a digit are prefixed with an underscore ("1st_place" becomes "_1stPlace").

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package enumkey

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}
