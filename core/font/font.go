/*
Package font loads icon fonts and checks them against icon lists.

Icon font metadata and the font binary it describes are distributed
separately. Coverage reports icons whose codepoint has no glyph in a given
font, which usually means that metadata file and font file do not belong to
the same release.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"strconv"
	"sync"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}

type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads and parses a TrueType or OpenType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	tracer().Infof("loaded font %s from %s", f.Fontname, fontfile)
	return f, nil
}

func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EMALFORMED, "cannot parse font: %v", err)
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// HasGlyph returns true if the font maps r to a glyph other than .notdef.
func (sf *ScalableFont) HasGlyph(r rune) (bool, error) {
	var buf sfnt.Buffer
	return sf.hasGlyph(&buf, r)
}

func (sf *ScalableFont) hasGlyph(buf *sfnt.Buffer, r rune) (bool, error) {
	gid, err := sf.SFNT.GlyphIndex(buf, r)
	if err != nil {
		return false, err
	}
	return gid != 0, nil
}

// Coverage checks every icon with a codepoint value against the font and
// returns the icons without a glyph. Aliases and unsupported icons are
// skipped.
func Coverage(sf *ScalableFont, icons iconlist.List) (iconlist.List, error) {
	var buf sfnt.Buffer
	var missing iconlist.List
	for _, icon := range icons {
		if !icon.IsCodepoint() {
			continue
		}
		cp, err := strconv.ParseUint(icon.Value.Unwrap(), 0, 32)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "icon %s: cannot use %s as codepoint",
				icon.Name, icon.Value.Unwrap())
		}
		ok, err := sf.hasGlyph(&buf, rune(cp))
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "icon %s: cannot look up glyph", icon.Name)
		}
		if !ok {
			tracer().Debugf("font %s has no glyph for %s (%s)", sf.Fontname, icon.Name, icon.Value.Unwrap())
			missing = append(missing, icon)
		}
	}
	return missing, nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font which is always present. Currently we use
// Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
