package metadata

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/iconfonts/core/option"
)

// CodepointsSuffix is the file name suffix of Material-Symbols-style
// codepoint lists.
const CodepointsSuffix = ".codepoints"

// MaterialSymbols parses Material-Symbols-style codepoint lists
// ("MaterialSymbolsOutlined[FILL,GRAD,opsz,wght].codepoints").
type MaterialSymbols struct{}

var _ Parser = MaterialSymbols{}

// Parse reads lines of the form "name codepoint", with the codepoint in
// hexadecimal notation. Blank lines are skipped.
func (MaterialSymbols) Parse(data []byte) (iconlist.List, error) {
	var icons iconlist.List
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errMalformed("line %d: expected name and codepoint, have %d fields", lineno, len(fields))
		}
		k, err := key(fields[0])
		if err != nil {
			return nil, err
		}
		icons = append(icons, iconlist.Codepoint(k, fields[1], option.String()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errMalformed("line %d: %v", lineno+1, err)
	}
	tracer().Debugf("codepoints: %d icons", len(icons))
	return icons, nil
}
