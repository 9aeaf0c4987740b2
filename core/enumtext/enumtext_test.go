package enumtext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/iconfonts/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	lines, err := Render(iconlist.List{iconlist.Codepoint("Home", "1f", option.String())})
	require.NoError(t, err)
	assert.Equal(t, []string{"    Home = 0x1f,"}, lines)
}

func TestRenderUnsupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	lines, err := Render(iconlist.List{
		iconlist.Unsupported("Foo", option.SomeString("supported styles: solid")),
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], " // Foo"), "line is %q", lines[0])
	assert.Contains(t, lines[0], "<unsupported>,")
	assert.Contains(t, lines[0], "supported styles: solid")
	assert.Equal(t, " // Foo - <unsupported>, supported styles: solid", lines[0])
}

func TestRenderAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	solid := option.SomeString("supported styles: solid")
	lines, err := Render(iconlist.List{
		iconlist.Codepoint("Home", "f015", solid),
		iconlist.Alias("HomeAlt", "Home", solid),
		iconlist.Unsupported("Github", option.SomeString("supported styles: brands")),
		iconlist.Unsupported("X", option.String()),
		iconlist.Codepoint("Star", "f005", option.String()),
		iconlist.Codepoint("Tag", "e900", option.SomeString("")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"    Home    = 0xf015, // supported styles: solid",
		"    HomeAlt = Home,   // supported styles: solid",
		" // Github  - <unsupported>, supported styles: brands",
		" // X       - <unsupported>",
		"    Star    = 0xf005,",
		"    Tag     = 0xe900,",
	}, lines)
}

func TestRenderPadsUnsupportedMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	// value column is 16+1 wide, the marker field 16+1+3
	lines, err := Render(iconlist.List{
		iconlist.Alias("A", "AVeryLongIconKey", option.SomeString("c1")),
		iconlist.Unsupported("B", option.SomeString("c2")),
	})
	require.NoError(t, err)
	assert.Equal(t, "    A = AVeryLongIconKey, // c1", lines[0])
	assert.Equal(t, " // B - <unsupported>,       c2", lines[1])
}

func TestRenderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	_, err := Render(nil)
	assert.True(t, errors.Is(err, ErrEmptyList))
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, iconlist.List{}))
	assert.Zero(t, buf.Len())
}

func TestWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	var buf bytes.Buffer
	err := Write(&buf, iconlist.List{
		iconlist.Codepoint("Add", "e145", option.String()),
		iconlist.Codepoint("AddCircle", "e147", option.String()),
	})
	require.NoError(t, err)
	assert.Equal(t, "    Add       = 0xe145,\n    AddCircle = 0xe147,\n", buf.String())
}
