package iconlist

import (
	"fmt"
	"testing"

	"github.com/npillmayer/iconfonts/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(names ...string) List {
	l := make(List, len(names))
	for i, name := range names {
		l[i] = Codepoint(name, fmt.Sprintf("e%03x", i), option.String())
	}
	return l
}

func TestIconKinds(t *testing.T) {
	home := Codepoint("Home", "f015", option.SomeString("supported styles: solid"))
	assert.True(t, home.IsSupported())
	assert.True(t, home.IsCodepoint())
	assert.False(t, home.IsAlias())
	assert.Equal(t, "0xf015", home.Value.Unwrap())
	//
	house := Alias("House", "Home", home.Comment)
	assert.True(t, house.IsSupported())
	assert.True(t, house.IsAlias())
	assert.False(t, house.IsCodepoint())
	//
	brand := Unsupported("Github", option.SomeString("supported styles: brands"))
	assert.False(t, brand.IsSupported())
	assert.False(t, brand.IsCodepoint())
	assert.False(t, brand.IsAlias())
}

func TestDeduplicateTriple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	out := Deduplicate(named("A", "A", "A"))
	assert.Equal(t, []string{"A", "AAlt", "AAlt1"}, out.Names())
}

func TestDeduplicateKeepsValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	in := List{
		Codepoint("Home", "f015", option.SomeString("first")),
		Codepoint("Star", "f005", option.String()),
		Codepoint("Home", "e88a", option.SomeString("second")),
	}
	out := Deduplicate(in)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"Home", "Star", "HomeAlt"}, out.Names())
	assert.Equal(t, in[2].Value, out[2].Value)
	assert.Equal(t, in[2].Comment, out[2].Comment)
	assert.Equal(t, "Home", in[2].Name, "input list must not be modified")
}

func TestDeduplicateAvoidsExistingNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	for _, c := range []struct {
		in, want []string
	}{
		{[]string{"A", "A", "AAlt"}, []string{"A", "AAlt1", "AAlt"}},
		{[]string{"A", "AAlt", "A", "AAlt1", "A"}, []string{"A", "AAlt", "AAlt2", "AAlt1", "AAlt3"}},
		{[]string{"A", "A", "AAlt", "AAlt"}, []string{"A", "AAlt1", "AAlt", "AAltAlt"}},
		{[]string{"B", "A", "B", "A"}, []string{"B", "A", "BAlt", "AAlt"}},
		{[]string{"X", "Y", "Z"}, []string{"X", "Y", "Z"}},
		{[]string{}, []string{}},
	} {
		out := Deduplicate(named(c.in...))
		assert.Equal(t, c.want, out.Names(), "input %v", c.in)
	}
}

func TestDeduplicateProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	//
	inputs := [][]string{
		{"A", "A", "A", "B", "AAlt", "B", "AAlt1", "A"},
		{"Face", "Face", "FaceAlt", "FaceAlt", "FaceAlt1", "Face"},
		{"Q", "Q", "Q", "Q", "Q", "Q", "Q", "Q", "Q", "Q", "Q", "Q"},
	}
	for _, in := range inputs {
		l := named(in...)
		out := Deduplicate(l)
		require.Len(t, out, len(l))
		seen := make(map[string]bool)
		for i, icon := range out {
			assert.False(t, seen[icon.Name], "name %s occurs twice in %v", icon.Name, out.Names())
			seen[icon.Name] = true
			assert.Equal(t, l[i].Value, icon.Value, "order changed at #%d", i)
		}
		again := Deduplicate(out)
		assert.Equal(t, out, again, "deduplication is not idempotent for %v", in)
	}
}
