package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func testfile(name string) string {
	return filepath.Join("..", "testdata", name)
}

func TestRunCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	pterm.DisableStyling()
	//
	var stdout, stderr bytes.Buffer
	status := run(&stdout, &stderr, []string{testfile("MaterialIcons-Regular.codepoints")}, "")
	assert.Equal(t, 0, status)
	assert.Contains(t, stdout.String(), "    AddAlt    = 0xe148,\n")
	assert.Zero(t, stderr.Len())
}

func TestRunUsageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	pterm.DisableStyling()
	//
	for _, c := range []struct {
		args []string
		msg  string
	}{
		{nil, "The filename is missing"},
		{[]string{testfile("icons.json"), "free"}, "The required arguments are missing"},
		{[]string{"icons.yaml"}, "Unsupported filename"},
	} {
		var stdout, stderr bytes.Buffer
		status := run(&stdout, &stderr, c.args, "")
		assert.Equal(t, 2, status, "args %v", c.args)
		assert.Contains(t, stderr.String(), "Usage error: "+c.msg)
		assert.Contains(t, stderr.String(), "metadata.codepoints")
		assert.Zero(t, stdout.Len())
	}
}

func TestRunFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	pterm.DisableStyling()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "selection.json")
	if err := os.WriteFile(path, []byte(`{"IcoMoonType": "project"}`), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	status := run(&stdout, &stderr, []string{path}, "")
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "Unsupported file type")
	assert.Zero(t, stdout.Len())
}

func TestRunFontCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconfonts")
	defer teardown()
	pterm.DisableStyling()
	//
	dir := t.TempDir()
	fontfile := filepath.Join(dir, "Go-Regular.ttf")
	if err := os.WriteFile(fontfile, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	status := run(&stdout, &stderr, []string{testfile("selection.json")}, fontfile)
	assert.Equal(t, 0, status)
	assert.Contains(t, stderr.String(), "no glyph for Home (0xe900)")
	assert.Contains(t, stderr.String(), "no glyph for HomeAlt (0xe902)")
	assert.Contains(t, stdout.String(), "    Pencil2 = 0xe901,\n")
}
