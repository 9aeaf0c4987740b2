/*
Command ifcli converts icon font metadata into enum definitions.

Usage:

	ifcli [-trace level] [-font fontfile] metadata.json license style
	ifcli [-trace level] [-font fontfile] selection.json
	ifcli [-trace level] [-font fontfile] metadata.codepoints

The enum definitions are written to stdout, usually redirected by a build
step into a generated source file. If a font file is given, icons without a
glyph in that font are reported on stderr.

Usage errors exit with status 2, any other error with status 1.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/iconfonts/core"
	"github.com/npillmayer/iconfonts/core/enumtext"
	"github.com/npillmayer/iconfonts/core/font"
	"github.com/npillmayer/iconfonts/core/iconlist"
	"github.com/npillmayer/iconfonts/core/metadata"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'iconfonts'
func tracer() tracing.Trace {
	return tracing.Select("iconfonts")
}

func main() {
	initDisplay()

	// command line flags
	flag.Usage = func() { printUsage(os.Stderr, "") }
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "Font file to check for missing glyphs")
	flag.Parse()

	// set up logging; traces go to stderr, stdout is reserved for output
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.iconfonts": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)

	os.Exit(run(os.Stdout, os.Stderr, flag.Args(), *fontfile))
}

// run converts the metadata file given by args and returns the exit status.
func run(stdout, stderr io.Writer, args []string, fontfile string) int {
	icons, err := metadata.Load(args)
	if err == nil && fontfile != "" {
		err = checkCoverage(stderr, icons, fontfile)
	}
	if err == nil {
		err = enumtext.Write(stdout, icons)
	}
	if err != nil {
		if core.Code(err) == core.EUSAGE {
			printUsage(stderr, core.UserMessage(err))
		} else {
			tracer().Errorf(err.Error())
			pterm.Fprintln(stderr, pterm.Error.Sprint(err.Error()))
		}
	}
	return core.ExitStatus(err)
}

func checkCoverage(stderr io.Writer, icons iconlist.List, fontfile string) error {
	f, err := font.LoadOpenTypeFont(fontfile)
	if err != nil {
		return err
	}
	missing, err := font.Coverage(f, icons)
	if err != nil {
		return err
	}
	for _, icon := range missing {
		pterm.Fprintln(stderr, pterm.Warning.Sprintf("%s: no glyph for %s (%s)",
			fontfile, icon.Name, icon.Value.Unwrap()))
	}
	return nil
}

func printUsage(w io.Writer, msg string) {
	if msg != "" {
		pterm.Fprintln(w, pterm.Error.Sprint("Usage error: "+msg))
		pterm.Fprintln(w)
	}
	cmd := os.Args[0]
	pterm.Fprintln(w, strings.Join([]string{
		"Usage:",
		"    " + cmd + " [-trace level] [-font fontfile] metadata.json license style",
		"    " + cmd + " [-trace level] [-font fontfile] selection.json",
		"    " + cmd + " [-trace level] [-font fontfile] metadata.codepoints",
	}, "\n"))
}

// We use pterm for moderately fancy messages.
func initDisplay() {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
