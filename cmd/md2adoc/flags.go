package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tableFlags holds table conversion flags.
type tableFlags struct {
	autoColumns bool
}

// readmeFlags holds README generation flags.
type readmeFlags struct {
	disabled bool
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath string // Override asset directory (README templates)
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	recursive bool
	table     tableFlags
	readme    readmeFlags
	assets    assetFlags
}

// lintFlags holds all flags for the lint command.
type lintFlags struct {
	common    commonFlags
	recursive bool
	json      bool
	table     tableFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addTableFlags adds table flags to a FlagSet.
func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.BoolVar(&f.autoColumns, "auto-columns", false, "size table columns from the header row")
}

// addReadmeFlags adds README flags to a FlagSet.
func addReadmeFlags(fs *flag.FlagSet, f *readmeFlags) {
	fs.BoolVar(&f.disabled, "no-readme", false, "do not write README.md")
}

// addAssetFlags adds asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
// Shared by parseConvertFlags and completion generation.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "convert subdirectories")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.table)
	addReadmeFlags(fs, &f.readme)
	addAssetFlags(fs, &f.assets)

	return fs
}

// newLintFlagSet registers every lint flag on a new FlagSet.
func newLintFlagSet(f *lintFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)

	fs.BoolVarP(&f.recursive, "recursive", "r", false, "lint subdirectories")
	fs.BoolVar(&f.json, "json", false, "output findings as JSON")
	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.table)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage and parse errors are written to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseLintFlags parses lint command flags and returns positional args.
func parseLintFlags(args []string, w io.Writer) (*lintFlags, []string, error) {
	f := &lintFlags{}
	fs := newLintFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printLintUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
