package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to AsciiDoc (default)")
	fmt.Fprintln(w, "  lint        Report markdown the converter does not translate")
	fmt.Fprintln(w, "  doctor      Check renderers, config and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2adoc help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adoc convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to AsciiDoc.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: adoc-<input> next to input)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -r, --recursive           Convert subdirectories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --auto-columns        Size table columns from the header row")
	fmt.Fprintln(w, "      --no-readme           Do not write README.md")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (templates/readme.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2ADOC_CONFIG, MD2ADOC_INPUT_DIR, MD2ADOC_OUTPUT_DIR, MD2ADOC_WORKERS")
}

// printLintUsage prints usage for the lint command.
func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adoc lint <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report markdown constructs the converter does not translate faithfully.")
	fmt.Fprintln(w, "Exits 1 when findings are reported.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -r, --recursive           Lint subdirectories")
	fmt.Fprintln(w, "      --auto-columns        Accept tables of any width")
	fmt.Fprintln(w, "      --json                Output findings as JSON")
	fmt.Fprintln(w, "  -q, --quiet               Only show findings")
	fmt.Fprintln(w, "  -v, --verbose             Also list clean files")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "lint":
		printLintUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: md2adoc doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check asciidoctor tools, config and environment.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2adoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2adoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
