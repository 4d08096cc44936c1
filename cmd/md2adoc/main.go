package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	configureMaxProcs(env, hasVerboseFlag(os.Args[1:]))
	os.Exit(runMain(os.Args, env))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(env *Environment, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches the command in args[1] and returns the process exit code.
// A first argument that is not a command is treated as the input of convert.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		cmd, rest = "convert", args[1:]
	}

	switch cmd {
	case "convert":
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return reportError(env, runConvert(ctx, rest, env))
	case "lint":
		return reportError(env, runLint(rest, env))
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		return reportError(env, runCompletion(rest, env))
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2adoc %s\n", Version)
		return ExitSuccess
	default: // help, -h, --help
		return runHelp(rest, env)
	}
}

// isCommand reports whether s names a command rather than an input path.
func isCommand(s string) bool {
	switch s {
	case "convert", "lint", "doctor", "completion", "version", "--version", "help", "-h", "--help":
		return true
	}
	return false
}

// reportError prints err to stderr and maps it to an exit code.
func reportError(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}
