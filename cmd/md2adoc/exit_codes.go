package main

import (
	"errors"
	"os"

	md2adoc "github.com/alnah/go-md2adoc"
	"github.com/alnah/go-md2adoc/internal/config"
	flag "github.com/spf13/pflag"
)

// Exit codes for md2adoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General error, failed conversions or lint findings
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2adoc.ErrInvalidAssetPath) ||
		errors.Is(err, md2adoc.ErrTemplateNotFound) ||
		errors.Is(err, md2adoc.ErrReadmeRender) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteAsciiDoc) ||
		errors.Is(err, ErrWriteReadme) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}
