package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2adoc "github.com/alnah/go-md2adoc"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// separatorLine frames the per-file progress lines.
var separatorLine = strings.Repeat("=", 50)

// Sentinel errors for batch operations.
var (
	ErrNoInput           = errors.New("no input specified")
	ErrReadMarkdown      = errors.New("failed to read markdown file")
	ErrWriteAsciiDoc     = errors.New("failed to write AsciiDoc file")
	ErrCreateOutputDir   = errors.New("failed to create output directory")
	ErrConversionsFailed = errors.New("conversions failed")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2adoc.Input) (*md2adoc.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2adoc.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files concurrently with at most workers goroutines.
// Results are indexed like files, so output order does not depend on scheduling.
// One failed file never stops the others.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile reads one Markdown file, converts it and writes the AsciiDoc result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if f.Err != nil {
		return fail(f.Err)
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	convResult, err := conv.Convert(ctx, md2adoc.Input{Markdown: string(content)})
	if err != nil {
		return fail(err)
	}

	// #nosec G306 -- AsciiDoc files are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(convResult.AsciiDoc), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteAsciiDoc, err))
	}

	result.Title = convResult.Title
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printOptions controls how results are reported.
type printOptions struct {
	quiet     bool
	verbose   bool
	inputDir  string // Input paths are shown relative to it
	outputDir string // Output paths are shown relative to it
}

// printResultsWithWriter outputs one line per result and the summary line.
// Failures always go to stderr; success lines are suppressed by quiet.
// Returns the number of failed conversions.
func printResultsWithWriter(results []ConversionResult, opts printOptions, env *Environment) int {
	summary := countResults(results)

	if !opts.quiet {
		fmt.Fprintln(env.Stdout, separatorLine)
	}

	for _, r := range results {
		in := displayPath(r.InputPath, opts.inputDir)
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", in, r.Err)
			continue
		}

		if opts.quiet {
			continue
		}

		out := displayPath(r.OutputPath, opts.outputDir)
		if opts.verbose {
			fmt.Fprintf(env.Stdout, "Converted %s -> %s (%v)\n", in, out, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", in, out)
		}
	}

	if !opts.quiet {
		fmt.Fprintln(env.Stdout, separatorLine)
		fmt.Fprintf(env.Stdout, "Conversion complete: %d/%d files converted successfully\n",
			summary.Succeeded, len(results))
	}

	return summary.Failed
}

// displayPath returns path relative to root, or its base name when root is
// empty or path is not below it.
func displayPath(path, root string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return filepath.Base(path)
}
