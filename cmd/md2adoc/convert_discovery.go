package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-md2adoc/internal/config"
	"github.com/alnah/go-md2adoc/internal/fileutil"
)

// asciidocExt is the extension of converted files.
const asciidocExt = ".adoc"

// outputDirPrefix names the default output directory for a directory input:
// lab-guides is converted into a sibling adoc-lab-guides.
const outputDirPrefix = "adoc-"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputCollision    = errors.New("another input file maps to the same output")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Err        error // Set when the file cannot be converted (e.g. output collision)
}

// discoverFiles finds the Markdown files to convert.
// A file input yields that file. A directory input yields its Markdown files,
// descending into subdirectories only when recursive is set. Results are
// sorted by input path so batches are reproducible.
func discoverFiles(inputPath, outputDir string, recursive bool) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && (!recursive || isSameDir(path, outputDir)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].InputPath < files[j].InputPath })
	markCollisions(files)
	return files, nil
}

// markCollisions flags every file whose output path was already claimed by
// an earlier file (lab.md and lab.markdown both map to lab.adoc).
func markCollisions(files []FileToConvert) {
	claimed := make(map[string]string, len(files))
	for i := range files {
		out := files[i].OutputPath
		if first, ok := claimed[out]; ok {
			files[i].Err = fmt.Errorf("%w: %s (from %s)", ErrOutputCollision, out, first)
			continue
		}
		claimed[out] = files[i].InputPath
	}
}

// resolveOutputPath determines the AsciiDoc output path for a Markdown file.
// Files found under baseInputDir keep their relative subdirectory.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := fileutil.ReplaceExt(inputPath, asciidocExt)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// defaultOutputDir returns the output directory used when none is configured:
// a sibling "adoc-<name>" for a directory, the file's own directory for a file.
func defaultOutputDir(inputPath string, isDir bool) string {
	clean := filepath.Clean(inputPath)
	if !isDir {
		return filepath.Dir(clean)
	}

	abs, err := filepath.Abs(clean)
	if err == nil {
		clean = abs
	}
	return filepath.Join(filepath.Dir(clean), outputDirPrefix+filepath.Base(clean))
}

// isSameDir reports whether a and b name the same directory.
func isSameDir(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
