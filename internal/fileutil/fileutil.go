// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// markdownExtensions lists recognized Markdown file extensions (lowercase).
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsMarkdown returns true if the path has a Markdown extension.
// The comparison is case-insensitive (README.MD is Markdown).
func IsMarkdown(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

// ReplaceExt returns the base name of path with its extension replaced.
// The extension must include the leading dot.
//
// Examples:
//   - ReplaceExt("labs/lab-01.md", ".adoc") -> "lab-01.adoc"
//   - ReplaceExt("notes", ".adoc") -> "notes.adoc"
//   - ReplaceExt("v1.2.md", ".adoc") -> "v1.2.adoc"
func ReplaceExt(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "lab" -> false (name)
//   - "./lab.yaml" -> true (relative path)
//   - "/etc/md2adoc/lab.yaml" -> true (absolute)
//   - "C:\config\lab.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
