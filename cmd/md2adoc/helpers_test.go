package main

// Notes:
// - This file contains test helpers shared by the command tests.
// - These are not functions under test themselves, but supporting infrastructure.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	md2adoc "github.com/alnah/go-md2adoc"
)

// ---------------------------------------------------------------------------
// Environment - Buffer-backed I/O with a fake process environment
// ---------------------------------------------------------------------------

// testEnv returns an Environment writing to buffers and reading vars instead
// of the process environment. Every renderer is reported missing from PATH.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	sort.Strings(environ)

	env := &Environment{
		Now:      func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) },
		Stdout:   &stdout,
		Stderr:   &stderr,
		Getenv:   func(k string) string { return vars[k] },
		Environ:  func() []string { return environ },
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// Fixtures - Markdown trees on disk
// ---------------------------------------------------------------------------

// writeFiles creates files under dir from a map of slash-separated relative
// paths to contents.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// assertContains fails when s lacks any of want.
func assertContains(t *testing.T, s string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(s, w) {
			t.Errorf("output missing %q\ngot:\n%s", w, s)
		}
	}
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter returns a fixed AsciiDoc body, or err for inputs containing failOn.
type mockConverter struct {
	failOn string
	err    error
	calls  atomic.Int32
}

func (m *mockConverter) Convert(_ context.Context, input md2adoc.Input) (*md2adoc.ConvertResult, error) {
	m.calls.Add(1)
	if m.failOn != "" && strings.Contains(input.Markdown, m.failOn) {
		return nil, m.err
	}
	return &md2adoc.ConvertResult{AsciiDoc: "converted:" + input.Markdown, Title: "Mock"}, nil
}
