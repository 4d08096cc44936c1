package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	md2adoc "github.com/alnah/go-md2adoc"
	flag "github.com/spf13/pflag"
)

// ErrLintFindings is returned when at least one document has findings.
var ErrLintFindings = errors.New("lint findings")

// lintReport holds the findings of one file.
type lintReport struct {
	File     string            `json:"file"`
	Title    string            `json:"title,omitempty"`
	Findings []md2adoc.Finding `json:"findings"`
}

// runLint reports Markdown constructs the converter does not translate faithfully.
func runLint(args []string, env *Environment) error {
	flags, positional, err := parseLintFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positional))
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if flags.recursive {
		cfg.Input.Recursive = true
	}
	if flags.table.autoColumns {
		cfg.Table.AutoColumns = true
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, "", cfg.Input.Recursive)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	opts := md2adoc.LintOptions{AutoColumns: cfg.Table.AutoColumns}
	reports := make([]lintReport, 0, len(files))
	total, dirty := 0, 0

	for _, f := range files {
		content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		result := md2adoc.Lint(string(content), opts)
		findings := result.Findings
		if findings == nil {
			findings = []md2adoc.Finding{}
		}
		reports = append(reports, lintReport{File: f.InputPath, Title: result.Title, Findings: findings})

		if !result.Clean() {
			total += len(result.Findings)
			dirty++
		}
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding lint report: %w", err)
		}
	} else {
		printLintReports(reports, flags.common, env)
	}

	if total > 0 {
		return fmt.Errorf("%w: %d in %d of %d files", ErrLintFindings, total, dirty, len(files))
	}
	return nil
}

// printLintReports writes one "file:line: rule: message" line per finding.
func printLintReports(reports []lintReport, common commonFlags, env *Environment) {
	for _, r := range reports {
		if common.verbose && len(r.Findings) == 0 {
			fmt.Fprintf(env.Stdout, "%s: ok\n", r.File)
		}
		for _, f := range r.Findings {
			fmt.Fprintf(env.Stdout, "%s:%d: %s: %s\n", r.File, f.Line, f.Rule, f.Message)
		}
	}

	if !common.quiet && len(reports) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d files checked\n", len(reports))
	}
}
