package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2adoc "github.com/alnah/go-md2adoc"
	"github.com/alnah/go-md2adoc/internal/config"
	"github.com/alnah/go-md2adoc/internal/fileutil"
	"github.com/alnah/go-md2adoc/internal/hints"
	flag "github.com/spf13/pflag"
)

// readmeFileName is the index written into a converted directory.
const readmeFileName = "README.md"

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrWriteReadme = errors.New("failed to write README")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positional))
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Precedence: flags > env > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	isDir := info.IsDir()
	outputDir := resolveOutputDir(cfg, inputPath, isDir)

	files, err := discoverFiles(inputPath, outputDir, cfg.Input.Recursive)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", inputPath)
		return nil
	}

	writeIndex := isDir && cfg.ReadmeEnabled()
	var loader md2adoc.AssetLoader
	if writeIndex {
		// Resolved before converting so a bad asset path fails the run early
		loader, err = md2adoc.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return err
		}
	}

	workers := md2adoc.ResolveWorkers(cfg.Workers)
	quiet, verbose := flags.common.quiet, flags.common.verbose
	if !quiet {
		fmt.Fprintf(env.Stdout, "Found %d markdown files to convert\n", len(files))
	}
	if verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\nOutput: %s\n", workers, outputDir)
	}

	conv := md2adoc.NewConverter(
		md2adoc.WithAttributes(cfg.DocumentAttributes()...),
		md2adoc.WithAutoColumns(cfg.Table.AutoColumns),
	)
	results := convertBatch(ctx, conv, files, workers)

	displayRoot := inputPath
	if !isDir {
		displayRoot = filepath.Dir(inputPath)
	}
	failed := printResultsWithWriter(results, printOptions{
		quiet:     quiet,
		verbose:   verbose,
		inputDir:  displayRoot,
		outputDir: outputDir,
	}, env)

	if writeIndex {
		if err := writeReadme(loader, cfg.Readme.Template, inputPath, outputDir, results); err != nil {
			if errors.Is(err, md2adoc.ErrTemplateNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(cfg.Assets.BasePath))
			}
			return err
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", readmeFileName)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrConversionsFailed, failed, len(results))
	}
	return nil
}

// loadConfig loads the config named by the flag, else by MD2ADOC_CONFIG,
// else returns defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.recursive {
		cfg.Input.Recursive = true
	}
	if flags.table.autoColumns {
		cfg.Table.AutoColumns = true
	}
	if flags.readme.disabled {
		disabled := false
		cfg.Readme.Enabled = &disabled
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// resolveInputPath returns the positional input, else input.defaultDir.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir returns output.defaultDir, else the default for the input.
func resolveOutputDir(cfg *config.Config, inputPath string, isDir bool) string {
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir
	}
	return defaultOutputDir(inputPath, isDir)
}

// writeReadme renders the README index for the successful conversions
// and writes it into outputDir.
func writeReadme(loader md2adoc.AssetLoader, templateName, inputDir, outputDir string, results []ConversionResult) error {
	if templateName == "" {
		templateName = md2adoc.DefaultReadmeTemplate
	}

	content, err := md2adoc.RenderReadmeTemplate(loader, templateName, readmeData(inputDir, outputDir, results))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrCreateOutputDir, err, hints.ForOutputDirectory())
	}

	path := filepath.Join(outputDir, readmeFileName)
	// #nosec G306 -- README is meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReadme, err)
	}
	return nil
}

// readmeData lists successful conversions in batch order. A document without
// a level-1 header is listed under its file name.
func readmeData(inputDir, outputDir string, results []ConversionResult) md2adoc.ReadmeData {
	sourceDir := filepath.Clean(inputDir)
	if abs, err := filepath.Abs(sourceDir); err == nil {
		sourceDir = abs
	}

	data := md2adoc.ReadmeData{SourceDir: filepath.Base(sourceDir)}
	for _, r := range results {
		if r.Err != nil {
			continue
		}

		file := filepath.Base(r.OutputPath)
		if rel, err := filepath.Rel(outputDir, r.OutputPath); err == nil {
			file = filepath.ToSlash(rel)
		}

		title := r.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(r.InputPath), filepath.Ext(r.InputPath))
		}

		data.Documents = append(data.Documents, md2adoc.ReadmeEntry{Title: title, File: file})
	}
	return data
}
