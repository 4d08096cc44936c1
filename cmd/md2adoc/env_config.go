package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2adoc/internal/config"
)

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "MD2ADOC_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2ADOC_CONFIG: config file name or path
	InputDir   string // MD2ADOC_INPUT_DIR: default input directory
	OutputDir  string // MD2ADOC_OUTPUT_DIR: default output directory
	Workers    int    // MD2ADOC_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2ADOC_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2ADOC_CONFIG":     true,
	"MD2ADOC_INPUT_DIR":  true,
	"MD2ADOC_OUTPUT_DIR": true,
	"MD2ADOC_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// An unparsable or non-positive MD2ADOC_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2ADOC_CONFIG"),
		InputDir:   getenv("MD2ADOC_INPUT_DIR"),
		OutputDir:  getenv("MD2ADOC_OUTPUT_DIR"),
	}

	if workers := getenv("MD2ADOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2ADOC_* variable.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
