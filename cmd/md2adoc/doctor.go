package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	md2adoc "github.com/alnah/go-md2adoc"
	"github.com/alnah/go-md2adoc/internal/config"
	"github.com/alnah/go-md2adoc/internal/hints"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// renderers are the tools used to publish converted files.
var renderers = []string{"asciidoctor", "asciidoctor-pdf"}

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string         `json:"status"` // "ready", "warnings", "errors"
	Renderers []rendererInfo `json:"renderers"`
	Config    configInfo     `json:"config"`
	Env       envInfo        `json:"environment"`
	System    systemInfo     `json:"system"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// rendererInfo holds PATH lookup results for one renderer.
type rendererInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// configInfo holds config resolution results.
type configInfo struct {
	Source string `json:"source"` // "defaults" or the MD2ADOC_CONFIG value
	Valid  bool   `json:"valid"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CI         bool   `json:"ci"`
	GoMaxProcs int    `json:"gomaxprocs"`
	Workers    int    `json:"workers"`
}

// systemInfo holds system check results.
type systemInfo struct {
	WorkDirWritable bool `json:"workdir_writable"`
	TemplatesLoaded bool `json:"templates_loaded"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GoMaxProcs: runtime.GOMAXPROCS(0),
		},
	}

	checkRenderers(result, env)
	checkConfig(result, env)
	checkEnvironment(result, env)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkRenderers looks up asciidoctor tools on PATH.
// Missing tools are warnings: conversion itself does not need them.
func checkRenderers(result *doctorResult, env *Environment) {
	var missing []string
	for _, name := range renderers {
		info := rendererInfo{Name: name}
		if path, err := env.LookPath(name); err == nil {
			info.Found = true
			info.Path = path
		} else {
			missing = append(missing, name)
		}
		result.Renderers = append(result.Renderers, info)
	}

	if len(missing) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Renderers not found on PATH: %v%s", missing, hints.ForRenderer(missing)))
	}
}

// checkConfig validates the config selected by MD2ADOC_CONFIG, if any.
func checkConfig(result *doctorResult, env *Environment) {
	envCfg := loadEnvConfig(env.Getenv)
	cfg := config.DefaultConfig()
	result.Config = configInfo{Source: "defaults", Valid: true}

	if envCfg.ConfigPath != "" {
		result.Config.Source = envCfg.ConfigPath
		loaded, err := loadConfig("", envCfg)
		if err != nil {
			result.Config.Valid = false
			result.Errors = append(result.Errors, err.Error())
			return
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	result.Env.Workers = md2adoc.ResolveWorkers(cfg.Workers)
}

// checkEnvironment detects CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// checkSystem verifies the working directory is writable and templates load.
func checkSystem(result *doctorResult) {
	// Default output directories are created next to the input
	f, err := os.CreateTemp(".", ".md2adoc-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Working directory not writable: %v%s", err, hints.ForOutputDirectory()))
	} else {
		_ = f.Close()
		_ = os.Remove(f.Name())
		result.System.WorkDirWritable = true
	}

	if _, err := md2adoc.RenderReadme(nil, md2adoc.ReadmeData{}); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("README template: %v", err))
	} else {
		result.System.TemplatesLoaded = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2adoc doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderers")
	for _, rd := range r.Renderers {
		if rd.Found {
			fmt.Fprintf(w, "  [OK] %s: %s\n", rd.Name, rd.Path)
		} else {
			fmt.Fprintf(w, "  [WARN] %s: not found\n", rd.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	if r.Config.Valid {
		fmt.Fprintf(w, "  [OK] Source: %s\n", r.Config.Source)
	} else {
		fmt.Fprintf(w, "  [ERROR] Source: %s\n", r.Config.Source)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d, workers: %d\n", r.Env.GoMaxProcs, r.Env.Workers)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.WorkDirWritable {
		fmt.Fprintln(w, "  [OK] Working directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Working directory: not writable")
	}
	if r.System.TemplatesLoaded {
		fmt.Fprintln(w, "  [OK] README template: loaded")
	} else {
		fmt.Fprintln(w, "  [ERROR] README template: failed")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
