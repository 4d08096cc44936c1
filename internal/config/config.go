package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-md2adoc/internal/fileutil"
	"github.com/alnah/go-md2adoc/internal/pipeline"
	"github.com/alnah/go-md2adoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength           = 4096 // PATH_MAX on Linux
	MaxTemplateNameLength   = 64
	MaxAttributeNameLength  = 64
	MaxAttributeValueLength = 500
	MaxAttributes           = 100
	MaxWorkers              = 32
)

// userConfigDirName is the directory under os.UserConfigDir holding named configs.
const userConfigDirName = "go-md2adoc"

// attributeNamePattern matches AsciiDoc attribute names.
var attributeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*$`)

// Config holds all configuration for a conversion run.
type Config struct {
	Input      InputConfig          `yaml:"input"`
	Output     OutputConfig         `yaml:"output"`
	Readme     ReadmeConfig         `yaml:"readme"`
	Assets     AssetsConfig         `yaml:"assets"`
	Table      TableConfig          `yaml:"table"`
	Attributes []pipeline.Attribute `yaml:"attributes"` // Empty = default lab guide header
	Workers    int                  `yaml:"workers"`    // 0 = auto from GOMAXPROCS
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Recursive  bool   `yaml:"recursive"`  // Descend into subdirectories
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = sibling adoc-<input> directory
}

// ReadmeConfig defines generation of the README.md index.
type ReadmeConfig struct {
	Enabled  *bool  `yaml:"enabled"`  // nil = enabled
	Template string `yaml:"template"` // Template name under assets templates/ (default: readme)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// TableConfig defines table conversion options.
type TableConfig struct {
	AutoColumns bool `yaml:"autoColumns"` // Derive cols from the header row instead of "1,1,1"
}

// ReadmeEnabled reports whether README.md should be written.
func (c *Config) ReadmeEnabled() bool {
	return c.Readme.Enabled == nil || *c.Readme.Enabled
}

// DocumentAttributes returns the configured attributes, or the defaults.
func (c *Config) DocumentAttributes() []pipeline.Attribute {
	if len(c.Attributes) == 0 {
		return pipeline.DefaultAttributes()
	}
	return c.Attributes
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Readme.Template != "" {
		if err := validateFieldLength("readme.template", c.Readme.Template, MaxTemplateNameLength); err != nil {
			return err
		}
		if fileutil.IsFilePath(c.Readme.Template) || strings.Contains(c.Readme.Template, "..") {
			return fmt.Errorf("%w: readme.template must be a name, got %q", ErrInvalidValue, c.Readme.Template)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if len(c.Attributes) > MaxAttributes {
		return fmt.Errorf("%w: attributes: %d entries (max %d)", ErrInvalidValue, len(c.Attributes), MaxAttributes)
	}
	for i, attr := range c.Attributes {
		field := fmt.Sprintf("attributes[%d]", i)
		if err := validateFieldLength(field+".name", attr.Name, MaxAttributeNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".value", attr.Value, MaxAttributeValueLength); err != nil {
			return err
		}
		if !attributeNamePattern.MatchString(attr.Name) {
			return fmt.Errorf("%w: %s.name: invalid attribute name %q", ErrInvalidValue, field, attr.Name)
		}
		if strings.ContainsAny(attr.Value, "\r\n") {
			return fmt.Errorf("%w: %s.value: must be a single line", ErrInvalidValue, field)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// flat directory scan, README enabled, fixed three-column tables and the
// default attribute header.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		Readme:     ReadmeConfig{Enabled: &enabled},
		Attributes: pipeline.DefaultAttributes(),
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same under ~/.config/go-md2adoc/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
