// Package config loads and validates the doc2nb CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-doc2nb/internal/fileutil"
	"github.com/alnah/go-doc2nb/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// MaxWorkers bounds the conversion worker count.
const MaxWorkers = 256

// Config holds all configuration for notebook generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Notebook NotebookConfig `yaml:"notebook"`
	Convert  ConvertConfig  `yaml:"convert"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	FileSuffix string `yaml:"fileSuffix"` // Notebook filename suffix (default: ".ipynb")
}

// NotebookConfig defines notebook content options.
type NotebookConfig struct {
	Kernel     string         `yaml:"kernel"`     // Kernel language tag (default: "python")
	LinkSuffix string         `yaml:"linkSuffix"` // Cross-document link suffix (default: file suffix)
	Metadata   map[string]any `yaml:"metadata"`   // Extra notebook metadata, passed through
}

// ConvertConfig defines conversion run options.
type ConvertConfig struct {
	Workers int  `yaml:"workers"` // Parallel workers (0 = number of CPUs)
	Strict  bool `yaml:"strict"`  // Treat conversion warnings as errors
}

// Validate checks the configuration. Called automatically by LoadConfig,
// but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Output),
		validation.Field(&c.Notebook),
		validation.Field(&c.Convert),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.FileSuffix, validation.By(optionalSuffix)),
	)
}

// Validate implements validation.Validatable.
func (n NotebookConfig) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Kernel, validation.Length(0, 64)),
		validation.Field(&n.LinkSuffix, validation.Length(0, 64)),
	)
}

// Validate implements validation.Validatable.
func (v ConvertConfig) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
}

// optionalSuffix accepts an empty suffix or one with a leading dot.
func optionalSuffix(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, ".") {
		return fmt.Errorf("must start with a dot, got %q", s)
	}
	if strings.ContainsAny(s, "/\\ ") {
		return fmt.Errorf("must not contain separators or spaces, got %q", s)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{FileSuffix: ".ipynb"},
		Notebook: NotebookConfig{Kernel: "python"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations: the working directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	candidates := []string{
		name + ".yaml",
		name + ".yml",
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(configDir, "doc2nb", name+".yaml"),
			filepath.Join(configDir, "doc2nb", name+".yml"),
		)
	}

	for _, candidate := range candidates {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrConfigNotFound, name, strings.Join(candidates, ", "))
}
