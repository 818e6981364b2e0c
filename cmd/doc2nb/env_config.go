package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables. Provides
// CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOC2NB_CONFIG: config file path
	OutputDir  string // DOC2NB_OUTPUT_DIR: default output directory
	Kernel     string // DOC2NB_KERNEL: kernel language tag
	Workers    int    // DOC2NB_WORKERS: parallel workers
}

// knownEnvVars lists valid DOC2NB_* environment variables. Used to detect
// typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOC2NB_CONFIG":     true,
	"DOC2NB_OUTPUT_DIR": true,
	"DOC2NB_KERNEL":     true,
	"DOC2NB_WORKERS":    true,
}

// loadEnvConfig reads DOC2NB_* variables, warning on stderr about unknown
// names and unparseable values rather than failing.
func loadEnvConfig(stderr io.Writer) *envConfig {
	env := &envConfig{
		ConfigPath: os.Getenv("DOC2NB_CONFIG"),
		OutputDir:  os.Getenv("DOC2NB_OUTPUT_DIR"),
		Kernel:     os.Getenv("DOC2NB_KERNEL"),
	}

	if raw := os.Getenv("DOC2NB_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Fprintf(stderr, "warning: ignoring DOC2NB_WORKERS=%q (not a non-negative integer)\n", raw)
		} else {
			env.Workers = n
		}
	}

	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "DOC2NB_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(stderr, "warning: unknown environment variable %s\n", name)
		}
	}

	return env
}
