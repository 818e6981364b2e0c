package main

import (
	"errors"
	"os"

	"github.com/alnah/go-doc2nb/internal/config"
)

// Exit codes for the doc2nb CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitConversion = 4 // Tree decoding or conversion errors
	ExitWarnings   = 5 // Warnings escalated by --strict
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrWarnings) {
		return ExitWarnings
	}

	if errors.Is(err, ErrDecodeDoctree) || errors.Is(err, ErrConversion) {
		return ExitConversion
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDoctree) ||
		errors.Is(err, ErrWriteNotebook) {
		return ExitIO
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}
