package main

import (
	"errors"

	"github.com/alnah/go-grocerylist"
	"github.com/alnah/go-grocerylist/internal/config"
)

// Exit codes for the grocerylist CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every list generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitInput   = 3 // Input missing, unreadable, or not text
	ExitOutput  = 4 // Output not writable or write failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Output errors (exit 4)
	if errors.Is(err, grocerylist.ErrOutputNotWritable) ||
		errors.Is(err, grocerylist.ErrOutputIO) ||
		errors.Is(err, grocerylist.ErrOutputIsInput) {
		return ExitOutput
	}

	// Input errors (exit 3)
	if errors.Is(err, grocerylist.ErrInputNotFound) ||
		errors.Is(err, grocerylist.ErrInputNotReadable) ||
		errors.Is(err, grocerylist.ErrInputDecode) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoListFiles) {
		return ExitInput
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, grocerylist.ErrInvalidMode) ||
		errors.Is(err, grocerylist.ErrInvalidNames) ||
		errors.Is(err, grocerylist.ErrInvalidFormat) ||
		errors.Is(err, grocerylist.ErrInvalidLayout) ||
		errors.Is(err, grocerylist.ErrTemplateNotFound) ||
		errors.Is(err, grocerylist.ErrTemplateParse) ||
		errors.Is(err, grocerylist.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrAmbiguousOutput) {
		return ExitUsage
	}

	return ExitGeneral
}
