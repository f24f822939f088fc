// Package codegen resolves a FIX Orchestra repository into class artifact
// descriptions for the QuickFIX/J class model and writes them through a
// pluggable renderer backend.
package codegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig indicates a rejected option combination.
	ErrInvalidConfig = errors.New("quickfixj: invalid configuration")
	// ErrGenerationFailed indicates an artifact could not be written.
	ErrGenerationFailed = errors.New("quickfixj: code generation failed")
)

// ConfigError reports a rejected generation option. Conflict carries the
// other option identifier when two options are mutually exclusive.
type ConfigError struct {
	Option   string
	Conflict string
	Message  string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("quickfixj: config error for %q (conflicts with %q): %s", e.Option, e.Conflict, e.Message)
	}
	return fmt.Sprintf("quickfixj: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option, conflict, message string) *ConfigError {
	return &ConfigError{
		Option:   option,
		Conflict: conflict,
		Message:  message,
	}
}

// IntegrityError reports a member reference that does not resolve in its
// lookup table. Integrity errors are diagnostic only: the reference is
// skipped and traversal continues, so one malformed cross-reference degrades
// output locally instead of aborting the run.
type IntegrityError struct {
	Op   string
	Kind string
	ID   int
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("quickfixj: %s: %s missing from repository; id=%d", e.Op, e.Kind, e.ID)
}

// NewIntegrityError creates a new IntegrityError.
func NewIntegrityError(op, kind string, id int) *IntegrityError {
	return &IntegrityError{Op: op, Kind: kind, ID: id}
}

// GenerationError reports a failure while rendering or writing one artifact.
type GenerationError struct {
	Artifact string
	Path     string
	Cause    error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("quickfixj: generate %s (%s): %v", e.Artifact, e.Path, e.Cause)
	}
	return fmt.Sprintf("quickfixj: generate %s: %v", e.Artifact, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(artifact, path string, cause error) *GenerationError {
	return &GenerationError{Artifact: artifact, Path: path, Cause: cause}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
