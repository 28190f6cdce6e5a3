package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is the base error type for config package errors.
	ErrConfig = errors.New("config error")

	// ErrUnsupportedFormat indicates the config file is not TOML.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format, only .toml is supported", ErrConfig)

	// ErrConflictingSource indicates a hook sets both inline code and a file path.
	ErrConflictingSource = fmt.Errorf("%w: hook sets both code and file", ErrConfig)

	// ErrInvalidGlobal indicates a global value cannot be represented in Lua.
	ErrInvalidGlobal = fmt.Errorf("%w: global value not representable in lua", ErrConfig)
)

// NewConflictingSourceError returns a new error for a hook with two sources.
func NewConflictingSourceError(hook string) error {
	return fmt.Errorf("%w: %s", ErrConflictingSource, hook)
}

// NewInvalidGlobalError returns a new error for an unrepresentable global.
func NewInvalidGlobalError(key string, value any) error {
	return fmt.Errorf("%w: %s (%T)", ErrInvalidGlobal, key, value)
}
