package config

import (
	"errors"
)

// Validate checks the actor definition for structural problems. Script
// compilation is not attempted here; that happens when the builder's Build
// runs.
func (c *Config) Validate() error {
	var errs []error

	for _, hook := range []struct {
		name   string
		source HookSource
	}{
		{"started", c.Hooks.Started},
		{"handle", c.Hooks.Handle},
		{"stopped", c.Hooks.Stopped},
	} {
		if hook.source.Code != "" && hook.source.File != "" {
			errs = append(errs, NewConflictingSourceError(hook.name))
		}
	}

	for key, value := range c.Globals {
		if !representable(value) {
			errs = append(errs, NewInvalidGlobalError(key, value))
		}
	}

	return errors.Join(errs...)
}

// representable reports whether a decoded TOML value can be marshalled into
// a Lua global.
func representable(value any) bool {
	switch v := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case []any:
		for _, item := range v {
			if !representable(item) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range v {
			if !representable(item) {
				return false
			}
		}
		return true
	default:
		// toml datetimes and anything exotic stay host-side
		return false
	}
}
