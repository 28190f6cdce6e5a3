// Package luactor builds actors whose lifecycle hooks (started, handle,
// stopped) are Lua scripts executed on an embedded gopher-lua VM.
package luactor

import (
	"errors"
	"fmt"
)

var (
	// ErrLuaActor is the base error type for luactor package errors.
	ErrLuaActor = errors.New("lua actor error")

	// ErrReadScript indicates a hook script file could not be read.
	ErrReadScript = fmt.Errorf("%w: failed to read script", ErrLuaActor)

	// ErrScriptEncoding indicates a hook script file is not valid UTF-8.
	ErrScriptEncoding = fmt.Errorf("%w: script is not valid UTF-8", ErrLuaActor)

	// ErrScriptSyntax indicates a hook script failed to compile.
	ErrScriptSyntax = fmt.Errorf("%w: script syntax error", ErrLuaActor)

	// ErrVMInit indicates the VM initialization routine reported a failure.
	ErrVMInit = fmt.Errorf("%w: vm initialization failed", ErrLuaActor)

	// ErrBuilderConsumed indicates Build was called on a builder that has
	// already produced an actor.
	ErrBuilderConsumed = fmt.Errorf("%w: builder already consumed", ErrLuaActor)
)

// NewReadScriptError returns a new error for a script file that could not be read.
func NewReadScriptError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrReadScript, path, cause)
}

// NewScriptSyntaxError returns a new error for a hook whose source failed to compile.
func NewScriptSyntaxError(hook string, cause error) error {
	return fmt.Errorf("%w: %s hook: %w", ErrScriptSyntax, hook, cause)
}
