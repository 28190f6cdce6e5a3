package luactor

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHierarchy(t *testing.T) {
	for _, err := range []error{ErrReadScript, ErrScriptEncoding, ErrScriptSyntax, ErrVMInit} {
		assert.ErrorIs(t, err, ErrLuaActor)
	}
}

func TestNewReadScriptError(t *testing.T) {
	err := NewReadScriptError("hooks/started.lua", fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrReadScript)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "hooks/started.lua")
}

func TestNewScriptSyntaxError(t *testing.T) {
	cause := errors.New("unexpected symbol near '+'")
	err := NewScriptSyntaxError("handle", cause)
	assert.ErrorIs(t, err, ErrScriptSyntax)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "handle hook")
}
