package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			Hooks: HooksConfig{
				Started: HookSource{Code: "return"},
				Handle:  HookSource{File: "handle.lua"},
			},
			Globals: map[string]any{
				"name":  "x",
				"count": int64(3),
				"tags":  []any{"a", "b"},
				"meta":  map[string]any{"ok": true},
			},
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("conflicting hook source", func(t *testing.T) {
		cfg := &Config{
			Hooks: HooksConfig{
				Handle: HookSource{Code: "return", File: "handle.lua"},
			},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflictingSource)
		assert.Contains(t, err.Error(), "handle")
	})

	t.Run("unrepresentable global", func(t *testing.T) {
		cfg := &Config{
			Globals: map[string]any{"when": time.Now()},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGlobal)
		assert.Contains(t, err.Error(), "when")
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		cfg := &Config{
			Hooks: HooksConfig{
				Started: HookSource{Code: "return", File: "s.lua"},
				Stopped: HookSource{Code: "return", File: "t.lua"},
			},
			Globals: map[string]any{"when": time.Now()},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflictingSource)
		assert.ErrorIs(t, err, ErrInvalidGlobal)
		assert.Contains(t, err.Error(), "started")
		assert.Contains(t, err.Error(), "stopped")
	})

	t.Run("datetime global from toml is rejected", func(t *testing.T) {
		cfg, err := NewConfigFromReader(strings.NewReader(`
[globals]
deployed = 2026-01-02T03:04:05Z
`))
		require.NoError(t, err)
		err = cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGlobal)
	})
}
