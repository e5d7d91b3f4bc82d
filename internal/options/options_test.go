package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	dim   int
	name  string
	calls []string
}

var errNegative = errors.New("dimension cannot be negative")

func withDim(dim int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if dim < 0 {
			return errNegative
		}
		c.dim = dim
		c.calls = append(c.calls, "dim")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withName("blob"), withDim(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.dim)
		require.Equal(t, "blob", cfg.name)
		require.Equal(t, []string{"name", "dim"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withDim(-1), withName("skipped"))
		require.ErrorIs(t, err, errNegative)
		require.Empty(t, cfg.name)
		require.Empty(t, cfg.calls)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &testConfig{}

		require.NoError(t, Apply(cfg))
		require.Zero(t, cfg.dim)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &testConfig{}

		require.NoError(t, Apply(cfg, nil, withDim(2)))
		require.Equal(t, 2, cfg.dim)
	})
}
