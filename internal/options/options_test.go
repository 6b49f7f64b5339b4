package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Limit int
	Label string
	Calls []string
}

func withLimit(n int) Option[*sampleConfig] {
	return New(func(c *sampleConfig) error {
		if n < 0 {
			return errors.New("limit cannot be negative")
		}
		c.Limit = n
		c.Calls = append(c.Calls, "limit")

		return nil
	})
}

func withLabel(label string) Option[*sampleConfig] {
	return NoError(func(c *sampleConfig) {
		c.Label = label
		c.Calls = append(c.Calls, "label")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &sampleConfig{}
		err := Apply(cfg, withLabel("a"), withLimit(3), withLabel("b"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Limit)
		require.Equal(t, "b", cfg.Label)
		require.Equal(t, []string{"label", "limit", "label"}, cfg.Calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &sampleConfig{}
		err := Apply(cfg, withLimit(-1), withLabel("never"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
		require.Empty(t, cfg.Label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &sampleConfig{}
		require.NoError(t, Apply(cfg, nil, withLimit(1)))
		require.Equal(t, 1, cfg.Limit)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &sampleConfig{}
		require.NoError(t, Apply(cfg))
		require.Zero(t, cfg.Limit)
	})
}
