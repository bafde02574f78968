package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/physim/gm"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()
	require.Equal(t, "Physics Sim", config.Window.Title)
	require.Equal(t, 800, config.Window.Width)
	require.Equal(t, 600, config.Window.Height)
	require.True(t, config.Window.VSync)
	require.NoError(t, config.Validate())

	require.Equal(t, gm.RectWithSize(gm.VecOf(800, 600)), config.Bounds())
}

func TestParse(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		config, err := Parse(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("partial override", func(t *testing.T) {
		config, err := Parse([]byte(`
window:
  title: Sandbox
simulation:
  gravity: {x: 25}
  balls: 3
`))

		require.NoError(t, err)

		expected := Default()
		expected.Window.Title = "Sandbox"
		expected.Simulation.Gravity = gm.VecOf(25, 300)
		expected.Simulation.Balls = 3
		require.Equal(t, expected, config)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Parse([]byte(`
window:
  width: 0
simulation:
  tps: -1
`))

		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "window.width")
		require.ErrorContains(t, err, "simulation.tps")
	})

	t.Run("ball too large", func(t *testing.T) {
		_, err := Parse([]byte(`
simulation:
  radius: {min: 10, max: 400}
`))

		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "does not fit")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("window: ["))
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physim.yaml")

	_, err := Load(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("simulation: {elasticity: 0.5}"), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.5, config.Simulation.Elasticity)
	require.Equal(t, Default().Window, config.Window)
}
