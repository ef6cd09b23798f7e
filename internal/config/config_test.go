package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.CheckInit())

	assert.Equal(t, 1200, cfg.Starfield.Count)
	assert.Equal(t, 900, cfg.Mist.Count)
	assert.Equal(t, 12, cfg.Bodies.Count)
	assert.Equal(t, 14.0, cfg.Camera.Distance)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTheme(t, `
[colors]
top = 255 128 0
bottom = 10 10 10

[starfield]
count = 600

[camera]
distance = 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, RGB{255, 128, 0}, cfg.Colors.Top)
	assert.Equal(t, RGB{10, 10, 10}, cfg.Colors.Bottom)
	assert.Equal(t, 600, cfg.Starfield.Count)
	assert.Equal(t, 20.0, cfg.Camera.Distance)

	// Untouched sections keep their defaults.
	assert.Equal(t, 900, cfg.Mist.Count)
	assert.Equal(t, 12, cfg.Bodies.Count)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative star count": "[starfield]\ncount = -5\n",
		"opacity above one":   "[mist]\nopacity = 1.5\n",
		"zero camera dist":    "[camera]\ndistance = 0\n",
		"bad color":           "[colors]\ntop = 300 0 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTheme(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestRGBNorm(t *testing.T) {
	c := RGB{255, 0, 51}
	n := c.Norm()
	assert.Equal(t, float32(1), n[0])
	assert.Equal(t, float32(0), n[1])
	assert.InDelta(t, 0.2, float64(n[2]), 1e-6)
}
