package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.Equal(t, 0.2, cfg.Density)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, 10, cfg.Speed)
}

func TestBindOverridesFromFlags(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"--width=30", "--density=0.5", "--speed=25"}))

	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 0.5, cfg.Density)
	assert.Equal(t, 25, cfg.Speed)
	assert.Equal(t, 50, cfg.Height, "untouched flags keep defaults")
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 30\ndensity: 0.35\n"), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 0.35, cfg.Density)
	assert.Equal(t, 50, cfg.Height, "keys absent from the file keep defaults")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [oops\n"), 0o644))
	assert.Error(t, cfg.LoadFile(path))
}
