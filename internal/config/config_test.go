package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, toml.Unmarshal(data, &onDisk))
	assert.Equal(t, Default(), onDisk)
}

func TestLoadOrCreate_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
char_limit = 80

[keys]
quit = "x"
delete = "backspace"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.CharLimit)
	assert.Equal(t, DefaultPlaceholder, cfg.Placeholder)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "backspace", cfg.Keys.Delete)
	assert.Equal(t, " ", cfg.Keys.Toggle)
	assert.Equal(t, "enter", cfg.Keys.Confirm)
}

func TestLoadOrCreate_FixesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("placeholder = \"\"\nchar_limit = -1\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPlaceholder, cfg.Placeholder)
	assert.Equal(t, DefaultCharLimit, cfg.CharLimit)
}

func TestLoadOrCreate_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("keys = [unterminated"), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/tmp/custom.toml")
		assert.Equal(t, "/tmp/custom.toml", ResolveConfigPath())
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		dir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("no user config dir on this system")
		}
		assert.Equal(t, filepath.Join(dir, AppName, DefaultConfigFileName), ResolveConfigPath())
	})
}
