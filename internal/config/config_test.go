package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Mode)
	assert.Equal(t, "en", cfg.Speech.Language)
	assert.Equal(t, "gpt-5-nano", cfg.Chat.Model)
	assert.NotEmpty(t, cfg.Links.Repository)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kaju.yaml")
	data := `
mode: offline
apps:
  code: /usr/bin/code
contacts:
  shalu: "94771234567"
links:
  profile: https://www.linkedin.com/in/someone
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "offline", cfg.Mode)
	assert.Equal(t, "/usr/bin/code", cfg.Apps["code"])
	assert.Equal(t, "94771234567", cfg.Contacts["shalu"])
	assert.Equal(t, "https://www.linkedin.com/in/someone", cfg.Links.Profile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kaju.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: loud\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid mode")
}
