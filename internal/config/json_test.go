package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"controller": {
			"host": "https://unifi.example",
			"username": "syncbot",
			"password": "hunter2",
			"site": "office",
			"request_timeout": "45s",
			"verify_tls": true
		},
		"app": {
			"filter_file": "/var/lib/filters.txt"
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "https://unifi.example", cfg.Controller.Host)
	assert.Equal(t, "syncbot", cfg.Controller.Username)
	assert.Equal(t, "hunter2", cfg.Controller.Password)
	assert.Equal(t, "office", cfg.Controller.Site)
	assert.Equal(t, 45*time.Second, cfg.Controller.RequestTimeout)
	assert.True(t, cfg.Controller.VerifyTLS)
	assert.Equal(t, "/var/lib/filters.txt", cfg.App.FilterFile)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
}

func TestGetConfig_JSONFileMerged(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"controller":{"site":"office"}}`), 0o644))
	t.Setenv("FILTERSYNC_CONFIG", path)

	cfg, err := GetConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "office", cfg.Controller.Site)
	// defaults still fill the rest
	assert.Equal(t, "https://unifi.local", cfg.Controller.Host)
}
