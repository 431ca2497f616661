package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "api_base_url": "http://api:7000",
  "push_url": "ws://api:7000/gamestats",
  "request_timeout": "3s"
}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://api:7000", cfg.APIBaseURL)
	assert.Equal(t, "ws://api:7000/gamestats", cfg.PushURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep their defaults
	assert.Equal(t, "courtside.db", cfg.DatabasePath)
}

func TestParseJson_NoFileNamed(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:5087", cfg.APIBaseURL)
}
