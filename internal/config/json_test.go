package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"backend":          "postgres",
		"database_dsn":     "postgres://till@db/washes",
		"cache_ttl":        "2s",
		"s3_bucket":        "archive",
		"page_lines":       30,
		"s3_root_password": "secret",
	})

	t.Run("overlays present keys only", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, BackendPostgres, cfg.Backend)
		assert.Equal(t, "postgres://till@db/washes", cfg.DatabaseDSN)
		assert.Equal(t, 2*time.Second, cfg.CacheTTL)
		assert.Equal(t, "archive", cfg.S3Bucket)
		assert.Equal(t, 30, cfg.PageLines)
		assert.Equal(t, "secret", cfg.S3RootPassword)
		assert.Equal(t, "Washes", cfg.Sheet, "missing key keeps default")
	})

	t.Run("no config flag leaves cfg alone", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{Backend: "memory"}
		parseJson(cfg)
		assert.Equal(t, &Config{Backend: "memory"}, cfg)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("flags win over json", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", path, "-b", "memory", "-t", "7"}
		cfg := LoadConfig()
		assert.Equal(t, BackendMemory, cfg.Backend)
		assert.Equal(t, 7*time.Second, cfg.CacheTTL)
		assert.Equal(t, "archive", cfg.S3Bucket)
	})
}
