package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendSQLite, c.Backend)
	assert.Equal(t, "Washes", c.Sheet)
	assert.Equal(t, 5*time.Second, c.CacheTTL)
	assert.Equal(t, 60, c.PageLines)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"washledger"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "washledger.db", cfg.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
}

func TestLoadConfig_PanicsOnInvalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"washledger", "-b", "excel"}

	assert.Panics(t, func() { LoadConfig() })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"memory", func(c *Config) { c.Backend = BackendMemory }, false},
		{"s3", func(c *Config) { c.Backend = BackendS3 }, false},
		{"postgres without dsn", func(c *Config) { c.Backend = BackendPostgres }, true},
		{"postgres with dsn", func(c *Config) { c.Backend = BackendPostgres; c.DatabaseDSN = "postgres://x" }, false},
		{"unknown backend", func(c *Config) { c.Backend = "excel" }, true},
		{"empty sheet", func(c *Config) { c.Sheet = "" }, true},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
