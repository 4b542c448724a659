package config

import (
	"fmt"
	"time"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Config holds runtime settings for the till.
//
//   - Backend selects where the sheet lives; Sheet names it within the backend.
//   - SQLitePath / DatabaseDSN locate the SQL-hosted sheets.
//   - S3* settings locate the CSV object and the credentials to reach it.
//   - CacheTTL bounds how long a sheet read is reused.
//   - ExportDir and PageLines shape the export files.
type Config struct {
	Backend     string
	Sheet       string
	SQLitePath  string
	DatabaseDSN string

	S3Region       string
	S3BaseEndpoint string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Prefix       string

	CacheTTL  time.Duration
	LogLevel  string
	ExportDir string
	PageLines int
}

// LoadDefaults populates c with defaults suitable for a single till.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.Sheet = "Washes"
	c.SQLitePath = "washledger.db"
	c.DatabaseDSN = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = "washledger"
	c.S3Prefix = ""
	c.CacheTTL = 5 * time.Second
	c.LogLevel = "info"
	c.ExportDir = "exports"
	c.PageLines = 60
}

// Validate reports settings the till cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite, BackendS3:
	case BackendPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("backend %s needs a database DSN", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Sheet == "" {
		return fmt.Errorf("sheet name is empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.CacheTTL)
	}
	return nil
}

// LoadConfig builds a Config from defaults, JSON and flags, in that order.
// It panics on unreadable or invalid input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
