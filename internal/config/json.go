package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/washledger/internal/flagx"
	"github.com/dmitrijs2005/washledger/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" or
// integer nanoseconds.
type JsonConfig struct {
	Backend     string `json:"backend"`
	Sheet       string `json:"sheet"`
	SQLitePath  string `json:"sqlite_path"`
	DatabaseDSN string `json:"database_dsn"`

	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Prefix       string `json:"s3_prefix"`

	CacheTTL  timex.Duration `json:"cache_ttl"`
	LogLevel  string         `json:"log_level"`
	ExportDir string         `json:"export_dir"`
	PageLines int            `json:"page_lines"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their current values. Panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.Sheet, jc.Sheet)
	overlay(&cfg.SQLitePath, jc.SQLitePath)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3RootUser, jc.S3RootUser)
	overlay(&cfg.S3RootPassword, jc.S3RootPassword)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Prefix, jc.S3Prefix)
	overlay(&cfg.CacheTTL, jc.CacheTTL.Duration)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.ExportDir, jc.ExportDir)
	overlay(&cfg.PageLines, jc.PageLines)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
