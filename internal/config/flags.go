package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/washledger/internal/flagx"
)

var knownFlags = []string{"-b", "-n", "-f", "-d", "-r", "-e", "-u", "-p", "-k", "-x", "-t", "-l", "-o", "-g"}

// parseFlags overlays cfg with command-line flags:
//
//	-b string   storage backend: memory, sqlite, postgres or s3
//	-n string   sheet name
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-r string   S3 region
//	-e string   S3 base endpoint
//	-u string   S3 access key
//	-p string   S3 secret key
//	-k string   S3 bucket
//	-x string   S3 object prefix
//	-t int      snapshot cache TTL in seconds
//	-l string   log level
//	-o string   export directory
//	-g int      lines per exported document page
//
// Only these flags are looked at, so -c/-config and anything else passes
// through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (memory, sqlite, postgres, s3)")
	fs.StringVar(&cfg.Sheet, "n", cfg.Sheet, "sheet name")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.S3Region, "r", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "k", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Prefix, "x", cfg.S3Prefix, "S3 object prefix")
	ttl := fs.Int("t", int(cfg.CacheTTL.Seconds()), "snapshot cache TTL (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")
	fs.IntVar(&cfg.PageLines, "g", cfg.PageLines, "lines per exported document page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.CacheTTL = time.Duration(*ttl) * time.Second
		}
	})
}
