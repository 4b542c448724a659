package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/washledger/internal/config"
	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/sheet"
)

// openStore builds the configured backend and returns a function that
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (sheet.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return sheet.NewMemoryStore(models.Columns), noop, nil

	case config.BackendSQLite:
		s, db, err := sheet.OpenSQLite(ctx, cfg.SQLitePath, cfg.Sheet, models.Columns)
		if err != nil {
			return nil, nil, err
		}
		return s, db.Close, nil

	case config.BackendPostgres:
		s, db, err := sheet.OpenPostgres(ctx, cfg.DatabaseDSN, cfg.Sheet, models.Columns)
		if err != nil {
			return nil, nil, err
		}
		return s, db.Close, nil

	case config.BackendS3:
		s, err := sheet.OpenS3(ctx, sheet.S3Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
		}, cfg.Sheet, models.Columns)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
