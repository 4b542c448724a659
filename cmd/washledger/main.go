package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/washledger/internal/buildinfo"
	"github.com/dmitrijs2005/washledger/internal/cli"
	"github.com/dmitrijs2005/washledger/internal/config"
	"github.com/dmitrijs2005/washledger/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
