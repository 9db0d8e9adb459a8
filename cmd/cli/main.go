package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/optionledger/internal/buildinfo"
	"github.com/dmitrijs2005/optionledger/internal/cli"
	"github.com/dmitrijs2005/optionledger/internal/ledger/config"
	"github.com/dmitrijs2005/optionledger/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
