// Package cli implements the interactive option ledger shell. It is a thin
// external caller: every command maps onto one ledger service operation and
// renders the result.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/optionledger/internal/ledger/config"
	"github.com/dmitrijs2005/optionledger/internal/ledger/db"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/options"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/ownerships"
	"github.com/dmitrijs2005/optionledger/internal/ledger/repositories/users"
	"github.com/dmitrijs2005/optionledger/internal/ledger/services"
	"github.com/dmitrijs2005/optionledger/internal/logging"
)

type App struct {
	config *config.Config
	ledger *services.LedgerService
	db     *sql.DB
	log    logging.Logger
	out    io.Writer
}

// NewApp opens the ledger database, wires the repositories into the service,
// and returns an App ready to Run. The database handle lives for the
// process; Run closes it on exit.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dbh, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	svc := services.NewLedgerService(
		users.NewSQLiteRepository(dbh),
		options.NewSQLiteRepository(dbh),
		ownerships.NewSQLiteRepository(dbh),
		log,
	)

	return &App{config: cfg, ledger: svc, db: dbh, log: log, out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}
