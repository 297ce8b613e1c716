package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/tendolkarurja/IPD/internal/config"
	"github.com/tendolkarurja/IPD/migrations"
	"github.com/wb-go/wbf/logger"
)

// RunMigrations applies a goose command (up, down, status, ...) using the
// SQL files embedded in the binary.
func RunMigrations(ctx context.Context, cfg *config.Config, log logger.Logger, command string, args ...string) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err = goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "migrations applied",
		logger.String("command", command),
	)
	return nil
}
