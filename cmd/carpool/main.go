package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tendolkarurja/IPD/internal/app"
	"github.com/tendolkarurja/IPD/internal/config"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "carpool",
		Short: "Carpool ride matching and reservation service",
		Long: `carpool matches riders to published ride offers, reserves seats without
overselling and keeps driver ratings in step with submitted reviews.

Configuration is read from a yaml file (--config, CONFIG_PATH or
config/config.yaml); every key can be overridden by its environment variable.`,
		SilenceUsage: true,
		RunE:         serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the stale ride sweeper",
		RunE:  serve,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate [up|down|status|version|redo|reset]",
		Short: "Run database migrations",
		RunE:  migrate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func serve(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}

func migrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("migrations need storage.driver=%s, got %s", config.StoragePostgres, cfg.Storage.Driver)
	}

	log, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}

	command := "up"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	return app.RunMigrations(cmd.Context(), cfg, log, command, args...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
