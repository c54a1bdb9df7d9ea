package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"musicdb/internal/config"
	"musicdb/internal/logging"
	"musicdb/internal/store"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "musicdb",
		Usage: "Music catalogue API backed by PostgreSQL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional TOML configuration file",
				Sources: cli.EnvVars("MUSICDB_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: runServe,
			},
			{
				Name:  "migrate",
				Usage: "Manage the database schema",
				Commands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "Create every catalogue table",
						Action: runMigrateUp,
					},
					{
						Name:   "down",
						Usage:  "Drop every catalogue table",
						Action: runMigrateDown,
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Load the demo catalogue",
				Action: runSeed,
			},
		},
	}
}

// setup loads configuration, installs the global logger and connects to the
// database. The caller owns the returned handle.
func setup(ctx context.Context, cmd *cli.Command) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}

	logging.SetGlobalLogger(logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}))

	db, err := openDatabase(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, db, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := store.MigrateUp(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("schema up to date")
	}

	dataStore := store.New(db)
	if cfg.SeedDemo {
		if err := dataStore.SeedDemo(ctx); err != nil {
			return err
		}
		log.Info().Msg("demo catalogue loaded")
	}

	return serve(ctx, cfg, newHTTPHandler(cfg, dataStore))
}

func runMigrateUp(ctx context.Context, cmd *cli.Command) error {
	_, db, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.MigrateUp(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("migrations applied")
	return nil
}

func runMigrateDown(ctx context.Context, cmd *cli.Command) error {
	_, db, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.MigrateDown(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("migrations rolled back")
	return nil
}

func runSeed(ctx context.Context, cmd *cli.Command) error {
	_, db, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.New(db).SeedDemo(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info().Msg("demo catalogue loaded")
	return nil
}
