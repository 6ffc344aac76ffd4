package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/command"
	"github.com/psds-microservice/employee-seed/internal/config"
	"github.com/psds-microservice/employee-seed/internal/database"
	"github.com/psds-microservice/employee-seed/internal/seed"
)

var seedSkipMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert employees from the CSV into PostgreSQL (migrate up first)",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	addGenerateFlags(seedCmd)
	seedCmd.Flags().BoolVar(&seedSkipMigrate, "skip-migrate", false, "Do not run migrations before seeding")
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		User:            cfg.Database.User,
		Host:            cfg.Database.Host,
		Database:        cfg.Database.Name,
		Password:        cfg.Database.Password,
		Port:            cfg.Database.Port,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	applyGenerateFlags(cmd, cfg)
	opts, err := seedOptions(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	statements, err := seed.NewGenerator(logger, opts).Statements(ctx, cfg.Seed.Input)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if !seedSkipMigrate {
		if err := command.MigrateUp(cfg.Migrations.Source, cfg.DatabaseURL()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, poolConfig(cfg))
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer pool.Close()

	n, err := command.Seed(ctx, pool, statements, logger)
	if err != nil {
		logger.Error("Seed aborted", zap.Int("inserted", n), zap.Error(err))
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("Seed completed", zap.String("input", cfg.Seed.Input), zap.Int("inserted", n))
	fmt.Fprintf(cmd.OutOrStdout(), "seed: %d rows inserted\n", n)
	return nil
}
