package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/command"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply (up, default) or roll back (down) database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	direction := "up"
	if len(args) == 1 {
		direction = args[0]
	}

	migrateFn := command.MigrateUp
	if direction == "down" {
		migrateFn = command.MigrateDown
	}
	if err := migrateFn(cfg.Migrations.Source, cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Migrations applied",
		zap.String("direction", direction),
		zap.String("source", cfg.Migrations.Source),
		zap.String("database", cfg.Database.Name))
	return nil
}
