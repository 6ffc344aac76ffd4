package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/config"
	"github.com/psds-microservice/employee-seed/internal/connectivity"
	"github.com/psds-microservice/employee-seed/internal/database"
)

var (
	pingPrimary bool
	pingTimeout time.Duration
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the secondary database (or --primary PostgreSQL)",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

func init() {
	pingCmd.Flags().BoolVar(&pingPrimary, "primary", false, "Check the primary PostgreSQL pool instead of the secondary database")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 10*time.Second, "Connection timeout")
}

func secondaryTarget(cfg *config.Config) database.Target {
	return database.Target{
		Driver:   cfg.Secondary.Driver,
		Host:     cfg.Secondary.Host,
		Port:     cfg.Secondary.Port,
		Service:  cfg.Secondary.Service,
		User:     cfg.Secondary.User,
		Password: cfg.Secondary.Password,
	}
}

func runPing(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
	defer cancel()

	var res connectivity.Result
	if pingPrimary {
		pool, err := database.NewPool(ctx, poolConfig(cfg))
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer pool.Close()
		target := fmt.Sprintf("postgres://%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
		res = connectivity.Check(ctx, target, pool)
	} else {
		res = connectivity.CheckTarget(ctx, secondaryTarget(cfg))
	}

	if !res.OK {
		logger.Error("Connection failed", zap.String("target", res.Target), zap.Error(res.Err))
		return res.Err
	}
	logger.Info("Connection successful", zap.String("target", res.Target), zap.Duration("latency", res.Latency))
	fmt.Fprintln(cmd.OutOrStdout(), "Connection successful!")
	return nil
}
