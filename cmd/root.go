package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/config"
	"github.com/psds-microservice/employee-seed/internal/logger"
	"github.com/psds-microservice/employee-seed/pkg/constants"
)

var (
	rootDebug  bool
	rootConfig string
)

var rootCmd = &cobra.Command{
	Use:   "employee-seed",
	Short: "Employee seed data: CSV → SQL inserts, migrations, DB connectivity check",
	RunE:  runGenerate, // по умолчанию — генерация SQL
	// ошибки печатает main через log.Fatal
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает корневую команду (Cobra CLI). SIGINT/SIGTERM отменяют контекст команды.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&rootConfig, "config", constants.DefaultConfigPath, "Path to config.yaml")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup загружает .env, конфиг и создаёт логгер — общая часть всех команд
func setup() (*config.Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(rootConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(rootDebug, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}
