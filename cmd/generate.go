package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/config"
	"github.com/psds-microservice/employee-seed/internal/seed"
)

var (
	generateInput     string
	generateOutput    string
	generateDelimiter string
	generateStrict    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate INSERT statements for employees from a CSV file",
	Long: `Reads the CSV (header row first) and writes one INSERT INTO employees statement
per data row, newline-separated, in file order. The output file is replaced.

Values are written as escaped SQL string literals: a single quote is doubled
(O'Brien -> 'O''Brien') and a value containing a backslash becomes an E'...'
literal with the backslash doubled. Other values appear unchanged.`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateInput, "input", "i", "", "CSV file with employees (default from config: ./seed/data.csv)")
	cmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output .sql file (default from config: ./seed/generated_inserts.sql)")
	cmd.Flags().StringVar(&generateDelimiter, "delimiter", "", "CSV delimiter (default ,)")
	cmd.Flags().BoolVar(&generateStrict, "strict", false, "Fail on rows or headers with missing fields")
}

// applyGenerateFlags переносит явно заданные флаги поверх конфига
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Seed.Input = generateInput
	}
	if flags.Changed("output") {
		cfg.Seed.Output = generateOutput
	}
	if flags.Changed("delimiter") {
		cfg.Seed.Delimiter = generateDelimiter
	}
	if flags.Changed("strict") {
		cfg.Seed.Strict = generateStrict
	}
}

func seedOptions(cfg *config.Config) (seed.Options, error) {
	opts := seed.Options{Strict: cfg.Seed.Strict}
	if cfg.Seed.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(cfg.Seed.Delimiter)
		if r == utf8.RuneError || size != len(cfg.Seed.Delimiter) {
			return opts, fmt.Errorf("delimiter %q: must be a single character", cfg.Seed.Delimiter)
		}
		opts.Delimiter = r
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	logger.Debug("Generating seed SQL",
		zap.String("input", cfg.Seed.Input),
		zap.String("output", cfg.Seed.Output),
		zap.Bool("strict", opts.Strict))

	summary, err := seed.NewGenerator(logger, opts).Generate(cmd.Context(), cfg.Seed.Input, cfg.Seed.Output)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "SQL statements generated in %s\n", summary.Output)
	return nil
}
