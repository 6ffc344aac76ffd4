package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/errors"
)

// Options — параметры чтения CSV
type Options struct {
	Delimiter rune
	Strict    bool
}

// Summary — итог одного запуска
type Summary struct {
	Rows   int
	Output string
}

// Generator превращает CSV с сотрудниками в файл INSERT-выражений
type Generator struct {
	logger  *zap.Logger
	decoder *Decoder
}

// NewGenerator создаёт генератор
func NewGenerator(logger *zap.Logger, opts Options) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		logger:  logger,
		decoder: NewDecoder(opts.Delimiter, opts.Strict),
	}
}

// Statements читает inputPath целиком и возвращает выражения в порядке строк файла
func (g *Generator) Statements(ctx context.Context, inputPath string) ([]Statement, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, &errors.ReadError{Path: inputPath, Err: err}
	}
	defer f.Close()

	var statements []Statement
	err = g.decoder.Decode(ctx, f, inputPath, func(r Record) error {
		st := Format(r)
		if missing := st.Missing(); len(missing) > 0 {
			g.logger.Warn("Row has missing fields, substituting empty values",
				zap.Int("line", st.Line()),
				zap.Strings("fields", missing))
		}
		statements = append(statements, st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statements, nil
}

// Generate пишет в outputPath по одному INSERT на строку inputPath, разделяя их переводом строки.
// Файл записывается только после чтения всего источника и полностью заменяет прежнее содержимое.
func (g *Generator) Generate(ctx context.Context, inputPath, outputPath string) (Summary, error) {
	statements, err := g.Statements(ctx, inputPath)
	if err != nil {
		return Summary{}, err
	}

	lines := make([]string, len(statements))
	for i, st := range statements {
		lines[i] = st.String()
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, &errors.WriteError{Path: outputPath, Err: err}
		}
	}
	if err := os.WriteFile(outputPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return Summary{}, &errors.WriteError{Path: outputPath, Err: err}
	}

	g.logger.Info("SQL statements generated",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("statements", len(statements)))

	return Summary{Rows: len(statements), Output: outputPath}, nil
}
