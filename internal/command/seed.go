package command

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/psds-microservice/employee-seed/internal/seed"
)

// Execer — минимальный интерфейс для выполнения выражений (*pgxpool.Pool, pgx.Tx)
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Seed выполняет выражения по одному в исходном порядке, значения передаются параметрами.
// Без транзакции: при ошибке уже вставленные строки остаются.
func Seed(ctx context.Context, db Execer, statements []seed.Statement, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	inserted := 0
	for _, st := range statements {
		if _, err := db.Exec(ctx, st.Query(), st.Args()...); err != nil {
			return inserted, fmt.Errorf("insert row from line %d: %w", st.Line(), err)
		}
		inserted++
		logger.Debug("Row inserted", zap.Int("line", st.Line()))
	}
	return inserted, nil
}
