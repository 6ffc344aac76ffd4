package connectivity

import (
	"context"
	"time"

	"github.com/psds-microservice/employee-seed/internal/database"
	"github.com/psds-microservice/employee-seed/internal/errors"
)

// Pinger — всё, что умеет проверить соединение (*sql.DB, *pgxpool.Pool)
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc адаптирует функцию к Pinger (например, db.PingContext)
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Result — итог проверки соединения
type Result struct {
	Target  string
	OK      bool
	Latency time.Duration
	Err     error
}

// Check пингует target и возвращает результат вместо того, чтобы глотать ошибку
func Check(ctx context.Context, target string, p Pinger) Result {
	start := time.Now()
	err := p.Ping(ctx)
	res := Result{Target: target, OK: err == nil, Latency: time.Since(start)}
	if err != nil {
		res.Err = &errors.ConnectionError{Target: target, Err: err}
	}
	return res
}

// CheckTarget открывает одно соединение с вторичной БД, пингует и закрывает его
func CheckTarget(ctx context.Context, t database.Target) Result {
	dsn, err := t.DSN()
	if err != nil {
		return Result{Target: t.String(), Err: &errors.ConnectionError{Target: t.String(), Err: err}}
	}
	db, err := database.Open(t.Driver, dsn)
	if err != nil {
		return Result{Target: t.String(), Err: &errors.ConnectionError{Target: t.String(), Err: err}}
	}
	defer db.Close()

	return Check(ctx, t.String(), PingerFunc(db.PingContext))
}
