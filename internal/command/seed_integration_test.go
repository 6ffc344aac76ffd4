//go:build integration

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/psds-microservice/employee-seed/internal/seed"
)

func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("employees"),
		postgres.WithUsername("seed"),
		postgres.WithPassword("seed"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return url
}

func TestSeed_Postgres(t *testing.T) {
	url := setupPostgres(t)
	ctx := context.Background()

	migrations, err := filepath.Abs("../../database/migrations")
	require.NoError(t, err)
	require.NoError(t, MigrateUp("file://"+migrations, url))
	require.NoError(t, MigrateUp("file://"+migrations, url), "second run is a no-op")

	input := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Employee Name,email,alphanumeric,Employee Start Date,Current Line Manager,Line Manager Department,Department,Department email\n"+
			"Jane Doe,jane@x.com,A1,01.02.23,Bob,Ops,Eng,eng@x.com\n"+
			"Pat O'Brien,pat@x.com,B2,15.06.21,Alice,Eng,Ops,ops@x.com\n"), 0o644))

	statements, err := seed.NewGenerator(nil, seed.Options{}).Statements(ctx, input)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	n, err := Seed(ctx, pool, statements, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var (
		name  string
		start time.Time
	)
	err = pool.QueryRow(ctx, "SELECT name, start_date FROM employees WHERE alphanumeric = 'B2'").Scan(&name, &start)
	require.NoError(t, err)
	assert.Equal(t, "Pat O'Brien", name)
	assert.Equal(t, time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), start)

	// текстовый вариант выражений тоже исполняется
	for _, st := range statements {
		_, err := pool.Exec(ctx, st.String())
		require.NoError(t, err)
	}
	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM employees").Scan(&count))
	assert.Equal(t, 4, count)

	require.NoError(t, MigrateDown("file://"+migrations, url))
}
