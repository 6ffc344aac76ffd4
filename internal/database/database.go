package database

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/sijms/go-ora/v2"
)

// Драйверы database/sql, доступные для вторичной БД
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverOracle   = "oracle"
)

// Open открывает *sql.DB для указанного драйвера (postgres — lib/pq, mysql, oracle — go-ora)
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres, DriverMySQL, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return sql.Open(driver, dsn)
}
