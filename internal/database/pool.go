package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Значения по умолчанию, если поле не задано
const (
	DefaultHost = "localhost"
	DefaultPort = 5432
)

// PoolConfig — параметры пула соединений с PostgreSQL. Пустые поля допустимы:
// pgx подставит свои значения по умолчанию или вернёт ошибку при подключении.
type PoolConfig struct {
	User     string
	Host     string
	Database string
	Password string
	Port     int
	SSLMode  string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

// ParsePoolConfig превращает PoolConfig в конфигурацию pgxpool без подключения к БД.
// Значения передаются через postgres URL, экранирование делает net/url.
func ParsePoolConfig(cfg PoolConfig) (*pgxpool.Config, error) {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	pgCfg, err := pgxpool.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed parsing postgres pool config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pgCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pgCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pgCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	return pgCfg, nil
}

// NewPool создаёт пул соединений. Пул принадлежит вызывающему, закрывать его через Close.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pgCfg, err := ParsePoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create a postgres connection pool: %w", err)
	}
	return pool, nil
}
