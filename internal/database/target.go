package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	go_ora "github.com/sijms/go-ora/v2"
)

// Target описывает вторичную БД для smoke-теста соединения
type Target struct {
	Driver   string
	Host     string
	Port     int
	Service  string // service name для Oracle, имя БД для mysql/postgres
	User     string
	Password string
}

// DSN строит строку подключения в формате выбранного драйвера
func (t Target) DSN() (string, error) {
	switch t.Driver {
	case DriverOracle:
		return go_ora.BuildUrl(t.Host, t.Port, t.Service, t.User, t.Password, nil), nil
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = t.User
		cfg.Passwd = t.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
		cfg.DBName = t.Service
		return cfg.FormatDSN(), nil
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(t.User, t.Password),
			Host:     net.JoinHostPort(t.Host, strconv.Itoa(t.Port)),
			Path:     "/" + t.Service,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported driver %q", t.Driver)
	}
}

// String возвращает адрес без учётных данных (для логов)
func (t Target) String() string {
	return fmt.Sprintf("%s://%s/%s", t.Driver, net.JoinHostPort(t.Host, strconv.Itoa(t.Port)), t.Service)
}
