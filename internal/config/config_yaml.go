package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/psds-microservice/employee-seed/pkg/constants"
)

// YamlConfig представляет конфигурацию утилиты из YAML
type YamlConfig struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`

		MaxConns        int           `yaml:"max_conns"`
		MinConns        int           `yaml:"min_conns"`
		MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	} `yaml:"database"`

	// Secondary — база для smoke-теста соединения (по умолчанию Oracle)
	Secondary struct {
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Service  string `yaml:"service"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
	} `yaml:"secondary"`

	Seed struct {
		Input     string `yaml:"input"`
		Output    string `yaml:"output"`
		Delimiter string `yaml:"delimiter"`
		Strict    bool   `yaml:"strict"`
	} `yaml:"seed"`

	Migrations struct {
		Source string `yaml:"source"`
	} `yaml:"migrations"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла поверх дефолтов
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultYamlConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxConns = 4
	cfg.Database.MaxConnLifetime = time.Hour
	cfg.Secondary.Driver = "oracle"
	cfg.Secondary.Host = "localhost"
	cfg.Secondary.Port = 1521
	cfg.Seed.Input = constants.DefaultInputPath
	cfg.Seed.Output = constants.DefaultOutputPath
	cfg.Seed.Delimiter = ","
	cfg.Migrations.Source = constants.DefaultMigrationsURL
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "console"
	return cfg
}

// DatabaseURL возвращает postgres URL для golang-migrate
func (c *YamlConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Database.SSLMode),
	}
	return u.String()
}
