package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// Config — алиас для YamlConfig
type Config = YamlConfig

// LoadConfig читает YAML и применяет поверх него переменные окружения.
// Отсутствующий файл не ошибка: конфиг собирается из env и дефолтов.
// Нечитаемый или битый YAML возвращается ошибкой.
func LoadConfig(path string) (*Config, error) {
	cfg, err := LoadYamlConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadConfigFromEnv(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	return GetDefaultYamlConfig()
}
