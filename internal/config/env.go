package config

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML).
// Отсутствующие переменные не являются ошибкой — поле остаётся как есть.
func ApplyEnvOverrides(cfg *YamlConfig) {
	if v := getEnv("DB_HOST", ""); v != "" {
		cfg.Database.Host = v
	}
	if p := getEnvInt("DB_PORT", 0); p != 0 {
		cfg.Database.Port = p
	}
	if v := getEnv("DB_USER", ""); v != "" {
		cfg.Database.User = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		cfg.Database.Password = v
	}
	if v := getEnv("DB_DATABASE", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		cfg.Database.SSLMode = v
	}
	if p := getEnvInt("DB_MAX_CONNS", 0); p > 0 {
		cfg.Database.MaxConns = p
	}
	if p := getEnvInt("DB_MIN_CONNS", -1); p >= 0 {
		cfg.Database.MinConns = p
	}
	cfg.Database.MaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", cfg.Database.MaxConnLifetime)

	if v := getEnv("SECONDARY_DB_DRIVER", ""); v != "" {
		cfg.Secondary.Driver = v
	}
	if v := getEnv("SECONDARY_DB_HOST", ""); v != "" {
		cfg.Secondary.Host = v
	}
	if p := getEnvInt("SECONDARY_DB_PORT", 0); p != 0 {
		cfg.Secondary.Port = p
	}
	if v := getEnv("SECONDARY_DB_SERVICE", ""); v != "" {
		cfg.Secondary.Service = v
	}
	if v := getEnv("SECONDARY_DB_USER", ""); v != "" {
		cfg.Secondary.User = v
	}
	if v := getEnv("SECONDARY_DB_PASSWORD", ""); v != "" {
		cfg.Secondary.Password = v
	}

	if v := getEnv("SEED_INPUT", ""); v != "" {
		cfg.Seed.Input = v
	}
	if v := getEnv("SEED_OUTPUT", ""); v != "" {
		cfg.Seed.Output = v
	}
	if v := getEnv("SEED_DELIMITER", ""); v != "" {
		cfg.Seed.Delimiter = v
	}
	cfg.Seed.Strict = getEnvBool("SEED_STRICT", cfg.Seed.Strict)

	if v := getEnv("MIGRATIONS_SOURCE", ""); v != "" {
		cfg.Migrations.Source = v
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *YamlConfig {
	cfg := GetDefaultYamlConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
