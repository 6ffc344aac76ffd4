package constants

// Пути по умолчанию (относительно рабочей директории, как в исходных скриптах)
const (
	DefaultSeedDir       = "./seed"
	DefaultInputPath     = DefaultSeedDir + "/data.csv"
	DefaultOutputPath    = DefaultSeedDir + "/generated_inserts.sql"
	DefaultConfigPath    = "./config/config.yaml"
	DefaultMigrationsURL = "file://database/migrations"
)
