package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyPort            = "PORT"
	KeyEnv             = "ENV"
	KeyLogLevel        = "LOG_LEVEL"
	KeyDBPath          = "DB_PATH"
	KeyCORSOrigins     = "CORS_ORIGINS"
	KeyScheduleAPIURL  = "SCHEDULE_API_URL"
	KeyScheduleTimeout = "SCHEDULE_TIMEOUT"
	KeyExportDir       = "EXPORT_DIR"

	defaultConfigName = "registro"
	defaultConfigType = "yaml"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	DBPath          string
	CORSOrigins     string
	ScheduleAPIURL  string
	ScheduleTimeout time.Duration
	ExportDir       string
}

var AppConfig *Config

// Load reads configuration with precedence env > config file > defaults.
// configFile may be empty, in which case registro.yaml in the working
// directory is used when present. A .env file is loaded into the
// environment first.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyPort, "3000")
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDBPath, "./data/registro.db")
	v.SetDefault(KeyCORSOrigins, "*")
	v.SetDefault(KeyScheduleAPIURL, "http://34.233.122.84/api/default/horarios")
	v.SetDefault(KeyScheduleTimeout, "15s")
	v.SetDefault(KeyExportDir, "./data/exports")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType(defaultConfigType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Missing default config file is not an error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString(KeyPort),
		Env:             v.GetString(KeyEnv),
		LogLevel:        strings.ToLower(v.GetString(KeyLogLevel)),
		DBPath:          v.GetString(KeyDBPath),
		CORSOrigins:     v.GetString(KeyCORSOrigins),
		ScheduleAPIURL:  v.GetString(KeyScheduleAPIURL),
		ScheduleTimeout: v.GetDuration(KeyScheduleTimeout),
		ExportDir:       v.GetString(KeyExportDir),
	}

	if cfg.ScheduleTimeout <= 0 {
		return nil, fmt.Errorf("%s must be a positive duration", KeyScheduleTimeout)
	}

	AppConfig = cfg
	return cfg, nil
}

// IsProduction reports whether the app runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
