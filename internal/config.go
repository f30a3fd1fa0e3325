package internal

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment with the MESSAGES_ prefix
// (MESSAGES_PORT, MESSAGES_DB_PATH, ...).
type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	DBPath         string        `envconfig:"DB_PATH" default:"messages.db"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	LogLevel       slog.Level    `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("messages", &config); err != nil {
		return nil, err
	}
	return &config, nil
}
