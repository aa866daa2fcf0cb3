package config

import (
	"os"

	"github.com/joho/godotenv"
)

// ServerConfig holds the settings of the webhook server, read from the
// environment (optionally seeded from a .env file).
type ServerConfig struct {
	Addr        string
	Environment string
	BaseURL     string
}

// LoadServer reads the server configuration. A missing .env file is fine;
// plain environment variables win either way.
func LoadServer() *ServerConfig {
	_ = godotenv.Load(".env")

	cfg := &ServerConfig{
		Addr:        os.Getenv("ADDR"),
		Environment: os.Getenv("ENV"),
		BaseURL:     os.Getenv("SSAU_BASE_URL"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg
}
