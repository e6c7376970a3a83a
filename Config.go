package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"log/slog"
)

const StorageDriverFile = "file"
const StorageDriverBolt = "bolt"

type Config struct {
	Port             string `env:"PORT" default:"32577"`
	StorageDriver    string `env:"STORAGE_DRIVER" default:"file"`
	DataFilePath     string `env:"DATA_FILEPATH" default:"data.json"`
	DatabaseFilePath string `env:"DATABASE_FILEPATH" default:"data.db"`
	LogLevel         string `env:"LOG_LEVEL" default:"info"`
	LogFormat        string `env:"LOG_FORMAT" default:"text"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if cfg.StorageDriver != StorageDriverFile && cfg.StorageDriver != StorageDriverBolt {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverFile, StorageDriverBolt, cfg.StorageDriver)
	}

	return &cfg, nil
}

func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
