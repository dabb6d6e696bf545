package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultListenAddr = ":8080"

const DefaultQuiescenceWindow = 300 * time.Millisecond

type Config struct {
	DatabaseFilepath string
	ListenAddr       string
	QuiescenceWindow time.Duration
	WebhookWorkers   int
	LogLevel         logrus.Level
}

var ConfigError = errors.New("invalid configuration")

// LoadConfig reads .env.local and then .env from dir into the environment without
// overriding variables that are already set, so .env.local wins over .env.
func LoadConfig(dir string) (config Config, err error) {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if err = godotenv.Load(path); err != nil {
			return config, fmt.Errorf("%w: %s: %s", ConfigError, name, err.Error())
		}
	}

	return ConfigFromEnv()
}

func ConfigFromEnv() (config Config, err error) {
	config = Config{
		DatabaseFilepath: os.Getenv("DATABASE_FILEPATH"),
		ListenAddr:       envOrDefault("LISTEN_ADDR", DefaultListenAddr),
		QuiescenceWindow: DefaultQuiescenceWindow,
		WebhookWorkers:   DefaultWebhookWorkersCount,
		LogLevel:         logrus.InfoLevel,
	}

	if config.DatabaseFilepath == "" {
		return config, fmt.Errorf("%w: DATABASE_FILEPATH is empty", ConfigError)
	}

	if value := os.Getenv("QUIESCENCE_WINDOW"); value != "" {
		if config.QuiescenceWindow, err = time.ParseDuration(value); err != nil || config.QuiescenceWindow <= 0 {
			return config, fmt.Errorf("%w: QUIESCENCE_WINDOW %q", ConfigError, value)
		}
	}

	if value := os.Getenv("WEBHOOK_WORKERS"); value != "" {
		if config.WebhookWorkers, err = strconv.Atoi(value); err != nil || config.WebhookWorkers <= 0 {
			return config, fmt.Errorf("%w: WEBHOOK_WORKERS %q", ConfigError, value)
		}
	}

	if value := os.Getenv("LOG_LEVEL"); value != "" {
		if config.LogLevel, err = logrus.ParseLevel(value); err != nil {
			return config, fmt.Errorf("%w: LOG_LEVEL: %s", ConfigError, err.Error())
		}
	}

	return config, nil
}

func envOrDefault(name string, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}
