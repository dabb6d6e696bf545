package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var _configEnv = []string{"DATABASE_FILEPATH", "LISTEN_ADDR", "QUIESCENCE_WINDOW", "WEBHOOK_WORKERS", "LOG_LEVEL"}

// _unsetEnv clears the variables for the test and restores them afterwards.
func _unsetEnv(t *testing.T) {
	for _, name := range _configEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		_unsetEnv(t)
		t.Setenv("DATABASE_FILEPATH", "documents.db")

		config, err := ConfigFromEnv()

		assert.NoError(t, err)
		assert.Equal(t, Config{
			DatabaseFilepath: "documents.db",
			ListenAddr:       DefaultListenAddr,
			QuiescenceWindow: DefaultQuiescenceWindow,
			WebhookWorkers:   DefaultWebhookWorkersCount,
			LogLevel:         logrus.InfoLevel,
		}, config)
	})

	t.Run("all_set", func(t *testing.T) {
		_unsetEnv(t)
		t.Setenv("DATABASE_FILEPATH", "/data/documents.db")
		t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
		t.Setenv("QUIESCENCE_WINDOW", "1s")
		t.Setenv("WEBHOOK_WORKERS", "3")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := ConfigFromEnv()

		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", config.ListenAddr)
		assert.Equal(t, time.Second, config.QuiescenceWindow)
		assert.Equal(t, 3, config.WebhookWorkers)
		assert.Equal(t, logrus.DebugLevel, config.LogLevel)
	})

	t.Run("invalid", func(t *testing.T) {
		invalid := map[string]string{
			"DATABASE_FILEPATH": "",
			"QUIESCENCE_WINDOW": "soon",
			"WEBHOOK_WORKERS":   "0",
			"LOG_LEVEL":         "loud",
		}

		for name, value := range invalid {
			t.Run(name, func(t *testing.T) {
				_unsetEnv(t)
				t.Setenv("DATABASE_FILEPATH", "documents.db")
				t.Setenv(name, value)

				_, err := ConfigFromEnv()

				assert.ErrorIs(t, err, ConfigError)
			})
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("local_file_wins", func(t *testing.T) {
		_unsetEnv(t)
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DATABASE_FILEPATH=local.db\n"), 0600))
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_FILEPATH=shared.db\nLISTEN_ADDR=:9000\n"), 0600))

		config, err := LoadConfig(dir)

		assert.NoError(t, err)
		assert.Equal(t, "local.db", config.DatabaseFilepath)
		assert.Equal(t, ":9000", config.ListenAddr)
	})

	t.Run("environment_wins", func(t *testing.T) {
		_unsetEnv(t)
		t.Setenv("DATABASE_FILEPATH", "env.db")
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_FILEPATH=shared.db\n"), 0600))

		config, err := LoadConfig(dir)

		assert.NoError(t, err)
		assert.Equal(t, "env.db", config.DatabaseFilepath)
	})

	t.Run("no_files", func(t *testing.T) {
		_unsetEnv(t)

		_, err := LoadConfig(t.TempDir())

		assert.ErrorIs(t, err, ConfigError)
	})
}
