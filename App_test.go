package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config := Config{
			DatabaseFilepath: filepath.Join(t.TempDir(), "documents.db"),
			ListenAddr:       _freeAddr(t),
			QuiescenceWindow: DefaultQuiescenceWindow,
			WebhookWorkers:   1,
			LogLevel:         logrus.ErrorLevel,
		}

		ctx, cancel := context.WithCancel(context.Background())
		appErr := make(chan error, 1)
		go func() {
			appErr <- Serve(ctx, config)
		}()

		var err error
		var res *http.Response
		client := http.Client{
			Timeout: time.Second * 2,
		}
		for i := 0; i < 20; i++ {
			time.Sleep(50 * time.Millisecond)
			res, err = client.Get("http://" + config.ListenAddr + "/healthcheck")
			if err == nil {
				break
			}
		}

		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))

		cancel()
		select {
		case err = <-appErr:
			assert.NoError(t, err)
		case <-time.After(ShutdownTimeout):
			t.Fatal("server did not stop")
		}
	})

	t.Run("database_error", func(t *testing.T) {
		err := Serve(context.Background(), Config{
			DatabaseFilepath: filepath.Join(t.TempDir(), "missing", "documents.db"),
			ListenAddr:       _freeAddr(t),
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no such file or directory")
	})
}

func TestRunApp(t *testing.T) {
	t.Run("config_error", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "")
		_ = os.Unsetenv("DATABASE_FILEPATH")

		err := RunApp()

		assert.ErrorIs(t, err, ConfigError)
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}

func _freeAddr(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	return listener.Addr().String()
}
