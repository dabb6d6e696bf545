package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ShutdownTimeout = 5 * time.Second

func RunApp() error {
	config, err := LoadConfig(".")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, config)
}

// Serve runs the service until ctx is done, then closes open documents with a flush.
func Serve(ctx context.Context, config Config) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	go serviceContainer.WebsocketHub.Run()
	defer serviceContainer.WebsocketHub.Stop()

	serviceContainer.ChangeDispatcher.Start()
	defer serviceContainer.ChangeDispatcher.Close()
	defer serviceContainer.DocumentManager.CloseAll()

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: serviceContainer.Router,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	serviceContainer.Logger.WithField("addr", config.ListenAddr).Info("server started")

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
