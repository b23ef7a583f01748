package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-cursos/internal/logx"
)

// Runner runs the service held by a dig container.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(code int)
}

// NewRunner returns a Runner using the default run loop.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	NewRunner().MustRun(container)
}

// MustRun runs the service and exits the process on an unexpected error.
func (r *Runner) MustRun(container *dig.Container) {
	logger := containerLogger(container)

	err := r.runFn(container)
	switch {
	case err == nil:
		return
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewSlogJSON(os.Stderr, "info")
	}
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		server *http.Server,
		pool *pgxpool.Pool,
		logger logx.Logger,
	) error {
		listenErr := startServer(server, logger)

		select {
		case <-ctx.Done():
			logger.Info("shutting down service-cursos")
		case err := <-listenErr:
			closeResources(pool, server, logger)
			return err
		}

		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(pool, server, logger)
		return ctx.Err()
	})
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-cursos listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
