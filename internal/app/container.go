package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-cursos/internal/config"
	"service-cursos/internal/http/handlers"
	"service-cursos/internal/http/router"
	"service-cursos/internal/logx"
	"service-cursos/internal/metrics"
	"service-cursos/internal/pagination"
	"service-cursos/internal/repository"
	"service-cursos/internal/service/curso"
	"service-cursos/internal/validation"
)

type (
	dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)
	migrateFunc   func(ctx context.Context, dsn string) (repository.MigrationResult, error)
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    migrateFunc
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader sets the configuration loader
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn migrateFunc) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
	)
}

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
}

func provideMetrics() (metricsOut, error) {
	rl, err := metrics.Register(prometheus.DefaultRegisterer, metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	return metricsOut{RateLimitExceededTotal: rl}, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate migrateFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		dsn := cfg.DB.DSN()
		pool, err := dbConnect(ctx, logger, dsn, 10, time.Second)
		if err != nil {
			return nil, err
		}

		if cfg.MigrateOnStart {
			res, err := migrate(ctx, dsn)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied",
				logx.Int("from", int(res.From)),
				logx.Int("to", int(res.To)),
			)
		}

		if _, err := metrics.Register(prometheus.DefaultRegisterer, metrics.NewPoolCollector(pool)); err != nil {
			logger.Warn("pool metrics not registered", logx.Err(err))
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func newPagingConfig(cfg *config.Config) pagination.Config {
	p := pagination.DefaultConfig()
	p.DefaultPageSize = cfg.Pagination.DefaultPageSize
	p.MaxPageSize = cfg.Pagination.MaxPageSize
	return p
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewCursoRepo,
		validation.New,
		newPagingConfig,
		func(
			repo *repository.CursoRepo,
			v *validation.Validator,
			paging pagination.Config,
			cfg *config.Config,
			logger logx.Logger,
		) *curso.Service {
			return curso.NewService(repo, v, paging, cfg.OperationTimeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCursoUsecase,
		handlers.NewCursoHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
