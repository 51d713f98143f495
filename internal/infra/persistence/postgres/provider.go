// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"portfolio/config"
	"portfolio/internal/errors"

	"go.uber.org/fx"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// pooledSchemePrefix marks a connection string that points at a managed
// backend behind an external connection pooler. The marker is stripped back
// to the standard scheme before dialing; the process then opens plain
// connections and leaves pooling to the backend.
const pooledSchemePrefix = "postgres+pooler://"

// standardScheme replaces the pooled marker when dialing.
const standardScheme = "postgres://"

// strategy identifies one of the three connection construction variants.
type strategy int

const (
	// strategyPooled opens the primary URL without explicit pool settings;
	// the managed backend owns pooling.
	strategyPooled strategy = iota
	// strategyDirect opens the direct URL with an explicit sql.DB pool.
	// Used only outside the managed runtime and outside production.
	strategyDirect
	// strategyDefault opens whatever the environment provides: the primary
	// URL, or, when that is empty, the DSN the driver resolves implicitly
	// from the libpq environment variables.
	strategyDefault
)

func (s strategy) String() string {
	switch s {
	case strategyPooled:
		return "pooled"
	case strategyDirect:
		return "direct"
	default:
		return "default"
	}
}

// selectStrategy is a pure function of configuration, evaluated once per
// process. Keeping it side-effect free makes the selection policy testable
// without any real connection.
func selectStrategy(cfg *config.Config) strategy {
	if strings.HasPrefix(cfg.Database.URL, pooledSchemePrefix) {
		return strategyPooled
	}
	if !cfg.Env.ManagedRuntime && cfg.Database.DirectURL != "" && !cfg.IsProduction() {
		return strategyDirect
	}

	return strategyDefault
}

// Provider hands out the single process-wide database handle, constructing
// it on first use. Initialization is guarded by sync.Once, so concurrent
// first callers observe exactly one construction and an identity-stable
// handle; the handle is never recreated mid-process.
type Provider struct {
	cfg    *config.Config
	logger *slog.Logger

	// open dials one connection variant. Injectable so the selection and
	// once-only semantics are testable without a database.
	open func(dsn string, pool *config.Pool) (*gorm.DB, error)

	once sync.Once
	db   *gorm.DB
	err  error
}

// ProviderParams defines the required parameters
type ProviderParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates the lazy client provider. No connection is opened
// here; the first Get call dials.
func NewProvider(params ProviderParams) *Provider {
	provider := &Provider{
		cfg:    params.Config,
		logger: params.Logger,
	}
	provider.open = provider.openGorm

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return provider.close()
		},
	})

	return provider
}

// Get returns the process-wide handle, constructing it on first call only.
// A failed construction stays cached: the handle is created at most once
// per process, success or not.
func (p *Provider) Get() (*gorm.DB, error) {
	p.once.Do(p.connect)
	if p.err != nil {
		return nil, errors.Wrap(p.err, "database handle unavailable")
	}

	return p.db, nil
}

func (p *Provider) connect() {
	selected := selectStrategy(p.cfg)
	p.logger.Info("initializing database handle", slog.String("strategy", selected.String()))

	switch selected {
	case strategyPooled:
		dsn := standardScheme + strings.TrimPrefix(p.cfg.Database.URL, pooledSchemePrefix)
		p.db, p.err = p.open(dsn, nil)
	case strategyDirect:
		db, err := p.open(p.cfg.Database.DirectURL, &p.cfg.Database.Pool)
		if err != nil {
			// A broken direct configuration must not take the provider
			// down; fall through to the environment default.
			p.logger.Warn("direct database connection failed, falling back to environment default",
				slog.String("error", err.Error()))
			db, err = p.open(p.cfg.Database.URL, nil)
		}
		p.db, p.err = db, err
	default:
		p.db, p.err = p.open(p.cfg.Database.URL, nil)
	}

	if p.err != nil {
		p.logger.Error("database handle initialization failed", slog.String("error", p.err.Error()))
	}
}

// openGorm dials one variant. An empty DSN defers host/user resolution to
// the libpq environment variables.
func (p *Provider) openGorm(dsn string, pool *config.Pool) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		// Single-statement writes dominate here; explicit transactions are
		// opened where multi-step atomicity is needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(p.logger, p.cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PostgreSQL connection")
	}

	if pool != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	return db, nil
}

func (p *Provider) close() error {
	if p.db == nil {
		return nil
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.WithStack(sqlDB.Close())
}
