// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/infra/server/router"
	"github.com/finance-ledger/backend/internal/integration/adapters"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/persistence"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Engine *ledger.Engine
	Router *router.Router

	closers []func() error
}

// NewInjector creates a new dependency injector with the snapshot store built
// from configuration and all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config, opts ...ledger.Option) (*Injector, error) {
	store, healthChecker, closer, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	injector, err := NewInjectorWithStore(ctx, cfg, store, healthChecker, opts...)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}
	if closer != nil {
		injector.closers = append(injector.closers, closer)
	}
	return injector, nil
}

// NewInjectorWithStore wires all dependencies around an existing snapshot
// store. Integration tests use it to substitute an in-process store.
func NewInjectorWithStore(ctx context.Context, cfg *config.Config, store adapter.SnapshotStore, healthChecker func() bool, opts ...ledger.Option) (*Injector, error) {
	clock := adapters.NewSystemClock()
	engine, err := ledger.NewEngine(ctx, store, adapters.NewUUIDGenerator(), clock, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger engine: %w", err)
	}

	healthController := controller.NewHealthController(healthChecker)
	accountController := controller.NewAccountController(engine)
	cardController := controller.NewCardController(engine)
	incomeController := controller.NewIncomeController(engine)
	expenseController := controller.NewExpenseController(engine)
	budgetController := controller.NewBudgetController(engine)
	summaryController := controller.NewSummaryController(engine, clock)
	adminController := controller.NewAdminController(engine)

	r := router.NewRouter(
		healthController,
		accountController,
		cardController,
		incomeController,
		expenseController,
		budgetController,
		summaryController,
		adminController,
	)

	return &Injector{
		Config: cfg,
		Engine: engine,
		Router: r,
	}, nil
}

// Close releases resources held by the injector.
func (i *Injector) Close() error {
	var firstErr error
	for _, closer := range i.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// buildStore creates the configured snapshot store along with a health
// checker and an optional closer.
func buildStore(cfg *config.Config) (adapter.SnapshotStore, func() bool, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		if cfg.Redis.DB != 0 {
			redisOpts.DB = cfg.Redis.DB
		}
		client := redis.NewClient(redisOpts)
		healthChecker := func() bool {
			return client.Ping(context.Background()).Err() == nil
		}
		return persistence.NewRedisSnapshotStore(client, cfg.Storage.Namespace), healthChecker, client.Close, nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		dbCfg := cfg.Database
		if cfg.Storage.Driver == config.StorageDriverPostgres {
			dbCfg.Driver = config.DatabaseDriverPostgres
		}
		database, err := db.NewConnection(&dbCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(&model.SnapshotModel{}); err != nil {
			_ = database.Close()
			return nil, nil, nil, err
		}
		return persistence.NewSQLSnapshotStore(database.DB(), cfg.Storage.Namespace), database.HealthCheck, database.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
