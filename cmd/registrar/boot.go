package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/odyssey-erp/registrar/internal/app"
	"github.com/odyssey-erp/registrar/internal/audit"
	"github.com/odyssey-erp/registrar/internal/auth"
	"github.com/odyssey-erp/registrar/internal/command"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/logic"
	"github.com/odyssey-erp/registrar/internal/observability"
	"github.com/odyssey-erp/registrar/internal/parser"
	"github.com/odyssey-erp/registrar/internal/platform/cache"
	"github.com/odyssey-erp/registrar/internal/platform/db"
	"github.com/odyssey-erp/registrar/internal/privilege"
	"github.com/odyssey-erp/registrar/internal/storage"
	"github.com/odyssey-erp/registrar/internal/storage/bolt"
	"github.com/odyssey-erp/registrar/internal/storage/file"
	"github.com/odyssey-erp/registrar/internal/storage/postgres"
	"github.com/odyssey-erp/registrar/internal/storage/redisstore"
)

const boltLockTimeout = 2 * time.Second

type runtime struct {
	logic   *logic.Logic
	metrics *observability.Metrics
	manager *storage.Manager
}

func (r *runtime) Close() error {
	return r.manager.Close()
}

func openBackend(ctx context.Context, cfg *app.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case app.BackendFile:
		return file.Open(cfg.DataDir)
	case app.BackendBolt:
		return bolt.Open(cfg.BoltPath, boltLockTimeout)
	case app.BackendRedis:
		client, err := cache.New(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, err
		}
		return redisstore.New(client, cfg.RedisPrefix), nil
	case app.BackendPostgres:
		pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
		if err != nil {
			return nil, err
		}
		backend, err := postgres.New(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// boot loads persisted state and wires the executor.
func boot(ctx context.Context, cfg *app.Config, logger *slog.Logger) (*runtime, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
	}
	manager := storage.NewManager(backend, cfg.PreferencesPath, logger)
	books, prefs, err := manager.Load(ctx)
	if err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("load data: %w", err)
	}

	trail := audit.NewTrail(cfg.HistorySize)
	metrics := observability.NewMetrics()
	env := &command.Env{
		Books:       books,
		Shown:       lastshown.New(),
		Session:     privilege.NewSession(prefs.PermanentAdmin),
		Model:       privilege.DefaultModel(),
		Auth:        auth.NewService(app.BcryptCost(cfg)),
		Preferences: prefs,
		History:     trail,
	}
	l := logic.New(logic.Params{
		Env:     env,
		Parse:   parser.Parse,
		Saver:   manager,
		Trail:   trail,
		Metrics: metrics,
		Logger:  logger,
	})
	logger.Info("registrar ready",
		slog.String("backend", cfg.StorageBackend),
		slog.Int("persons", books.Persons.Len()),
		slog.String("privilege", env.Session.Level().String()),
	)
	return &runtime{logic: l, metrics: metrics, manager: manager}, nil
}
