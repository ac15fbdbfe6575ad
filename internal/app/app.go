// Package app wires configuration into the session store, the backend client
// and the services shared by the console and the command-line client.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/ports"
	"github.com/tedcar/rental-console/internal/core/service"
	"github.com/tedcar/rental-console/internal/infrastructure/backend"
	mongostore "github.com/tedcar/rental-console/internal/infrastructure/db/mongo"
	redisstore "github.com/tedcar/rental-console/internal/infrastructure/db/redis"
	"github.com/tedcar/rental-console/internal/infrastructure/session"
	"github.com/tedcar/rental-console/internal/pkg/config"
)

// App holds the wired components.
type App struct {
	Store    ports.SessionStore
	Backend  *backend.Client
	Session  *service.Session
	Auth     *service.AuthService
	Vehicles *service.VehicleService
	Guard    *service.Guard

	closers []func(context.Context) error
}

// New builds every component from cfg.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{}

	store, err := a.openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	client, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	}, log.With().Str("component", "backend").Logger())
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.Store = store
	a.Backend = client
	a.Session = service.NewSession(store)
	a.Auth = service.NewAuthService(client, a.Session, log.With().Str("component", "auth").Logger())
	a.Vehicles = service.NewVehicleService(client, a.Session, log.With().Str("component", "vehicles").Logger())
	a.Guard = service.NewGuard(a.Session)
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, error) {
	switch cfg.Session.Driver {
	case config.DriverMemory:
		return session.NewMemoryStore(), nil

	case config.DriverRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		log.Debug().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
		return redisstore.NewSessionStore(rdb, cfg.Session.KeyPrefix), nil

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, fmt.Errorf("open mongo session store: %w", err)
		}
		a.closers = append(a.closers, client.Disconnect)
		log.Debug().Str("database", cfg.Mongo.Database).Msg("using mongo session store")
		return mongostore.NewSessionStore(db), nil

	default:
		store, err := session.NewFileStore(cfg.Session.Dir)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", store.Path()).Msg("using file session store")
		return store, nil
	}
}

// Close releases store connections.
func (a *App) Close(ctx context.Context) error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
