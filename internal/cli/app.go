// Package cli implements the plantctl commands on top of the library packages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/plantctl"
	"github.com/aretw0/plantctl/internal/config"
	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/pkg/adapters/file"
	bridge "github.com/aretw0/plantctl/pkg/adapters/http"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/adapters/redis"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/persistence/middleware"
	"github.com/aretw0/plantctl/pkg/ports"
)

// App carries the loaded configuration and shared resources of one CLI
// invocation.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer
	Debug  bool

	// Simulator, when set, replaces the engine named by the configuration.
	Simulator ports.Simulator

	store   ports.RunStore
	locker  ports.Locker
	closers []func() error
}

// NewApp creates an App writing reports to stdout.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &App{Config: cfg, Logger: logger, Out: os.Stdout}
}

// Close releases the store and engine connections opened by the App.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// OpenSimulator returns the configured engine.
func (a *App) OpenSimulator() (ports.Simulator, error) {
	if a.Simulator != nil {
		return a.Simulator, nil
	}
	cfg := a.Config.Engine
	switch cfg.Kind {
	case config.EngineMemory:
		return memory.NewSimulator(a.Config.Project.Path), nil
	case config.EngineHTTP:
		c, err := bridge.Dial(cfg.URL, bridge.WithTimeout(cfg.Timeout))
		if err != nil {
			return nil, &domain.EngineConnectionError{Op: "connect", Cause: err}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown engine kind %q", cfg.Kind)
	}
}

// Project maps the configuration to the session project.
func (a *App) Project() plantctl.Project {
	p := a.Config.Project
	return plantctl.Project{
		Timeline:          p.Timeline,
		Model:             p.Model,
		Parameters:        p.Parameters,
		InitialConditions: p.InitialConditions,
		Application:       p.Application,
		Speed:             p.Speed,
	}
}

// OpenSession opens the configured project. The caller closes the session.
func (a *App) OpenSession(ctx context.Context) (*plantctl.Session, error) {
	sim, err := a.OpenSimulator()
	if err != nil {
		return nil, err
	}
	sess, err := plantctl.Open(ctx, sim, a.Project(), plantctl.WithLogger(a.Logger))
	if err != nil {
		_ = sim.Close()
		return nil, err
	}
	return sess, nil
}

// Store returns the configured run store and the matching locker. Both are
// opened once per App.
func (a *App) Store() (ports.RunStore, ports.Locker, error) {
	if a.store != nil {
		return a.store, a.locker, nil
	}
	cfg := a.Config.Store
	switch cfg.Kind {
	case config.StoreMemory:
		a.store, a.locker = memory.NewStore(), memory.NewLocker()
	case config.StoreFile:
		a.store, a.locker = file.New(cfg.Path), memory.NewLocker()
	case config.StoreRedis:
		rs := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.TTL))
		a.store = rs
		a.locker = redis.NewLocker(rs.Client(), redis.DefaultLockPrefix)
		a.closers = append(a.closers, rs.Close)
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
	mws, err := storeMiddlewares(cfg)
	if err != nil {
		return nil, nil, err
	}
	a.store = middleware.Chain(a.store, mws...)
	a.Logger.Debug("run store opened", "kind", cfg.Kind, "encrypted", cfg.EncryptionKey != "", "masked", len(cfg.MaskColumns))
	return a.store, a.locker, nil
}

// storeMiddlewares masks before sealing so the ciphertext never holds masked values.
func storeMiddlewares(cfg config.StoreConfig) ([]middleware.Middleware, error) {
	var mws []middleware.Middleware
	if len(cfg.MaskColumns) > 0 {
		mw, err := middleware.NewMaskMiddleware(cfg.MaskColumns)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	if cfg.EncryptionKey != "" {
		key, err := middleware.ParseKey(cfg.EncryptionKey)
		if err != nil {
			return nil, err
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	return mws, nil
}
