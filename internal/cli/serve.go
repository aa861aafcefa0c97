package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/plantctl"
	"github.com/aretw0/plantctl/internal/metrics"
	bridge "github.com/aretw0/plantctl/pkg/adapters/http"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// shutdownTimeout bounds the graceful stop of the bridge.
const shutdownTimeout = 5 * time.Second

// NewServeHandler mounts the engine bridge and /metrics on one router.
func NewServeHandler(sim ports.Simulator, a *App) http.Handler {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Handle("/metrics", m.Handler())
	r.Mount("/", bridge.NewHandler(sim, plantctl.Version, a.Logger))
	return r
}

// Serve exposes the in-memory engine on addr until ctx is cancelled.
func (a *App) Serve(ctx context.Context, addr string) error {
	sim := a.Simulator
	if sim == nil {
		sim = memory.NewSimulator(a.Config.Project.Path)
	}
	defer sim.Close()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           NewServeHandler(sim, a),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(a.Out, "Engine bridge listening on %s", ln.Addr())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		printSystemMessage(a.Out, "Shutting down engine bridge...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		printSystemMessage(a.Out, "Engine bridge stopped gracefully")
		return nil
	}
}
