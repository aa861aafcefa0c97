package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it keeps the signal that fired.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// NewLogger builds the CLI logger. Debug forces the debug level.
func NewLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("Enter Stage", "stage", e.StageName, "tick", e.Tick, "model_time", e.ModelTime)
		},
		OnStageExit: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("Leave Stage", "stage", e.StageName, "tick", e.Tick)
		},
		OnActuation: func(ctx context.Context, e *domain.ActuationEvent) {
			logger.Debug("Actuation", "write", e.Write.String(), "tick", e.Tick)
		},
	}
}

func isInterrupted(err error) bool {
	return err != nil && errors.Is(err, context.Canceled)
}

func logCompletion(w io.Writer, run *domain.Run, err error, sig os.Signal) {
	if run == nil {
		return
	}
	switch {
	case err == nil:
		printSystemMessage(w, "Sequence '%s' completed after %d ticks (%s model time).", run.Sequence, run.Ticks, run.ModelTime)
	case isInterrupted(err) && sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted at stage %d after %d ticks.", run.StageIndex, run.Ticks)
	case isInterrupted(err):
		printSystemMessage(w, "Terminated at stage %d after %d ticks.", run.StageIndex, run.Ticks)
	default:
		printSystemMessage(w, "Sequence '%s' failed at stage %d after %d ticks.", run.Sequence, run.StageIndex, run.Ticks)
	}
}
