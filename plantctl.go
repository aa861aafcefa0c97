package plantctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/internal/recorder"
	"github.com/aretw0/plantctl/internal/sequencer"
	"github.com/aretw0/plantctl/internal/sequences"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// Version is the plantctl release.
const Version = "0.3.0"

// Project names what Open loads on the engine.
type Project struct {
	Timeline          string
	Model             string
	Parameters        string
	InitialConditions string
	// Application defaults to the first application of the timeline.
	Application string
	// Speed is applied after initialization when positive.
	Speed float64
}

// Session is an opened, initialized timeline bound to one application.
type Session struct {
	sim     ports.Simulator
	tl      ports.Timeline
	app     string
	project Project
	logger  *slog.Logger
}

// Option configures Open.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open activates the project's timeline on sim, loads the model files,
// initializes and applies the speed. Every failure is an
// *domain.EngineConnectionError.
func Open(ctx context.Context, sim ports.Simulator, p Project, opts ...Option) (*Session, error) {
	s := &Session{sim: sim, project: p, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if sim == nil {
		return nil, &domain.EngineConnectionError{Op: "open", Cause: errors.New("no simulator")}
	}

	tl, err := sim.ActivateTimeline(ctx, p.Timeline)
	if err != nil {
		return nil, &domain.EngineConnectionError{Op: "activate timeline", Cause: err}
	}
	if err := tl.Load(ctx, p.Model, p.Parameters, p.InitialConditions); err != nil {
		return nil, &domain.EngineConnectionError{Op: "load", Cause: err}
	}
	if err := tl.Initialize(ctx); err != nil {
		return nil, &domain.EngineConnectionError{Op: "initialize", Cause: err}
	}
	if p.Speed > 0 {
		if err := tl.SetSpeed(ctx, p.Speed); err != nil {
			return nil, &domain.EngineConnectionError{Op: "set speed", Cause: err}
		}
	}

	apps, err := tl.Applications(ctx)
	if err != nil {
		return nil, &domain.EngineConnectionError{Op: "applications", Cause: err}
	}
	s.app, err = pickApplication(apps, p.Application)
	if err != nil {
		return nil, &domain.EngineConnectionError{Op: "select application", Cause: err}
	}
	s.tl = tl
	s.logger.Info("session opened", "timeline", p.Timeline, "model", p.Model, "application", s.app, "speed", p.Speed)
	return s, nil
}

func pickApplication(apps []string, want string) (string, error) {
	if want == "" {
		if len(apps) == 0 {
			return "", errors.New("timeline has no applications")
		}
		return apps[0], nil
	}
	if !slices.Contains(apps, want) {
		return "", fmt.Errorf("application %q not found", want)
	}
	return want, nil
}

// Timeline returns the activated timeline.
func (s *Session) Timeline() ports.Timeline { return s.tl }

// Application returns the bound application.
func (s *Session) Application() string { return s.app }

// Process returns the timeline bound to the session's application.
func (s *Session) Process() ports.Process { return ports.Bind(s.tl, s.app) }

// Close closes the simulator.
func (s *Session) Close() error { return s.sim.Close() }

// RunOptions tune a single sequence run. Zero values use the sequence's own
// settings.
type RunOptions struct {
	ID              string
	Tick            time.Duration
	MaxTicks        int
	Policy          sequencer.EntryPolicy
	Hooks           domain.LifecycleHooks
	Store           ports.RunStore
	CheckpointEvery int
	Locker          ports.Locker
	LockTTL         time.Duration
	// SkipValidation runs without reading every referenced variable first.
	SkipValidation bool
	// Instrument wraps the bound process, for example with metrics.
	Instrument func(ports.Process) ports.Process
}

// Run drives seq on the session. A sequence naming another application runs
// against that application instead of the session's.
func (s *Session) Run(ctx context.Context, seq *domain.Sequence, opts RunOptions) (*domain.Run, error) {
	process := s.Process()
	if seq.Application != "" && seq.Application != s.app {
		process = ports.Bind(s.tl, seq.Application)
	}
	if opts.Instrument != nil {
		process = opts.Instrument(process)
	}
	if !opts.SkipValidation {
		if err := sequences.Validate(ctx, seq, process); err != nil {
			return nil, fmt.Errorf("validate %s: %w", seq.Name, err)
		}
	}

	sq, err := sequencer.New(seq,
		sequencer.WithEntryPolicy(opts.Policy),
		sequencer.WithLifecycleHooks(opts.Hooks),
		sequencer.WithLogger(s.logger),
		sequencer.WithRunID(opts.ID),
	)
	if err != nil {
		return nil, err
	}
	d := &sequencer.Driver{
		Sequencer:       sq,
		Recorder:        recorder.New(seq.Record),
		Process:         process,
		Tick:            opts.Tick,
		MaxTicks:        opts.MaxTicks,
		Store:           opts.Store,
		CheckpointEvery: opts.CheckpointEvery,
		Locker:          opts.Locker,
		LockKey:         s.project.Timeline,
		LockTTL:         opts.LockTTL,
		Logger:          s.logger,
	}
	return d.Run(ctx)
}
