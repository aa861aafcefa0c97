package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/plantctl"
	"github.com/aretw0/plantctl/internal/metrics"
	"github.com/aretw0/plantctl/internal/presentation/chart"
	"github.com/aretw0/plantctl/internal/presentation/tui"
	"github.com/aretw0/plantctl/internal/recorder"
	"github.com/aretw0/plantctl/internal/sequencer"
	"github.com/aretw0/plantctl/internal/sequences"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/google/uuid"
)

// RunOptions contains the flags of the run command. Zero values fall back
// to the sequence definition and then to the configuration.
type RunOptions struct {
	Sequence string
	Output   string
	Plot     string
	Tick     time.Duration
	MaxTicks int
	Policy   string
	RunID    string
	NoStore  bool
	Quiet    bool
}

// Run executes one sequence against the configured engine, exports the
// sample log and stores the run record. The log is exported even when the
// run fails.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Run, error) {
	cfg := a.Config
	def, err := sequences.Resolve(opts.Sequence, cfg.SequenceDirs)
	if err != nil {
		return nil, err
	}
	seq, err := sequences.Compile(def)
	if err != nil {
		return nil, err
	}

	policyName := opts.Policy
	if policyName == "" {
		policyName = cfg.Run.Policy
	}
	policy, ok := sequencer.ParseEntryPolicy(policyName)
	if !ok {
		return nil, fmt.Errorf("unknown entry policy %q", policyName)
	}

	sess, err := a.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	ro := plantctl.RunOptions{
		ID:              opts.RunID,
		Tick:            opts.Tick,
		MaxTicks:        opts.MaxTicks,
		Policy:          policy,
		CheckpointEvery: cfg.Run.CheckpointEvery,
		LockTTL:         cfg.Run.LockTTL,
	}
	if ro.ID == "" {
		ro.ID = uuid.NewString()
	}
	if ro.Tick == 0 && seq.Tick == 0 {
		ro.Tick = cfg.Run.Tick
	}
	if ro.MaxTicks == 0 && seq.MaxTicks == 0 {
		ro.MaxTicks = cfg.Run.MaxTicks
	}
	if !opts.NoStore {
		store, locker, err := a.Store()
		if err != nil {
			return nil, err
		}
		ro.Store, ro.Locker = store, locker
	}

	var hooks []domain.LifecycleHooks
	if a.Debug {
		hooks = append(hooks, createDebugHooks(a.Logger))
	}
	var m *metrics.Metrics
	if cfg.Metrics.Addr != "" {
		m = metrics.New()
		stop, err := a.serveMetrics(ctx, cfg.Metrics.Addr, m)
		if err != nil {
			return nil, err
		}
		defer stop()
		hooks = append(hooks, m.Hooks())
		ro.Instrument = m.Instrument
	}
	ro.Hooks = domain.MergeHooks(hooks...)

	if !opts.Quiet {
		printSystemMessage(a.Out, "Running '%s' (%d stages) as run %s.", seq.Name, len(seq.Stages), ro.ID)
	}
	run, runErr := sess.Run(ctx, seq, ro)
	if run == nil {
		return nil, runErr
	}
	if m != nil {
		m.ObserveRun(run)
	}

	output := opts.Output
	if output == "" {
		output = cfg.Run.Output
	}
	if err := recorder.ExportRun(output, run); err != nil {
		return run, errors.Join(runErr, fmt.Errorf("export samples: %w", err))
	}
	a.Logger.Info("samples exported", "path", output, "rows", len(run.Samples))
	if opts.Plot != "" && len(run.Samples) > 0 {
		if err := chart.SaveFile(opts.Plot, func(w io.Writer) error { return chart.Run(w, run) }); err != nil {
			a.Logger.Warn("plot failed", "path", opts.Plot, "error", err)
		}
	}

	if !opts.Quiet {
		var sig os.Signal
		if sc, ok := ctx.(*SignalContext); ok {
			sig = sc.Signal()
		}
		logCompletion(a.Out, run, runErr, sig)
		if err := tui.Print(a.Out, RunMarkdown(run)); err != nil {
			return run, err
		}
	}
	return run, runErr
}

// serveMetrics exposes m on addr until the returned stop function is called.
func (a *App) serveMetrics(ctx context.Context, addr string, m *metrics.Metrics) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("metrics server failed", "error", err)
		}
	}()
	a.Logger.Info("metrics listening", "addr", ln.Addr().String())
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}

// RunMarkdown summarizes a run record.
func RunMarkdown(run *domain.Run) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Run %s\n\n", run.ID)
	sb.WriteString("| Sequence | Status | Stage | Ticks | Model time | Samples |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s | %d | %d | %s | %d |\n\n",
		run.Sequence, run.Status, run.StageIndex, run.Ticks, run.ModelTime, len(run.Samples))
	if run.Error != "" {
		fmt.Fprintf(&sb, "**Error:** %s\n\n", run.Error)
	}
	if len(run.Transitions) > 0 {
		sb.WriteString("## Stages\n\n")
		sb.WriteString("| # | Stage | Entered at tick | Model time |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, tr := range run.Transitions {
			fmt.Fprintf(&sb, "| %d | %s | %d | %s |\n", tr.Stage, tr.Name, tr.Tick, tr.ModelTime)
		}
		sb.WriteString("\n")
	}
	if n := len(run.Samples); n > 0 {
		last := run.Samples[n-1]
		sb.WriteString("## Last sample\n\n")
		sb.WriteString("| Variable | Value |\n|---|---|\n")
		for i, col := range run.Columns {
			if i < len(last.Values) {
				fmt.Fprintf(&sb, "| %s | %s |\n", col, domain.FormatValue(last.Values[i]))
			}
		}
	}
	return sb.String()
}
