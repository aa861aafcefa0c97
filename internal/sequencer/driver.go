package sequencer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/internal/recorder"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// DefaultTick is the model time advanced per tick when the sequence sets none.
const DefaultTick = time.Second

// Driver runs the tick loop: advance the sequencer, record a sample, advance
// the engine clock. The final tick records its sample and stops without
// advancing the clock.
type Driver struct {
	Sequencer *Sequencer
	Recorder  *recorder.Recorder
	Process   ports.Process

	// Tick overrides the sequence's tick when non-zero.
	Tick time.Duration

	// MaxTicks overrides the sequence's tick bound when non-zero.
	MaxTicks int

	// Store, when set, receives the run after the last tick and every
	// CheckpointEvery ticks.
	Store           ports.RunStore
	CheckpointEvery int

	// Locker, when set, holds LockKey for the whole run so two drivers never
	// actuate the same timeline at once. LockTTL zero never expires.
	Locker  ports.Locker
	LockKey string
	LockTTL time.Duration

	Logger *slog.Logger
}

func (d *Driver) tick() time.Duration {
	switch {
	case d.Tick > 0:
		return d.Tick
	case d.Sequencer.seq.Tick > 0:
		return d.Sequencer.seq.Tick
	default:
		return DefaultTick
	}
}

func (d *Driver) maxTicks() int {
	if d.MaxTicks > 0 {
		return d.MaxTicks
	}
	return d.Sequencer.seq.MaxTicks
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return logging.NewNop()
}

// Run drives the sequence until it completes, fails, exhausts its tick budget
// or ctx is cancelled. The returned run is never nil and holds every sample
// recorded before a failure.
func (d *Driver) Run(ctx context.Context) (*domain.Run, error) {
	if d.Sequencer == nil || d.Process == nil {
		return nil, errors.New("driver needs a sequencer and a process")
	}
	rec := d.Recorder
	if rec == nil {
		rec = recorder.New(d.Sequencer.seq.Record)
	}

	if d.Locker != nil {
		key := d.LockKey
		if key == "" {
			key = d.Sequencer.seq.Name
		}
		unlock, err := d.Locker.Lock(ctx, key, d.LockTTL)
		if err != nil {
			return d.Sequencer.Run(), fmt.Errorf("lock %q: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				d.logger().Warn("failed to release run lock", "key", key, "error", err)
			}
		}()
	}

	run := d.Sequencer.Run()
	step := d.tick()
	limit := d.maxTicks()
	log := d.logger().With("sequence", d.Sequencer.seq.Name, "run_id", run.ID)
	log.Info("sequence started", "stages", len(d.Sequencer.seq.Stages), "tick", step, "max_ticks", limit, "policy", d.Sequencer.policy.String())

	for {
		if err := ctx.Err(); err != nil {
			return d.finish(ctx, run, d.Sequencer.Halt(err))
		}
		if limit > 0 && run.Ticks >= limit {
			return d.finish(ctx, run, d.Sequencer.Halt(fmt.Errorf("%w after %d ticks", domain.ErrTickLimit, run.Ticks)))
		}

		status, err := d.Sequencer.Advance(ctx, d.Process, d.Process, d.Process)
		if err != nil {
			return d.finish(ctx, run, err)
		}

		sample, err := rec.Record(ctx, d.Process, d.Process)
		if err != nil {
			return d.finish(ctx, run, d.Sequencer.Halt(err))
		}
		d.Sequencer.RecordSample(ctx, sample)

		if status == domain.StatusCompleted {
			return d.finish(ctx, run, nil)
		}

		if d.CheckpointEvery > 0 && run.Ticks%d.CheckpointEvery == 0 {
			if err := d.save(ctx, run); err != nil {
				log.Warn("checkpoint failed", "tick", run.Ticks, "error", err)
			}
		}

		if err := d.Process.RunFor(ctx, step); err != nil {
			return d.finish(ctx, run, d.Sequencer.Halt(fmt.Errorf("advance clock: %w", err)))
		}
	}
}

func (d *Driver) finish(ctx context.Context, run *domain.Run, runErr error) (*domain.Run, error) {
	// Saved even when ctx is done.
	saveCtx := context.WithoutCancel(ctx)
	if err := d.save(saveCtx, run); err != nil {
		if runErr == nil {
			return run, fmt.Errorf("critical persistence error: %w", err)
		}
		d.logger().Error("failed to persist halted run", "run_id", run.ID, "error", err)
	}
	return run, runErr
}

func (d *Driver) save(ctx context.Context, run *domain.Run) error {
	if d.Store == nil {
		return nil
	}
	if err := d.Store.Save(ctx, run); err != nil {
		return err
	}
	d.logger().Debug("run saved", "run_id", run.ID, "ticks", run.Ticks)
	return nil
}
