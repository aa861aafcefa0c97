// Package sequencer implements the polling stage controller that drives a
// shutdown sequence against the engine, one tick at a time.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/google/uuid"
)

// Sequencer is a finite-state controller over an immutable stage table.
// Its only mutable state is the cursor kept in the Run record.
type Sequencer struct {
	seq    *domain.Sequence
	run    *domain.Run
	runID  string
	policy EntryPolicy
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	err    error
}

// New validates the sequence and creates a sequencer positioned before the
// first stage's actuation.
func New(seq *domain.Sequence, opts ...Option) (*Sequencer, error) {
	if err := Validate(seq); err != nil {
		return nil, err
	}

	s := &Sequencer{
		seq:    seq,
		policy: ActuateOnTransition,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	s.run = domain.NewRun(s.runID, seq)
	return s, nil
}

// Validate checks the structural rules of a stage table.
func Validate(seq *domain.Sequence) error {
	if seq == nil {
		return errors.New("sequence is required")
	}
	if len(seq.Stages) == 0 {
		return fmt.Errorf("sequence %q has no stages", seq.Name)
	}
	for i, st := range seq.Stages {
		if st.Index != i {
			return fmt.Errorf("sequence %q stage %d has index %d", seq.Name, i, st.Index)
		}
		if st.Exit == nil {
			return fmt.Errorf("sequence %q stage %d (%s) has no exit predicate", seq.Name, i, st.Name)
		}
		for _, w := range st.Actions {
			if w.Variable == "" {
				return fmt.Errorf("sequence %q stage %d (%s) has an action without a variable", seq.Name, i, st.Name)
			}
		}
	}
	return nil
}

// Sequence returns the stage table.
func (s *Sequencer) Sequence() *domain.Sequence { return s.seq }

// Run returns the live run record. The caller must not mutate its cursor.
func (s *Sequencer) Run() *domain.Run { return s.run }

// Policy returns the configured entry policy.
func (s *Sequencer) Policy() EntryPolicy { return s.policy }

// Err returns the error that halted the sequencer, if any.
func (s *Sequencer) Err() error { return s.err }

// Advance executes one tick: actuate the current stage if it has not been
// entered yet, evaluate its exit predicate, and transition or complete when it
// holds. It never evaluates more than one predicate per call.
//
// After a failure the sequencer is halted and every later call returns the
// same *domain.SequencerError.
func (s *Sequencer) Advance(ctx context.Context, r ports.Reader, w ports.Writer, c ports.Clock) (domain.Status, error) {
	if s.err != nil {
		return domain.StatusFailed, s.err
	}
	if s.run.Status == domain.StatusCompleted {
		return domain.StatusCompleted, nil
	}

	tick := s.run.Ticks
	stage := &s.seq.Stages[s.run.StageIndex]

	mt, err := c.ModelTime(ctx)
	if err != nil {
		return domain.StatusFailed, s.fail(stage, tick, fmt.Errorf("model time: %w", err))
	}
	s.run.ModelTime = mt

	if !s.run.Entered {
		if err := s.enter(ctx, stage, w, tick); err != nil {
			return domain.StatusFailed, s.fail(stage, tick, err)
		}
	}

	ok, err := stage.Exit.Evaluate(ctx, r)
	if err != nil {
		return domain.StatusFailed, s.fail(stage, tick, fmt.Errorf("evaluate %q: %w", stage.Exit, err))
	}
	s.run.Ticks = tick + 1

	if !ok {
		return domain.StatusContinue, nil
	}

	s.logger.Debug("exit predicate satisfied", "sequence", s.seq.Name, "stage", stage.Name, "tick", tick, "predicate", stage.Exit.String())
	if s.hooks.OnStageExit != nil {
		s.hooks.OnStageExit(ctx, s.stageEvent(domain.EventStageExit, stage, tick))
	}

	if s.seq.IsTerminal(stage.Index) {
		s.run.Status = domain.StatusCompleted
		s.run.FinishedAt = time.Now().UTC()
		s.logger.Info("sequence completed", "sequence", s.seq.Name, "run_id", s.run.ID, "ticks", s.run.Ticks, "model_time", mt)
		if s.hooks.OnComplete != nil {
			s.hooks.OnComplete(ctx, s.run)
		}
		return domain.StatusCompleted, nil
	}

	s.run.StageIndex++
	s.run.Entered = false

	if s.policy == ActuateOnTransition {
		next := &s.seq.Stages[s.run.StageIndex]
		if err := s.enter(ctx, next, w, tick); err != nil {
			return domain.StatusFailed, s.fail(next, tick, err)
		}
	}
	return domain.StatusContinue, nil
}

// RecordSample appends a row to the run log and notifies the OnSample hook.
func (s *Sequencer) RecordSample(ctx context.Context, sample domain.Sample) {
	s.run.Samples = append(s.run.Samples, sample)
	if s.hooks.OnSample != nil {
		s.hooks.OnSample(ctx, &domain.SampleEvent{
			EventBase: s.base(domain.EventSample, s.run.Ticks-1),
			Sample:    sample,
		})
	}
}

// Halt stops the sequencer with cause, attributed to the current stage.
// It returns the resulting *domain.SequencerError. A run completed by the last
// Advance is reopened as failed at its completing tick. Halting an already
// halted sequencer returns the existing error.
func (s *Sequencer) Halt(cause error) error {
	if s.err != nil {
		return s.err
	}
	tick := s.run.Ticks
	if s.run.Status == domain.StatusCompleted {
		tick--
	}
	return s.fail(&s.seq.Stages[s.run.StageIndex], tick, cause)
}

// enter issues the stage's actuation set exactly once.
func (s *Sequencer) enter(ctx context.Context, stage *domain.Stage, w ports.Writer, tick int) error {
	s.logger.Info("stage entered", "sequence", s.seq.Name, "stage", stage.Name, "index", stage.Index, "tick", tick)
	if s.hooks.OnStageEnter != nil {
		s.hooks.OnStageEnter(ctx, s.stageEvent(domain.EventStageEnter, stage, tick))
	}

	// Entered is set before the first write.
	s.run.Entered = true
	s.run.Transitions = append(s.run.Transitions, domain.Transition{
		Stage:     stage.Index,
		Name:      stage.Name,
		Tick:      tick,
		ModelTime: s.run.ModelTime,
	})

	for _, act := range stage.Actions {
		if err := w.SetValue(ctx, act.Variable, act.Value, act.Unit); err != nil {
			return fmt.Errorf("actuate %s: %w", act, err)
		}
		s.logger.Debug("actuation issued", "stage", stage.Name, "write", act.String())
		if s.hooks.OnActuation != nil {
			s.hooks.OnActuation(ctx, &domain.ActuationEvent{
				EventBase: s.base(domain.EventActuation, tick),
				Stage:     stage.Index,
				Write:     act,
			})
		}
	}
	return nil
}

func (s *Sequencer) fail(stage *domain.Stage, tick int, cause error) error {
	s.err = &domain.SequencerError{
		Sequence:  s.seq.Name,
		Stage:     stage.Index,
		StageName: stage.Name,
		Tick:      tick,
		Cause:     cause,
	}
	s.run.Status = domain.StatusFailed
	s.run.Error = s.err.Error()
	s.run.FinishedAt = time.Now().UTC()
	s.logger.Error("sequence halted", "sequence", s.seq.Name, "stage", stage.Name, "tick", tick, "error", cause)
	return s.err
}

func (s *Sequencer) base(t domain.EventType, tick int) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		RunID:     s.run.ID,
		Sequence:  s.seq.Name,
		Tick:      tick,
		ModelTime: s.run.ModelTime,
	}
}

func (s *Sequencer) stageEvent(t domain.EventType, stage *domain.Stage, tick int) *domain.StageEvent {
	return &domain.StageEvent{
		EventBase: s.base(t, tick),
		Stage:     stage.Index,
		StageName: stage.Name,
	}
}
