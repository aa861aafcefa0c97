package sequencer

import (
	"log/slog"

	"github.com/aretw0/plantctl/pkg/domain"
)

// EntryPolicy decides when a stage entered by a transition is actuated.
type EntryPolicy int

const (
	// ActuateOnTransition enters the next stage in the tick that satisfied the
	// previous stage's exit predicate. Its own predicate is first evaluated on
	// the following tick.
	ActuateOnTransition EntryPolicy = iota

	// ActuateOnNextTick defers entry to the start of the following tick, which
	// actuates and then evaluates the new stage in the same tick.
	ActuateOnNextTick
)

func (p EntryPolicy) String() string {
	switch p {
	case ActuateOnTransition:
		return "on-transition"
	case ActuateOnNextTick:
		return "on-next-tick"
	default:
		return "unknown"
	}
}

// ParseEntryPolicy accepts the names returned by EntryPolicy.String.
func ParseEntryPolicy(s string) (EntryPolicy, bool) {
	switch s {
	case "", "on-transition":
		return ActuateOnTransition, true
	case "on-next-tick":
		return ActuateOnNextTick, true
	default:
		return ActuateOnTransition, false
	}
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithEntryPolicy selects when transitioned-into stages are actuated.
func WithEntryPolicy(p EntryPolicy) Option {
	return func(s *Sequencer) {
		s.policy = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Sequencer) {
		s.hooks = hooks
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunID sets the ID of the run record. A random UUID is used otherwise.
func WithRunID(id string) Option {
	return func(s *Sequencer) {
		s.runID = id
	}
}
