package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStageEnter EventType = "stage_enter"
	EventStageExit  EventType = "stage_exit"
	EventActuation  EventType = "actuation"
	EventSample     EventType = "sample"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	RunID     string        `json:"run_id"`
	Sequence  string        `json:"sequence"`
	Tick      int           `json:"tick"`
	ModelTime time.Duration `json:"model_time"`
}

// StageEvent represents entry into or exit from a stage.
type StageEvent struct {
	EventBase
	Stage     int    `json:"stage"`
	StageName string `json:"stage_name"`
}

// ActuationEvent represents one write issued on stage entry.
type ActuationEvent struct {
	EventBase
	Stage int   `json:"stage"`
	Write Write `json:"write"`
}

// SampleEvent represents one recorded row.
type SampleEvent struct {
	EventBase
	Sample Sample `json:"sample"`
}

// LifecycleHooks defines callbacks for sequencer observability.
// Hooks run synchronously on the ticking goroutine.
type LifecycleHooks struct {
	OnStageEnter func(context.Context, *StageEvent)
	OnStageExit  func(context.Context, *StageEvent)
	OnActuation  func(context.Context, *ActuationEvent)
	OnSample     func(context.Context, *SampleEvent)
	OnComplete   func(context.Context, *Run)
}

// MergeHooks chains several hook sets; callbacks fire in argument order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range sets {
		out.OnStageEnter = chain(out.OnStageEnter, h.OnStageEnter)
		out.OnStageExit = chain(out.OnStageExit, h.OnStageExit)
		out.OnActuation = chain(out.OnActuation, h.OnActuation)
		out.OnSample = chain(out.OnSample, h.OnSample)
		out.OnComplete = chain(out.OnComplete, h.OnComplete)
	}
	return out
}

func chain[T any](a, b func(context.Context, T)) func(context.Context, T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e T) {
		a(ctx, e)
		b(ctx, e)
	}
}
