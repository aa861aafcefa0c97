package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeHooks(t *testing.T) {
	var calls []string

	a := LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *StageEvent) { calls = append(calls, "a:"+e.StageName) },
	}
	b := LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *StageEvent) { calls = append(calls, "b:"+e.StageName) },
		OnComplete:   func(ctx context.Context, r *Run) { calls = append(calls, "b:done") },
	}

	merged := MergeHooks(a, LifecycleHooks{}, b)
	merged.OnStageEnter(context.Background(), &StageEvent{StageName: "close-inlet"})
	merged.OnComplete(context.Background(), &Run{})

	assert.Nil(t, merged.OnSample)
	assert.Equal(t, []string{"a:close-inlet", "b:close-inlet", "b:done"}, calls)
}

func TestErrorsUnwrap(t *testing.T) {
	unknown := &UnknownVariableError{Application: "Process Model", Name: "X:Y"}
	seqErr := &SequencerError{Sequence: "s", Stage: 1, StageName: "stop", Tick: 4, Cause: unknown}

	assert.ErrorIs(t, seqErr, ErrUnknownVariable)

	var target *UnknownVariableError
	assert.True(t, errors.As(seqErr, &target))
	assert.Equal(t, "X:Y", target.Name)

	conn := &EngineConnectionError{Op: "load", Cause: errors.New("file missing")}
	assert.Contains(t, conn.Error(), "load")
	assert.NotErrorIs(t, conn, ErrUnknownVariable)
}
