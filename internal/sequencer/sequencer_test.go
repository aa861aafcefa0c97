package sequencer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/plantctl/internal/compiler"
	"github.com/aretw0/plantctl/internal/sequencer"
	"github.com/aretw0/plantctl/internal/testutils"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valvePumpSequence closes a valve, waits for it, then stops a pump and waits
// for it to spin down.
func valvePumpSequence() *domain.Sequence {
	return &domain.Sequence{
		Name:   "valve-pump",
		Record: []domain.Variable{{Name: "isClosed"}, {Name: "speed"}},
		Stages: []domain.Stage{
			{
				Index:   0,
				Name:    "close-valve",
				Actions: []domain.Write{{Variable: "valve", Value: "closed"}},
				Exit:    compiler.MustCompile("isClosed == true"),
			},
			{
				Index:   1,
				Name:    "stop-pump",
				Actions: []domain.Write{{Variable: "pump", Value: "off"}},
				Exit:    compiler.MustCompile("speed <= 10.0"),
			},
		},
	}
}

func valvePumpScript() *testutils.ScriptedProcess {
	return testutils.NewScriptedProcess(
		map[string]domain.Value{"isClosed": false, "speed": 50.0},
		map[string]domain.Value{"isClosed": true, "speed": 40.0},
		map[string]domain.Value{"speed": 5.0},
	)
}

// step runs one driver-style tick by hand.
func step(t *testing.T, s *sequencer.Sequencer, p *testutils.ScriptedProcess) domain.Status {
	t.Helper()
	ctx := context.Background()
	status, err := s.Advance(ctx, p, p, p)
	require.NoError(t, err)
	if status != domain.StatusCompleted {
		require.NoError(t, p.RunFor(ctx, time.Second))
	}
	return status
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		seq  *domain.Sequence
	}{
		{"nil", nil},
		{"no stages", &domain.Sequence{Name: "empty"}},
		{"bad index", &domain.Sequence{Name: "x", Stages: []domain.Stage{{Index: 3, Exit: compiler.MustCompile("a")}}}},
		{"no exit", &domain.Sequence{Name: "x", Stages: []domain.Stage{{Index: 0}}}},
		{"empty action", &domain.Sequence{Name: "x", Stages: []domain.Stage{{
			Index:   0,
			Actions: []domain.Write{{Value: 1.0}},
			Exit:    compiler.MustCompile("a"),
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sequencer.New(tt.seq)
			assert.Error(t, err)
		})
	}
}

func TestNew_RunID(t *testing.T) {
	s, err := sequencer.New(valvePumpSequence(), sequencer.WithRunID("run-1"))
	require.NoError(t, err)
	assert.Equal(t, "run-1", s.Run().ID)
	assert.Equal(t, domain.StatusContinue, s.Run().Status)
	assert.Equal(t, sequencer.ActuateOnTransition, s.Policy())

	other, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)
	assert.NotEmpty(t, other.Run().ID)
}

func TestAdvance_ValvePumpScenario(t *testing.T) {
	p := valvePumpScript()
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusContinue, step(t, s, p))
	assert.Equal(t, []testutils.RecordedWrite{{Tick: 0, Name: "valve", Value: "closed"}}, p.Writes())
	assert.Equal(t, 0, s.Run().StageIndex)

	assert.Equal(t, domain.StatusContinue, step(t, s, p))
	assert.Equal(t, 1, s.Run().StageIndex)
	assert.True(t, s.Run().Entered)
	require.Len(t, p.Writes(), 2)
	assert.Equal(t, testutils.RecordedWrite{Tick: 1, Name: "pump", Value: "off"}, p.Writes()[1])

	assert.Equal(t, domain.StatusCompleted, step(t, s, p))
	assert.Equal(t, 3, s.Run().Ticks)
	assert.Equal(t, 2, p.Tick(), "the completing tick must not advance the clock")
	assert.Len(t, p.Writes(), 2)

	require.Len(t, s.Run().Transitions, 2)
	assert.Equal(t, 0, s.Run().Transitions[0].Tick)
	assert.Equal(t, 1, s.Run().Transitions[1].Tick)
}

func TestAdvance_ValvePumpScenario_NextTick(t *testing.T) {
	p := valvePumpScript()
	s, err := sequencer.New(valvePumpSequence(), sequencer.WithEntryPolicy(sequencer.ActuateOnNextTick))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusContinue, step(t, s, p))
	assert.Equal(t, domain.StatusContinue, step(t, s, p))
	assert.Equal(t, 1, s.Run().StageIndex)
	assert.False(t, s.Run().Entered, "entry is deferred to the next tick")
	assert.Len(t, p.Writes(), 1)

	assert.Equal(t, domain.StatusCompleted, step(t, s, p))
	require.Len(t, p.Writes(), 2)
	assert.Equal(t, testutils.RecordedWrite{Tick: 2, Name: "pump", Value: "off"}, p.Writes()[1])
	assert.Equal(t, 3, s.Run().Ticks)
}

func TestAdvance_ActuatesOnce(t *testing.T) {
	p := testutils.NewScriptedProcess(map[string]domain.Value{"isClosed": false, "speed": 50.0})
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.StatusContinue, step(t, s, p))
	}
	assert.Len(t, p.Writes(), 1)
	assert.Equal(t, 0, s.Run().StageIndex)
	assert.Equal(t, 10, s.Run().Ticks)
}

func TestAdvance_UnchangedReadingsNeverDoubleAdvance(t *testing.T) {
	// isClosed holds but the pump never slows down.
	p := testutils.NewScriptedProcess(map[string]domain.Value{"isClosed": true, "speed": 50.0})
	ctx := context.Background()
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	// Repeated evaluation without advancing the clock.
	for i := 0; i < 5; i++ {
		status, err := s.Advance(ctx, p, p, p)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusContinue, status)
		assert.Equal(t, 1, s.Run().StageIndex)
	}
	assert.Len(t, p.Writes(), 2)
}

func TestAdvance_AlreadyTrueOnEntry(t *testing.T) {
	script := map[string]domain.Value{"isClosed": true, "speed": 0.0}

	t.Run("on-transition", func(t *testing.T) {
		p := testutils.NewScriptedProcess(script)
		s, err := sequencer.New(valvePumpSequence())
		require.NoError(t, err)

		assert.Equal(t, domain.StatusContinue, step(t, s, p))
		assert.Equal(t, 1, s.Run().StageIndex)
		assert.Equal(t, domain.StatusCompleted, step(t, s, p))

		writes := p.Writes()
		require.Len(t, writes, 2)
		assert.Equal(t, 0, writes[0].Tick)
		assert.Equal(t, 0, writes[1].Tick)
		assert.Equal(t, 2, s.Run().Ticks)
	})

	t.Run("on-next-tick", func(t *testing.T) {
		p := testutils.NewScriptedProcess(script)
		s, err := sequencer.New(valvePumpSequence(), sequencer.WithEntryPolicy(sequencer.ActuateOnNextTick))
		require.NoError(t, err)

		assert.Equal(t, domain.StatusContinue, step(t, s, p))
		assert.Equal(t, domain.StatusCompleted, step(t, s, p))

		writes := p.Writes()
		require.Len(t, writes, 2)
		assert.Equal(t, 0, writes[0].Tick)
		assert.Equal(t, 1, writes[1].Tick, "stage entered and exited in the same tick")
		assert.Equal(t, 2, s.Run().Ticks)
	})
}

func TestAdvance_MonotoneStages(t *testing.T) {
	const n = 5
	seq := &domain.Sequence{Name: "chain"}
	for i := 0; i < n; i++ {
		seq.Stages = append(seq.Stages, domain.Stage{
			Index:   i,
			Name:    fmt.Sprintf("stage-%d", i),
			Actions: []domain.Write{{Variable: fmt.Sprintf("cmd%d", i), Value: true}},
			Exit:    compiler.MustCompile(fmt.Sprintf("done%d == true", i)),
		})
	}

	// done_i becomes true at tick 2i+1 and stays true.
	script := make([]map[string]domain.Value, 2*n+1)
	for k := range script {
		script[k] = map[string]domain.Value{}
	}
	for i := 0; i < n; i++ {
		script[0][fmt.Sprintf("done%d", i)] = false
		script[2*i+1][fmt.Sprintf("done%d", i)] = true
	}

	for _, policy := range []sequencer.EntryPolicy{sequencer.ActuateOnTransition, sequencer.ActuateOnNextTick} {
		t.Run(policy.String(), func(t *testing.T) {
			p := testutils.NewScriptedProcess(script...)
			s, err := sequencer.New(seq, sequencer.WithEntryPolicy(policy))
			require.NoError(t, err)

			last := 0
			satisfied := 0
			for i := 0; i < 100; i++ {
				before := s.Run().StageIndex
				status := step(t, s, p)
				after := s.Run().StageIndex
				assert.GreaterOrEqual(t, after, last)
				assert.LessOrEqual(t, after-before, 1)
				if after > before || status == domain.StatusCompleted {
					satisfied++
				}
				last = after
				if status == domain.StatusCompleted {
					break
				}
			}
			assert.Equal(t, domain.StatusCompleted, s.Run().Status)
			assert.Equal(t, n, satisfied)

			writes := p.Writes()
			require.Len(t, writes, n)
			for i, w := range writes {
				assert.Equal(t, fmt.Sprintf("cmd%d", i), w.Name)
			}
		})
	}
}

func TestAdvance_UnknownVariableHalts(t *testing.T) {
	p := testutils.NewScriptedProcess(map[string]domain.Value{"speed": 50.0})
	ctx := context.Background()
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	status, err := s.Advance(ctx, p, p, p)
	assert.Equal(t, domain.StatusFailed, status)
	require.Error(t, err)

	var seqErr *domain.SequencerError
	require.True(t, errors.As(err, &seqErr))
	assert.Equal(t, 0, seqErr.Stage)
	assert.Equal(t, 0, seqErr.Tick)

	var unk *domain.UnknownVariableError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "isClosed", unk.Name)
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)

	// Halted: same error, no further engine traffic.
	reads := p.Reads()
	status, again := s.Advance(ctx, p, p, p)
	assert.Equal(t, domain.StatusFailed, status)
	assert.Same(t, err, again)
	assert.Equal(t, reads, p.Reads())
	assert.Equal(t, domain.StatusFailed, s.Run().Status)
	assert.NotEmpty(t, s.Run().Error)
}

func TestAdvance_WriteFailureIsNotRetried(t *testing.T) {
	p := valvePumpScript()
	p.FailWrites = map[string]error{"valve": errors.New("actuator offline")}
	ctx := context.Background()
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	_, err = s.Advance(ctx, p, p, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "actuator offline")
	assert.True(t, s.Run().Entered)
	assert.Equal(t, 0, s.Run().Ticks)
	assert.Equal(t, 0, p.Reads(), "predicate is not evaluated after a failed actuation")
}

func TestAdvance_CompletedIsIdempotent(t *testing.T) {
	p := testutils.NewScriptedProcess(map[string]domain.Value{"isClosed": true, "speed": 0.0})
	ctx := context.Background()
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	step(t, s, p)
	require.Equal(t, domain.StatusCompleted, step(t, s, p))

	ticks := s.Run().Ticks
	status, err := s.Advance(ctx, p, p, p)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, status)
	assert.Equal(t, ticks, s.Run().Ticks)
}

func TestHalt_FailsJustCompletedRun(t *testing.T) {
	p := testutils.NewScriptedProcess(map[string]domain.Value{"isClosed": true, "speed": 0.0})
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	step(t, s, p)
	require.Equal(t, domain.StatusCompleted, step(t, s, p))

	cause := errors.New("recorder offline")
	err = s.Halt(cause)
	var seqErr *domain.SequencerError
	require.ErrorAs(t, err, &seqErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, seqErr.Stage)
	assert.Equal(t, 1, seqErr.Tick)
	assert.Equal(t, domain.StatusFailed, s.Run().Status)
}

func TestHalt(t *testing.T) {
	s, err := sequencer.New(valvePumpSequence())
	require.NoError(t, err)

	cause := errors.New("operator abort")
	err = s.Halt(cause)
	assert.ErrorIs(t, err, cause)
	assert.Same(t, err, s.Err())
	assert.Same(t, err, s.Halt(errors.New("second")))
}

func TestLifecycleHooks(t *testing.T) {
	var events []string
	hooks := domain.LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *domain.StageEvent) {
			events = append(events, fmt.Sprintf("enter:%s@%d", e.StageName, e.Tick))
		},
		OnStageExit: func(ctx context.Context, e *domain.StageEvent) {
			events = append(events, fmt.Sprintf("exit:%s@%d", e.StageName, e.Tick))
		},
		OnActuation: func(ctx context.Context, e *domain.ActuationEvent) {
			events = append(events, "write:"+e.Write.Variable)
		},
		OnComplete: func(ctx context.Context, r *domain.Run) {
			events = append(events, "complete")
		},
	}

	p := valvePumpScript()
	s, err := sequencer.New(valvePumpSequence(), sequencer.WithLifecycleHooks(hooks), sequencer.WithRunID("hooks"))
	require.NoError(t, err)
	for step(t, s, p) != domain.StatusCompleted {
	}

	assert.Equal(t, []string{
		"enter:close-valve@0",
		"write:valve",
		"exit:close-valve@1",
		"enter:stop-pump@1",
		"write:pump",
		"exit:stop-pump@2",
		"complete",
	}, events)
}

func TestParseEntryPolicy(t *testing.T) {
	p, ok := sequencer.ParseEntryPolicy("on-next-tick")
	assert.True(t, ok)
	assert.Equal(t, sequencer.ActuateOnNextTick, p)

	p, ok = sequencer.ParseEntryPolicy("")
	assert.True(t, ok)
	assert.Equal(t, sequencer.ActuateOnTransition, p)

	_, ok = sequencer.ParseEntryPolicy("eventually")
	assert.False(t, ok)
}
