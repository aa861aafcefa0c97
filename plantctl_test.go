package plantctl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/plantctl"
	"github.com/aretw0/plantctl/internal/sequencer"
	"github.com/aretw0/plantctl/internal/sequences"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tutorialProject() plantctl.Project {
	return plantctl.Project{
		Timeline:          memory.TutorialTimeline,
		Model:             memory.TutorialModel,
		Parameters:        memory.TutorialModel,
		InitialConditions: memory.TutorialModel,
		Speed:             20,
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	sess, err := plantctl.Open(ctx, memory.NewSimulator("p"), tutorialProject())
	require.NoError(t, err)
	defer sess.Close()

	assert.Equal(t, memory.TutorialApplication, sess.Application())
	assert.Equal(t, memory.TutorialTimeline, sess.Timeline().Name())

	v, err := sess.Process().Value(ctx, "23LT0001:MeasuredValue", "mm")
	require.NoError(t, err)
	assert.InDelta(t, 450.0, v, 1e-9)
}

func TestOpen_EngineConnectionErrors(t *testing.T) {
	ctx := context.Background()
	cases := map[string]func(p *plantctl.Project){
		"activate timeline":  func(p *plantctl.Project) { p.Timeline = "Nope" },
		"load":               func(p *plantctl.Project) { p.Model = "missing" },
		"select application": func(p *plantctl.Project) { p.Application = "Other" },
	}
	for op, mutate := range cases {
		op, mutate := op, mutate
		t.Run(op, func(t *testing.T) {
			p := tutorialProject()
			mutate(&p)
			_, err := plantctl.Open(ctx, memory.NewSimulator("p"), p)
			var ece *domain.EngineConnectionError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, op, ece.Op)
		})
	}

	_, err := plantctl.Open(ctx, nil, tutorialProject())
	var ece *domain.EngineConnectionError
	assert.ErrorAs(t, err, &ece)
}

func TestSession_RunsBuiltinSeparatorShutdown(t *testing.T) {
	ctx := context.Background()
	sess, err := plantctl.Open(ctx, memory.NewSimulator("p"), tutorialProject())
	require.NoError(t, err)

	def, err := sequences.Resolve("separator-shutdown", nil)
	require.NoError(t, err)
	seq, err := sequences.Compile(def)
	require.NoError(t, err)

	store := memory.NewStore()
	var entered []string
	run, err := sess.Run(ctx, seq, plantctl.RunOptions{
		ID:     "r1",
		Store:  store,
		Locker: memory.NewLocker(),
		Hooks: domain.LifecycleHooks{
			OnStageEnter: func(_ context.Context, e *domain.StageEvent) { entered = append(entered, e.StageName) },
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, run.Status)
	assert.Equal(t, []string{"close-inlet", "close-outlet", "stop-pump", "stop-compressor"}, entered)
	assert.Len(t, run.Samples, run.Ticks)
	assert.Len(t, run.Columns, len(seq.Record))

	saved, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, saved.Status)

	closed, err := sess.Process().Value(ctx, "23ESV0005:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, true, closed)
}

func TestSession_RunPolicies(t *testing.T) {
	ctx := context.Background()
	def, err := sequences.Resolve("separator-shutdown", nil)
	require.NoError(t, err)
	seq, err := sequences.Compile(def)
	require.NoError(t, err)

	ticks := map[sequencer.EntryPolicy]int{}
	for _, p := range []sequencer.EntryPolicy{sequencer.ActuateOnTransition, sequencer.ActuateOnNextTick} {
		sess, err := plantctl.Open(ctx, memory.NewSimulator("p"), tutorialProject())
		require.NoError(t, err)
		run, err := sess.Run(ctx, seq, plantctl.RunOptions{Policy: p})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, run.Status)
		ticks[p] = run.Ticks
	}
	assert.Greater(t, ticks[sequencer.ActuateOnNextTick], 0)
	assert.Greater(t, ticks[sequencer.ActuateOnTransition], 0)
}

func TestSession_RunValidatesVariables(t *testing.T) {
	ctx := context.Background()
	sess, err := plantctl.Open(ctx, memory.NewSimulator("p"), tutorialProject())
	require.NoError(t, err)

	seq, err := sequences.Compile(&sequences.Definition{
		Name: "typo",
		Stages: []sequences.StageDefinition{
			{Name: "s", Actions: []domain.Write{{Variable: "25ESV9999:LocalInput", Value: false}}, Exit: "25ESV0001:IsDefinedClosed == true"},
		},
	})
	require.NoError(t, err)

	_, err = sess.Run(ctx, seq, plantctl.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)

	pos, err := sess.Process().Value(ctx, "25ESV0001:ValveStemPosition", "")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pos, 1e-9, "nothing was actuated")
}
