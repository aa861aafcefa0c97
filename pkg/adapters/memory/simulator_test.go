package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTutorial(t *testing.T) *memory.Timeline {
	t.Helper()
	ctx := context.Background()
	sim := memory.NewSimulator("testdata/DemoProject")
	t.Cleanup(func() { _ = sim.Close() })

	tl, err := sim.Timeline(ctx, memory.TutorialTimeline)
	require.NoError(t, err)
	require.NoError(t, tl.Load(ctx, memory.TutorialModel, memory.TutorialModel, memory.TutorialModel))
	require.NoError(t, tl.Initialize(ctx))
	return tl
}

func TestSimulator_Lifecycle(t *testing.T) {
	ctx := context.Background()
	sim := memory.NewSimulator("p")

	_, err := sim.ActivateTimeline(ctx, "Nope")
	assert.Error(t, err)

	tl, err := sim.Timeline(ctx, memory.TutorialTimeline)
	require.NoError(t, err)
	again, err := sim.Timeline(ctx, memory.TutorialTimeline)
	require.NoError(t, err)
	assert.Same(t, tl, again)

	_, err = tl.Applications(ctx)
	assert.Error(t, err, "no model loaded yet")

	assert.Error(t, tl.Load(ctx, "Unknown Model", "", "ic"))
	assert.Error(t, tl.Load(ctx, memory.TutorialModel, "Other Params", "ic"))
	require.NoError(t, tl.Load(ctx, memory.TutorialModel, "", "ic"))

	assert.Error(t, tl.RunFor(ctx, time.Second), "not initialized")
	require.NoError(t, tl.Initialize(ctx))

	apps, err := tl.Applications(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{memory.TutorialApplication}, apps)

	require.NoError(t, sim.Close())
	_, err = sim.ActivateTimeline(ctx, memory.TutorialTimeline)
	assert.ErrorIs(t, err, memory.ErrClosed)
}

func TestTimeline_UnitsAndUnknownVariables(t *testing.T) {
	ctx := context.Background()
	tl := openTutorial(t)
	app := memory.TutorialApplication

	si, err := tl.GetValue(ctx, app, "23LT0001:MeasuredValue", "")
	require.NoError(t, err)
	assert.InDelta(t, 0.45, si, 1e-9)

	mm, err := tl.GetValue(ctx, app, "23LT0001:MeasuredValue", "mm")
	require.NoError(t, err)
	assert.InDelta(t, 450.0, mm, 1e-9)

	pct, err := tl.GetValue(ctx, app, "25ESV0001:ValveStemPosition", "%")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, pct, 1e-9)

	closed, err := tl.GetValue(ctx, app, "25ESV0001:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, false, closed)

	_, err = tl.GetValue(ctx, app, "23LT9999:MeasuredValue", "")
	var unk *domain.UnknownVariableError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, app, unk.Application)

	_, err = tl.GetValue(ctx, app, "23LT0001:MeasuredValue", "furlongs")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	err = tl.SetValue(ctx, app, "23XX0001:LocalInput", false, "")
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)

	err = tl.SetValue(ctx, app, "23LT0001:MeasuredValue", 1.0, "")
	assert.Error(t, err, "transmitter outputs are read-only")

	_, err = tl.GetValue(ctx, "Other App", "23LT0001:MeasuredValue", "")
	assert.Error(t, err)

	require.NoError(t, tl.SetValue(ctx, app, "23LIC002:InternalSetpoint", 500, "mm"))
	sp, err := tl.GetValue(ctx, app, "23LIC002:InternalSetpoint", "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sp, 1e-9)

	values, err := tl.GetValues(ctx, app, []domain.Variable{
		{Name: "23LIC002:InternalSetpoint", Unit: "mm"},
		{Name: "23KA0001_m:Speed[0]", Unit: "rpm"},
	})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.InDelta(t, 500.0, values[0], 1e-9)
	assert.InDelta(t, 1480.2, values[1], 0.1)
}

func TestTimeline_ShutdownDynamics(t *testing.T) {
	ctx := context.Background()
	tl := openTutorial(t)
	app := memory.TutorialApplication

	require.NoError(t, tl.SetValue(ctx, app, "25ESV0001:LocalInput", false, ""))
	require.NoError(t, tl.RunFor(ctx, 9*time.Second))

	closed, err := tl.GetValue(ctx, app, "25ESV0001:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, false, closed)

	require.NoError(t, tl.RunFor(ctx, 1500*time.Millisecond))
	closed, err = tl.GetValue(ctx, app, "25ESV0001:IsDefinedClosed", "")
	require.NoError(t, err)
	assert.Equal(t, true, closed)

	mt, err := tl.ModelTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10500*time.Millisecond, mt)

	require.NoError(t, tl.SetValue(ctx, app, "23KA0001_m:LocalInput", false, ""))
	require.NoError(t, tl.RunFor(ctx, 12*time.Second))
	speed, err := tl.GetValue(ctx, app, "23KA0001_m:Speed[0]", "")
	require.NoError(t, err)
	assert.Less(t, speed.(float64), 10.0)
}

func TestTimeline_InitialConditionKeepsParameters(t *testing.T) {
	ctx := context.Background()
	tl := openTutorial(t)
	app := memory.TutorialApplication

	require.NoError(t, tl.SetValue(ctx, app, "23LIC002:Gain", 3.5, ""))
	require.NoError(t, tl.SetValue(ctx, app, "25ESV0001:LocalInput", false, ""))
	require.NoError(t, tl.RunFor(ctx, time.Minute))

	require.NoError(t, tl.LoadInitialCondition(ctx, memory.TutorialModel))
	assert.Error(t, tl.RunFor(ctx, time.Second), "initialize is required after loading a condition")
	require.NoError(t, tl.Initialize(ctx))

	mt, err := tl.ModelTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), mt)

	pos, err := tl.GetValue(ctx, app, "25ESV0001:ValveStemPosition", "")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pos, 1e-9)

	gain, err := tl.GetValue(ctx, app, "23LIC002:Gain", "")
	require.NoError(t, err)
	assert.Equal(t, 3.5, gain)

	assert.Error(t, tl.LoadInitialCondition(ctx, "missing"))

	require.NoError(t, tl.SaveInitialCondition(ctx, "checkpoint"))
	require.NoError(t, tl.LoadInitialCondition(ctx, "checkpoint"))
}

func TestTimeline_Blocks(t *testing.T) {
	ctx := context.Background()
	tl := openTutorial(t)
	app := memory.TutorialApplication

	names, err := tl.BlockNames(ctx, app)
	require.NoError(t, err)
	assert.Contains(t, names, "23LIC002")
	assert.Contains(t, names, "25ESV0001")

	blocks, err := tl.Blocks(ctx, app, names)
	require.NoError(t, err)
	require.Len(t, blocks, len(names))

	var transmitters int
	for _, b := range blocks {
		if b.Type == domain.BlockTypeAlarmTransmitter {
			transmitters++
			assert.Contains(t, b.OutputNames, "MeasuredValue")
		}
		for _, in := range b.Inputs {
			assert.Equal(t, b.Name, in.DestinationBlock)
		}
	}
	assert.Equal(t, 4, transmitters)

	_, err = tl.Blocks(ctx, app, []string{"missing"})
	assert.Error(t, err)
}

func TestTimeline_SpeedAndCancellation(t *testing.T) {
	tl := openTutorial(t)
	ctx, cancel := context.WithCancel(context.Background())

	assert.Error(t, tl.SetSpeed(ctx, 0))
	require.NoError(t, tl.SetSpeed(ctx, 1000))
	assert.Equal(t, 1000.0, tl.Speed())

	assert.Error(t, tl.RunFor(ctx, -time.Second))

	cancel()
	assert.ErrorIs(t, tl.RunFor(ctx, time.Hour), context.Canceled)
}
