package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	newRun := func(id string) *domain.Run {
		return domain.NewRun(id, &domain.Sequence{
			Name:   "contract",
			Record: []domain.Variable{{Name: "23LT0001:MeasuredValue", Unit: "mm"}},
		})
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun(runID)
		run.StageIndex = 2
		run.Entered = true
		run.Ticks = 3
		run.ModelTime = 3 * time.Second
		run.Samples = append(run.Samples,
			domain.Sample{ModelTime: time.Second, Values: []domain.Value{512.5}},
			domain.Sample{ModelTime: 2 * time.Second, Values: []domain.Value{498.0}},
		)

		err := store.Save(ctx, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.Sequence, loaded.Sequence)
		assert.Equal(t, 2, loaded.StageIndex)
		assert.True(t, loaded.Entered)
		assert.Equal(t, 3*time.Second, loaded.ModelTime)
		require.Len(t, loaded.Samples, 2)
		assert.Equal(t, 2*time.Second, loaded.Samples[1].ModelTime)
		// JSON persistence turns every number into float64.
		assert.Equal(t, 498.0, loaded.Samples[1].Values[0])
		assert.Equal(t, run.Columns, loaded.Columns)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Loaded Copy Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRun(runID)))

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Samples = append(loaded.Samples, domain.Sample{})

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Empty(t, again.Samples)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRun(runID)))

		err := store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, newRun(id1))
		_ = store.Save(ctx, newRun(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
