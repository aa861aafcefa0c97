package ports_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStore is a JSON-round-tripping map, the simplest store that honours the contract.
type MockStore struct {
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Save(ctx context.Context, run *domain.Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	m.data[run.ID] = b
	return nil
}

func (m *MockStore) Load(ctx context.Context, id string) (*domain.Run, error) {
	b, ok := m.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	var run domain.Run
	if err := json.Unmarshal(b, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	delete(m.data, id)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestRunStore_Contract(t *testing.T) {
	ports.RunRunStoreContract(t, NewMockStore())
}

type fakeTimeline struct {
	ports.Timeline
	gotApp, gotName, gotUnit string
	gotValue                 domain.Value
	advanced                 time.Duration
}

func (f *fakeTimeline) GetValue(ctx context.Context, app, name, unit string) (domain.Value, error) {
	f.gotApp, f.gotName, f.gotUnit = app, name, unit
	return 1.0, nil
}

func (f *fakeTimeline) SetValue(ctx context.Context, app, name string, value domain.Value, unit string) error {
	f.gotApp, f.gotName, f.gotValue, f.gotUnit = app, name, value, unit
	return nil
}

func (f *fakeTimeline) RunFor(ctx context.Context, d time.Duration) error {
	f.advanced += d
	return nil
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	tl := &fakeTimeline{}
	proc := ports.Bind(tl, "Process Model")

	v, err := proc.Value(ctx, "23LT0001:MeasuredValue", "mm")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "Process Model", tl.gotApp)
	assert.Equal(t, "mm", tl.gotUnit)

	require.NoError(t, proc.SetValue(ctx, "25ESV0001:LocalInput", false, ""))
	assert.Equal(t, "25ESV0001:LocalInput", tl.gotName)
	assert.Equal(t, false, tl.gotValue)

	require.NoError(t, proc.RunFor(ctx, time.Second))
	assert.Equal(t, time.Second, tl.advanced)
}
