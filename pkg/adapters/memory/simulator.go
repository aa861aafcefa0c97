package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/aretw0/plantctl/pkg/units"
)

// TutorialTimeline is the timeline name of the bundled project.
const TutorialTimeline = "Tutorial"

// DefaultSubStep is the fixed integration step used by RunFor.
const DefaultSubStep = 100 * time.Millisecond

// ErrClosed is returned by a closed simulator.
var ErrClosed = errors.New("simulator closed")

// Simulator implements ports.Simulator with deterministic in-process plants.
// Safe for concurrent use.
type Simulator struct {
	project string
	models  map[string]PlantFactory
	subStep time.Duration
	names   []string

	mu        sync.Mutex
	timelines map[string]*Timeline
	closed    bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithModel registers a model under name. Timelines can load it by that name.
func WithModel(name string, factory PlantFactory) Option {
	return func(s *Simulator) {
		s.models[name] = factory
	}
}

// WithTimelines sets the timeline names the project exposes.
func WithTimelines(names ...string) Option {
	return func(s *Simulator) {
		s.names = names
	}
}

// WithSubStep sets the integration step.
func WithSubStep(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.subStep = d
		}
	}
}

// NewSimulator opens a project. The tutorial model and timeline are always available.
func NewSimulator(project string, opts ...Option) *Simulator {
	s := &Simulator{
		project:   project,
		models:    map[string]PlantFactory{TutorialModel: TutorialFactory},
		subStep:   DefaultSubStep,
		names:     []string{TutorialTimeline},
		timelines: make(map[string]*Timeline),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project returns the project path the simulator was opened with.
func (s *Simulator) Project() string { return s.project }

// Timelines lists the timeline names of the project.
func (s *Simulator) Timelines() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	sort.Strings(out)
	return out
}

// ActivateTimeline returns the named timeline, creating it on first use.
func (s *Simulator) ActivateTimeline(ctx context.Context, name string) (ports.Timeline, error) {
	return s.activate(ctx, name)
}

// Timeline is ActivateTimeline returning the concrete type.
func (s *Simulator) Timeline(ctx context.Context, name string) (*Timeline, error) {
	return s.activate(ctx, name)
}

func (s *Simulator) activate(ctx context.Context, name string) (*Timeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if tl, ok := s.timelines[name]; ok {
		return tl, nil
	}
	known := false
	for _, n := range s.names {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("timeline %q not found in project %q", name, s.project)
	}
	tl := &Timeline{name: name, sim: s, speed: 1}
	s.timelines[name] = tl
	return tl, nil
}

// Close releases every timeline.
func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.timelines = make(map[string]*Timeline)
	return nil
}

func (s *Simulator) factory(model string) (PlantFactory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.models[model]
	return f, ok
}

// Timeline implements ports.Timeline over one Plant.
type Timeline struct {
	name string
	sim  *Simulator

	mu          sync.Mutex
	plant       Plant
	model       string
	conditions  map[string]snapshot
	initialized bool
	speed       float64
	modelTime   time.Duration
}

type snapshot struct {
	state     map[string]float64
	modelTime time.Duration
}

var _ ports.Timeline = (*Timeline)(nil)

func (t *Timeline) Name() string { return t.name }

// Load builds the plant from the model and parameter set and records the
// loaded state as the named initial condition.
func (t *Timeline) Load(ctx context.Context, model, parameters, initialConditions string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	factory, ok := t.sim.factory(model)
	if !ok {
		return fmt.Errorf("model %q not found", model)
	}
	plant, err := factory(parameters)
	if err != nil {
		return fmt.Errorf("load model %q: %w", model, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.plant = plant
	t.model = model
	t.initialized = false
	t.modelTime = 0
	t.conditions = map[string]snapshot{
		initialConditions: {state: plant.Snapshot()},
	}
	return nil
}

// LoadInitialCondition restores a named snapshot. Parameters keep their values.
func (t *Timeline) LoadInitialCondition(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.plant == nil {
		return errors.New("no model loaded")
	}
	snap, ok := t.conditions[name]
	if !ok {
		return fmt.Errorf("initial condition %q not found", name)
	}
	t.plant.Restore(snap.state)
	t.modelTime = snap.modelTime
	t.initialized = false
	return nil
}

// SaveInitialCondition snapshots the current state under name.
func (t *Timeline) SaveInitialCondition(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.plant == nil {
		return errors.New("no model loaded")
	}
	t.conditions[name] = snapshot{state: t.plant.Snapshot(), modelTime: t.modelTime}
	return nil
}

func (t *Timeline) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.plant == nil {
		return errors.New("no model loaded")
	}
	t.initialized = true
	return nil
}

// SetSpeed records the execution speed. The memory engine never paces wall time.
func (t *Timeline) SetSpeed(ctx context.Context, factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("invalid speed %v", factor)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.speed = factor
	return nil
}

// Speed returns the last speed set.
func (t *Timeline) Speed() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.speed
}

func (t *Timeline) Applications(ctx context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ready(); err != nil {
		return nil, err
	}
	return []string{t.plant.Application()}, nil
}

func (t *Timeline) BlockNames(ctx context.Context, app string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkApp(app); err != nil {
		return nil, err
	}
	blocks := t.plant.Blocks()
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.Name
	}
	return names, nil
}

func (t *Timeline) Blocks(ctx context.Context, app string, names []string) ([]domain.Block, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkApp(app); err != nil {
		return nil, err
	}
	index := make(map[string]domain.Block)
	for _, b := range t.plant.Blocks() {
		index[b.Name] = b
	}
	out := make([]domain.Block, 0, len(names))
	for _, n := range names {
		b, ok := index[n]
		if !ok {
			return nil, fmt.Errorf("block %q not found in application %q", n, app)
		}
		out = append(out, b)
	}
	return out, nil
}

func (t *Timeline) GetValue(ctx context.Context, app, name, unit string) (domain.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkApp(app); err != nil {
		return nil, err
	}
	return t.get(app, name, unit)
}

func (t *Timeline) GetValues(ctx context.Context, app string, vars []domain.Variable) ([]domain.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkApp(app); err != nil {
		return nil, err
	}
	out := make([]domain.Value, len(vars))
	for i, v := range vars {
		val, err := t.get(app, v.Name, v.Unit)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (t *Timeline) get(app, name, unit string) (domain.Value, error) {
	v, ok := t.plant.Get(name)
	if !ok {
		return nil, &domain.UnknownVariableError{Application: app, Name: name}
	}
	f, isFloat := v.(float64)
	if !isFloat || unit == "" {
		return v, nil
	}
	conv, err := units.FromSI(f, unit)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return conv, nil
}

func (t *Timeline) SetValue(ctx context.Context, app, name string, value domain.Value, unit string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkApp(app); err != nil {
		return err
	}
	if _, ok := t.plant.Get(name); !ok {
		return &domain.UnknownVariableError{Application: app, Name: name}
	}

	if unit != "" {
		if _, isBool := value.(bool); !isBool {
			f, ok := domain.AsFloat(value)
			if !ok {
				return fmt.Errorf("write %s: %T value cannot carry unit %q", name, value, unit)
			}
			si, err := units.ToSI(f, unit)
			if err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			value = si
		}
	}
	if err := t.plant.Set(name, value); err != nil {
		return err
	}
	return nil
}

// RunFor integrates d of model time in fixed sub-steps.
func (t *Timeline) RunFor(ctx context.Context, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("negative duration %s", d)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ready(); err != nil {
		return err
	}

	step := t.sim.subStep
	for remaining := d; remaining > 0; remaining -= step {
		if err := ctx.Err(); err != nil {
			return err
		}
		h := step
		if remaining < h {
			h = remaining
		}
		t.plant.Step(h.Seconds())
		t.modelTime += h
	}
	return nil
}

func (t *Timeline) ModelTime(ctx context.Context) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modelTime, nil
}

func (t *Timeline) ready() error {
	if t.plant == nil {
		return errors.New("no model loaded")
	}
	if !t.initialized {
		return errors.New("timeline not initialized")
	}
	return nil
}

func (t *Timeline) checkApp(app string) error {
	if err := t.ready(); err != nil {
		return err
	}
	if app != t.plant.Application() {
		return fmt.Errorf("application %q not found on timeline %q", app, t.name)
	}
	return nil
}
