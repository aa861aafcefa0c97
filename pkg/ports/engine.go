package ports

import (
	"context"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
)

// Reader fetches current values of named process variables.
// An empty unit returns the engine's SI value.
type Reader interface {
	Value(ctx context.Context, name, unit string) (domain.Value, error)
	Values(ctx context.Context, vars []domain.Variable) ([]domain.Value, error)
}

// Writer sets a named variable, optionally expressed in a unit.
type Writer interface {
	SetValue(ctx context.Context, name string, value domain.Value, unit string) error
}

// Clock advances model time and reports elapsed model time.
type Clock interface {
	// RunFor blocks until the engine has simulated d of model time.
	RunFor(ctx context.Context, d time.Duration) error
	ModelTime(ctx context.Context) (time.Duration, error)
}

// Process is a Reader, Writer and Clock scoped to one application.
type Process interface {
	Reader
	Writer
	Clock
}

// Timeline is a named execution context inside the engine holding a loaded
// model and its live variable state.
type Timeline interface {
	Name() string

	// Load reads the model, parameter and initial-condition files.
	Load(ctx context.Context, model, parameters, initialConditions string) error
	LoadInitialCondition(ctx context.Context, name string) error
	Initialize(ctx context.Context) error

	// SetSpeed sets the execution speed as a multiple of real time.
	SetSpeed(ctx context.Context, factor float64) error

	Applications(ctx context.Context) ([]string, error)
	BlockNames(ctx context.Context, app string) ([]string, error)
	Blocks(ctx context.Context, app string, names []string) ([]domain.Block, error)

	GetValue(ctx context.Context, app, name, unit string) (domain.Value, error)
	GetValues(ctx context.Context, app string, vars []domain.Variable) ([]domain.Value, error)
	SetValue(ctx context.Context, app, name string, value domain.Value, unit string) error

	Clock
}

// Simulator is an open engine session for one project.
type Simulator interface {
	ActivateTimeline(ctx context.Context, name string) (Timeline, error)
	Close() error
}

// Bind scopes a timeline to one application.
func Bind(tl Timeline, app string) Process {
	return &boundProcess{tl: tl, app: app}
}

type boundProcess struct {
	tl  Timeline
	app string
}

func (p *boundProcess) Value(ctx context.Context, name, unit string) (domain.Value, error) {
	return p.tl.GetValue(ctx, p.app, name, unit)
}

func (p *boundProcess) Values(ctx context.Context, vars []domain.Variable) ([]domain.Value, error) {
	return p.tl.GetValues(ctx, p.app, vars)
}

func (p *boundProcess) SetValue(ctx context.Context, name string, value domain.Value, unit string) error {
	return p.tl.SetValue(ctx, p.app, name, value, unit)
}

func (p *boundProcess) RunFor(ctx context.Context, d time.Duration) error {
	return p.tl.RunFor(ctx, d)
}

func (p *boundProcess) ModelTime(ctx context.Context) (time.Duration, error) {
	return p.tl.ModelTime(ctx)
}
