package tuning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/plantctl/internal/logging"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// Controller output names read and written by an experiment.
const (
	OutputGain             = "Gain"
	OutputIntegralTime     = "IntegralTime"
	OutputDerivativeTime   = "DerivativeTime"
	OutputInternalSetpoint = "InternalSetpoint"
	OutputMeasuredValue    = "MeasuredValue"
)

// Experiment repeatedly runs a setpoint response from the same initial
// condition and retunes the controller after each run.
type Experiment struct {
	Timeline    ports.Timeline
	Application string
	// InitialCondition is reloaded before every iteration.
	InitialCondition string

	Tag        string
	Setpoint   float64
	Unit       string
	Duration   time.Duration
	Samples    int
	Iterations int
	Thresholds Thresholds
	// Speed is set once before the first iteration when positive.
	Speed float64

	// OnIteration is called after each iteration's gains are written.
	OnIteration func(Iteration)
	Logger      *slog.Logger
}

// Iteration is the outcome of one response run.
type Iteration struct {
	Index       int          `json:"index"`
	Before      Gains        `json:"before"`
	After       Gains        `json:"after"`
	Criteria    Criteria     `json:"criteria"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
	// Time holds model-time offsets in seconds from the first reading.
	Time   []float64 `json:"time"`
	Output []float64 `json:"output"`
}

// NewExperiment returns an experiment with the tuning defaults: tag 23LIC002,
// setpoint 500 mm, 20 minute runs of 20 samples, 8 iterations, speed 1000.
func NewExperiment(tl ports.Timeline, app, initialCondition string) *Experiment {
	return &Experiment{
		Timeline:         tl,
		Application:      app,
		InitialCondition: initialCondition,
		Tag:              "23LIC002",
		Setpoint:         500,
		Unit:             "mm",
		Duration:         20 * time.Minute,
		Samples:          20,
		Iterations:       8,
		Thresholds:       DefaultThresholds,
		Speed:            1000,
	}
}

func (e *Experiment) validate() error {
	switch {
	case e.Timeline == nil:
		return errors.New("tuning: experiment needs a timeline")
	case e.Tag == "":
		return errors.New("tuning: experiment needs a controller tag")
	case e.Samples < MinSamples:
		return fmt.Errorf("tuning: need at least %d samples, got %d", MinSamples, e.Samples)
	case e.Duration <= 0:
		return fmt.Errorf("tuning: invalid duration %s", e.Duration)
	case e.Iterations <= 0:
		return fmt.Errorf("tuning: invalid iteration count %d", e.Iterations)
	}
	return nil
}

func (e *Experiment) name(output string) string { return e.Tag + ":" + output }

// Run executes every iteration and returns them in order. Iterations already
// finished are returned alongside an error.
func (e *Experiment) Run(ctx context.Context) ([]Iteration, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	log := e.Logger
	if log == nil {
		log = logging.NewNop()
	}
	log = log.With("tag", e.Tag)

	if e.Speed > 0 {
		if err := e.Timeline.SetSpeed(ctx, e.Speed); err != nil {
			return nil, fmt.Errorf("set speed: %w", err)
		}
	}

	var out []Iteration
	for i := 0; i < e.Iterations; i++ {
		it, err := e.iterate(ctx, i)
		if err != nil {
			return out, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		log.Info("tuning iteration", "iteration", i+1,
			"iae", it.Criteria.IAE, "ise", it.Criteria.ISE, "itae", it.Criteria.ITAE,
			"before", it.Before.String(), "after", it.After.String())
		for _, a := range it.Adjustments {
			log.Debug("tuning rule fired", "iteration", i+1, "rule", a.String())
		}
		out = append(out, it)
		if e.OnIteration != nil {
			e.OnIteration(it)
		}
	}
	return out, nil
}

func (e *Experiment) iterate(ctx context.Context, index int) (Iteration, error) {
	tl, app := e.Timeline, e.Application
	it := Iteration{Index: index}

	if e.InitialCondition != "" {
		if err := tl.LoadInitialCondition(ctx, e.InitialCondition); err != nil {
			return it, fmt.Errorf("load initial condition: %w", err)
		}
	}
	if err := tl.Initialize(ctx); err != nil {
		return it, fmt.Errorf("initialize: %w", err)
	}

	gains, err := e.readGains(ctx)
	if err != nil {
		return it, err
	}
	it.Before = gains

	if err := tl.SetValue(ctx, app, e.name(OutputInternalSetpoint), e.Setpoint, e.Unit); err != nil {
		return it, fmt.Errorf("write setpoint: %w", err)
	}

	step := e.Duration / time.Duration(e.Samples)
	start, err := tl.ModelTime(ctx)
	if err != nil {
		return it, fmt.Errorf("model time: %w", err)
	}
	for k := 0; k < e.Samples; k++ {
		if k > 0 {
			if err := tl.RunFor(ctx, step); err != nil {
				return it, fmt.Errorf("run for %s: %w", step, err)
			}
		}
		v, err := e.readFloat(ctx, e.name(OutputMeasuredValue), e.Unit)
		if err != nil {
			return it, err
		}
		now, err := tl.ModelTime(ctx)
		if err != nil {
			return it, fmt.Errorf("model time: %w", err)
		}
		it.Time = append(it.Time, (now - start).Seconds())
		it.Output = append(it.Output, v)
	}

	it.Criteria, err = Evaluate(it.Time, it.Output, e.Setpoint)
	if err != nil {
		return it, err
	}
	it.After, it.Adjustments = Adjust(it.Before, it.Criteria, e.Thresholds)

	writes := []struct {
		output string
		value  float64
	}{
		{OutputGain, it.After.Kp},
		{OutputIntegralTime, it.After.Ki},
		{OutputDerivativeTime, it.After.Kd},
	}
	for _, w := range writes {
		if err := tl.SetValue(ctx, app, e.name(w.output), w.value, ""); err != nil {
			return it, fmt.Errorf("write %s: %w", w.output, err)
		}
	}
	return it, nil
}

func (e *Experiment) readGains(ctx context.Context) (Gains, error) {
	var g Gains
	var err error
	if g.Kp, err = e.readFloat(ctx, e.name(OutputGain), ""); err != nil {
		return g, err
	}
	if g.Ki, err = e.readFloat(ctx, e.name(OutputIntegralTime), ""); err != nil {
		return g, err
	}
	if g.Kd, err = e.readFloat(ctx, e.name(OutputDerivativeTime), ""); err != nil {
		return g, err
	}
	return g, nil
}

func (e *Experiment) readFloat(ctx context.Context, name, unit string) (float64, error) {
	v, err := e.Timeline.GetValue(ctx, e.Application, name, unit)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	f, ok := domain.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("read %s: %T is not numeric", name, v)
	}
	return f, nil
}
