// Package sequences loads shutdown sequence definitions from YAML or JSON
// documents and compiles them into stage tables.
package sequences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/plantctl/internal/compiler"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// Definition is the file representation of a sequence.
type Definition struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Application string            `yaml:"application,omitempty" json:"application,omitempty"`
	Tick        string            `yaml:"tick,omitempty" json:"tick,omitempty"`
	MaxTicks    int               `yaml:"max_ticks,omitempty" json:"max_ticks,omitempty"`
	Record      []domain.Variable `yaml:"record,omitempty" json:"record,omitempty"`
	Stages      []StageDefinition `yaml:"stages" json:"stages"`

	// Source is the file the definition was read from, or "builtin".
	Source string `yaml:"-" json:"-"`
}

// StageDefinition is one stage as written in a sequence file.
type StageDefinition struct {
	Name    string         `yaml:"name" json:"name"`
	Actions []domain.Write `yaml:"actions,omitempty" json:"actions,omitempty"`
	Exit    string         `yaml:"exit" json:"exit"`
}

// Compile turns a definition into an immutable stage table.
func Compile(def *Definition) (*domain.Sequence, error) {
	if def == nil {
		return nil, errors.New("definition is required")
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%s: sequence has no name", def.Source)
	}
	if len(def.Stages) == 0 {
		return nil, fmt.Errorf("sequence %q has no stages", def.Name)
	}

	seq := &domain.Sequence{
		Name:        def.Name,
		Description: def.Description,
		Application: def.Application,
		MaxTicks:    def.MaxTicks,
	}

	if def.Tick != "" {
		d, err := time.ParseDuration(def.Tick)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: invalid tick %q: %w", def.Name, def.Tick, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("sequence %q: tick must be positive, got %s", def.Name, d)
		}
		seq.Tick = d
	}
	if def.MaxTicks < 0 {
		return nil, fmt.Errorf("sequence %q: max_ticks must not be negative", def.Name)
	}

	for i, v := range def.Record {
		if v.Name == "" {
			return nil, fmt.Errorf("sequence %q: record entry %d has no name", def.Name, i)
		}
		seq.Record = append(seq.Record, v)
	}

	parser := compiler.NewParser()
	for i, sd := range def.Stages {
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("stage-%d", i)
		}
		exit, err := parser.Parse(sd.Exit)
		if err != nil {
			return nil, fmt.Errorf("sequence %q stage %d (%s): %w", def.Name, i, name, err)
		}

		actions := make([]domain.Write, 0, len(sd.Actions))
		for j, a := range sd.Actions {
			if a.Variable == "" {
				return nil, fmt.Errorf("sequence %q stage %d (%s): action %d has no variable", def.Name, i, name, j)
			}
			a.Value = normalize(a.Value)
			actions = append(actions, a)
		}

		seq.Stages = append(seq.Stages, domain.Stage{
			Index:   i,
			Name:    name,
			Actions: actions,
			Exit:    exit,
		})
	}
	return seq, nil
}

// normalize maps decoded literals onto the engine's value kinds.
func normalize(v domain.Value) domain.Value {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// Validate reads every variable the sequence references once, so a
// misspelled name fails before the first actuation.
func Validate(ctx context.Context, seq *domain.Sequence, r ports.Reader) error {
	var errs []error
	for _, v := range seq.Variables() {
		if _, err := r.Value(ctx, v.Name, v.Unit); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", v, err))
		}
	}
	return errors.Join(errs...)
}
