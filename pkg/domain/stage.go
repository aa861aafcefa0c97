package domain

import (
	"context"
	"fmt"
	"time"
)

// ValueReader is the read capability an exit predicate needs.
type ValueReader interface {
	Value(ctx context.Context, name, unit string) (Value, error)
}

// Predicate is a boolean condition over live readings that gates the exit of a stage.
type Predicate interface {
	Evaluate(ctx context.Context, r ValueReader) (bool, error)
	// Variables lists every variable the predicate reads.
	Variables() []Variable
	String() string
}

// Write is one actuation pair: set Variable to Value, expressed in Unit.
type Write struct {
	Variable string `json:"variable" yaml:"variable"`
	Value    Value  `json:"value" yaml:"value"`
	Unit     string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

func (w Write) String() string {
	if w.Unit == "" {
		return fmt.Sprintf("%s := %s", w.Variable, FormatValue(w.Value))
	}
	return fmt.Sprintf("%s := %s %s", w.Variable, FormatValue(w.Value), w.Unit)
}

// Stage is one state of a sequence. Actions are written exactly once, on entry.
type Stage struct {
	Index   int
	Name    string
	Actions []Write
	Exit    Predicate
}

// Sequence is an ordered, immutable table of stages.
type Sequence struct {
	Name        string
	Description string

	// Application scopes every read and write. Empty selects the first
	// application on the timeline.
	Application string

	// Tick is the model time advanced between two evaluations.
	Tick time.Duration

	// MaxTicks bounds the run. Zero means unbounded.
	MaxTicks int

	// Record is the ordered list of variables sampled every tick.
	Record []Variable

	Stages []Stage
}

// IsTerminal reports whether index is the last stage.
func (s *Sequence) IsTerminal(index int) bool {
	return index == len(s.Stages)-1
}

// Variables returns every distinct name and unit pair referenced by actions,
// exit predicates and the record list, in first-seen order.
func (s *Sequence) Variables() []Variable {
	seen := make(map[Variable]bool)
	var out []Variable
	add := func(v Variable) {
		if seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}
	for _, st := range s.Stages {
		for _, w := range st.Actions {
			add(Variable{Name: w.Variable, Unit: w.Unit})
		}
		if st.Exit != nil {
			for _, v := range st.Exit.Variables() {
				add(v)
			}
		}
	}
	for _, v := range s.Record {
		add(v)
	}
	return out
}
