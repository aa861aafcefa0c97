package domain

import (
	"time"
)

// Status is the outcome of one sequencer tick, and the final state of a run.
type Status string

const (
	StatusContinue  Status = "continue"  // Waiting on the current stage's exit predicate
	StatusCompleted Status = "completed" // Terminal stage's predicate held
	StatusFailed    Status = "failed"    // Halted by an error
)

// Sample is one row of the run log: model time plus the recorded values,
// in the order of Run.Columns.
type Sample struct {
	ModelTime time.Duration `json:"model_time"`
	Values    []Value       `json:"values"`
}

// Seconds returns the sample's model time in seconds.
func (s Sample) Seconds() float64 {
	return s.ModelTime.Seconds()
}

// Run is the mutable execution record of one sequence run.
type Run struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`

	// StageIndex is the current stage. It only increases.
	StageIndex int `json:"stage_index"`

	// Entered reports whether the current stage's actuation has been issued.
	Entered bool `json:"entered"`

	// Ticks counts completed sequencer evaluations.
	Ticks int `json:"ticks"`

	ModelTime time.Duration `json:"model_time"`
	Status    Status        `json:"status"`
	Error     string        `json:"error,omitempty"`

	// Transitions records the tick at which each stage was entered.
	Transitions []Transition `json:"transitions,omitempty"`

	Columns []Variable `json:"columns"`
	Samples []Sample   `json:"samples"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`

	// Sealed holds the encrypted record when a store seals runs at rest.
	Sealed string `json:"sealed,omitempty"`
}

// Transition marks the entry into a stage.
type Transition struct {
	Stage     int           `json:"stage"`
	Name      string        `json:"name"`
	Tick      int           `json:"tick"`
	ModelTime time.Duration `json:"model_time"`
}

// NewRun creates a fresh record positioned before the first stage's actuation.
func NewRun(id string, seq *Sequence) *Run {
	columns := make([]Variable, len(seq.Record))
	copy(columns, seq.Record)
	return &Run{
		ID:         id,
		Sequence:   seq.Name,
		StageIndex: 0,
		Status:     StatusContinue,
		Columns:    columns,
		Samples:    []Sample{},
		StartedAt:  time.Now().UTC(),
	}
}

// Done reports whether the run reached a final status.
func (r *Run) Done() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
