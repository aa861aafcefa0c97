package domain

import (
	"errors"
	"fmt"
)

// ErrTickLimit is returned when a run exhausts its tick budget before completing.
var ErrTickLimit = errors.New("tick limit reached")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrUnknownUnit is returned when a unit cannot be converted.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrUnknownVariable matches any *UnknownVariableError with errors.Is.
var ErrUnknownVariable = errors.New("unknown variable")

// EngineConnectionError reports a failure to open, load or initialize an engine session.
type EngineConnectionError struct {
	Op    string
	Cause error
}

func (e *EngineConnectionError) Error() string {
	return fmt.Sprintf("engine connection: %s: %v", e.Op, e.Cause)
}

func (e *EngineConnectionError) Unwrap() error { return e.Cause }

// UnknownVariableError reports a read or write against a name the engine does not know.
type UnknownVariableError struct {
	Application string
	Name        string
}

func (e *UnknownVariableError) Error() string {
	if e.Application == "" {
		return fmt.Sprintf("unknown variable %q", e.Name)
	}
	return fmt.Sprintf("unknown variable %q in application %q", e.Name, e.Application)
}

func (e *UnknownVariableError) Is(target error) bool {
	return target == ErrUnknownVariable
}

// SequencerError halts a run. The samples recorded before it remain valid.
type SequencerError struct {
	Sequence  string
	Stage     int
	StageName string
	Tick      int
	Cause     error
}

func (e *SequencerError) Error() string {
	return fmt.Sprintf("sequence %q stage %d (%s) at tick %d: %v", e.Sequence, e.Stage, e.StageName, e.Tick, e.Cause)
}

func (e *SequencerError) Unwrap() error { return e.Cause }
