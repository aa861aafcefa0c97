// Package testutils provides deterministic engine fakes for package tests.
package testutils

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
)

// RecordedWrite is one SetValue call observed by ScriptedProcess.
type RecordedWrite struct {
	Tick  int
	Name  string
	Value domain.Value
	Unit  string
}

// ScriptedProcess is a ports.Process whose readings follow a per-tick script.
// Script[k] overlays the readings of tick k on top of every earlier tick, so a
// tick only lists what changed. Ticks past the end of the script keep the last
// readings. Each RunFor call advances to the next tick.
type ScriptedProcess struct {
	Script []map[string]domain.Value

	// FailWrites makes SetValue fail for the named variables.
	FailWrites map[string]error
	// FailReadsAt makes every read fail from the given tick on (negative disables).
	FailReadsAt int
	// FailBatchAt makes Values fail from the given tick on (negative disables).
	FailBatchAt int

	mu     sync.Mutex
	tick   int
	model  time.Duration
	writes []RecordedWrite
	reads  int
}

// NewScriptedProcess creates a process from a per-tick script.
func NewScriptedProcess(script ...map[string]domain.Value) *ScriptedProcess {
	return &ScriptedProcess{Script: script, FailReadsAt: -1, FailBatchAt: -1}
}

func (p *ScriptedProcess) lookup(name string) (domain.Value, bool) {
	last := p.tick
	if last >= len(p.Script) {
		last = len(p.Script) - 1
	}
	for k := last; k >= 0; k-- {
		if v, ok := p.Script[k][name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (p *ScriptedProcess) Value(ctx context.Context, name, unit string) (domain.Value, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.FailReadsAt >= 0 && p.tick >= p.FailReadsAt {
		return nil, fmt.Errorf("read %s: engine unavailable", name)
	}
	p.reads++
	v, ok := p.lookup(name)
	if !ok {
		return nil, &domain.UnknownVariableError{Name: name}
	}
	return v, nil
}

func (p *ScriptedProcess) Values(ctx context.Context, vars []domain.Variable) ([]domain.Value, error) {
	p.mu.Lock()
	failed := p.FailBatchAt >= 0 && p.tick >= p.FailBatchAt
	p.mu.Unlock()
	if failed {
		return nil, errors.New("batch read failed")
	}
	out := make([]domain.Value, 0, len(vars))
	for _, v := range vars {
		val, err := p.Value(ctx, v.Name, v.Unit)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

func (p *ScriptedProcess) SetValue(ctx context.Context, name string, value domain.Value, unit string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err, ok := p.FailWrites[name]; ok {
		return err
	}
	p.writes = append(p.writes, RecordedWrite{Tick: p.tick, Name: name, Value: value, Unit: unit})
	return nil
}

func (p *ScriptedProcess) RunFor(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tick++
	p.model += d
	return nil
}

func (p *ScriptedProcess) ModelTime(ctx context.Context) (time.Duration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.model, nil
}

// Tick returns the number of RunFor calls so far.
func (p *ScriptedProcess) Tick() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tick
}

// Writes returns every recorded write in call order.
func (p *ScriptedProcess) Writes() []RecordedWrite {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]RecordedWrite, len(p.writes))
	copy(out, p.writes)
	return out
}

// Reads returns the number of successful reads.
func (p *ScriptedProcess) Reads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}
