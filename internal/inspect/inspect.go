// Package inspect lists the applications, blocks and live readings of a
// timeline, optionally perturbing the plant and reading it again.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// DefaultOutput is the output read from every selected block.
const DefaultOutput = "MeasuredValue"

// Options selects what to inspect.
type Options struct {
	// Application defaults to the first application on the timeline.
	Application string
	// BlockType filters the blocks whose outputs are read. Empty reads none.
	BlockType string
	// Output is the output name read from each selected block.
	Output string
	// Unit converts every reading. Empty reads SI.
	Unit string

	// Write is applied after the first reading when set.
	Write *domain.Write
	// Speed is set before running when positive.
	Speed float64
	// RunFor advances the timeline before the second reading.
	RunFor time.Duration
}

// Reading is one variable read before and, optionally, after the run.
type Reading struct {
	Variable domain.Variable `json:"variable"`
	Before   domain.Value    `json:"before"`
	After    domain.Value    `json:"after,omitempty"`
}

// Report is the result of Inspect.
type Report struct {
	Applications []string       `json:"applications"`
	Application  string         `json:"application"`
	Blocks       []domain.Block `json:"blocks"`
	Selected     []string       `json:"selected,omitempty"`
	Readings     []Reading      `json:"readings,omitempty"`
	Write        *domain.Write  `json:"write,omitempty"`
	RanFor       time.Duration  `json:"ran_for,omitempty"`
	ModelTime    time.Duration  `json:"model_time"`
}

// Inspect walks the timeline as described by opts.
func Inspect(ctx context.Context, tl ports.Timeline, opts Options) (*Report, error) {
	apps, err := tl.Applications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if len(apps) == 0 {
		return nil, errors.New("timeline has no applications")
	}
	app := opts.Application
	if app == "" {
		app = apps[0]
	}
	rep := &Report{Applications: apps, Application: app, Write: opts.Write}

	names, err := tl.BlockNames(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	rep.Blocks, err = tl.Blocks(ctx, app, names)
	if err != nil {
		return nil, fmt.Errorf("read blocks: %w", err)
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	var vars []domain.Variable
	if opts.BlockType != "" {
		for _, b := range rep.Blocks {
			if b.Type == opts.BlockType {
				rep.Selected = append(rep.Selected, b.Name)
				vars = append(vars, domain.Variable{Name: b.Name + ":" + output, Unit: opts.Unit})
			}
		}
	}

	if len(vars) > 0 {
		before, err := tl.GetValues(ctx, app, vars)
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
		for i, v := range vars {
			rep.Readings = append(rep.Readings, Reading{Variable: v, Before: before[i]})
		}
	}

	if w := opts.Write; w != nil {
		if err := tl.SetValue(ctx, app, w.Variable, w.Value, w.Unit); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.Variable, err)
		}
	}
	if opts.RunFor > 0 {
		if opts.Speed > 0 {
			if err := tl.SetSpeed(ctx, opts.Speed); err != nil {
				return nil, fmt.Errorf("set speed: %w", err)
			}
		}
		if err := tl.RunFor(ctx, opts.RunFor); err != nil {
			return nil, fmt.Errorf("run for %s: %w", opts.RunFor, err)
		}
		rep.RanFor = opts.RunFor
		if len(vars) > 0 {
			after, err := tl.GetValues(ctx, app, vars)
			if err != nil {
				return nil, fmt.Errorf("read values: %w", err)
			}
			for i := range rep.Readings {
				rep.Readings[i].After = after[i]
			}
		}
	}

	rep.ModelTime, err = tl.ModelTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("model time: %w", err)
	}
	return rep, nil
}

// Markdown renders the report.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Timeline inspection\n\n")
	fmt.Fprintf(&sb, "**Applications:** %s  \n", strings.Join(r.Applications, ", "))
	fmt.Fprintf(&sb, "**Selected application:** %s  \n", r.Application)
	fmt.Fprintf(&sb, "**Model time:** %s\n\n", r.ModelTime)

	sb.WriteString("## Blocks\n\n")
	sb.WriteString("| Block | Type | Outputs |\n|---|---|---|\n")
	for _, b := range r.Blocks {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", b.Name, b.Type, strings.Join(b.OutputNames, ", "))
	}

	if len(r.Readings) == 0 {
		return sb.String()
	}
	sb.WriteString("\n## Readings\n\n")
	if r.Write != nil {
		fmt.Fprintf(&sb, "Wrote `%s`", r.Write)
		if r.RanFor > 0 {
			fmt.Fprintf(&sb, ", then ran for %s", r.RanFor)
		}
		sb.WriteString(".\n\n")
	} else if r.RanFor > 0 {
		fmt.Fprintf(&sb, "Ran for %s.\n\n", r.RanFor)
	}
	if r.RanFor > 0 {
		sb.WriteString("| Variable | Before | After |\n|---|---|---|\n")
		for _, rd := range r.Readings {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", rd.Variable, domain.FormatValue(rd.Before), domain.FormatValue(rd.After))
		}
	} else {
		sb.WriteString("| Variable | Value |\n|---|---|\n")
		for _, rd := range r.Readings {
			fmt.Fprintf(&sb, "| %s | %s |\n", rd.Variable, domain.FormatValue(rd.Before))
		}
	}
	return sb.String()
}
