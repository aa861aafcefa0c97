package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/plantctl/internal/presentation/chart"
	"github.com/aretw0/plantctl/internal/presentation/tui"
	"github.com/aretw0/plantctl/internal/tuning"
)

// TuneOptions contains the flags of the tune command. Zero values keep the
// experiment defaults.
type TuneOptions struct {
	Experiment tuning.Experiment
	PlotDir    string
	JSON       bool
}

// Tune runs the PID tuning experiment on the configured project.
func (a *App) Tune(ctx context.Context, opts TuneOptions) ([]tuning.Iteration, error) {
	sess, err := a.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	e := tuning.NewExperiment(sess.Timeline(), sess.Application(), a.Config.Project.InitialConditions)
	mergeExperiment(e, &opts.Experiment)
	e.Logger = a.Logger

	if opts.PlotDir != "" {
		if err := os.MkdirAll(opts.PlotDir, 0755); err != nil {
			return nil, err
		}
		e.OnIteration = func(it tuning.Iteration) {
			path := filepath.Join(opts.PlotDir, fmt.Sprintf("iteration_%02d.png", it.Index+1))
			title := fmt.Sprintf("%s iteration %d (%s)", e.Tag, it.Index+1, it.Before)
			err := chart.SaveFile(path, func(w io.Writer) error {
				return chart.Response(w, title, it.Time, it.Output, e.Setpoint)
			})
			if err != nil {
				a.Logger.Warn("response plot failed", "path", path, "error", err)
			}
		}
	}

	its, err := e.Run(ctx)
	if opts.JSON {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(its); encErr != nil && err == nil {
			err = encErr
		}
		return its, err
	}
	if len(its) > 0 {
		if perr := tui.Print(a.Out, TuningMarkdown(e.Tag, its)); perr != nil && err == nil {
			err = perr
		}
	}
	return its, err
}

func mergeExperiment(dst, src *tuning.Experiment) {
	if src.Tag != "" {
		dst.Tag = src.Tag
	}
	if src.Setpoint != 0 {
		dst.Setpoint = src.Setpoint
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.Duration > 0 {
		dst.Duration = src.Duration
	}
	if src.Samples > 0 {
		dst.Samples = src.Samples
	}
	if src.Iterations > 0 {
		dst.Iterations = src.Iterations
	}
	if src.Speed > 0 {
		dst.Speed = src.Speed
	}
	if src.Thresholds != (tuning.Thresholds{}) {
		dst.Thresholds = src.Thresholds
	}
}

// TuningMarkdown tabulates experiment iterations.
func TuningMarkdown(tag string, its []tuning.Iteration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Tuning %s\n\n", tag)
	sb.WriteString("| # | IAE | ISE | ITAE | Kp | Ki | Kd | Rules |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, it := range its {
		var rules []string
		for _, a := range it.Adjustments {
			rules = append(rules, a.Criterion)
		}
		fmt.Fprintf(&sb, "| %d | %.2f | %.2f | %.2f | %.4g | %.4g | %.4g | %s |\n",
			it.Index+1, it.Criteria.IAE, it.Criteria.ISE, it.Criteria.ITAE,
			it.After.Kp, it.After.Ki, it.After.Kd, strings.Join(rules, ", "))
	}
	return sb.String()
}
