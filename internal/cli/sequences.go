package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/plantctl/internal/presentation/graph"
	"github.com/aretw0/plantctl/internal/presentation/tui"
	"github.com/aretw0/plantctl/internal/sequences"
	"github.com/aretw0/plantctl/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ListSequences prints every visible sequence definition.
func (a *App) ListSequences() error {
	defs, err := sequences.List(a.Config.SequenceDirs)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString("| Name | Stages | Source | Description |\n|---|---|---|---|\n")
	for _, d := range defs {
		fmt.Fprintf(&sb, "| %s | %d | %s | %s |\n", d.Name, len(d.Stages), d.Source, oneLine(d.Description))
	}
	return tui.Print(a.Out, sb.String())
}

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// ValidateSequences compiles the named sequences, or every visible one when
// names is empty. With live set each sequence's variables are also read once
// from the configured engine.
func (a *App) ValidateSequences(ctx context.Context, names []string, live bool) error {
	var defs []*sequences.Definition
	if len(names) == 0 {
		all, err := sequences.List(a.Config.SequenceDirs)
		if err != nil {
			return err
		}
		defs = all
	} else {
		for _, n := range names {
			d, err := sequences.Resolve(n, a.Config.SequenceDirs)
			if err != nil {
				return err
			}
			defs = append(defs, d)
		}
	}

	var failed []error
	var checker func(*domain.Sequence) error
	if live {
		sess, err := a.OpenSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()
		checker = func(seq *domain.Sequence) error {
			return sequences.Validate(ctx, seq, sess.Process())
		}
	}

	for _, d := range defs {
		seq, err := sequences.Compile(d)
		if err == nil && checker != nil {
			err = checker(seq)
		}
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", d.Name, err))
			printSystemMessage(a.Out, "%s: invalid", d.Name)
			continue
		}
		printSystemMessage(a.Out, "%s: ok (%d stages)", d.Name, len(seq.Stages))
	}
	return errors.Join(failed...)
}

// ShowSequence prints a definition as yaml or a Mermaid chart. A run ID adds
// the run's progress to the chart.
func (a *App) ShowSequence(ctx context.Context, name, format, runID string) error {
	def, err := sequences.Resolve(name, a.Config.SequenceDirs)
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		data, err := yaml.Marshal(def)
		if err != nil {
			return err
		}
		_, err = a.Out.Write(data)
		return err
	case "", "mermaid":
		seq, err := sequences.Compile(def)
		if err != nil {
			return err
		}
		var overlay *graph.GraphOverlay
		if runID != "" {
			store, _, err := a.Store()
			if err != nil {
				return err
			}
			run, err := store.Load(ctx, runID)
			if err != nil {
				return err
			}
			overlay = graph.OverlayFromRun(seq, run)
		}
		_, err = fmt.Fprint(a.Out, graph.GenerateSequence(seq, overlay))
		return err
	default:
		return fmt.Errorf("unknown format %q (want mermaid or yaml)", format)
	}
}
