package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/plantctl/internal/presentation/chart"
	"github.com/aretw0/plantctl/internal/presentation/tui"
	"github.com/aretw0/plantctl/internal/recorder"
)

// ListRuns prints the stored run records.
func (a *App) ListRuns(ctx context.Context) error {
	store, _, err := a.Store()
	if err != nil {
		return err
	}
	ids, err := store.List(ctx)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString("| ID | Sequence | Status | Ticks | Started |\n|---|---|---|---|---|\n")
	for _, id := range ids {
		run, err := store.Load(ctx, id)
		if err != nil {
			a.Logger.Warn("skipping unreadable run", "run_id", id, "error", err)
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s |\n",
			run.ID, run.Sequence, run.Status, run.Ticks, run.StartedAt.Format("2006-01-02 15:04:05"))
	}
	return tui.Print(a.Out, sb.String())
}

// ShowRun prints one run record as Markdown or JSON.
func (a *App) ShowRun(ctx context.Context, id string, asJSON bool) error {
	store, _, err := a.Store()
	if err != nil {
		return err
	}
	run, err := store.Load(ctx, id)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}
	return tui.Print(a.Out, RunMarkdown(run))
}

// ExportRun writes a stored run's samples as CSV to path, or to the output
// when path is empty. A plot path also renders the samples.
func (a *App) ExportRun(ctx context.Context, id, path, plot string) error {
	store, _, err := a.Store()
	if err != nil {
		return err
	}
	run, err := store.Load(ctx, id)
	if err != nil {
		return err
	}
	if path == "" {
		err = recorder.WriteCSV(a.Out, run.Columns, run.Samples)
	} else {
		err = recorder.ExportRun(path, run)
	}
	if err != nil {
		return err
	}
	if plot != "" {
		return chart.SaveFile(plot, func(w io.Writer) error { return chart.Run(w, run) })
	}
	return nil
}

// DeleteRun removes a stored run record.
func (a *App) DeleteRun(ctx context.Context, id string) error {
	store, _, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	printSystemMessage(a.Out, "Deleted run '%s'.", id)
	return nil
}
