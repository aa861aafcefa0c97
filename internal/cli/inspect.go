package cli

import (
	"context"
	"encoding/json"

	"github.com/aretw0/plantctl/internal/inspect"
	"github.com/aretw0/plantctl/internal/presentation/tui"
)

// Inspect prints the blocks and readings of the configured project.
func (a *App) Inspect(ctx context.Context, opts inspect.Options, asJSON bool) error {
	sess, err := a.OpenSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if opts.Application == "" {
		opts.Application = sess.Application()
	}
	report, err := inspect.Inspect(ctx, sess.Timeline(), opts)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return tui.Print(a.Out, report.Markdown())
}
