package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/plantctl/internal/presentation/chart"
	"github.com/aretw0/plantctl/internal/presentation/graph"
	"github.com/aretw0/plantctl/internal/topology"
)

// TopologyOptions contains the flags of the topology command.
type TopologyOptions struct {
	Format  string
	Output  string
	Updates int
}

// Topology extracts the plant graph of the configured application and writes
// it as dot, json, mermaid or png. png needs an output file.
func (a *App) Topology(ctx context.Context, opts TopologyOptions) error {
	sess, err := a.OpenSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	g, err := topology.Extract(ctx, sess.Timeline(), sess.Application())
	if err != nil {
		return err
	}
	a.Logger.Info("topology extracted", "application", sess.Application(), "nodes", len(g.Nodes()), "edges", len(g.Edges()))

	var write func(io.Writer) error
	switch opts.Format {
	case "", "dot":
		write = func(w io.Writer) error {
			data, err := g.DOT(sess.Timeline().Name())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
	case "json":
		write = func(w io.Writer) error {
			return topology.WriteJSON(w, g.Document(sess.Application(), g.Layout(opts.Updates)))
		}
	case "mermaid":
		write = func(w io.Writer) error {
			_, err := fmt.Fprint(w, graph.GenerateTopology(g, nil))
			return err
		}
	case "png":
		if opts.Output == "" {
			return fmt.Errorf("png output needs --output")
		}
		return chart.SaveFile(opts.Output, func(w io.Writer) error {
			return chart.Topology(w, sess.Application(), g, g.Layout(opts.Updates))
		})
	default:
		return fmt.Errorf("unknown format %q (want dot, json, mermaid or png)", opts.Format)
	}

	if opts.Output == "" {
		return write(a.Out)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
