// Package chart renders run logs, tuning responses and plant topologies as PNG
// images with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/aretw0/plantctl/internal/topology"
	"github.com/aretw0/plantctl/pkg/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default image size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Series is one named line.
type Series struct {
	Name string
	X, Y []float64
}

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("chart: no data")

func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Title.Padding = vg.Points(8)
	p.X.Tick.Marker = limitedTicker(8, "%.4g")
	p.Y.Tick.Marker = limitedTicker(8, "%.4g")
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// Lines draws every series on one chart and writes it as PNG.
func Lines(w io.Writer, title, xlabel, ylabel string, series []Series) error {
	p := newPlot(title, xlabel, ylabel)
	drawn := 0
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("chart: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.X) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.X))
		for k := range s.X {
			pts[k].X = s.X[k]
			pts[k].Y = s.Y[k]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart: series %q: %w", s.Name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}
	return writePNG(w, p)
}

// RunSeries turns the numeric columns of a run into series over model time
// in seconds. Bool columns become 0/1 steps; other columns are skipped.
func RunSeries(run *domain.Run) []Series {
	out := make([]Series, 0, len(run.Columns))
	for c, col := range run.Columns {
		s := Series{Name: col.String()}
		numeric := true
		for _, sample := range run.Samples {
			if c >= len(sample.Values) {
				continue
			}
			f, ok := domain.AsFloat(sample.Values[c])
			if !ok {
				numeric = false
				break
			}
			s.X = append(s.X, sample.Seconds())
			s.Y = append(s.Y, f)
		}
		if numeric && len(s.X) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Run writes one chart of every numeric column of a run.
func Run(w io.Writer, run *domain.Run) error {
	return Lines(w, run.Sequence, "Model time [s]", "Value", RunSeries(run))
}

// Response plots a controller response against its setpoint.
func Response(w io.Writer, title string, time, output []float64, setpoint float64) error {
	sp := make([]float64, len(time))
	for i := range sp {
		sp[i] = setpoint
	}
	return Lines(w, title, "Time [s]", "Measured value", []Series{
		{Name: "response", X: time, Y: output},
		{Name: "setpoint", X: time, Y: sp},
	})
}

// Topology draws edges as lines and blocks as labelled points at the given
// coordinates.
func Topology(w io.Writer, title string, g *topology.Graph, pos map[string]topology.Position) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	for _, e := range g.Edges() {
		a, b := pos[e.Source], pos[e.Target]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return fmt.Errorf("chart: edge %s-%s: %w", e.Source, e.Target, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = plotutil.Color(6)
		p.Add(line)
	}

	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(nodes)), Labels: make([]string, len(nodes))}
	for i, n := range nodes {
		labels.XYs[i].X = pos[n.Name].X
		labels.XYs[i].Y = pos[n.Name].Y
		labels.Labels[i] = n.Name
	}
	scatter, err := plotter.NewScatter(labels.XYs)
	if err != nil {
		return fmt.Errorf("chart: nodes: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Color = plotutil.Color(0)
	p.Add(scatter)

	names, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("chart: labels: %w", err)
	}
	names.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(4)}
	p.Add(names)

	return writePNG(w, p)
}

func writePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write png: %w", err)
	}
	return nil
}

// SaveFile creates path (and its directory) and writes the image drawn by fn.
func SaveFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
