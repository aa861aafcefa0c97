package cli_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/plantctl/internal/cli"
	"github.com/aretw0/plantctl/internal/config"
	"github.com/aretw0/plantctl/internal/inspect"
	"github.com/aretw0/plantctl/internal/sequences"
	"github.com/aretw0/plantctl/internal/tuning"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*cli.App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Store.Path = filepath.Join(dir, "runs")
	cfg.Run.Output = filepath.Join(dir, "samples.csv")
	cfg.SequenceDirs = []string{filepath.Join(dir, "sequences")}

	out := &bytes.Buffer{}
	app := cli.NewApp(cfg, nil)
	app.Out = out
	t.Cleanup(func() { _ = app.Close() })
	return app, out
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun_ExportsAndStores(t *testing.T) {
	ctx := context.Background()
	app, out := newApp(t)

	run, err := app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", RunID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, run.Status)
	assert.Contains(t, out.String(), "Sequence 'separator-shutdown' completed")
	assert.Contains(t, out.String(), "# Run r1")

	rows := readCSV(t, app.Config.Run.Output)
	require.Len(t, rows, run.Ticks+1)
	assert.Equal(t, "ModelTime [s]", rows[0][0])
	assert.Equal(t, "23LT0001:MeasuredValue [mm]", rows[0][1])
	assert.Equal(t, "0", rows[1][0])

	out.Reset()
	require.NoError(t, app.ListRuns(ctx))
	assert.Contains(t, out.String(), "| r1 | separator-shutdown | completed |")

	out.Reset()
	require.NoError(t, app.ShowRun(ctx, "r1", true))
	assert.Contains(t, out.String(), `"status": "completed"`)

	out.Reset()
	require.NoError(t, app.ExportRun(ctx, "r1", "", ""))
	assert.True(t, strings.HasPrefix(out.String(), "ModelTime [s],"))

	plot := filepath.Join(t.TempDir(), "run.png")
	require.NoError(t, app.ExportRun(ctx, "r1", filepath.Join(t.TempDir(), "copy.csv"), plot))
	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	require.NoError(t, app.DeleteRun(ctx, "r1"))
	assert.ErrorIs(t, app.ShowRun(ctx, "r1", false), domain.ErrRunNotFound)
}

func TestRun_SealedAndMaskedStore(t *testing.T) {
	ctx := context.Background()
	app, out := newApp(t)
	app.Config.Store.EncryptionKey = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32))
	app.Config.Store.MaskColumns = []string{`^23LT0001`}

	_, err := app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", RunID: "sealed", Quiet: true})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(app.Config.Store.Path, "sealed.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sealed"`)
	assert.NotContains(t, string(raw), "23LT0001")

	out.Reset()
	require.NoError(t, app.ExportRun(ctx, "sealed", "", ""))
	rows, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	assert.Equal(t, "***", rows[1][1])
}

func TestRun_TickLimitKeepsPartialLog(t *testing.T) {
	app, out := newApp(t)
	run, err := app.Run(context.Background(), cli.RunOptions{Sequence: "separator-shutdown", MaxTicks: 3, NoStore: true})
	require.ErrorIs(t, err, domain.ErrTickLimit)
	require.NotNil(t, run)
	assert.Equal(t, domain.StatusFailed, run.Status)
	assert.Contains(t, out.String(), "failed at stage")
	assert.Len(t, readCSV(t, app.Config.Run.Output), 4)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	app, _ := newApp(t)

	_, err := app.Run(ctx, cli.RunOptions{Sequence: "nope"})
	assert.ErrorIs(t, err, sequences.ErrNotFound)

	_, err = app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", Policy: "sometimes"})
	assert.ErrorContains(t, err, "unknown entry policy")

	app.Config.Project.Timeline = "Missing"
	_, err = app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown"})
	var ece *domain.EngineConnectionError
	assert.ErrorAs(t, err, &ece)
}

func TestRun_CancelledContext(t *testing.T) {
	app, _ := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", Quiet: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSequences(t *testing.T) {
	ctx := context.Background()
	app, out := newApp(t)

	require.NoError(t, os.MkdirAll(app.Config.SequenceDirs[0], 0755))
	bad := "name: broken\nstages:\n  - name: s\n    exit: \"== 1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(app.Config.SequenceDirs[0], "broken.yaml"), []byte(bad), 0644))

	require.NoError(t, app.ListSequences())
	assert.Contains(t, out.String(), "| separator-shutdown | 4 | builtin |")
	assert.Contains(t, out.String(), "| broken | 1 |")

	out.Reset()
	err := app.ValidateSequences(ctx, nil, false)
	assert.ErrorContains(t, err, "broken")
	assert.Contains(t, out.String(), "separator-shutdown: ok (4 stages)")

	out.Reset()
	require.NoError(t, app.ValidateSequences(ctx, []string{"separator-shutdown"}, true))

	out.Reset()
	require.NoError(t, app.ShowSequence(ctx, "separator-shutdown", "mermaid", ""))
	assert.Contains(t, out.String(), "close-inlet")

	out.Reset()
	require.NoError(t, app.ShowSequence(ctx, "separator-shutdown", "yaml", ""))
	assert.Contains(t, out.String(), "name: separator-shutdown")

	assert.Error(t, app.ShowSequence(ctx, "separator-shutdown", "svg", ""))
}

func TestShowSequence_RunOverlay(t *testing.T) {
	ctx := context.Background()
	app, out := newApp(t)
	_, err := app.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", RunID: "done", Quiet: true})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, app.ShowSequence(ctx, "separator-shutdown", "mermaid", "done"))
	assert.Contains(t, out.String(), "classDef visited")

	assert.ErrorIs(t, app.ShowSequence(ctx, "separator-shutdown", "mermaid", "missing"), domain.ErrRunNotFound)
}

func TestTopology(t *testing.T) {
	ctx := context.Background()
	app, out := newApp(t)

	require.NoError(t, app.Topology(ctx, cli.TopologyOptions{Format: "dot"}))
	assert.Contains(t, out.String(), "graph Tutorial {")

	out.Reset()
	require.NoError(t, app.Topology(ctx, cli.TopologyOptions{Format: "json", Updates: 10}))
	assert.Contains(t, out.String(), `"application": "Process Model"`)

	out.Reset()
	require.NoError(t, app.Topology(ctx, cli.TopologyOptions{Format: "mermaid"}))
	assert.True(t, strings.HasPrefix(out.String(), "graph LR"))

	assert.Error(t, app.Topology(ctx, cli.TopologyOptions{Format: "png"}))
	png := filepath.Join(t.TempDir(), "topology.png")
	require.NoError(t, app.Topology(ctx, cli.TopologyOptions{Format: "png", Output: png, Updates: 10}))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	assert.Error(t, app.Topology(ctx, cli.TopologyOptions{Format: "gexf"}))
}

func TestInspect(t *testing.T) {
	app, out := newApp(t)
	err := app.Inspect(context.Background(), inspect.Options{
		BlockType: domain.BlockTypeAlarmTransmitter,
		Unit:      "mm",
	}, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "23LT0001:MeasuredValue")
}

func TestTune(t *testing.T) {
	app, out := newApp(t)
	plots := filepath.Join(t.TempDir(), "plots")
	its, err := app.Tune(context.Background(), cli.TuneOptions{
		Experiment: tuning.Experiment{Duration: time.Minute, Samples: 4, Iterations: 2},
		PlotDir:    plots,
	})
	require.NoError(t, err)
	require.Len(t, its, 2)
	assert.Contains(t, out.String(), "# Tuning 23LIC002")

	for _, name := range []string{"iteration_01.png", "iteration_02.png"} {
		_, err := os.Stat(filepath.Join(plots, name))
		assert.NoError(t, err)
	}
}

func TestServeHandler_DrivesRemoteRun(t *testing.T) {
	ctx := context.Background()
	host, _ := newApp(t)
	srv := httptest.NewServer(cli.NewServeHandler(memory.NewSimulator("p"), host))
	defer srv.Close()

	remote, _ := newApp(t)
	remote.Config.Engine = config.EngineConfig{Kind: config.EngineHTTP, URL: srv.URL, Timeout: 10 * time.Second}
	remote.Config.Store.Kind = config.StoreMemory

	run, err := remote.Run(ctx, cli.RunOptions{Sequence: "separator-shutdown", Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, run.Status)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/timelines/{timeline}/run"`)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServe_StopsOnCancel(t *testing.T) {
	app, _ := newApp(t)
	out := &syncBuffer{}
	app.Out = out
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, "127.0.0.1:0") }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "listening")
	}, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
