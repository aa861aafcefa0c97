package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/plantctl/internal/compiler"
	"github.com/aretw0/plantctl/internal/metrics"
	"github.com/aretw0/plantctl/internal/sequencer"
	"github.com/aretw0/plantctl/internal/testutils"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DriverRun(t *testing.T) {
	m := metrics.New()
	seq := &domain.Sequence{
		Name:   "valve-pump",
		Record: []domain.Variable{{Name: "isClosed"}, {Name: "speed"}},
		Stages: []domain.Stage{
			{Index: 0, Name: "close-valve", Actions: []domain.Write{{Variable: "valve", Value: "closed"}}, Exit: compiler.MustCompile("isClosed == true")},
			{Index: 1, Name: "stop-pump", Actions: []domain.Write{{Variable: "pump", Value: "off"}}, Exit: compiler.MustCompile("speed <= 10.0")},
		},
	}
	p := testutils.NewScriptedProcess(
		map[string]domain.Value{"isClosed": false, "speed": 50.0},
		map[string]domain.Value{"isClosed": true, "speed": 40.0},
		map[string]domain.Value{"speed": 5.0},
	)

	s, err := sequencer.New(seq, sequencer.WithLifecycleHooks(m.Hooks()))
	require.NoError(t, err)
	d := &sequencer.Driver{Sequencer: s, Process: m.Instrument(p), Tick: time.Second}

	run, err := d.Run(context.Background())
	require.NoError(t, err)
	m.ObserveRun(run)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageEntries.WithLabelValues("valve-pump", "close-valve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageEntries.WithLabelValues("valve-pump", "stop-pump")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actuations.WithLabelValues("valve-pump", "pump")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Samples.WithLabelValues("valve-pump")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CurrentStage.WithLabelValues("valve-pump")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ModelTime.WithLabelValues("valve-pump")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("valve-pump", "completed")))

	// Two clock advances, one per non-final tick.
	assert.Equal(t, 2, countObservations(t, m, "run_for"))
}

func countObservations(t *testing.T, m *metrics.Metrics, op string) int {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "plantctl_engine_call_duration_seconds" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "op" && l.GetValue() == op {
					return int(metric.GetHistogram().GetSampleCount())
				}
			}
		}
	}
	return 0
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Samples.WithLabelValues("s").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `plantctl_samples_total{sequence="s"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_Middleware(t *testing.T) {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/timelines/{timeline}/model-time", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, tl := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timelines/"+tl+"/model-time", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "plantctl_bridge_request_duration_seconds" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		h := f.GetMetric()[0]
		assert.Equal(t, uint64(2), h.GetHistogram().GetSampleCount())
		labels := map[string]string{}
		for _, l := range h.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		assert.Equal(t, "/timelines/{timeline}/model-time", labels["route"])
		assert.Equal(t, "418", labels["status"])
	}
}
