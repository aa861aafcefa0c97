// Package metrics exports sequencer and engine activity as Prometheus metrics.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and embedded servers never collide
// with the global one.
type Metrics struct {
	Registry *prometheus.Registry

	StageEntries *prometheus.CounterVec
	Actuations   *prometheus.CounterVec
	Samples      *prometheus.CounterVec
	Runs         *prometheus.CounterVec
	CurrentStage *prometheus.GaugeVec
	ModelTime    *prometheus.GaugeVec
	EngineCalls  *prometheus.HistogramVec
	Requests     *prometheus.HistogramVec
}

// New registers every collector, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StageEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plantctl_stage_entries_total",
			Help: "Number of stage entries.",
		}, []string{"sequence", "stage"}),
		Actuations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plantctl_actuations_total",
			Help: "Number of writes issued on stage entry.",
		}, []string{"sequence", "variable"}),
		Samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plantctl_samples_total",
			Help: "Number of recorded samples.",
		}, []string{"sequence"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plantctl_runs_total",
			Help: "Number of finished runs by status.",
		}, []string{"sequence", "status"}),
		CurrentStage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "plantctl_current_stage",
			Help: "Index of the stage a sequence is waiting on.",
		}, []string{"sequence"}),
		ModelTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "plantctl_model_time_seconds",
			Help: "Model time of the latest sample.",
		}, []string{"sequence"}),
		EngineCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plantctl_engine_call_duration_seconds",
			Help:    "Wall time of engine calls.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"op", "outcome"}),
		Requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plantctl_bridge_request_duration_seconds",
			Help:    "Wall time of engine bridge requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.Registry.MustRegister(
		m.StageEntries, m.Actuations, m.Samples, m.Runs,
		m.CurrentStage, m.ModelTime, m.EngineCalls, m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware times every request by its chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}

// Hooks returns sequencer hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(_ context.Context, e *domain.StageEvent) {
			m.StageEntries.WithLabelValues(e.Sequence, e.StageName).Inc()
			m.CurrentStage.WithLabelValues(e.Sequence).Set(float64(e.Stage))
		},
		OnActuation: func(_ context.Context, e *domain.ActuationEvent) {
			m.Actuations.WithLabelValues(e.Sequence, e.Write.Variable).Inc()
		},
		OnSample: func(_ context.Context, e *domain.SampleEvent) {
			m.Samples.WithLabelValues(e.Sequence).Inc()
			m.ModelTime.WithLabelValues(e.Sequence).Set(e.Sample.Seconds())
		},
	}
}

// ObserveRun counts a finished run by its final status.
func (m *Metrics) ObserveRun(r *domain.Run) {
	if r == nil {
		return
	}
	m.Runs.WithLabelValues(r.Sequence, string(r.Status)).Inc()
}

// Instrument wraps p so every engine call is timed.
func (m *Metrics) Instrument(p ports.Process) ports.Process {
	return &instrumented{next: p, calls: m.EngineCalls}
}

type instrumented struct {
	next  ports.Process
	calls *prometheus.HistogramVec
}

func (i *instrumented) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.calls.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Value(ctx context.Context, name, unit string) (domain.Value, error) {
	start := time.Now()
	v, err := i.next.Value(ctx, name, unit)
	i.observe("get_value", start, err)
	return v, err
}

func (i *instrumented) Values(ctx context.Context, vars []domain.Variable) ([]domain.Value, error) {
	start := time.Now()
	vs, err := i.next.Values(ctx, vars)
	i.observe("get_values", start, err)
	return vs, err
}

func (i *instrumented) SetValue(ctx context.Context, name string, value domain.Value, unit string) error {
	start := time.Now()
	err := i.next.SetValue(ctx, name, value, unit)
	i.observe("set_value", start, err)
	return err
}

func (i *instrumented) RunFor(ctx context.Context, d time.Duration) error {
	start := time.Now()
	err := i.next.RunFor(ctx, d)
	i.observe("run_for", start, err)
	return err
}

func (i *instrumented) ModelTime(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	t, err := i.next.ModelTime(ctx)
	i.observe("model_time", start, err)
	return t, err
}
