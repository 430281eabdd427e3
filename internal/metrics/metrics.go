package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SimulatedItems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nightrituals_simulated_items_total",
		Help: "Total items generated by the activity simulator, by kind",
	}, []string{"kind"})
	SimulatedSkips = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nightrituals_simulated_skips_total",
		Help: "Generator ticks that found no eligible target, by kind",
	}, []string{"kind"})
	StoreSaves = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nightrituals_store_saves_total",
		Help: "Total successful dataset persists",
	})
	StoreSaveErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nightrituals_store_save_errors_total",
		Help: "Total failed dataset persists",
	})
	SaveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nightrituals_store_save_duration_seconds",
		Help:    "Dataset persist duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nightrituals_command_runs_total",
		Help: "Total CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nightrituals_command_errors_total",
		Help: "Total CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(SimulatedItems, SimulatedSkips, StoreSaves, StoreSaveErrors, SaveDuration, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveSaveDuration records one persist duration.
func ObserveSaveDuration(start time.Time) {
	SaveDuration.Observe(time.Since(start).Seconds())
}

// IncSimulated increments the generated-item counter for a kind.
func IncSimulated(kind string) { SimulatedItems.WithLabelValues(kind).Inc() }

// IncSkipped increments the skipped-tick counter for a kind.
func IncSkipped(kind string) { SimulatedSkips.WithLabelValues(kind).Inc() }

// IncCommandRun increments the run counter for a CLI command.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError increments the error counter for a CLI command.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
