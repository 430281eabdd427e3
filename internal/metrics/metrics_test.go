package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	IncSimulated("chat")
	IncSkipped("vote")
	StoreSaves.Inc()
	StoreSaveErrors.Inc()
	IncCommandRun("export")
	IncCommandError("import")
	ObserveSaveDuration(time.Now().Add(-50 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"nightrituals_simulated_items_total",
		"nightrituals_simulated_skips_total",
		"nightrituals_store_saves_total",
		"nightrituals_store_save_errors_total",
		"nightrituals_store_save_duration_seconds",
		"nightrituals_command_runs_total",
		"nightrituals_command_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
