package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.ObserveLLMRequest("gpt", "200", time.Second, 1, 2)
	m.ObserveAnalysis("SEEKER", "joy", time.Millisecond)
	m.IncGuidanceLookup("memory")
	m.IncMilestoneAwarded("first-step")
	m.IncLevelAdvance("STUDENT")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil handler status: want=%d got=%d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncGuidanceLookup("generated")
	m.IncGuidanceLookup("memory")
	m.IncGuidanceLookup("memory")
	if got := testutil.ToFloat64(m.guidanceLookups.WithLabelValues("memory")); got != 2 {
		t.Fatalf("memory lookups: want=2 got=%v", got)
	}

	m.ObserveLLMRequest("", "200", time.Second, 10, 0)
	if got := testutil.ToFloat64(m.llmTokens.WithLabelValues("unknown", "input")); got != 10 {
		t.Fatalf("input tokens: want=10 got=%v", got)
	}

	m.ObserveAnalysis("ADEPT", "", time.Millisecond)
	if got := testutil.ToFloat64(m.analyses.WithLabelValues("ADEPT", "none")); got != 1 {
		t.Fatalf("analyses: want=1 got=%v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hermes_guidance_lookups_total") {
		t.Fatalf("exposition missing guidance counter:\n%s", rec.Body.String())
	}
}
