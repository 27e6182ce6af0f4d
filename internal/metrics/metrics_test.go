package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveIngest(t *testing.T) {
	m := New()
	m.ObserveIngest("delimited-text", ResultOK, 120)
	m.ObserveIngest("delimited-text", ResultOK, 3)
	m.ObserveIngest("structured-record", ResultError, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.datasetsIngested.WithLabelValues("delimited-text", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.datasetsIngested.WithLabelValues("structured-record", ResultError)))
}

func TestObserveGenerationAndTokens(t *testing.T) {
	m := New()
	m.ObserveGeneration("insight", ResultFallback, 20*time.Millisecond)
	m.ObserveTokens("gemini-3-flash-preview", 40, 12)
	m.ObserveAggregation()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("insight", ResultFallback)))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.generationTokens.WithLabelValues("gemini-3-flash-preview", "completion")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aggregations))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveIngest("delimited-text", ResultOK, 1)
	m.ObserveAggregation()
	m.ObserveGeneration("assistant", ResultOK, time.Second)
	m.ObserveTokens("x", 1, 1)
}

func TestHandlerServesExposition(t *testing.T) {
	m := New()
	m.ObserveAggregation()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tokpee_aggregations_total 1"))
}
