package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestMetricsObserveEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveEvents([]blockbreak.Event{
		{Kind: blockbreak.EventBlockDestroyed, Points: 10},
		{Kind: blockbreak.EventBlockDestroyed, Points: 10},
		{Kind: blockbreak.EventLifeLost},
		{Kind: blockbreak.EventLevelComplete},
		{Kind: blockbreak.EventGameOver, Score: 120},
	})

	assert.Equal(t, 2.0, findFamily(t, reg, "blockbreak_blocks_destroyed_total").GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 1.0, findFamily(t, reg, "blockbreak_lives_lost_total").GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 1.0, findFamily(t, reg, "blockbreak_levels_cleared_total").GetMetric()[0].GetCounter().GetValue())

	finished := findFamily(t, reg, "blockbreak_games_finished_total").GetMetric()
	require.Len(t, finished, 1)
	assert.Equal(t, "game_over", finished[0].GetLabel()[0].GetValue())

	hist := findFamily(t, reg, "blockbreak_final_score").GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), hist.GetSampleCount())
	assert.Equal(t, 120.0, hist.GetSampleSum())
}

func TestMetricsSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 1.0, findFamily(t, reg, "blockbreak_sessions_active").GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 2.0, findFamily(t, reg, "blockbreak_sessions_total").GetMetric()[0].GetCounter().GetValue())
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded()
		m.ObserveEvents([]blockbreak.Event{{Kind: blockbreak.EventGameOver}})
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.SessionStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "blockbreak_sessions_total 1"))
}
