package metrics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/adapters/metrics"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
)

var _ ports.Metrics = (*metrics.Prometheus)(nil)

func TestObserveSearch(t *testing.T) {
	m := metrics.New()

	m.ObserveSearch("astar", domain.StatusFound, 120, 2*time.Millisecond)
	m.ObserveSearch("astar", domain.StatusFound, 80, time.Millisecond)
	m.ObserveSearch("jps", domain.StatusNotFound, 10, time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.Searches.WithLabelValues("astar", "found")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("jps", domain.StatusNotFound.String())), 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(m.Expanded))
}

func TestObserveCache(t *testing.T) {
	m := metrics.New()

	m.ObserveCache(domain.CacheStats{Hits: 3, Misses: 2})
	m.ObserveCache(domain.CacheStats{Hits: 1, Evictions: 4, Expirations: 1})

	assert.InDelta(t, 4.0, testutil.ToFloat64(m.CacheEvents.WithLabelValues("hit")), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.CacheEvents.WithLabelValues("miss")), 1e-9)
	assert.InDelta(t, 4.0, testutil.ToFloat64(m.CacheEvents.WithLabelValues("eviction")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.CacheEvents.WithLabelValues("expiration")), 1e-9)
}

func TestWrite(t *testing.T) {
	m := metrics.New()
	m.ObserveSearch("theta", domain.StatusFound, 42, time.Millisecond)
	m.ObserveCache(domain.CacheStats{Hits: 1})

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE pathforge_search_total counter")
	assert.Contains(t, out, `pathforge_search_total{algorithm="theta",status="found"} 1`)
	assert.Contains(t, out, `pathforge_cache_events_total{event="hit"} 1`)
	assert.Contains(t, out, "pathforge_search_expanded_nodes_count")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObserveCache(domain.CacheStats{Misses: 5})

	assert.InDelta(t, 0.0, testutil.ToFloat64(b.CacheEvents.WithLabelValues("miss")), 1e-9)
}
