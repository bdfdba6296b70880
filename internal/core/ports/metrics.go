package ports

import (
	"io"
	"time"

	"go.trai.ch/pathforge/internal/core/domain"
)

// Metrics records search and cache activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveSearch records one finished search.
	ObserveSearch(algorithm string, status domain.PathStatus, expanded int, elapsed time.Duration)
	// ObserveCache adds the given cache event counts.
	ObserveCache(delta domain.CacheStats)
	// Write dumps the current metrics in text exposition format.
	Write(w io.Writer) error
}
