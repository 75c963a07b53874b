package pipeline

import (
	"testing"

	"github.com/theirongolddev/startupcalc/internal/catalog"
	"github.com/theirongolddev/startupcalc/internal/store"
)

// BenchmarkAggregate measures the per-keystroke recompute on the built-in catalog.
func BenchmarkAggregate(b *testing.B) {
	cat := catalog.Default()
	values := store.New(cat, store.DefaultLimits()).Snapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg := Aggregate(cat.Categories, values)
		_ = Runway(cat.Categories, values)
		_ = ChartSlices(agg)
	}
}
