package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/startupcalc/internal/catalog"
)

func TestRunway_Scenario(t *testing.T) {
	cats := twoCategoryCatalog()
	values := map[string]int64{"s1": 30_000, "s2": 20_000, "o1": 10_000}

	r := Runway(cats, values)
	assert.Equal(t, int64(50_000), r.OneTime)
	assert.Equal(t, int64(10_000), r.Monthly)
	assert.Equal(t, int64(60_000), r.SixMonthProjection)
	assert.Equal(t, int64(110_000), r.Total)
}

func TestRunway_UntaggedExcludedButCounted(t *testing.T) {
	cats := append(twoCategoryCatalog(), catalog.Category{
		Title: "Misc",
		Items: []catalog.Item{{ID: "m1"}},
	})
	values := map[string]int64{"s1": 100, "o1": 10, "m1": 5000}

	r := Runway(cats, values)
	assert.Equal(t, int64(100), r.OneTime)
	assert.Equal(t, int64(10), r.Monthly)
	assert.Equal(t, int64(160), r.Total)
	assert.Equal(t, int64(5110), GrandTotal(cats, values))
	assert.Equal(t, []string{"Misc"}, UntaggedCategories(cats))
}

func TestRunway_DefaultCatalogHasNoUntagged(t *testing.T) {
	assert.Empty(t, UntaggedCategories(catalog.Default().Categories))
}
