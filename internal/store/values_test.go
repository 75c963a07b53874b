package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/startupcalc/internal/catalog"
)

func legalCatalog() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{{
		Title: "Legal",
		Kind:  catalog.KindOneTime,
		Items: []catalog.Item{
			{ID: "A", Label: "Filing", DefaultValue: 5000},
			{ID: "B", Label: "Notary"},
			{ID: "C", Label: "Stamp duty", Step: 250},
		},
	}}}
}

func TestNew_InitializesEveryItem(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())

	snap := v.Snapshot()
	assert.Equal(t, map[string]int64{"A": 5000, "B": 0, "C": 0}, snap)
}

func TestNew_ClampsDefaults(t *testing.T) {
	cat := legalCatalog()
	cat.Categories[0].Items[0].DefaultValue = 50_000_000

	v := New(cat, DefaultLimits())
	assert.Equal(t, int64(10_000_000), v.Get("A"))
}

func TestSet_StripsNonDigits(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())

	cases := []struct {
		raw  string
		want int64
	}{
		{"₹12,34,567", 1234567},
		{"abc", 0},
		{"", 0},
		{"-500", 500},
		{"1 000", 1000},
		{"99999999999999999999999", 10_000_000},
		{"20000000", 10_000_000},
	}
	for _, tc := range cases {
		got, err := v.Set("A", tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Set(%q)", tc.raw)
		assert.Equal(t, tc.want, v.Get("A"))
	}
}

func TestSet_UnknownIDRejected(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())

	_, err := v.Set("Z", "100")
	require.ErrorIs(t, err, ErrUnknownItem)
	_, err = v.Increment("Z")
	require.ErrorIs(t, err, ErrUnknownItem)
	_, err = v.Decrement("Z")
	require.ErrorIs(t, err, ErrUnknownItem)

	assert.Len(t, v.Snapshot(), 3, "unknown writes must not grow the map")
}

func TestIncrement_SaturatesAtMax(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())
	_, err := v.SetAmount("A", 9_999_500)
	require.NoError(t, err)

	got, err := v.Increment("A")
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), got)

	got, err = v.Increment("A")
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), got, "increment at max must stay at max")
}

func TestDecrement_SaturatesAtMin(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())
	_, err := v.SetAmount("A", 400)
	require.NoError(t, err)

	got, err := v.Decrement("A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = v.Decrement("A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got, "decrement at min must stay at min")
}

func TestIncrement_UsesItemStep(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())

	got, err := v.Increment("C")
	require.NoError(t, err)
	assert.Equal(t, int64(250), got)

	got, err = v.Increment("B")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultStep, got)
}

func TestCustomLimits(t *testing.T) {
	v := New(legalCatalog(), Limits{Min: 1000, Max: 6000})

	assert.Equal(t, int64(1000), v.Get("B"), "defaults below min are raised")

	got, err := v.Set("A", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)

	got, err = v.Decrement("A")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)
}

func TestReset(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())
	_, _ = v.Set("A", "1")
	_, _ = v.Set("B", "2")

	v.Reset()
	assert.Equal(t, int64(5000), v.Get("A"))
	assert.Equal(t, int64(0), v.Get("B"))
}

func TestSnapshotIsCopy(t *testing.T) {
	v := New(legalCatalog(), DefaultLimits())
	snap := v.Snapshot()
	snap["A"] = 1

	assert.Equal(t, int64(5000), v.Get("A"))
}
