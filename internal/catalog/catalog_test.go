package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Categories)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Legal & Administrative", c.Categories[0].Title)

	// Every built-in category participates in the runway view.
	for _, cat := range c.Categories {
		assert.NotEqual(t, KindNone, cat.Kind, "category %q has no kind", cat.Title)
		assert.NotEmpty(t, cat.Items, "category %q has no items", cat.Title)
	}
	assert.Len(t, c.IDs(), c.ItemCount())
}

func TestParse_DuplicateIDAcrossCategories(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - title: A
    items:
      - {id: x, label: X}
  - title: B
    items:
      - {id: x, label: Also X}
`))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_DuplicateTitle(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - title: A
    items: [{id: x, label: X}]
  - title: A
    items: [{id: y, label: Y}]
`))
	require.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestParse_InvalidKind(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - title: A
    kind: weekly
    items: [{id: x, label: X}]
`))
	require.ErrorIs(t, err, ErrInvalidKind)
}

func TestParse_EmptyID(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - title: A
    items: [{id: " ", label: X}]
`))
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
categories:
  - title: Legal
    kind: one_time
    items:
      - id: A
        label: Filing
        default: 5000
      - id: B
        label: Notary
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)

	a, ok := c.Item("A")
	require.True(t, ok)
	assert.Equal(t, int64(5000), a.DefaultValue)
	assert.Equal(t, DefaultStep, a.StepOrDefault())

	_, ok = c.Item("missing")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
