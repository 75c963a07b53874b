// Package catalog defines the startup cost categories and items offered to the user.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStep is the increment granularity used when an item declares none.
const DefaultStep int64 = 1000

// Kind tags a category for the runway view.
type Kind string

const (
	KindNone      Kind = ""
	KindOneTime   Kind = "one_time"
	KindRecurring Kind = "recurring"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindNone, KindOneTime, KindRecurring:
		return true
	}
	return false
}

// Item is a single cost line the user can estimate.
type Item struct {
	ID           string `yaml:"id"`
	Label        string `yaml:"label"`
	Description  string `yaml:"description,omitempty"`
	Step         int64  `yaml:"step,omitempty"`
	DefaultValue int64  `yaml:"default,omitempty"`
}

// StepOrDefault returns the item's step, falling back to DefaultStep.
func (i Item) StepOrDefault() int64 {
	if i.Step > 0 {
		return i.Step
	}
	return DefaultStep
}

// Category groups related items under a display title.
type Category struct {
	Title string `yaml:"title"`
	Kind  Kind   `yaml:"kind,omitempty"`
	Items []Item `yaml:"items"`
}

// Catalog is the ordered list of categories.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

var (
	ErrDuplicateID    = errors.New("duplicate item id")
	ErrDuplicateTitle = errors.New("duplicate category title")
	ErrInvalidKind    = errors.New("invalid category kind")
	ErrEmptyID        = errors.New("empty item id")
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in catalog. It panics if the embedded data is
// malformed, which would be a build defect.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied catalog path
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks the uniqueness invariants: titles are unique, and item ids
// are unique across every category since values are keyed by id alone.
func (c Catalog) Validate() error {
	titles := make(map[string]struct{}, len(c.Categories))
	ids := make(map[string]string)

	for _, cat := range c.Categories {
		if _, dup := titles[cat.Title]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTitle, cat.Title)
		}
		titles[cat.Title] = struct{}{}

		if !cat.Kind.Valid() {
			return fmt.Errorf("%w: %q in %q", ErrInvalidKind, cat.Kind, cat.Title)
		}

		for _, it := range cat.Items {
			if strings.TrimSpace(it.ID) == "" {
				return fmt.Errorf("%w in %q", ErrEmptyID, cat.Title)
			}
			if owner, dup := ids[it.ID]; dup {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateID, it.ID, owner, cat.Title)
			}
			ids[it.ID] = cat.Title
		}
	}
	return nil
}

// Item looks up an item by id.
func (c Catalog) Item(id string) (Item, bool) {
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// IDs returns every item id in catalog order.
func (c Catalog) IDs() []string {
	var ids []string
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ItemCount returns the total number of items across categories.
func (c Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}
