// Package catalogtest builds small in-memory catalogs for tests.
package catalogtest

import (
	"testing"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
)

// Entity ids in the fixture catalog.
const (
	SherlockID = 1
	CurieID    = 2
	PoirotID   = 3
	EinsteinID = 4
	SwiftID    = 5
)

// Fixture returns a five-entity celebrity catalog with mostly extreme
// attribute values, plus a related-attribute table linking the two
// geographic attributes. Every entity is distinguishable from every other
// by at least one non-skipped attribute.
func Fixture(t testing.TB) (*catalog.Catalog, catalog.RelatedTable) {
	t.Helper()

	c := catalog.New("en")

	attrs := []*catalog.Attribute{
		{ID: 1, Key: "is_fictional", Text: map[string]string{"en": "Is your character fictional?"}, Category: "general"},
		{ID: 2, Key: "is_alive", Text: map[string]string{"en": "Is your character alive today?"}, Category: "general"},
		{ID: 3, Key: "is_scientist", Text: map[string]string{"en": "Is your character a scientist?"}, Category: "occupation"},
		{ID: 4, Key: "plays_detective", Text: map[string]string{"en": "Is your character a detective?"}, Category: "occupation"},
		{ID: 5, Key: "lives_in_europe", Text: map[string]string{"en": "Is your character associated with Europe?"}, Category: "geography"},
		{ID: 6, Key: "lives_in_france", Text: map[string]string{"en": "Is your character associated with France?"}, Category: "geography"},
		{ID: 7, Key: "is_british", Text: map[string]string{"en": "Is your character British?"}, Category: "geography"},
		{ID: 8, Key: "is_musician", Text: map[string]string{"en": "Is your character a musician?"}, Category: "occupation"},
	}
	for _, a := range attrs {
		if err := c.AddAttribute(a); err != nil {
			t.Fatalf("fixture attribute: %v", err)
		}
	}

	entities := []*catalog.Entity{
		{ID: SherlockID, Name: "Sherlock Holmes", Attributes: map[string]float64{
			"is_fictional": 1.0, "is_alive": 0.0, "is_scientist": 0.1,
			"plays_detective": 1.0, "lives_in_europe": 1.0, "lives_in_france": 0.1,
			"is_british": 1.0,
		}},
		{ID: CurieID, Name: "Marie Curie", Attributes: map[string]float64{
			"is_fictional": 0.0, "is_alive": 0.0, "is_scientist": 1.0,
			"plays_detective": 0.0, "lives_in_europe": 1.0, "lives_in_france": 0.9,
			"is_british": 0.0,
		}},
		{ID: PoirotID, Name: "Hercule Poirot", Attributes: map[string]float64{
			"is_fictional": 1.0, "is_alive": 0.0, "is_scientist": 0.0,
			"plays_detective": 1.0, "lives_in_europe": 1.0, "lives_in_france": 0.2,
			"is_british": 0.0,
		}},
		{ID: EinsteinID, Name: "Albert Einstein", Attributes: map[string]float64{
			"is_fictional": 0.0, "is_alive": 0.0, "is_scientist": 1.0,
			"plays_detective": 0.0, "lives_in_europe": 0.6, "lives_in_france": 0.1,
			"is_british": 0.0,
		}},
		{ID: SwiftID, Name: "Taylor Swift", Attributes: map[string]float64{
			"is_fictional": 0.0, "is_alive": 1.0, "is_scientist": 0.0,
			"plays_detective": 0.0, "lives_in_europe": 0.1, "lives_in_france": 0.05,
			"is_british": 0.0, "is_musician": 1.0,
		}},
	}
	for _, e := range entities {
		if err := c.AddEntity(e); err != nil {
			t.Fatalf("fixture entity: %v", err)
		}
	}

	related := catalog.RelatedTable{
		"lives_in_europe": {"lives_in_france"},
		"lives_in_france": {"lives_in_europe"},
	}

	return c, related
}
