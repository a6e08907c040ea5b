package catalog

import (
	"github.com/BurntSushi/toml"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
)

// RelatedTable maps an attribute key to keys that become redundant once it
// has been asked. It is a hand-authored heuristic knowledge base, not an
// algorithm: asking "lives_in_europe" makes "lives_in_france" feel like a
// repeat to a human player even though the attributes are distinct, so the
// question policy skips related keys of every asked attribute regardless
// of how the question was answered.
type RelatedTable map[string][]string

// Related returns the keys related to the given attribute key.
func (t RelatedTable) Related(key string) []string {
	return t[key]
}

// relatedFile is the on-disk TOML shape of a related-attribute table:
//
//	[related]
//	lives_in_europe = ["lives_in_france", "lives_in_germany"]
//	era_medieval = ["era_renaissance"]
type relatedFile struct {
	Related map[string][]string `toml:"related"`
}

// LoadRelatedTable reads a related-attribute table from a TOML file.
// Keys that name no attribute in any catalog are tolerated; the table is
// swappable data and may be shared across catalogs of different coverage.
func LoadRelatedTable(path string) (RelatedTable, error) {
	var doc relatedFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to load related-attribute table %s", path)
	}
	if doc.Related == nil {
		return RelatedTable{}, nil
	}
	return RelatedTable(doc.Related), nil
}
