package catalog

import (
	"encoding/json"
	"os"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
)

// fileDocument is the on-disk JSON shape of a catalog file.
type fileDocument struct {
	DefaultLanguage string       `json:"default_language"`
	Attributes      []*Attribute `json:"attributes"`
	Entities        []*Entity    `json:"entities"`
}

// Load reads a catalog from a JSON file.
//
// The document carries the attribute list and the entity list together:
//
//	{
//	  "default_language": "en",
//	  "attributes": [{"id": 1, "key": "is_fictional", "text": {"en": "Is your character fictional?"}}],
//	  "entities": [{"id": 1, "name": "Sherlock Holmes", "attributes": {"is_fictional": 1.0}}]
//	}
//
// Duplicate attribute ids/keys and duplicate entity ids are errors. Entity
// attribute values outside [0,1] are clamped, and entity attribute keys
// that name no known attribute are rejected so typos in hand-edited data
// surface at load time instead of silently reading as 0.5 forever.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (*Catalog, error) {
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
	}

	c := New(doc.DefaultLanguage)
	for _, a := range doc.Attributes {
		if err := c.AddAttribute(a); err != nil {
			return nil, errors.Wrapf(err, "catalog file %s", path)
		}
	}

	for _, e := range doc.Entities {
		for key := range e.Attributes {
			if _, ok := c.attrByKey[key]; !ok {
				return nil, errors.Newf("catalog file %s: entity %q references unknown attribute %q", path, e.Name, key)
			}
		}
		if err := c.AddEntity(e); err != nil {
			return nil, errors.Wrapf(err, "catalog file %s", path)
		}
	}

	return c, nil
}

// LoadEntities reads only the entity list from a catalog file, validated
// against the attribute set of an existing catalog. The watcher uses this
// to refresh entities without touching the immutable attribute list.
func LoadEntities(path string, c *Catalog) ([]*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
	}

	for _, e := range doc.Entities {
		for key := range e.Attributes {
			if _, ok := c.AttributeByKey(key); !ok {
				return nil, errors.Newf("catalog file %s: entity %q references unknown attribute %q", path, e.Name, key)
			}
		}
	}
	return doc.Entities, nil
}
