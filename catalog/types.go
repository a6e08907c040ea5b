// Package catalog holds the attribute and entity data the guessing engine
// reasons over: a fixed set of yes/no question topics and a growing set of
// candidate identities, each mapping attribute keys to probabilities.
//
// The engine treats both as read-only during a game. The catalog itself is
// safe for concurrent readers; entity additions (the "learning" flow) and
// file reloads take the write lock and are snapshot-consistent from the
// point of view of an in-progress game.
package catalog

// Attribute is a yes/no question topic with a stable key, e.g. "is_fictional".
// Attributes are immutable once loaded.
type Attribute struct {
	// ID is stable and unique across the catalog.
	ID int64 `json:"id"`

	// Key is the stable dictionary key entities use, unique across the catalog.
	Key string `json:"key"`

	// Text maps language code to the localized question text.
	Text map[string]string `json:"text"`

	// Category groups attributes for display purposes only; the engine
	// never reads it.
	Category string `json:"category,omitempty"`
}

// Question returns the question text for the given language, falling back
// to fallbackLang and finally to the raw key when no text is available.
func (a *Attribute) Question(lang, fallbackLang string) string {
	if t, ok := a.Text[lang]; ok && t != "" {
		return t
	}
	if t, ok := a.Text[fallbackLang]; ok && t != "" {
		return t
	}
	return a.Key
}

// Entity is a candidate identity the game might be trying to guess.
type Entity struct {
	// ID is unique across the catalog.
	ID int64 `json:"id"`

	// Name is the display name, e.g. "Sherlock Holmes".
	Name string `json:"name"`

	// Attributes maps attribute key to the probability in [0,1] that a
	// random instance of this concept would answer YES to that attribute.
	// Missing keys mean "unknown", not "no"; see AttributeValue.
	Attributes map[string]float64 `json:"attributes"`
}

// unknownAttributeValue is the read-time default for attributes an entity
// has no recorded value for: maximum uncertainty.
const unknownAttributeValue = 0.5

// AttributeValue returns the probability that this entity answers YES to
// the given attribute key. A missing key is treated as unknown and reads
// as 0.5. This is the single point of truth for the unknown-value default;
// all engine reads go through it.
func (e *Entity) AttributeValue(key string) float64 {
	if p, ok := e.Attributes[key]; ok {
		return p
	}
	return unknownAttributeValue
}
