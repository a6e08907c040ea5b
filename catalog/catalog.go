package catalog

import (
	"sync"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
)

// Catalog owns the attribute list and the entity set for one game universe.
// Many sessions may read it concurrently; AddEntity and ReplaceEntities
// take the write lock so readers always observe a consistent snapshot.
type Catalog struct {
	mu sync.RWMutex

	defaultLanguage string

	attributes []*Attribute // load order preserved; drives question-selection tie-breaking
	attrByKey  map[string]*Attribute
	attrByID   map[int64]*Attribute

	entities    map[int64]*Entity
	entityOrder []int64 // insertion order, for deterministic iteration
}

// New creates an empty catalog with the given default language.
func New(defaultLanguage string) *Catalog {
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	return &Catalog{
		defaultLanguage: defaultLanguage,
		attrByKey:       make(map[string]*Attribute),
		attrByID:        make(map[int64]*Attribute),
		entities:        make(map[int64]*Entity),
	}
}

// DefaultLanguage returns the language question text falls back to.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLanguage
}

// AddAttribute registers an attribute. Duplicate ids or keys are errors;
// the attribute set is loaded once and never mutated afterwards.
func (c *Catalog) AddAttribute(a *Attribute) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a.Key == "" {
		return errors.Newf("attribute %d has empty key", a.ID)
	}
	if _, ok := c.attrByID[a.ID]; ok {
		return errors.Newf("duplicate attribute id %d", a.ID)
	}
	if _, ok := c.attrByKey[a.Key]; ok {
		return errors.Newf("duplicate attribute key %q", a.Key)
	}

	c.attributes = append(c.attributes, a)
	c.attrByID[a.ID] = a
	c.attrByKey[a.Key] = a
	return nil
}

// AddEntity registers an entity, clamping attribute values into [0,1].
// This is the hook the learning flow uses between games; a duplicate id
// is an error.
func (c *Catalog) AddEntity(e *Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addEntityLocked(e)
}

func (c *Catalog) addEntityLocked(e *Entity) error {
	if _, ok := c.entities[e.ID]; ok {
		return errors.Newf("duplicate entity id %d", e.ID)
	}
	for key, p := range e.Attributes {
		if p < 0 {
			e.Attributes[key] = 0
		} else if p > 1 {
			e.Attributes[key] = 1
		}
	}
	c.entities[e.ID] = e
	c.entityOrder = append(c.entityOrder, e.ID)
	return nil
}

// ReplaceEntities swaps the whole entity set atomically. Used by the
// catalog watcher on file reload so in-flight games keep the snapshot
// they started with (entities are passed into the engine by id lookup;
// a session created before the swap simply sees the new set on its next
// read, which is the documented snapshot-consistency guarantee).
func (c *Catalog) ReplaceEntities(entities []*Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, oldOrder := c.entities, c.entityOrder
	c.entities = make(map[int64]*Entity, len(entities))
	c.entityOrder = nil
	for _, e := range entities {
		if err := c.addEntityLocked(e); err != nil {
			c.entities, c.entityOrder = old, oldOrder
			return err
		}
	}
	return nil
}

// AttributeByKey returns the attribute with the given key.
func (c *Catalog) AttributeByKey(key string) (*Attribute, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.attrByKey[key]
	return a, ok
}

// AttributeByID returns the attribute with the given id.
func (c *Catalog) AttributeByID(id int64) (*Attribute, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.attrByID[id]
	return a, ok
}

// Attributes returns a copy of the attribute list in load order.
func (c *Catalog) Attributes() []*Attribute {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Attribute, len(c.attributes))
	copy(out, c.attributes)
	return out
}

// Entity returns the entity with the given id.
func (c *Catalog) Entity(id int64) (*Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entities[id]
	return e, ok
}

// EntityIDs returns all entity ids in insertion order.
func (c *Catalog) EntityIDs() []int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]int64, len(c.entityOrder))
	copy(out, c.entityOrder)
	return out
}

// Entities returns all entities in insertion order.
func (c *Catalog) Entities() []*Entity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Entity, 0, len(c.entityOrder))
	for _, id := range c.entityOrder {
		out = append(out, c.entities[id])
	}
	return out
}

// AttributeCount returns the number of attributes.
func (c *Catalog) AttributeCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.attributes)
}

// EntityCount returns the number of entities.
func (c *Catalog) EntityCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}
