package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Object is anything the game tracks by identifier.
type Object interface {
	ID() string
}

// IDGenerator mints identifiers for new game objects. It is injected so that
// tests and deep-copy operations control identity explicitly.
type IDGenerator interface {
	NextID(kind string) string
}

// UUIDGenerator produces kind-prefixed short ids, e.g. "unit-a3f8e2b1".
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

func (g *UUIDGenerator) NextID(kind string) string {
	full := strings.ReplaceAll(uuid.New().String(), "-", "")
	return kind + "-" + full[:8]
}

// SequenceGenerator produces deterministic ids ("unit-1", "unit-2", ...) for
// tests and reproducible seeds.
type SequenceGenerator struct {
	counters map[string]int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: make(map[string]int)}
}

func (g *SequenceGenerator) NextID(kind string) string {
	g.counters[kind]++
	return fmt.Sprintf("%s-%d", kind, g.counters[kind])
}

// Registry is the explicit game object table. Registration is an operation
// invoked by the owning aggregate, never a side effect of assigning an
// identifier.
type Registry struct {
	objects map[string]Object
}

func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]Object)}
}

func (r *Registry) Register(o Object) error {
	if o == nil || o.ID() == "" {
		return fmt.Errorf("cannot register object without an id")
	}
	if existing, ok := r.objects[o.ID()]; ok && existing != o {
		return &DuplicateIDError{ID: o.ID()}
	}
	r.objects[o.ID()] = o
	return nil
}

func (r *Registry) Unregister(id string) {
	delete(r.objects, id)
}

// Rebind moves an object from its old identifier to its current one.
func (r *Registry) Rebind(oldID string, o Object) error {
	if o.ID() == oldID {
		return nil
	}
	if _, ok := r.objects[o.ID()]; ok {
		return &DuplicateIDError{ID: o.ID()}
	}
	delete(r.objects, oldID)
	r.objects[o.ID()] = o
	return nil
}

func (r *Registry) Lookup(id string) (Object, bool) {
	o, ok := r.objects[id]
	return o, ok
}

func (r *Registry) Count() int { return len(r.objects) }

// DuplicateIDError indicates an identifier collision in the registry.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("object id already registered: %s", e.ID)
}
