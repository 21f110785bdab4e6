package domain

import (
	"context"
	"slices"
)

// Record is one stored entity row keyed by field name.
type Record map[string]any

// EntityStore reads and writes the rows of one entity.
type EntityStore interface {
	Get(ctx context.Context, id any) (Record, error)
	Upsert(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id any) error
	Count(ctx context.Context) (int, error)
}

// ContractBinding is what a handler sees of a configured contract.
type ContractBinding struct {
	Name    string
	Network string
	ChainID int64
	Address string
	Events  []string
}

// Context is the HandlerContext value handed to indexing handlers.
type Context struct {
	entities  map[string]EntityStore
	Contracts []ContractBinding
}

// NewHandlerContext creates a HandlerContext.
func NewHandlerContext(entities map[string]EntityStore, contracts []ContractBinding) *Context {
	return &Context{entities: entities, Contracts: contracts}
}

// Entity returns the store for the named entity.
func (h *Context) Entity(name string) (EntityStore, bool) {
	s, ok := h.entities[name]
	return s, ok
}

// Entities returns the entity names in sorted order.
func (h *Context) Entities() []string {
	names := make([]string, 0, len(h.entities))
	for name := range h.entities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
