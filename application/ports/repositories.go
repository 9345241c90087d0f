// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package ports

import (
	"context"

	"lexicon-backend/domain/core/entities"
)

// ConceptReader is the read-only view of the concept store consumed by
// query handlers. The store is populated once before serving and never
// mutated afterwards, so there is no writer counterpart.
type ConceptReader interface {
	// Get returns the concept with the given ID, or a NotFound error.
	Get(ctx context.Context, id string) (*entities.Concept, error)

	// All returns every concept in stable insertion order. The returned
	// slice is shared; callers must not modify it.
	All(ctx context.Context) ([]*entities.Concept, error)

	// Count returns the total number of concepts stored.
	Count(ctx context.Context) (int, error)
}
