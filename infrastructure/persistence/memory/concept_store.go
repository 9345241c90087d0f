// Package memory provides the in-process implementation of the concept
// store. There is no database behind it: the lexicon is seeded once at
// startup and read for the lifetime of the process.
package memory

import (
	"context"
	"fmt"

	"lexicon-backend/domain/core/entities"
	pkgerrors "lexicon-backend/pkg/errors"
)

// ConceptStore is an insertion-ordered in-memory map of concepts.
//
// All writes happen through Put during seeding, strictly before the first
// request is served, so the read paths take no locks. A future write
// endpoint would need to add a read-write lock or snapshot swapping.
type ConceptStore struct {
	concepts map[string]*entities.Concept
	order    []string
}

// NewConceptStore creates an empty store.
func NewConceptStore() *ConceptStore {
	return &ConceptStore{
		concepts: make(map[string]*entities.Concept),
	}
}

// Put inserts a concept. IDs are unique across the store; inserting a
// duplicate is a programming error in the seeder and is rejected.
func (s *ConceptStore) Put(concept *entities.Concept) error {
	if concept == nil {
		return pkgerrors.NewValidationError("concept cannot be nil")
	}
	if _, exists := s.concepts[concept.ID]; exists {
		return pkgerrors.NewValidationError(fmt.Sprintf("duplicate concept ID %q", concept.ID))
	}

	s.concepts[concept.ID] = concept
	s.order = append(s.order, concept.ID)
	return nil
}

// Get returns the concept with the given ID.
func (s *ConceptStore) Get(ctx context.Context, id string) (*entities.Concept, error) {
	concept, ok := s.concepts[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("Concept")
	}
	return concept, nil
}

// All returns every concept in insertion order.
func (s *ConceptStore) All(ctx context.Context) ([]*entities.Concept, error) {
	concepts := make([]*entities.Concept, 0, len(s.order))
	for _, id := range s.order {
		concepts = append(concepts, s.concepts[id])
	}
	return concepts, nil
}

// Count returns the number of concepts stored.
func (s *ConceptStore) Count(ctx context.Context) (int, error) {
	return len(s.concepts), nil
}
