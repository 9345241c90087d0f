package queries

import (
	"lexicon-backend/domain/core/entities"
	pkgerrors "lexicon-backend/pkg/errors"
)

// ExploreConceptQuery represents a one-hop traversal query: a concept and
// the concepts it directly references.
type ExploreConceptQuery struct {
	ConceptID string `validate:"required"`
}

// Validate validates the query
func (q ExploreConceptQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return pkgerrors.NewValidationError("Concept ID is required.").WithCause(err)
	}
	return nil
}

// ExploreConceptResult is the explore endpoint payload. AssociatedConcepts
// keeps the primary concept's association order, dangling references
// removed; it may be empty but is never null on the wire.
type ExploreConceptResult struct {
	PrimaryConcept     *entities.Concept   `json:"primary_concept"`
	AssociatedConcepts []*entities.Concept `json:"associated_concepts"`
}
