package queries

import (
	pkgerrors "lexicon-backend/pkg/errors"
)

// GetConceptQuery represents a query for a single concept by ID
type GetConceptQuery struct {
	ConceptID string `validate:"required"`
}

// Validate validates the query
func (q GetConceptQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return pkgerrors.NewValidationError("Concept ID is required.").WithCause(err)
	}
	return nil
}
