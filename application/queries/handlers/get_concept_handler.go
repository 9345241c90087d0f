package handlers

import (
	"context"

	"go.uber.org/zap"

	"lexicon-backend/application/ports"
	"lexicon-backend/application/queries"
	"lexicon-backend/domain/core/entities"
)

// GetConceptHandler handles single-concept lookup queries
type GetConceptHandler struct {
	concepts ports.ConceptReader
	logger   *zap.Logger
}

// NewGetConceptHandler creates a new get handler
func NewGetConceptHandler(concepts ports.ConceptReader, logger *zap.Logger) *GetConceptHandler {
	return &GetConceptHandler{
		concepts: concepts,
		logger:   logger,
	}
}

// Handle executes the lookup. Absent IDs surface as NotFound from the
// store; the full record is returned unprojected.
func (h *GetConceptHandler) Handle(ctx context.Context, query queries.GetConceptQuery) (*entities.Concept, error) {
	concept, err := h.concepts.Get(ctx, query.ConceptID)
	if err != nil {
		return nil, err
	}

	return concept, nil
}
