package handlers

import (
	"context"

	"go.uber.org/zap"

	"lexicon-backend/application/ports"
	"lexicon-backend/application/queries"
	"lexicon-backend/domain/core/entities"
	pkgerrors "lexicon-backend/pkg/errors"
)

// ExploreConceptHandler handles one-hop traversal queries
type ExploreConceptHandler struct {
	concepts ports.ConceptReader
	logger   *zap.Logger
}

// NewExploreConceptHandler creates a new explore handler
func NewExploreConceptHandler(concepts ports.ConceptReader, logger *zap.Logger) *ExploreConceptHandler {
	return &ExploreConceptHandler{
		concepts: concepts,
		logger:   logger,
	}
}

// Handle resolves the primary concept and its direct neighbors.
//
// Dangling references are dropped silently, association order is kept,
// and a neighbor listed twice is resolved twice. Traversal never goes
// beyond one hop.
func (h *ExploreConceptHandler) Handle(ctx context.Context, query queries.ExploreConceptQuery) (*queries.ExploreConceptResult, error) {
	primary, err := h.concepts.Get(ctx, query.ConceptID)
	if err != nil {
		return nil, err
	}

	associated := make([]*entities.Concept, 0, len(primary.AssociatedConcepts))
	for _, assocID := range primary.AssociatedConcepts {
		neighbor, err := h.concepts.Get(ctx, assocID)
		if err != nil {
			if pkgerrors.IsNotFound(err) {
				h.logger.Debug("Skipping dangling concept reference",
					zap.String("conceptID", query.ConceptID),
					zap.String("referenceID", assocID),
				)
				continue
			}
			return nil, err
		}
		associated = append(associated, neighbor)
	}

	return &queries.ExploreConceptResult{
		PrimaryConcept:     primary,
		AssociatedConcepts: associated,
	}, nil
}
