// Package handlers implements the read-side query handlers.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"lexicon-backend/application/ports"
	"lexicon-backend/application/queries"
	"lexicon-backend/pkg/common"
)

// ListConceptsHandler handles paginated lexicon listing queries
type ListConceptsHandler struct {
	concepts ports.ConceptReader
	logger   *zap.Logger
}

// NewListConceptsHandler creates a new list handler
func NewListConceptsHandler(concepts ports.ConceptReader, logger *zap.Logger) *ListConceptsHandler {
	return &ListConceptsHandler{
		concepts: concepts,
		logger:   logger,
	}
}

// Handle executes the list query. Concepts come back as full records in
// stable store order; page arithmetic and the out-of-range policy live in
// common.Paginate.
func (h *ListConceptsHandler) Handle(ctx context.Context, query queries.ListConceptsQuery) (*queries.ListConceptsResult, error) {
	all, err := h.concepts.All(ctx)
	if err != nil {
		return nil, err
	}

	slice, err := common.Paginate(len(all), query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Listing concepts",
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
		zap.Int("total", len(all)),
	)

	return &queries.ListConceptsResult{
		Data: all[slice.Start:slice.End],
		Meta: common.BuildPaginationMeta(len(all), query.Page, query.Limit),
	}, nil
}
