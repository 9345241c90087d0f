package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexicon-backend/application/queries"
	pkgerrors "lexicon-backend/pkg/errors"
)

func TestGetConceptHandler_Found(t *testing.T) {
	ctx := context.Background()
	handler := NewGetConceptHandler(storeWithConcepts(t, 5), zap.NewNop())

	concept, err := handler.Handle(ctx, queries.GetConceptQuery{ConceptID: "id-002"})
	require.NoError(t, err)
	assert.Equal(t, "id-002", concept.ID)
	assert.Equal(t, "Concept 2", concept.Label)
}

func TestGetConceptHandler_NotFound(t *testing.T) {
	ctx := context.Background()
	handler := NewGetConceptHandler(storeWithConcepts(t, 5), zap.NewNop())

	_, err := handler.Handle(ctx, queries.GetConceptQuery{ConceptID: "never-issued"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, "Concept not found.", pkgerrors.GetAppError(err).Message)
}
