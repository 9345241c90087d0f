package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lexicon-backend/application/queries"
	querybus "lexicon-backend/application/queries/bus"
	pkgerrors "lexicon-backend/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ConceptHandler handles concept-related HTTP requests
type ConceptHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.Handler
	logger   *zap.Logger
}

// NewConceptHandler creates a new concept handler
func NewConceptHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.Handler, logger *zap.Logger) *ConceptHandler {
	return &ConceptHandler{
		queryBus: queryBus,
		errors:   errorHandler,
		logger:   logger,
	}
}

// ListConcepts handles GET /concepts
func (h *ConceptHandler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListConceptsQuery{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetConceptByID handles GET /concepts/{conceptID}
func (h *ConceptHandler) GetConceptByID(w http.ResponseWriter, r *http.Request) {
	conceptID := chi.URLParam(r, "conceptID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetConceptQuery{
		ConceptID: conceptID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ExploreConcept handles GET /concepts/explore/{conceptID}
func (h *ConceptHandler) ExploreConcept(w http.ResponseWriter, r *http.Request) {
	conceptID := chi.URLParam(r, "conceptID")

	result, err := h.queryBus.Ask(r.Context(), queries.ExploreConceptQuery{
		ConceptID: conceptID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parsePagination reads page and limit from the query string. Both are
// optional; both must parse as integers when present. Range checks happen
// later in the query layer, this only rejects non-numeric input.
func parsePagination(r *http.Request) (page, limit int, err error) {
	page = defaultPage
	limit = defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, pkgerrors.NewValidationError("Invalid page or limit parameter. Must be an integer.").WithCause(err)
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, pkgerrors.NewValidationError("Invalid page or limit parameter. Must be an integer.").WithCause(err)
		}
	}

	return page, limit, nil
}

func (h *ConceptHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
