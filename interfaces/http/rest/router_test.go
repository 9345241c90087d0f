package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexicon-backend/infrastructure/config"
	"lexicon-backend/infrastructure/di"
	"lexicon-backend/infrastructure/persistence/memory"
	pkgerrors "lexicon-backend/pkg/errors"
)

type conceptPayload struct {
	ConceptID          string   `json:"concept_id"`
	Label              string   `json:"label"`
	Definition         string   `json:"definition"`
	AssociatedConcepts []string `json:"associated_concepts"`
	SentienceVectors   struct {
		EmotionalValence  float64 `json:"emotional_valence"`
		CognitiveLoad     float64 `json:"cognitive_load"`
		TemporalRelevance float64 `json:"temporal_relevance"`
	} `json:"sentience_vectors"`
	Origins []string `json:"origins"`
}

type listPayload struct {
	Data []conceptPayload `json:"data"`
	Meta struct {
		TotalCount  int `json:"total_count"`
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
		PerPage     int `json:"per_page"`
	} `json:"meta"`
}

type explorePayload struct {
	PrimaryConcept     conceptPayload   `json:"primary_concept"`
	AssociatedConcepts []conceptPayload `json:"associated_concepts"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// newTestHandler builds the full router over a store seeded with the
// standard lexicon (4 core + generated filler concepts).
func newTestHandler(t *testing.T, generated int) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	store := memory.NewConceptStore()
	require.NoError(t, memory.Seed(store, generated))

	queryBus, err := di.ProvideQueryBus(store, logger)
	require.NoError(t, err)

	cfg := &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		EnableCORS:    false,
	}

	router := NewRouter(cfg, queryBus, pkgerrors.NewHandler(logger, false), logger)
	return router.Setup()
}

func doGet(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestListConcepts_FirstPage(t *testing.T) {
	handler := newTestHandler(t, 96)

	rec := doGet(t, handler, "/concepts?page=1&limit=20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body listPayload
	decode(t, rec, &body)
	assert.Len(t, body.Data, 20)
	assert.Equal(t, 100, body.Meta.TotalCount)
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 5, body.Meta.TotalPages)
	assert.Equal(t, 20, body.Meta.PerPage)
}

func TestListConcepts_Defaults(t *testing.T) {
	handler := newTestHandler(t, 96)

	rec := doGet(t, handler, "/concepts")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listPayload
	decode(t, rec, &body)
	assert.Len(t, body.Data, 20)
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 20, body.Meta.PerPage)
}

func TestListConcepts_PageOutOfRange(t *testing.T) {
	handler := newTestHandler(t, 96)

	rec := doGet(t, handler, "/concepts?page=6&limit=20")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorPayload
	decode(t, rec, &body)
	assert.Equal(t, "Page not found.", body.Error)
}

func TestListConcepts_HugePageValue(t *testing.T) {
	handler := newTestHandler(t, 96)

	// A page value near the int64 ceiling must be an ordinary 404, not a
	// negative slice index
	rec := doGet(t, handler, "/concepts?page=922337203685477581&limit=20")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorPayload
	decode(t, rec, &body)
	assert.Equal(t, "Page not found.", body.Error)
}

func TestListConcepts_NonPositiveParams(t *testing.T) {
	handler := newTestHandler(t, 96)

	for _, path := range []string{
		"/concepts?page=0",
		"/concepts?page=-1",
		"/concepts?limit=0",
		"/concepts?limit=-20",
	} {
		rec := doGet(t, handler, path)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)

		var body errorPayload
		decode(t, rec, &body)
		assert.Equal(t, "Page and limit parameters must be positive.", body.Error, path)
	}
}

func TestListConcepts_NonIntegerParams(t *testing.T) {
	handler := newTestHandler(t, 96)

	for _, path := range []string{
		"/concepts?limit=abc",
		"/concepts?page=1.5",
		"/concepts?page=abc&limit=20",
	} {
		rec := doGet(t, handler, path)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)

		var body errorPayload
		decode(t, rec, &body)
		assert.Equal(t, "Invalid page or limit parameter. Must be an integer.", body.Error, path)
	}
}

func TestListConcepts_EmptyStore(t *testing.T) {
	logger := zap.NewNop()
	store := memory.NewConceptStore()

	queryBus, err := di.ProvideQueryBus(store, logger)
	require.NoError(t, err)

	cfg := &config.Config{ServerAddress: ":0", Environment: "test"}
	handler := NewRouter(cfg, queryBus, pkgerrors.NewHandler(logger, false), logger).Setup()

	// Page 1 of an empty lexicon is an empty 200, never a 404
	rec := doGet(t, handler, "/concepts?page=1&limit=20")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listPayload
	decode(t, rec, &body)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.Meta.TotalCount)
	assert.Equal(t, 0, body.Meta.TotalPages)
}

func TestGetConceptByID_RoundTrip(t *testing.T) {
	handler := newTestHandler(t, 10)

	rec := doGet(t, handler, "/concepts?page=1&limit=14")
	require.Equal(t, http.StatusOK, rec.Code)

	var listBody listPayload
	decode(t, rec, &listBody)
	require.NotEmpty(t, listBody.Data)

	// Every listed concept fetches back identical by its own ID
	for _, listed := range listBody.Data {
		rec := doGet(t, handler, "/concepts/"+listed.ConceptID)
		require.Equal(t, http.StatusOK, rec.Code)

		var fetched conceptPayload
		decode(t, rec, &fetched)
		assert.Equal(t, listed, fetched)
	}
}

func TestGetConceptByID_NotFound(t *testing.T) {
	handler := newTestHandler(t, 0)

	rec := doGet(t, handler, "/concepts/never-issued-id")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorPayload
	decode(t, rec, &body)
	assert.Equal(t, "Concept not found.", body.Error)
}

func TestExploreConcept(t *testing.T) {
	handler := newTestHandler(t, 0)

	rec := doGet(t, handler, "/concepts?page=1&limit=20")
	require.Equal(t, http.StatusOK, rec.Code)

	var listBody listPayload
	decode(t, rec, &listBody)

	var joy conceptPayload
	for _, c := range listBody.Data {
		if c.Label == "Joy" {
			joy = c
		}
	}
	require.NotEmpty(t, joy.ConceptID, "seed data must contain Joy")

	rec = doGet(t, handler, "/concepts/explore/"+joy.ConceptID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body explorePayload
	decode(t, rec, &body)
	assert.Equal(t, joy, body.PrimaryConcept)

	// Joy references Memory then Logic, in that order
	require.Len(t, body.AssociatedConcepts, 2)
	assert.Equal(t, "Memory", body.AssociatedConcepts[0].Label)
	assert.Equal(t, "Logic", body.AssociatedConcepts[1].Label)
}

func TestExploreConcept_NotFound(t *testing.T) {
	handler := newTestHandler(t, 0)

	rec := doGet(t, handler, "/concepts/explore/never-issued-id")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorPayload
	decode(t, rec, &body)
	assert.Equal(t, "Concept not found.", body.Error)
}

func TestIdempotentReads(t *testing.T) {
	handler := newTestHandler(t, 96)

	for _, path := range []string{
		"/concepts?page=2&limit=10",
		"/concepts",
	} {
		first := doGet(t, handler, path)
		second := doGet(t, handler, path)
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes(), "repeated GET %s must be byte-identical", path)
	}
}

func TestPaginationWalk(t *testing.T) {
	handler := newTestHandler(t, 96)

	// Walking all pages yields every concept exactly once
	seen := make(map[string]bool)
	for page := 1; page <= 5; page++ {
		rec := doGet(t, handler, fmt.Sprintf("/concepts?page=%d&limit=20", page))
		require.Equal(t, http.StatusOK, rec.Code)

		var body listPayload
		decode(t, rec, &body)
		for _, c := range body.Data {
			assert.False(t, seen[c.ConceptID], "concept %s repeated across pages", c.ConceptID)
			seen[c.ConceptID] = true
		}
	}
	assert.Len(t, seen, 100)
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestHandler(t, 0)

	rec := doGet(t, handler, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = doGet(t, handler, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}
