package entities

import (
	"strings"

	pkgerrors "lexicon-backend/pkg/errors"
)

// Origin is a provenance tag recorded on a concept. The vocabulary is
// open; these are the values the seed lexicon uses.
type Origin = string

const (
	OriginUserDefined   Origin = "user_defined"
	OriginSelfGenerated Origin = "self_generated"
)

// SentienceVectors holds the three numeric scores attached to every
// concept. The keys are fixed, so this is a struct rather than a map.
// Values are opaque to the API; no bounds are enforced here.
type SentienceVectors struct {
	EmotionalValence  float64 `json:"emotional_valence"`
	CognitiveLoad     float64 `json:"cognitive_load"`
	TemporalRelevance float64 `json:"temporal_relevance"`
}

// Concept is a single lexicon record. The ID is assigned at creation and
// immutable; it doubles as the store key, so the two must stay consistent.
//
// AssociatedConcepts are directed references: Joy -> Memory does not imply
// Memory -> Joy unless separately listed. A reference to an ID not present
// in the store is a dangling reference, ignored by traversal.
type Concept struct {
	ID                 string           `json:"concept_id"`
	Label              string           `json:"label"`
	Definition         string           `json:"definition"`
	AssociatedConcepts []string         `json:"associated_concepts"`
	SentienceVectors   SentienceVectors `json:"sentience_vectors"`
	Origins            []Origin         `json:"origins"`
}

// NewConcept creates a concept, validating the fields that have
// data-model level constraints.
func NewConcept(id, label, definition string) (*Concept, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.NewValidationError("concept ID cannot be empty")
	}
	if strings.TrimSpace(label) == "" {
		return nil, pkgerrors.NewValidationError("label cannot be empty")
	}

	return &Concept{
		ID:                 id,
		Label:              label,
		Definition:         definition,
		AssociatedConcepts: []string{},
		Origins:            []Origin{},
	}, nil
}

// Associate appends a directed reference to another concept. The target
// is not resolved here; dangling references are legal.
func (c *Concept) Associate(targetID string) {
	c.AssociatedConcepts = append(c.AssociatedConcepts, targetID)
}

// AddOrigin records a provenance tag. Duplicates are not filtered; the
// origins list is set-like by convention only.
func (c *Concept) AddOrigin(origin Origin) {
	c.Origins = append(c.Origins, origin)
}
