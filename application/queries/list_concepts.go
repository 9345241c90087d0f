// Package queries defines the read-side query and result DTOs.
package queries

import (
	"github.com/go-playground/validator/v10"

	"lexicon-backend/domain/core/entities"
	"lexicon-backend/pkg/common"
	pkgerrors "lexicon-backend/pkg/errors"
)

// validate is shared by all query DTOs; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// ListConceptsQuery represents a query for one page of the lexicon
type ListConceptsQuery struct {
	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1"`
}

// Validate validates the query
func (q ListConceptsQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return pkgerrors.NewValidationError("Page and limit parameters must be positive.").WithCause(err)
	}
	return nil
}

// ListConceptsResult is the list endpoint payload: a page of full concept
// records plus pagination metadata.
type ListConceptsResult struct {
	Data []*entities.Concept   `json:"data"`
	Meta common.PaginationMeta `json:"meta"`
}
