// Package usecase declares the application-layer contracts the delivery
// layer programs against, together with their request payload shapes.
package usecase

import (
	"context"

	"fogbuilds/internal/domain/entity"
)

// CreateEntryRequest carries the payload for creating a catalog entry.
// Pointer fields distinguish an absent field from an empty one; all three
// must be present for a create to proceed. The validate bounds mirror the
// store's column widths; presence checks stay in the service layer.
type CreateEntryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,max=16"`
}

// UpdateEntryRequest carries a partial update. A nil field leaves the
// stored value unchanged; updates merge, they never replace wholesale.
type UpdateEntryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,max=16"`
}

// ListByTypeRequest filters a listing by character type. The field is
// required; a payload without it is rejected before any store access.
type ListByTypeRequest struct {
	Type *string `json:"type" validate:"omitempty,max=16"`
}

// CatalogUsecase defines the CRUD contract shared by all four catalog
// collections. One implementation serves every variant; each instance is
// bound to a single collection at construction.
//
// Read operations signal an empty result by returning an empty slice; the
// delivery layer maps that to a no-content outcome, distinct from both a
// populated success and a client error.
type CatalogUsecase interface {
	// List returns every entry in the collection.
	List(ctx context.Context) ([]*entity.CatalogEntry, error)

	// ListByType returns the entries matching the requested type. A
	// missing type field or an unparseable token is a client error; a
	// valid type with no matches is an empty success.
	ListByType(ctx context.Context, req ListByTypeRequest) ([]*entity.CatalogEntry, error)

	// Get returns the entry under id, or a no-such-entry client error.
	Get(ctx context.Context, id int64) (*entity.CatalogEntry, error)

	// Create validates and persists a new entry, returning it with its
	// generated ID. Checks run in order: required fields, duplicate name,
	// type token validity.
	Create(ctx context.Context, req CreateEntryRequest) (*entity.CatalogEntry, error)

	// Update merges the present fields of req into the stored entry and
	// persists the result. An invalid type token aborts without persisting
	// anything.
	Update(ctx context.Context, id int64, req UpdateEntryRequest) (*entity.CatalogEntry, error)

	// Delete removes the entry under id and returns its last known state.
	Delete(ctx context.Context, id int64) (*entity.CatalogEntry, error)
}
