// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fogbuilds/internal/domain/entity"
)

// ErrEntryNotFound is a domain-specific error returned when a catalog entry
// is not found.
var ErrEntryNotFound = errors.New("catalog entry not found")

// ErrDuplicateName is returned by Save when the store's unique constraint on
// the entry name fires. The service layer performs its own duplicate check
// first, but the constraint is the enforcement that holds under concurrent
// creates.
var ErrDuplicateName = errors.New("catalog entry name already exists")

// CatalogRepository defines the standard operations over one catalog
// collection. A repository instance is bound to a single variant
// (characters, addons, items or perks); all four collections share this
// contract. The application layer depends on this interface, not the
// concrete implementation.
type CatalogRepository interface {
	// FindAll retrieves every entry in the collection, in storage order.
	// An empty collection yields an empty slice, not an error.
	FindAll(ctx context.Context) ([]*entity.CatalogEntry, error)

	// FindByID retrieves a single entry by its unique ID.
	// Returns ErrEntryNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.CatalogEntry, error)

	// FindByType retrieves all entries whose type equals characterType.
	// No matches yields an empty slice, not an error.
	FindByType(ctx context.Context, characterType entity.CharacterType) ([]*entity.CatalogEntry, error)

	// FindUniqueByName retrieves the entry holding the given name.
	// Returns ErrEntryNotFound if absent. Behavior is undefined if more
	// than one entry matches; the name uniqueness invariant rules that out
	// as long as writes go through the service layer.
	FindUniqueByName(ctx context.Context, name string) (*entity.CatalogEntry, error)

	// Save upserts the entry by identity and assigns a generated ID on
	// first save. Returns ErrDuplicateName on a name collision.
	Save(ctx context.Context, entry *entity.CatalogEntry) error

	// Delete removes the entry by identity. Returns ErrEntryNotFound if it
	// was already absent.
	Delete(ctx context.Context, entry *entity.CatalogEntry) error
}
