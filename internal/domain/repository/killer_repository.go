package repository

import (
	"context"
	"errors"

	"fogbuilds/internal/domain/entity"
)

// Killer-side sentinels, mirrored on the catalog ones.
var (
	ErrKillerNotFound      = errors.New("killer not found")
	ErrDuplicateKillerName = errors.New("killer name already exists")
	ErrDuplicatePowerName  = errors.New("killer power name already exists")

	ErrKillerAddonNotFound  = errors.New("killer addon not found")
	ErrDuplicateKillerAddon = errors.New("killer addon name already exists")

	ErrKillerPerkNotFound  = errors.New("killer perk not found")
	ErrDuplicateKillerPerk = errors.New("killer perk name already exists")
)

// KillerRepository persists killer records. Only the intrinsic record is
// stored; loadout slots never reach this layer.
type KillerRepository interface {
	// FindAll retrieves every killer record in storage order.
	FindAll(ctx context.Context) ([]*entity.Killer, error)

	// FindByID retrieves a killer by ID. Returns ErrKillerNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.Killer, error)

	// FindUniqueByName retrieves the killer holding the given name.
	// Returns ErrKillerNotFound if absent.
	FindUniqueByName(ctx context.Context, name string) (*entity.Killer, error)

	// FindUniqueByPowerName retrieves the killer holding the given power
	// name. Returns ErrKillerNotFound if absent.
	FindUniqueByPowerName(ctx context.Context, powerName string) (*entity.Killer, error)

	// Save upserts the killer by identity, assigning a generated ID on
	// first save. Returns ErrDuplicateKillerName or ErrDuplicatePowerName
	// when the corresponding unique constraint fires.
	Save(ctx context.Context, killer *entity.Killer) error

	// Delete removes the killer by identity. Returns ErrKillerNotFound if
	// it was already absent.
	Delete(ctx context.Context, killer *entity.Killer) error
}

// KillerAddonRepository persists the scored addon roster that loadout
// assembly resolves names against.
type KillerAddonRepository interface {
	// FindAll retrieves every addon in storage order.
	FindAll(ctx context.Context) ([]*entity.KillerAddon, error)

	// FindUniqueByName retrieves the addon holding the given name.
	// Returns ErrKillerAddonNotFound if absent.
	FindUniqueByName(ctx context.Context, name string) (*entity.KillerAddon, error)

	// Save upserts the addon, assigning a generated ID on first save.
	// Returns ErrDuplicateKillerAddon on a name collision.
	Save(ctx context.Context, addon *entity.KillerAddon) error
}

// KillerPerkRepository persists the scored perk roster that loadout
// assembly resolves names against.
type KillerPerkRepository interface {
	// FindAll retrieves every perk in storage order.
	FindAll(ctx context.Context) ([]*entity.KillerPerk, error)

	// FindUniqueByName retrieves the perk holding the given name.
	// Returns ErrKillerPerkNotFound if absent.
	FindUniqueByName(ctx context.Context, name string) (*entity.KillerPerk, error)

	// Save upserts the perk, assigning a generated ID on first save.
	// Returns ErrDuplicateKillerPerk on a name collision.
	Save(ctx context.Context, perk *entity.KillerPerk) error
}
