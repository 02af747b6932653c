package usecase

import (
	"context"

	"fogbuilds/internal/domain/entity"
)

// CreateKillerRequest carries the payload for creating a killer record.
// Name and power name are required; axis scores default to zero.
type CreateKillerRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	PowerName *string `json:"powerName" validate:"omitempty,max=255"`
	Early     int     `json:"early"`
	Late      int     `json:"late"`
	GenStop   int     `json:"genStop"`
	Hunt      int     `json:"hunt"`
	Camp      int     `json:"camp"`
}

// UpdateKillerRequest carries a partial update of a killer record. Nil
// fields leave the stored values unchanged.
type UpdateKillerRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	PowerName *string `json:"powerName" validate:"omitempty,max=255"`
	Early     *int    `json:"early"`
	Late      *int    `json:"late"`
	GenStop   *int    `json:"genStop"`
	Hunt      *int    `json:"hunt"`
	Camp      *int    `json:"camp"`
}

// CreateComponentRequest carries the payload for registering a scored
// component (killer addon or killer perk). Name is required.
type CreateComponentRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Early   int     `json:"early"`
	Late    int     `json:"late"`
	GenStop int     `json:"genStop"`
	Hunt    int     `json:"hunt"`
	Camp    int     `json:"camp"`
}

// LoadoutRequest names the components to place into a killer's slots. Every
// slot is optional; named components are resolved against the stored
// rosters at assembly time.
type LoadoutRequest struct {
	AddonOne  *string `json:"addonOne" validate:"omitempty,max=255"`
	AddonTwo  *string `json:"addonTwo" validate:"omitempty,max=255"`
	PerkOne   *string `json:"perkOne" validate:"omitempty,max=255"`
	PerkTwo   *string `json:"perkTwo" validate:"omitempty,max=255"`
	PerkThree *string `json:"perkThree" validate:"omitempty,max=255"`
	PerkFour  *string `json:"perkFour" validate:"omitempty,max=255"`
}

// KillerUsecase manages killer records, the scored component rosters, and
// loadout assembly. Assembled loadouts are per-request composites; slot
// selections are never persisted.
type KillerUsecase interface {
	// ListKillers returns every killer record.
	ListKillers(ctx context.Context) ([]*entity.Killer, error)

	// GetKiller returns the killer under id, or a no-such-entry client error.
	GetKiller(ctx context.Context, id int64) (*entity.Killer, error)

	// CreateKiller validates and persists a new killer record. Both the
	// name and the power name must be unused.
	CreateKiller(ctx context.Context, req CreateKillerRequest) (*entity.Killer, error)

	// UpdateKiller merges the present fields of req into the stored record.
	UpdateKiller(ctx context.Context, id int64, req UpdateKillerRequest) (*entity.Killer, error)

	// DeleteKiller removes the killer under id and returns its last known state.
	DeleteKiller(ctx context.Context, id int64) (*entity.Killer, error)

	// ListAddons returns the full addon roster.
	ListAddons(ctx context.Context) ([]*entity.KillerAddon, error)

	// CreateAddon registers a scored addon under a unique name.
	CreateAddon(ctx context.Context, req CreateComponentRequest) (*entity.KillerAddon, error)

	// ListPerks returns the full perk roster.
	ListPerks(ctx context.Context) ([]*entity.KillerPerk, error)

	// CreatePerk registers a scored perk under a unique name.
	CreatePerk(ctx context.Context, req CreateComponentRequest) (*entity.KillerPerk, error)

	// AssembleLoadout loads the killer record and fills its slots with the
	// named components. A slot name with no matching component is a client
	// error and nothing is assembled.
	AssembleLoadout(ctx context.Context, killerID int64, req LoadoutRequest) (*entity.KillerLoadout, error)
}
