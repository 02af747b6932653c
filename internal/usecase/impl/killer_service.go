package impl

import (
	"context"
	"log/slog"

	deliverycontext "fogbuilds/internal/delivery/context"
	"fogbuilds/internal/domain/entity"
	domainerrors "fogbuilds/internal/domain/errors"
	"fogbuilds/internal/domain/repository"
	"fogbuilds/internal/errors"
	"fogbuilds/internal/usecase"
)

// Display names used in client-facing messages for the killer aggregate and
// its component rosters.
const (
	killerKind = "killer"
	addonKind  = "killer addon"
	perkKind   = "killer perk"
)

// killerService implements usecase.KillerUsecase. It owns the killer
// records and the two component rosters; assembled loadouts exist only in
// the response, never in the store.
type killerService struct {
	killerRepo repository.KillerRepository
	addonRepo  repository.KillerAddonRepository
	perkRepo   repository.KillerPerkRepository
	logger     *slog.Logger
}

// NewKillerService creates the killer service.
func NewKillerService(
	killerRepo repository.KillerRepository,
	addonRepo repository.KillerAddonRepository,
	perkRepo repository.KillerPerkRepository,
	logger *slog.Logger,
) usecase.KillerUsecase {
	return &killerService{
		killerRepo: killerRepo,
		addonRepo:  addonRepo,
		perkRepo:   perkRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (s *killerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListKillers returns every killer record.
func (s *killerService) ListKillers(ctx context.Context) ([]*entity.Killer, error) {
	killers, err := s.killerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list killers")
	}

	return killers, nil
}

// GetKiller returns the killer under id.
func (s *killerService) GetKiller(ctx context.Context, id int64) (*entity.Killer, error) {
	killer, err := s.killerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrKillerNotFound) {
			return nil, domainerrors.NewNoSuchEntry(killerKind, id)
		}

		return nil, errors.Wrap(err, "failed to get killer")
	}

	return killer, nil
}

// CreateKiller validates and persists a new killer record. Both the name
// and the power name are natural keys; each is checked before the write and
// backed by a store-level unique constraint.
func (s *killerService) CreateKiller(ctx context.Context, req usecase.CreateKillerRequest) (*entity.Killer, error) {
	if req.Name == nil || req.PowerName == nil {
		return nil, domainerrors.ErrMissingData
	}

	if _, err := s.killerRepo.FindUniqueByName(ctx, *req.Name); err == nil {
		return nil, domainerrors.NewDuplicateName(killerKind, *req.Name)
	} else if !errors.Is(err, repository.ErrKillerNotFound) {
		return nil, errors.Wrap(err, "failed to check killer name")
	}

	if _, err := s.killerRepo.FindUniqueByPowerName(ctx, *req.PowerName); err == nil {
		return nil, domainerrors.NewDuplicatePower(*req.PowerName)
	} else if !errors.Is(err, repository.ErrKillerNotFound) {
		return nil, errors.Wrap(err, "failed to check killer power name")
	}

	killer := entity.NewKiller(*req.Name, *req.PowerName, entity.AxisScores{
		Early:   req.Early,
		Late:    req.Late,
		GenStop: req.GenStop,
		Hunt:    req.Hunt,
		Camp:    req.Camp,
	})

	if err := s.killerRepo.Save(ctx, killer); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKillerName):
			return nil, domainerrors.NewDuplicateName(killerKind, *req.Name)
		case errors.Is(err, repository.ErrDuplicatePowerName):
			return nil, domainerrors.NewDuplicatePower(*req.PowerName)
		default:
			return nil, errors.Wrap(err, "failed to create killer")
		}
	}

	return killer, nil
}

// UpdateKiller merges the present fields of req into the stored record.
func (s *killerService) UpdateKiller(ctx context.Context, id int64, req usecase.UpdateKillerRequest) (*entity.Killer, error) {
	killer, err := s.killerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrKillerNotFound) {
			return nil, domainerrors.NewNoSuchEntry(killerKind, id)
		}

		return nil, errors.Wrap(err, "failed to load killer for update")
	}

	if req.Name != nil {
		killer.Name = *req.Name
	}
	if req.PowerName != nil {
		killer.PowerName = *req.PowerName
	}
	if req.Early != nil {
		killer.Early = *req.Early
	}
	if req.Late != nil {
		killer.Late = *req.Late
	}
	if req.GenStop != nil {
		killer.GenStop = *req.GenStop
	}
	if req.Hunt != nil {
		killer.Hunt = *req.Hunt
	}
	if req.Camp != nil {
		killer.Camp = *req.Camp
	}

	if err := s.killerRepo.Save(ctx, killer); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKillerName):
			return nil, domainerrors.NewDuplicateName(killerKind, killer.Name)
		case errors.Is(err, repository.ErrDuplicatePowerName):
			return nil, domainerrors.NewDuplicatePower(killer.PowerName)
		default:
			return nil, errors.Wrap(err, "failed to update killer")
		}
	}

	return killer, nil
}

// DeleteKiller removes the killer under id and returns its last known state.
func (s *killerService) DeleteKiller(ctx context.Context, id int64) (*entity.Killer, error) {
	killer, err := s.killerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrKillerNotFound) {
			return nil, domainerrors.NewNoSuchEntry(killerKind, id)
		}

		return nil, errors.Wrap(err, "failed to load killer for delete")
	}

	if err := s.killerRepo.Delete(ctx, killer); err != nil {
		if errors.Is(err, repository.ErrKillerNotFound) {
			return nil, domainerrors.NewNoSuchEntry(killerKind, id)
		}

		return nil, errors.Wrap(err, "failed to delete killer")
	}

	return killer, nil
}

// ListAddons returns the full addon roster.
func (s *killerService) ListAddons(ctx context.Context) ([]*entity.KillerAddon, error) {
	addons, err := s.addonRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list killer addons")
	}

	return addons, nil
}

// CreateAddon registers a scored addon under a unique name.
func (s *killerService) CreateAddon(ctx context.Context, req usecase.CreateComponentRequest) (*entity.KillerAddon, error) {
	if req.Name == nil {
		return nil, domainerrors.ErrMissingData
	}

	if _, err := s.addonRepo.FindUniqueByName(ctx, *req.Name); err == nil {
		return nil, domainerrors.NewDuplicateName(addonKind, *req.Name)
	} else if !errors.Is(err, repository.ErrKillerAddonNotFound) {
		return nil, errors.Wrap(err, "failed to check killer addon name")
	}

	addon := &entity.KillerAddon{
		Name:       *req.Name,
		AxisScores: componentScores(req),
	}

	if err := s.addonRepo.Save(ctx, addon); err != nil {
		if errors.Is(err, repository.ErrDuplicateKillerAddon) {
			return nil, domainerrors.NewDuplicateName(addonKind, *req.Name)
		}

		return nil, errors.Wrap(err, "failed to create killer addon")
	}

	return addon, nil
}

// ListPerks returns the full perk roster.
func (s *killerService) ListPerks(ctx context.Context) ([]*entity.KillerPerk, error) {
	perks, err := s.perkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list killer perks")
	}

	return perks, nil
}

// CreatePerk registers a scored perk under a unique name.
func (s *killerService) CreatePerk(ctx context.Context, req usecase.CreateComponentRequest) (*entity.KillerPerk, error) {
	if req.Name == nil {
		return nil, domainerrors.ErrMissingData
	}

	if _, err := s.perkRepo.FindUniqueByName(ctx, *req.Name); err == nil {
		return nil, domainerrors.NewDuplicateName(perkKind, *req.Name)
	} else if !errors.Is(err, repository.ErrKillerPerkNotFound) {
		return nil, errors.Wrap(err, "failed to check killer perk name")
	}

	perk := &entity.KillerPerk{
		Name:       *req.Name,
		AxisScores: componentScores(req),
	}

	if err := s.perkRepo.Save(ctx, perk); err != nil {
		if errors.Is(err, repository.ErrDuplicateKillerPerk) {
			return nil, domainerrors.NewDuplicateName(perkKind, *req.Name)
		}

		return nil, errors.Wrap(err, "failed to create killer perk")
	}

	return perk, nil
}

// AssembleLoadout loads the killer record and fills its slots with the
// named components. The composite is built fresh on every call and nothing
// about it is written back to the store.
func (s *killerService) AssembleLoadout(ctx context.Context, killerID int64, req usecase.LoadoutRequest) (*entity.KillerLoadout, error) {
	s.log(ctx).Debug("Assembling killer loadout", slog.Int64("killer_id", killerID))

	killer, err := s.GetKiller(ctx, killerID)
	if err != nil {
		return nil, err
	}

	loadout := entity.NewKillerLoadout(killer)

	addonSlots := []struct {
		name *string
		slot **entity.KillerAddon
	}{
		{req.AddonOne, &loadout.AddonOne},
		{req.AddonTwo, &loadout.AddonTwo},
	}
	for _, s2 := range addonSlots {
		if s2.name == nil {
			continue
		}
		addon, err := s.resolveAddon(ctx, *s2.name)
		if err != nil {
			return nil, err
		}
		*s2.slot = addon
	}

	perkSlots := []struct {
		name *string
		slot **entity.KillerPerk
	}{
		{req.PerkOne, &loadout.PerkOne},
		{req.PerkTwo, &loadout.PerkTwo},
		{req.PerkThree, &loadout.PerkThree},
		{req.PerkFour, &loadout.PerkFour},
	}
	for _, s2 := range perkSlots {
		if s2.name == nil {
			continue
		}
		perk, err := s.resolvePerk(ctx, *s2.name)
		if err != nil {
			return nil, err
		}
		*s2.slot = perk
	}

	return loadout, nil
}

func (s *killerService) resolveAddon(ctx context.Context, name string) (*entity.KillerAddon, error) {
	addon, err := s.addonRepo.FindUniqueByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrKillerAddonNotFound) {
			return nil, domainerrors.NewNoSuchComponent(addonKind, name)
		}

		return nil, errors.Wrap(err, "failed to resolve killer addon")
	}

	return addon, nil
}

func (s *killerService) resolvePerk(ctx context.Context, name string) (*entity.KillerPerk, error) {
	perk, err := s.perkRepo.FindUniqueByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrKillerPerkNotFound) {
			return nil, domainerrors.NewNoSuchComponent(perkKind, name)
		}

		return nil, errors.Wrap(err, "failed to resolve killer perk")
	}

	return perk, nil
}

func componentScores(req usecase.CreateComponentRequest) entity.AxisScores {
	return entity.AxisScores{
		Early:   req.Early,
		Late:    req.Late,
		GenStop: req.GenStop,
		Hunt:    req.Hunt,
		Camp:    req.Camp,
	}
}
