// Package impl contains the concrete application services behind the
// usecase interfaces.
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

// catalogService implements usecase.CatalogUsecase for one catalog
// collection. The same implementation is instantiated once per variant;
// only the bound repository and the variant tag differ.
type catalogService struct {
	variant entity.Variant
	repo    repository.CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService creates a catalog service bound to one variant's
// collection.
func NewCatalogService(variant entity.Variant, repo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		variant: variant,
		repo:    repo,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// List returns every entry in the collection. An empty collection is a
// successful empty result, not an error.
func (s *catalogService) List(ctx context.Context) ([]*entity.CatalogEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", s.variant)
	}

	return entries, nil
}

// ListByType filters the collection by character type. The type field must
// be present and parseable; an empty match set is still a success.
func (s *catalogService) ListByType(ctx context.Context, req usecase.ListByTypeRequest) ([]*entity.CatalogEntry, error) {
	if req.Type == nil {
		s.log(ctx).Info("No type given for listByType", slog.String("variant", s.variant.String()))

		return nil, domainerrors.ErrNoTypeGiven
	}

	characterType, err := entity.ParseCharacterType(*req.Type)
	if err != nil {
		s.log(ctx).Info("Invalid type given", slog.String("variant", s.variant.String()), slog.String("type", *req.Type))

		return nil, domainerrors.ErrInvalidTypeGiven
	}

	entries, err := s.repo.FindByType(ctx, characterType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss by type", s.variant)
	}

	return entries, nil
}

// Get returns the entry under id. A missing entry is a classified client
// error; the same policy applies across get, update and delete.
func (s *catalogService) Get(ctx context.Context, id int64) (*entity.CatalogEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.NewNoSuchEntry(s.variant.String(), id)
		}

		return nil, errors.Wrapf(err, "failed to get %s", s.variant)
	}

	return entry, nil
}

// Create validates and persists a new entry. Checks run in a fixed order:
// required fields first, then the duplicate-name fast path, then the type
// token, so a duplicate name with a bad type still reports the duplicate.
// The store's unique constraint backs the fast path under concurrent
// creates; a constraint hit maps to the same duplicate-name outcome.
func (s *catalogService) Create(ctx context.Context, req usecase.CreateEntryRequest) (*entity.CatalogEntry, error) {
	if req.Name == nil || req.Description == nil || req.Type == nil {
		return nil, domainerrors.ErrMissingData
	}

	if _, err := s.repo.FindUniqueByName(ctx, *req.Name); err == nil {
		return nil, domainerrors.NewDuplicateName(s.variant.String(), *req.Name)
	} else if !errors.Is(err, repository.ErrEntryNotFound) {
		return nil, errors.Wrapf(err, "failed to check %s name", s.variant)
	}

	characterType, err := entity.ParseCharacterType(*req.Type)
	if err != nil {
		s.log(ctx).Info("An invalid CharacterType was supplied for create", slog.String("variant", s.variant.String()))

		return nil, domainerrors.ErrInvalidCharacterType
	}

	entry := entity.NewCatalogEntry(characterType, *req.Name, *req.Description)
	if err := s.repo.Save(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domainerrors.NewDuplicateName(s.variant.String(), *req.Name)
		}

		return nil, errors.Wrapf(err, "failed to create %s", s.variant)
	}

	return entry, nil
}

// Update merges the present fields of req into the stored entry. Absent
// fields stay untouched. Each field is independently updatable, including
// the type. An invalid type token aborts before anything is persisted.
func (s *catalogService) Update(ctx context.Context, id int64, req usecase.UpdateEntryRequest) (*entity.CatalogEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.NewNoSuchEntry(s.variant.String(), id)
		}

		return nil, errors.Wrapf(err, "failed to load %s for update", s.variant)
	}

	// Validate the type token before touching the loaded entry, so a bad
	// token discards the whole update.
	var newType entity.CharacterType
	if req.Type != nil {
		newType, err = entity.ParseCharacterType(*req.Type)
		if err != nil {
			s.log(ctx).Info("An invalid CharacterType was supplied for update", slog.String("variant", s.variant.String()))

			return nil, domainerrors.ErrInvalidCharacterType
		}
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Type != nil {
		entry.Type = newType
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, domainerrors.NewDuplicateName(s.variant.String(), entry.Name)
		}

		return nil, errors.Wrapf(err, "failed to update %s", s.variant)
	}

	return entry, nil
}

// Delete removes the entry under id and returns its last known state.
// Deletion is irreversible; there is no soft delete.
func (s *catalogService) Delete(ctx context.Context, id int64) (*entity.CatalogEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.NewNoSuchEntry(s.variant.String(), id)
		}

		return nil, errors.Wrapf(err, "failed to load %s for delete", s.variant)
	}

	if err := s.repo.Delete(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.NewNoSuchEntry(s.variant.String(), id)
		}

		return nil, errors.Wrapf(err, "failed to delete %s", s.variant)
	}

	return entry, nil
}
