// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/domain/repository"
	"fogbuilds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements repository.CatalogRepository over one of the
// four catalog tables. The variant picks the table; everything else is
// shared.
type catalogRepository struct {
	db      *gorm.DB
	variant entity.Variant
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB, variant entity.Variant) repository.CatalogRepository {
	return &catalogRepository{
		db:      db,
		variant: variant,
	}
}

func (repo *catalogRepository) table(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.variant.TableName())
}

// FindAll retrieves every entry in the collection ordered by ID.
func (repo *catalogRepository) FindAll(ctx context.Context) ([]*entity.CatalogEntry, error) {
	var entryModels []*model.CatalogEntryModel

	if err := repo.table(ctx).
		Order("id").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find all %ss", repo.variant)
	}

	entries := make([]*entity.CatalogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCatalogDomain(entryM))
	}

	return entries, nil
}

// FindByID retrieves a single entry by its unique ID.
func (repo *catalogRepository) FindByID(ctx context.Context, id int64) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	if err := repo.table(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by ID", repo.variant)
	}

	return toCatalogDomain(&entryM), nil
}

// FindByType retrieves every entry whose type matches, ordered by ID.
func (repo *catalogRepository) FindByType(ctx context.Context, characterType entity.CharacterType) ([]*entity.CatalogEntry, error) {
	var entryModels []*model.CatalogEntryModel

	if err := repo.table(ctx).
		Where("type = ?", characterType.String()).
		Order("id").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find %ss by type", repo.variant)
	}

	entries := make([]*entity.CatalogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCatalogDomain(entryM))
	}

	return entries, nil
}

// FindUniqueByName retrieves the entry holding the given name.
func (repo *catalogRepository) FindUniqueByName(ctx context.Context, name string) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	if err := repo.table(ctx).
		Where("name = ?", name).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by name", repo.variant)
	}

	return toCatalogDomain(&entryM), nil
}

// Save upserts the entry by identity and writes the generated ID back onto
// the entity on first save.
func (repo *catalogRepository) Save(ctx context.Context, entry *entity.CatalogEntry) error {
	entryM := fromCatalogDomain(entry)

	if err := repo.table(ctx).Save(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateName
		}

		return errors.Wrapf(err, "failed to save %s", repo.variant)
	}

	entry.ID = entryM.ID

	return nil
}

// Delete removes the entry by identity.
func (repo *catalogRepository) Delete(ctx context.Context, entry *entity.CatalogEntry) error {
	result := repo.table(ctx).
		Where("id = ?", entry.ID).
		Delete(&model.CatalogEntryModel{})

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s", repo.variant)
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCatalogDomain converts a GORM CatalogEntryModel to a domain CatalogEntry entity.
func toCatalogDomain(data *model.CatalogEntryModel) *entity.CatalogEntry {
	if data == nil {
		return nil
	}

	return &entity.CatalogEntry{
		ID:          data.ID,
		Type:        entity.CharacterType(data.Type),
		Name:        data.Name,
		Description: data.Description,
	}
}

// fromCatalogDomain converts a domain CatalogEntry entity to a GORM CatalogEntryModel.
func fromCatalogDomain(data *entity.CatalogEntry) *model.CatalogEntryModel {
	if data == nil {
		return nil
	}

	return &model.CatalogEntryModel{
		ID:          data.ID,
		Type:        data.Type.String(),
		Name:        data.Name,
		Description: data.Description,
	}
}
