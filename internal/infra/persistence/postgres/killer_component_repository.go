package postgres

import (
	"context"

	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/domain/repository"
	"fogbuilds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// killerAddonRepository implements the repository.KillerAddonRepository interface.
type killerAddonRepository struct {
	db *gorm.DB
}

// NewKillerAddonRepository is the constructor for killerAddonRepository.
func NewKillerAddonRepository(db *gorm.DB) repository.KillerAddonRepository {
	return &killerAddonRepository{
		db: db,
	}
}

// FindAll retrieves every addon ordered by ID.
func (repo *killerAddonRepository) FindAll(ctx context.Context) ([]*entity.KillerAddon, error) {
	var addonModels []*model.KillerAddonModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&addonModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all killer addons")
	}

	addons := make([]*entity.KillerAddon, 0, len(addonModels))
	for _, addonM := range addonModels {
		addons = append(addons, toKillerAddonDomain(addonM))
	}

	return addons, nil
}

// FindUniqueByName retrieves the addon holding the given name.
func (repo *killerAddonRepository) FindUniqueByName(ctx context.Context, name string) (*entity.KillerAddon, error) {
	var addonM model.KillerAddonModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&addonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKillerAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to find killer addon by name")
	}

	return toKillerAddonDomain(&addonM), nil
}

// Save upserts the addon and writes the generated ID back onto the entity on
// first save.
func (repo *killerAddonRepository) Save(ctx context.Context, addon *entity.KillerAddon) error {
	addonM := fromKillerAddonDomain(addon)

	if err := repo.db.WithContext(ctx).Save(addonM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKillerAddon
		}

		return errors.Wrap(err, "failed to save killer addon")
	}

	addon.ID = addonM.ID

	return nil
}

// killerPerkRepository implements the repository.KillerPerkRepository interface.
type killerPerkRepository struct {
	db *gorm.DB
}

// NewKillerPerkRepository is the constructor for killerPerkRepository.
func NewKillerPerkRepository(db *gorm.DB) repository.KillerPerkRepository {
	return &killerPerkRepository{
		db: db,
	}
}

// FindAll retrieves every perk ordered by ID.
func (repo *killerPerkRepository) FindAll(ctx context.Context) ([]*entity.KillerPerk, error) {
	var perkModels []*model.KillerPerkModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all killer perks")
	}

	perks := make([]*entity.KillerPerk, 0, len(perkModels))
	for _, perkM := range perkModels {
		perks = append(perks, toKillerPerkDomain(perkM))
	}

	return perks, nil
}

// FindUniqueByName retrieves the perk holding the given name.
func (repo *killerPerkRepository) FindUniqueByName(ctx context.Context, name string) (*entity.KillerPerk, error) {
	var perkM model.KillerPerkModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&perkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKillerPerkNotFound
		}

		return nil, errors.Wrap(err, "failed to find killer perk by name")
	}

	return toKillerPerkDomain(&perkM), nil
}

// Save upserts the perk and writes the generated ID back onto the entity on
// first save.
func (repo *killerPerkRepository) Save(ctx context.Context, perk *entity.KillerPerk) error {
	perkM := fromKillerPerkDomain(perk)

	if err := repo.db.WithContext(ctx).Save(perkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKillerPerk
		}

		return errors.Wrap(err, "failed to save killer perk")
	}

	perk.ID = perkM.ID

	return nil
}

// --- Mapper Functions ---

func toKillerAddonDomain(data *model.KillerAddonModel) *entity.KillerAddon {
	if data == nil {
		return nil
	}

	return &entity.KillerAddon{
		ID:   data.ID,
		Name: data.Name,
		AxisScores: entity.AxisScores{
			Early:   data.Early,
			Late:    data.Late,
			GenStop: data.GenStop,
			Hunt:    data.Hunt,
			Camp:    data.Camp,
		},
	}
}

func fromKillerAddonDomain(data *entity.KillerAddon) *model.KillerAddonModel {
	if data == nil {
		return nil
	}

	return &model.KillerAddonModel{
		ID:      data.ID,
		Name:    data.Name,
		Early:   data.Early,
		Late:    data.Late,
		GenStop: data.GenStop,
		Hunt:    data.Hunt,
		Camp:    data.Camp,
	}
}

func toKillerPerkDomain(data *model.KillerPerkModel) *entity.KillerPerk {
	if data == nil {
		return nil
	}

	return &entity.KillerPerk{
		ID:   data.ID,
		Name: data.Name,
		AxisScores: entity.AxisScores{
			Early:   data.Early,
			Late:    data.Late,
			GenStop: data.GenStop,
			Hunt:    data.Hunt,
			Camp:    data.Camp,
		},
	}
}

func fromKillerPerkDomain(data *entity.KillerPerk) *model.KillerPerkModel {
	if data == nil {
		return nil
	}

	return &model.KillerPerkModel{
		ID:      data.ID,
		Name:    data.Name,
		Early:   data.Early,
		Late:    data.Late,
		GenStop: data.GenStop,
		Hunt:    data.Hunt,
		Camp:    data.Camp,
	}
}
