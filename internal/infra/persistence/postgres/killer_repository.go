package postgres

import (
	"context"

	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/domain/repository"
	"fogbuilds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// killerRepository implements the repository.KillerRepository interface.
type killerRepository struct {
	db *gorm.DB
}

// NewKillerRepository is the constructor for killerRepository.
func NewKillerRepository(db *gorm.DB) repository.KillerRepository {
	return &killerRepository{
		db: db,
	}
}

// FindAll retrieves every killer record ordered by ID.
func (repo *killerRepository) FindAll(ctx context.Context) ([]*entity.Killer, error) {
	var killerModels []*model.KillerModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&killerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all killers")
	}

	killers := make([]*entity.Killer, 0, len(killerModels))
	for _, killerM := range killerModels {
		killers = append(killers, toKillerDomain(killerM))
	}

	return killers, nil
}

// FindByID retrieves a killer by its unique ID.
func (repo *killerRepository) FindByID(ctx context.Context, id int64) (*entity.Killer, error) {
	var killerM model.KillerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&killerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKillerNotFound
		}

		return nil, errors.Wrap(err, "failed to find killer by ID")
	}

	return toKillerDomain(&killerM), nil
}

// FindUniqueByName retrieves the killer holding the given name.
func (repo *killerRepository) FindUniqueByName(ctx context.Context, name string) (*entity.Killer, error) {
	var killerM model.KillerModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&killerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKillerNotFound
		}

		return nil, errors.Wrap(err, "failed to find killer by name")
	}

	return toKillerDomain(&killerM), nil
}

// FindUniqueByPowerName retrieves the killer holding the given power name.
func (repo *killerRepository) FindUniqueByPowerName(ctx context.Context, powerName string) (*entity.Killer, error) {
	var killerM model.KillerModel

	if err := repo.db.WithContext(ctx).
		Where("power_name = ?", powerName).
		First(&killerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKillerNotFound
		}

		return nil, errors.Wrap(err, "failed to find killer by power name")
	}

	return toKillerDomain(&killerM), nil
}

// Save upserts the killer by identity and writes the generated ID back onto
// the entity on first save.
func (repo *killerRepository) Save(ctx context.Context, killer *entity.Killer) error {
	killerM := fromKillerDomain(killer)

	if err := repo.db.WithContext(ctx).Save(killerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.classifyDuplicate(ctx, killer)
		}

		return errors.Wrap(err, "failed to save killer")
	}

	killer.ID = killerM.ID

	return nil
}

// classifyDuplicate decides which unique constraint fired. The translated
// driver error no longer names the column, so look up each natural key.
func (repo *killerRepository) classifyDuplicate(ctx context.Context, killer *entity.Killer) error {
	existing, err := repo.FindUniqueByName(ctx, killer.Name)
	if err == nil && existing.ID != killer.ID {
		return repository.ErrDuplicateKillerName
	}

	return repository.ErrDuplicatePowerName
}

// Delete removes the killer by identity.
func (repo *killerRepository) Delete(ctx context.Context, killer *entity.Killer) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", killer.ID).
		Delete(&model.KillerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete killer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrKillerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toKillerDomain converts a GORM KillerModel to a domain Killer entity.
func toKillerDomain(data *model.KillerModel) *entity.Killer {
	if data == nil {
		return nil
	}

	return &entity.Killer{
		ID:        data.ID,
		Name:      data.Name,
		PowerName: data.PowerName,
		AxisScores: entity.AxisScores{
			Early:   data.Early,
			Late:    data.Late,
			GenStop: data.GenStop,
			Hunt:    data.Hunt,
			Camp:    data.Camp,
		},
	}
}

// fromKillerDomain converts a domain Killer entity to a GORM KillerModel.
func fromKillerDomain(data *entity.Killer) *model.KillerModel {
	if data == nil {
		return nil
	}

	return &model.KillerModel{
		ID:        data.ID,
		Name:      data.Name,
		PowerName: data.PowerName,
		Early:     data.Early,
		Late:      data.Late,
		GenStop:   data.GenStop,
		Hunt:      data.Hunt,
		Camp:      data.Camp,
	}
}
