package postgres

import (
	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every table the service
// owns. The four catalog tables share one model, so each is migrated under
// its own name.
func AutoMigrate(db *gorm.DB) error {
	for _, variant := range []entity.Variant{
		entity.VariantCharacter,
		entity.VariantAddon,
		entity.VariantItem,
		entity.VariantPerk,
	} {
		if err := db.Table(variant.TableName()).AutoMigrate(&model.CatalogEntryModel{}); err != nil {
			return errors.Wrapf(err, "failed to migrate %s table", variant.TableName())
		}
	}

	if err := db.AutoMigrate(
		&model.KillerModel{},
		&model.KillerAddonModel{},
		&model.KillerPerkModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate killer tables")
	}

	return nil
}
