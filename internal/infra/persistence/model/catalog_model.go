// Package model holds the GORM-specific structs that map domain entities
// onto database tables.
package model

// CatalogEntryModel is the GORM-specific struct shared by the four catalog
// tables (characters, addons, items, perks). The tables are structurally
// identical; the repository selects the table explicitly, so this model
// carries no TableName method.
type CatalogEntryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Type        string `gorm:"type:varchar(16);not null;index"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `gorm:"type:text;not null"`
}
