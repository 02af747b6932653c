package entity

// Variant identifies one of the four structurally identical catalog
// collections. The collections share one entry shape; the variant tag on a
// repository or service decides which collection it operates on.
type Variant string

const (
	// VariantCharacter is the playable-character collection.
	VariantCharacter Variant = "character"
	// VariantAddon is the addon collection.
	VariantAddon Variant = "addon"
	// VariantItem is the item collection.
	VariantItem Variant = "item"
	// VariantPerk is the perk collection.
	VariantPerk Variant = "perk"
)

// String returns the variant's display name, as used in client-facing
// messages ("A perk already exists with the name, ...").
func (v Variant) String() string {
	return string(v)
}

// TableName returns the storage table backing the variant's collection.
func (v Variant) TableName() string {
	switch v {
	case VariantCharacter:
		return "characters"
	case VariantAddon:
		return "addons"
	case VariantItem:
		return "items"
	case VariantPerk:
		return "perks"
	default:
		return ""
	}
}

// IsValid checks if the Variant is one of the four catalog collections.
func (v Variant) IsValid() bool {
	return v.TableName() != ""
}

// CatalogEntry is a named, typed, described game-reference record. The ID is
// assigned by the store on first save and immutable afterwards. Name is
// unique within the variant's collection; Description is optional.
type CatalogEntry struct {
	ID          int64         `json:"id"`
	Type        CharacterType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
}

// NewCatalogEntry constructs an unsaved entry. The store assigns the ID.
func NewCatalogEntry(characterType CharacterType, name, description string) *CatalogEntry {
	return &CatalogEntry{
		Type:        characterType,
		Name:        name,
		Description: description,
	}
}
