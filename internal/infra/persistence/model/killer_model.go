package model

// KillerModel is the GORM-specific struct for the 'killers' table. Only the
// intrinsic killer record is stored; loadout slot selections never have a
// column here.
type KillerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PowerName string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Early     int    `gorm:"not null"`
	Late      int    `gorm:"not null"`
	GenStop   int    `gorm:"not null"`
	Hunt      int    `gorm:"not null"`
	Camp      int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (KillerModel) TableName() string {
	return "killers"
}

// KillerAddonModel is the GORM-specific struct for the 'killer_addons' table.
type KillerAddonModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Early   int    `gorm:"not null"`
	Late    int    `gorm:"not null"`
	GenStop int    `gorm:"not null"`
	Hunt    int    `gorm:"not null"`
	Camp    int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (KillerAddonModel) TableName() string {
	return "killer_addons"
}

// KillerPerkModel is the GORM-specific struct for the 'killer_perks' table.
type KillerPerkModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Early   int    `gorm:"not null"`
	Late    int    `gorm:"not null"`
	GenStop int    `gorm:"not null"`
	Hunt    int    `gorm:"not null"`
	Camp    int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (KillerPerkModel) TableName() string {
	return "killer_perks"
}
