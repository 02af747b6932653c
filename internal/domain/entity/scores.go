package entity

// AxisScores rates a killer, addon or perk on the five gameplay dimensions
// used when composing a build. Scores are consumer-supplied integers with
// no constrained sign or magnitude.
type AxisScores struct {
	// Early is the kill potential available right away.
	Early int `json:"early"`
	// Late is the kill potential gained as the game goes by.
	Late int `json:"late"`
	// GenStop is how much generator progress is slowed.
	GenStop int `json:"genStop"`
	// Hunt is how well survivors are hunted down.
	Hunt int `json:"hunt"`
	// Camp is how good camping hooks, gens and totems is.
	Camp int `json:"camp"`
}

// KillerAddon is a scored addon selectable into a killer loadout.
// Name is unique across all killer addons.
type KillerAddon struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	AxisScores
}

// KillerPerk is a scored perk selectable into a killer loadout.
// Name is unique across all killer perks.
type KillerPerk struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	AxisScores
}
