package entity

// Killer is the persisted killer record: its identity and intrinsic scores
// only. Addon and perk selections are never part of the stored record; they
// live on KillerLoadout and are recomputed per use.
type Killer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PowerName string `json:"powerName"`
	AxisScores
}

// NewKiller constructs an unsaved killer record. The store assigns the ID.
func NewKiller(name, powerName string, scores AxisScores) *Killer {
	return &Killer{
		Name:       name,
		PowerName:  powerName,
		AxisScores: scores,
	}
}

// KillerLoadout is the in-memory composite view of a killer: the persisted
// record plus up to two addon slots and four perk slots. A loadout is
// assembled by whoever needs the composite view and is never persisted as
// one unit. The slot families are distinct types, so an addon can never
// occupy a perk slot or the other way around.
type KillerLoadout struct {
	Killer    *Killer      `json:"killer"`
	AddonOne  *KillerAddon `json:"addonOne,omitempty"`
	AddonTwo  *KillerAddon `json:"addonTwo,omitempty"`
	PerkOne   *KillerPerk  `json:"perkOne,omitempty"`
	PerkTwo   *KillerPerk  `json:"perkTwo,omitempty"`
	PerkThree *KillerPerk  `json:"perkThree,omitempty"`
	PerkFour  *KillerPerk  `json:"perkFour,omitempty"`
}

// NewKillerLoadout wraps a killer record with empty slots. Slots are filled
// by the caller after construction.
func NewKillerLoadout(killer *Killer) *KillerLoadout {
	return &KillerLoadout{Killer: killer}
}

// Addons returns the filled addon slots in order.
func (l *KillerLoadout) Addons() []*KillerAddon {
	addons := make([]*KillerAddon, 0, 2)
	for _, addon := range []*KillerAddon{l.AddonOne, l.AddonTwo} {
		if addon != nil {
			addons = append(addons, addon)
		}
	}

	return addons
}

// Perks returns the filled perk slots in order.
func (l *KillerLoadout) Perks() []*KillerPerk {
	perks := make([]*KillerPerk, 0, 4)
	for _, perk := range []*KillerPerk{l.PerkOne, l.PerkTwo, l.PerkThree, l.PerkFour} {
		if perk != nil {
			perks = append(perks, perk)
		}
	}

	return perks
}
