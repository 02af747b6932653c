package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillerLoadout_SlotsStartEmpty(t *testing.T) {
	killer := NewKiller("The Hillbilly", "The Chainsaw", AxisScores{Hunt: 4})
	loadout := NewKillerLoadout(killer)

	assert.Equal(t, killer, loadout.Killer)
	assert.Empty(t, loadout.Addons())
	assert.Empty(t, loadout.Perks())
}

func TestKillerLoadout_FilledSlotsKeepOrder(t *testing.T) {
	loadout := NewKillerLoadout(NewKiller("The Hag", "Blackened Catalyst", AxisScores{}))

	first := &KillerAddon{ID: 1, Name: "Rusty Shackles"}
	second := &KillerAddon{ID: 2, Name: "Waterlogged Shoe"}
	loadout.AddonTwo = second
	loadout.AddonOne = first

	perk := &KillerPerk{ID: 9, Name: "Hex: Ruin"}
	loadout.PerkThree = perk

	assert.Equal(t, []*KillerAddon{first, second}, loadout.Addons())
	assert.Equal(t, []*KillerPerk{perk}, loadout.Perks())
}

// Empty slots must vanish from the serialized composite instead of
// rendering as nulls.
func TestKillerLoadout_EmptySlotsOmittedFromJSON(t *testing.T) {
	killer := NewKiller("The Hillbilly", "The Chainsaw", AxisScores{})
	killer.ID = 1
	loadout := NewKillerLoadout(killer)
	loadout.PerkOne = &KillerPerk{ID: 2, Name: "Hex: Ruin"}

	raw, err := json.Marshal(loadout)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "killer")
	assert.Contains(t, decoded, "perkOne")
	assert.NotContains(t, decoded, "addonOne")
	assert.NotContains(t, decoded, "addonTwo")
	assert.NotContains(t, decoded, "perkTwo")
}
