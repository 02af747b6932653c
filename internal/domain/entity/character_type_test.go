package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharacterType_AcceptsExactTokens(t *testing.T) {
	killer, err := ParseCharacterType("KILLER")
	require.NoError(t, err)
	assert.Equal(t, CharacterTypeKiller, killer)

	survivor, err := ParseCharacterType("SURVIVOR")
	require.NoError(t, err)
	assert.Equal(t, CharacterTypeSurvivor, survivor)
}

func TestParseCharacterType_RejectsEverythingElse(t *testing.T) {
	for _, token := range []string{"", "killer", "Killer", "SURVIVOR ", " KILLER", "DEMON"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseCharacterType(token)
			require.ErrorIs(t, err, ErrUnknownCharacterType)
		})
	}
}

func TestVariant_TableName(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{variant: VariantCharacter, want: "characters"},
		{variant: VariantAddon, want: "addons"},
		{variant: VariantItem, want: "items"},
		{variant: VariantPerk, want: "perks"},
		{variant: Variant("ghost"), want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.variant.TableName())
	}

	assert.False(t, Variant("ghost").IsValid())
	assert.True(t, VariantPerk.IsValid())
}
