// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/pkg/errors"

// CharacterType discriminates which side of the game a catalog entry
// belongs to. Every catalog entry carries exactly one type.
type CharacterType string

const (
	// CharacterTypeKiller marks content usable by the killer side.
	CharacterTypeKiller CharacterType = "KILLER"
	// CharacterTypeSurvivor marks content usable by the survivor side.
	CharacterTypeSurvivor CharacterType = "SURVIVOR"
)

// ErrUnknownCharacterType is returned by ParseCharacterType for any token
// outside the closed set.
var ErrUnknownCharacterType = errors.New("unknown character type")

// ParseCharacterType parses a raw token into a CharacterType. Matching is
// exact and case-sensitive; anything but "KILLER" or "SURVIVOR" fails.
func ParseCharacterType(raw string) (CharacterType, error) {
	t := CharacterType(raw)
	if !t.IsValid() {
		return "", errors.Wrapf(ErrUnknownCharacterType, "%q", raw)
	}

	return t, nil
}

// String returns the string representation of the CharacterType.
func (t CharacterType) String() string {
	return string(t)
}

// IsValid checks if the CharacterType is a valid value.
func (t CharacterType) IsValid() bool {
	switch t {
	case CharacterTypeKiller, CharacterTypeSurvivor:
		return true
	default:
		return false
	}
}
