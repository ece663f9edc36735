package testutil

import (
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/gear"
)

// WeaponRecords is a small weapon list covering every archetype, one-handed
// and two-handed wields, and every enemy weapon type.
func WeaponRecords() []gear.Record {
	return []gear.Record{
		{Type: gear.TypeAxe, Name: "Battle Axe", Restriction: "Warrior", Wield: "Two Handed", Damage: "14"},
		{Type: gear.TypeSword, Name: "Longsword", Restriction: "Warrior,Cleric", Wield: "One Handed", Damage: "8"},
		{Type: gear.TypeShield, Name: "Buckler", Restriction: "Warrior,Ranger,Cleric", Wield: "One Handed", Damage: "2"},
		{Type: gear.TypeBow, Name: "Longbow", Restriction: "Ranger", Wield: "Two Handed", Damage: "13"},
		{Type: gear.TypeCrossbow, Name: "Hand Crossbow", Restriction: "Ranger", Wield: "One Handed", Damage: "6"},
		{Type: gear.TypeStaff, Name: "Oak Staff", Restriction: "Wizard,Cleric", Wield: "Two Handed", Damage: "9"},
		{Type: gear.TypeWand, Name: "Bone Wand", Restriction: "Wizard", Wield: "One Handed", Damage: "4"},
	}
}

// ArmorRecords returns one armor piece per slot for every archetype.
func ArmorRecords() []gear.Record {
	var recs []gear.Record
	for _, slot := range gear.ArmorSlots() {
		recs = append(recs,
			gear.Record{Type: slot, Name: "Plate " + slot, Restriction: "Warrior", Material: "Plate", Protection: "4"},
			gear.Record{Type: slot, Name: "Leather " + slot, Restriction: "Ranger,Cleric", Material: "Leather", Protection: "2"},
			gear.Record{Type: slot, Name: "Cloth " + slot, Restriction: "Wizard", Material: "Cloth", Protection: "1"},
		)
	}
	return recs
}

// T is the subset of *testing.T and *rapid.T the fixtures need.
type T interface {
	require.TestingT
	Helper()
}

// Catalog builds a catalog from WeaponRecords and ArmorRecords drawing from rng.
func Catalog(t T, rng gear.Randomizer) *gear.Catalog {
	t.Helper()
	cat, err := gear.Build(WeaponRecords(), ArmorRecords(), gear.BonusDice{
		Weapon: dice.MustParse("1d5"),
		Armor:  dice.MustParse("1d4"),
	}, rng)
	require.NoError(t, err)
	return cat
}
