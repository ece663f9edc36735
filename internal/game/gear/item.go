// Package gear holds the weapon and armor catalog every character draws its
// equipment from. Items are built once at load time and shared read-only.
package gear

import (
	"fmt"
	"strings"
)

// Kind tags an Item as a weapon or an armor piece.
type Kind int

const (
	KindWeapon Kind = iota
	KindArmor
)

// String returns the lower-case kind label.
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	default:
		return "unknown"
	}
}

// Armor slot types. A character holds at most one piece per slot.
const (
	SlotHead  = "Head"
	SlotChest = "Chest"
	SlotHands = "Hands"
	SlotLegs  = "Legs"
	SlotFeet  = "Feet"
)

// ArmorSlots returns the five armor slot types in equip order.
func ArmorSlots() []string {
	return []string{SlotHead, SlotChest, SlotHands, SlotLegs, SlotFeet}
}

// Weapon types named by enemy loadouts.
const (
	TypeAxe      = "Axe"
	TypeSword    = "Sword"
	TypeShield   = "Shield"
	TypeBow      = "Bow"
	TypeCrossbow = "Crossbow"
	TypeStaff    = "Staff"
	TypeWand     = "Wand"
)

// twoHandedMarker identifies two-handed weapons in the wield field.
const twoHandedMarker = "Two Handed"

// Bonus is the one-off stat modifier an item grants its wearer.
type Bonus struct {
	Stat  string
	Value int
}

// Item is a weapon or an armor piece.
//
// Invariant: Item values are never mutated after the catalog is built.
type Item struct {
	Name        string
	Type        string
	Kind        Kind
	Restriction Restriction
	// Effect is damage for weapons and protection for armor.
	Effect int
	// Wield is set for weapons, Material for armor.
	Wield    string
	Material string
	Bonus    Bonus
}

// Damage returns the weapon damage, or 0 for armor.
func (i *Item) Damage() int {
	if i.Kind != KindWeapon {
		return 0
	}
	return i.Effect
}

// Protection returns the armor protection, or 0 for weapons.
func (i *Item) Protection() int {
	if i.Kind != KindArmor {
		return 0
	}
	return i.Effect
}

// IsTwoHanded reports whether the weapon fills both weapon slots.
func (i *Item) IsTwoHanded() bool {
	return i.Kind == KindWeapon && strings.Contains(i.Wield, twoHandedMarker)
}

// Allows reports whether archetype a may equip the item.
func (i *Item) Allows(a Archetype) bool {
	return i.Restriction.Allows(a)
}

// Detail returns the wield description of a weapon or the material of armor.
func (i *Item) Detail() string {
	if i.Kind == KindWeapon {
		return i.Wield
	}
	return i.Material
}

// String renders the item as "<name> of <bonus stat>".
func (i *Item) String() string {
	return fmt.Sprintf("%s of %s", i.Name, i.Bonus.Stat)
}
