package character

import "github.com/cory-johannsen/skirmish/internal/game/gear"

const (
	// WeaponSlots is the number of one-handed weapons a character can hold.
	WeaponSlots = 2
	// ArmorSlots is the number of distinct armor slot types a character can fill.
	ArmorSlots = 5
)

// Equipment holds the weapons and armor of exactly one character.
//
// Invariant: either one two-handed weapon or at most WeaponSlots one-handed
// weapons; at most one armor piece per slot type and at most ArmorSlots types.
type Equipment struct {
	weapons   []*gear.Item
	armor     map[string]*gear.Item
	armorSlot []string
}

// NewEquipment returns empty Equipment.
func NewEquipment() *Equipment {
	return &Equipment{armor: make(map[string]*gear.Item, ArmorSlots)}
}

// EmptyWeaponSlots returns 0 when a two-handed weapon is held, otherwise the free slot count.
func (e *Equipment) EmptyWeaponSlots() int {
	for _, w := range e.weapons {
		if w.IsTwoHanded() {
			return 0
		}
	}
	return WeaponSlots - len(e.weapons)
}

// EmptyArmorSlots returns the number of unoccupied armor slot types.
func (e *Equipment) EmptyArmorSlots() int {
	return ArmorSlots - len(e.armor)
}

// AddWeapon equips w.
//
// Postcondition: Returns true iff w was added. A two-handed weapon needs both
// slots free; a one-handed weapon needs one.
func (e *Equipment) AddWeapon(w *gear.Item) bool {
	empty := e.EmptyWeaponSlots()
	if (empty == WeaponSlots && w.IsTwoHanded()) || (empty != 0 && !w.IsTwoHanded()) {
		e.weapons = append(e.weapons, w)
		return true
	}
	return false
}

// AddArmorPiece equips a in slot.
//
// Postcondition: Returns true iff slot was unoccupied and a free slot type remained.
func (e *Equipment) AddArmorPiece(slot string, a *gear.Item) bool {
	if e.EmptyArmorSlots() == 0 {
		return false
	}
	if _, taken := e.armor[slot]; taken {
		return false
	}
	e.armor[slot] = a
	e.armorSlot = append(e.armorSlot, slot)
	return true
}

// Weapons returns the held weapons in equip order.
func (e *Equipment) Weapons() []*gear.Item {
	return append([]*gear.Item(nil), e.weapons...)
}

// ArmorPieces returns the held armor in equip order.
func (e *Equipment) ArmorPieces() []*gear.Item {
	out := make([]*gear.Item, 0, len(e.armorSlot))
	for _, slot := range e.armorSlot {
		out = append(out, e.armor[slot])
	}
	return out
}

// TotalWeaponDamage sums the damage of every held weapon.
func (e *Equipment) TotalWeaponDamage() int {
	total := 0
	for _, w := range e.weapons {
		total += w.Damage()
	}
	return total
}

// TotalArmorProtection sums the protection of every held armor piece.
func (e *Equipment) TotalArmorProtection() int {
	total := 0
	for _, a := range e.armor {
		total += a.Protection()
	}
	return total
}
