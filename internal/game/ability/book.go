package ability

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/config"
)

// Element flavours the elemental spells.
type Element string

const (
	Ice  Element = "Ice"
	Fire Element = "Fire"
	Air  Element = "Air"
)

// Elements returns every element in roster order.
func Elements() []Element { return []Element{Ice, Fire, Air} }

const (
	nameWeaponAttack   = "Weapon Attack"
	nameHeavyAttack    = "Heavy Attack"
	nameWhirlwind      = "Whirlwind"
	nameFocusedShot    = "Focused Shot"
	nameSprayOfArrows  = "Spray of Arrows"
	nameElementalBolt  = "Elemental Bolt"
	nameElementalBlast = "Elemental Blast"
	nameFocusedHeal    = "Focused Heal"
	nameGroupHeal      = "Group Heal"

	phraseBlast       = "Ignis Maxima"
	phraseBolt        = "Fulmen Minor"
	phraseGroupHeal   = "Sanctus Omnis"
	phraseFocusedHeal = "Sanctus Unus"
)

// Book mints the nine ability kinds with the configured costs and multipliers.
type Book struct {
	costs            config.CostConfig
	singleMultiplier int
	groupTargets     int
}

// NewBook returns a Book reading costs, the single-target multiplier and the
// group target count from cfg.
func NewBook(cfg config.CombatConfig) *Book {
	return &Book{
		costs:            cfg.Costs,
		singleMultiplier: cfg.SingleTargetMultiplier,
		groupTargets:     cfg.GroupTargets,
	}
}

func (b *Book) single(name string, ap, energy int, magic, heal bool) Ability {
	return Ability{name: name, apCost: ap, energyCost: energy, reach: Single, targets: 1,
		multiplier: b.singleMultiplier, magic: magic, heal: heal}
}

func (b *Book) group(name string, ap, energy int, magic, heal bool) Ability {
	return Ability{name: name, apCost: ap, energyCost: energy, reach: Group, targets: b.groupTargets,
		multiplier: 1, magic: magic, heal: heal}
}

// WeaponAttack is the cheapest physical single-target strike. It costs no energy.
func (b *Book) WeaponAttack() Ability {
	return b.single(nameWeaponAttack, b.costs.LowestAP, 0, false, false)
}

// HeavyAttack is a physical single-target strike.
func (b *Book) HeavyAttack() Ability {
	return b.single(nameHeavyAttack, b.costs.MediumAP, b.costs.LowEnergy, false, false)
}

// Whirlwind is a physical group strike.
func (b *Book) Whirlwind() Ability {
	return b.group(nameWhirlwind, b.costs.HighestAP, b.costs.HighEnergy, false, false)
}

// FocusedShot is a physical single-target shot.
func (b *Book) FocusedShot() Ability {
	return b.single(nameFocusedShot, b.costs.MediumAP, b.costs.LowEnergy, false, false)
}

// SprayOfArrows is a physical group volley.
func (b *Book) SprayOfArrows() Ability {
	return b.group(nameSprayOfArrows, b.costs.HighestAP, b.costs.HighEnergy, false, false)
}

// ElementalBolt is a magic single-target spell.
func (b *Book) ElementalBolt(e Element) Ability {
	return b.single(fmt.Sprintf("%s: %s %s", phraseBolt, e, nameElementalBolt),
		b.costs.MediumAP, b.costs.LowEnergy, true, false)
}

// ElementalBlast is a magic group spell.
func (b *Book) ElementalBlast(e Element) Ability {
	return b.group(fmt.Sprintf("%s: %s %s", phraseBlast, e, nameElementalBlast),
		b.costs.HighestAP, b.costs.HighEnergy, true, false)
}

// FocusedHeal restores one ally.
func (b *Book) FocusedHeal() Ability {
	return b.single(fmt.Sprintf("%s: %s", phraseFocusedHeal, nameFocusedHeal),
		b.costs.MediumAP, b.costs.LowEnergy, true, true)
}

// GroupHeal restores several allies.
func (b *Book) GroupHeal() Ability {
	return b.group(fmt.Sprintf("%s: %s", phraseGroupHeal, nameGroupHeal),
		b.costs.HighestAP, b.costs.HighEnergy, true, true)
}

// WarriorSet returns the warrior abilities.
func (b *Book) WarriorSet() []Ability {
	return []Ability{b.HeavyAttack(), b.Whirlwind(), b.WeaponAttack()}
}

// RangerSet returns the ranger abilities.
func (b *Book) RangerSet() []Ability {
	return []Ability{b.FocusedShot(), b.SprayOfArrows(), b.WeaponAttack()}
}

// MageSet returns a blast and a bolt of every element plus a weapon attack.
func (b *Book) MageSet() []Ability {
	var set []Ability
	for _, e := range Elements() {
		set = append(set, b.ElementalBlast(e))
	}
	for _, e := range Elements() {
		set = append(set, b.ElementalBolt(e))
	}
	return append(set, b.WeaponAttack())
}

// ClericSet returns the cleric abilities.
func (b *Book) ClericSet() []Ability {
	return []Ability{b.FocusedHeal(), b.GroupHeal(), b.WeaponAttack()}
}

// LichLordSet returns the boss abilities.
func (b *Book) LichLordSet() []Ability {
	return []Ability{
		b.HeavyAttack(),
		b.Whirlwind(),
		b.FocusedHeal(),
		b.ElementalBolt(Fire),
		b.ElementalBlast(Fire),
		b.WeaponAttack(),
	}
}
