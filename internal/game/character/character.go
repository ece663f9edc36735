// Package character models the combatants of an encounter: their stats,
// equipment and abilities, the per-turn ability loop, and damage and healing.
package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/ability"
	"github.com/cory-johannsen/skirmish/internal/game/gear"
	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

// Side is the party a character fights for.
type Side int

const (
	Heroes Side = iota
	Enemies
)

// String returns "hero" or "enemy".
func (s Side) String() string {
	if s == Heroes {
		return "hero"
	}
	return "enemy"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Heroes {
		return Enemies
	}
	return Heroes
}

func (s Side) turnLabel() string {
	if s == Heroes {
		return "HERO"
	}
	return "ENEMY"
}

// Randomizer draws the abilities of a turn.
type Randomizer interface {
	UniformInt(maxInclusive int) int
}

// ScalingFrom extracts the stat seeding constants from cfg.
func ScalingFrom(cfg config.CombatConfig) stats.Scaling {
	return stats.Scaling{
		AttributePerPoint: cfg.AttributePerPoint,
		CombatMultiplier:  cfg.CombatStatMultiplier,
		Vitality:          cfg.TraitBase.Vitality,
		Energy:            cfg.TraitBase.Energy,
		AttackRate:        cfg.TraitBase.AttackRate,
		DefenceRate:       cfg.TraitBase.DefenceRate,
	}
}

// Params describes a character before equipment is added.
type Params struct {
	Name           string
	Side           Side
	Kind           Kind
	Points         []int
	Scaling        stats.Scaling
	Abilities      []ability.Ability
	ActionsPerTurn int
}

// Character is one combatant.
//
// Invariant: the stat registry and the equipment are owned by this character
// alone and are only mutated through its methods.
type Character struct {
	id             uuid.UUID
	name           string
	side           Side
	kind           Kind
	stats          *stats.Registry
	equipment      *Equipment
	abilities      []ability.Ability
	actionsPerTurn int
}

// New builds an unequipped character.
//
// Precondition: p.Name must be non-empty and p.ActionsPerTurn >= 0.
// Postcondition: Returns a Character with a fresh ID, or an error if the
// stat registry cannot be built.
func New(p Params) (*Character, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("character: New: name must not be empty")
	}
	if p.ActionsPerTurn < 0 {
		return nil, fmt.Errorf("character: New(%q): actions per turn must be >= 0", p.Name)
	}
	reg, err := stats.NewRegistry(p.Points, p.Scaling)
	if err != nil {
		return nil, fmt.Errorf("character: New(%q): %w", p.Name, err)
	}
	return &Character{
		id:             uuid.New(),
		name:           p.Name,
		side:           p.Side,
		kind:           p.Kind,
		stats:          reg,
		equipment:      NewEquipment(),
		abilities:      append([]ability.Ability(nil), p.Abilities...),
		actionsPerTurn: p.ActionsPerTurn,
	}, nil
}

// ID returns the unique combatant ID.
func (c *Character) ID() uuid.UUID { return c.id }

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// Side returns the party the character fights for.
func (c *Character) Side() Side { return c.side }

// Kind returns the roster kind.
func (c *Character) Kind() Kind { return c.kind }

// Abilities returns a copy of the ability list.
func (c *Character) Abilities() []ability.Ability {
	return append([]ability.Ability(nil), c.abilities...)
}

// ActionPoints returns the current action points.
func (c *Character) ActionPoints() int { return c.stats.CurrentActionPoints() }

// HitPoints returns the current vitality.
func (c *Character) HitPoints() int { return c.stats.CurrentHitPoints() }

// MaxHitPoints returns vitality before combat events.
func (c *Character) MaxHitPoints() int { return c.stats.TotalHitPoints() }

// Energy returns the current energy.
func (c *Character) Energy() int { return c.stats.CurrentEnergy() }

// AttackRate returns the current attack rate.
func (c *Character) AttackRate() int { return c.stats.AttackRate() }

// StatValue returns the modified value of the named stat, or 0 if unknown.
func (c *Character) StatValue(name string) int { return c.stats.Value(name) }

// Weapons returns the held weapons.
func (c *Character) Weapons() []*gear.Item { return c.equipment.Weapons() }

// ArmorPieces returns the held armor.
func (c *Character) ArmorPieces() []*gear.Item { return c.equipment.ArmorPieces() }

// IsDead reports whether vitality has reached zero or below.
func (c *Character) IsDead() bool { return c.stats.CurrentHitPoints() <= 0 }

// TurnInfo renders the header line of a turn.
func (c *Character) TurnInfo() string {
	return fmt.Sprintf("[%s TURN] %s | %d AP | %d HP | %d Energy",
		c.side.turnLabel(), c.name, c.ActionPoints(), c.HitPoints(), c.Energy())
}

// String returns the display name.
func (c *Character) String() string { return c.name }

// TurnSummary records what a single turn did.
type TurnSummary struct {
	// Drawn is the number of abilities drawn.
	Drawn int
	// Executed counts abilities that ran and were paid for.
	Executed int
	// Skipped counts unaffordable draws.
	Skipped int
	// Aborted is true when an offensive ability found no target and ended the turn.
	Aborted bool
}

// TakeTurn draws the turn's abilities and executes them in draw order.
//
// Unaffordable draws are skipped. A heal always continues the turn; an
// offensive ability that finds no target ends it. Costs are debited only
// after an ability executes. Nothing is rolled back.
//
// Precondition: r and rng must be non-nil.
func (c *Character) TakeTurn(targetEnemies bool, r ability.Resolver, rng Randomizer) TurnSummary {
	var sum TurnSummary
	if len(c.abilities) == 0 {
		return sum
	}
	attackRate := c.stats.AttackRate()
	physical := c.stats.PhysicalPower() + attackRate + c.equipment.TotalWeaponDamage()
	magic := c.stats.MagicPower() + attackRate
	healing := c.stats.HealingPower() + attackRate

	drawn := make([]ability.Ability, c.actionsPerTurn)
	for i := range drawn {
		drawn[i] = c.abilities[rng.UniformInt(len(c.abilities)-1)]
	}
	sum.Drawn = len(drawn)

	for _, ab := range drawn {
		if ab.ActionPointCost() > c.stats.CurrentActionPoints() || ab.EnergyCost() > c.stats.CurrentEnergy() {
			sum.Skipped++
			continue
		}
		switch {
		case ab.IsHeal():
			ab.Execute(healing, targetEnemies, r)
		case ab.IsMagic():
			if !ab.Execute(magic, targetEnemies, r) {
				sum.Aborted = true
			}
		default:
			if !ab.Execute(physical, targetEnemies, r) {
				sum.Aborted = true
			}
		}
		if sum.Aborted {
			break
		}
		c.stats.AdjustEnergy(-ab.EnergyCost())
		c.stats.AdjustActionPoints(-ab.ActionPointCost())
		sum.Executed++
	}
	return sum
}

// ApplyDamage subtracts raw minus defence from vitality, never less than zero.
// Armor protection counts only against non-magical hits.
//
// Postcondition: absorbed + applied == raw and applied >= 0.
func (c *Character) ApplyDamage(raw int, magical bool) (absorbed, applied int) {
	defence := c.stats.DefenceRate()
	if !magical {
		defence += c.equipment.TotalArmorProtection()
	}
	applied = max(raw-defence, 0)
	c.stats.AdjustHitPoints(-applied)
	return raw - applied, applied
}

// ApplyHealing adds amount to vitality without a ceiling and returns the new vitality.
func (c *Character) ApplyHealing(amount int) int {
	c.stats.AdjustHitPoints(amount)
	return c.stats.CurrentHitPoints()
}

// RoundReset restores action points and energy at the start of a round.
func (c *Character) RoundReset() {
	c.stats.ResetActionPoints()
	c.stats.ResetEnergy()
}

// RestoreHero clears every resource stat back to its maximum between waves.
func (c *Character) RestoreHero() {
	c.stats.ResetActionPoints()
	c.stats.ResetHitPoints()
	c.stats.ResetEnergy()
}
