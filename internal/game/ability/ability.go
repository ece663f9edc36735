// Package ability defines the immutable action descriptors characters choose
// from each turn and the hand-off to the turn resolver that applies them.
package ability

//go:generate mockgen -destination=mock/mock_resolver.go -package=abilitymock github.com/cory-johannsen/skirmish/internal/game/ability Resolver

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

// Request is what an executed ability asks the resolver to apply.
type Request struct {
	// Description is "<name> (-<ap> AP, -<energy> Energy)".
	Description string
	// Targets is the maximum number of characters affected.
	Targets int
	// Magnitude is damage, or negative healing for heal requests.
	Magnitude int
	// TargetEnemies selects the actor's opponents; false selects the actor's own side.
	TargetEnemies bool
	Magic         bool
	Heal          bool
}

// Resolver locates targets for a Request and applies it.
type Resolver interface {
	// Resolve applies req and reports whether at least one eligible target existed.
	Resolve(req Request) bool
}

// Reach distinguishes single-target from group abilities.
type Reach int

const (
	Single Reach = iota
	Group
)

// Ability is a stateless, shareable action descriptor.
type Ability struct {
	name       string
	apCost     int
	energyCost int
	reach      Reach
	targets    int
	multiplier int
	magic      bool
	heal       bool
}

// Name returns the display name.
func (a Ability) Name() string { return a.name }

// ActionPointCost returns the action points debited after a successful execution.
func (a Ability) ActionPointCost() int { return a.apCost }

// EnergyCost returns the energy debited after a successful execution.
func (a Ability) EnergyCost() int { return a.energyCost }

// Reach reports whether the ability strikes one target or a group.
func (a Ability) Reach() Reach { return a.reach }

// Targets returns the maximum number of characters the ability affects.
func (a Ability) Targets() int { return a.targets }

// IsMagic reports whether the ability bypasses armor protection.
func (a Ability) IsMagic() bool { return a.magic }

// IsHeal reports whether the ability restores vitality on the caster's side.
func (a Ability) IsHeal() bool { return a.heal }

// Description returns the ability name with its costs, as shown in the combat log.
func (a Ability) Description() string {
	return fmt.Sprintf("%s (-%d AP, -%d %s)", a.name, a.apCost, a.energyCost, stats.Energy)
}

// String returns the display name.
func (a Ability) String() string { return a.name }

// Execute computes the effect magnitude and hands it to r.
//
// Single-target abilities multiply basePower by the single-target multiplier;
// group abilities pass it unchanged. Heals negate the magnitude and always
// target the caster's own side regardless of targetEnemies.
//
// Precondition: r must be non-nil.
// Postcondition: Returns exactly the value r.Resolve returned.
func (a Ability) Execute(basePower int, targetEnemies bool, r Resolver) bool {
	power := basePower
	if a.reach == Single {
		power *= a.multiplier
	}
	if a.heal {
		power = -power
		targetEnemies = false
	}
	return r.Resolve(Request{
		Description:   a.Description(),
		Targets:       a.targets,
		Magnitude:     power,
		TargetEnemies: targetEnemies,
		Magic:         a.magic,
		Heal:          a.heal,
	})
}
