package combat

import (
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// RollInitiative rolls initiative for every character and returns them as
// combatants sorted highest first. Ties keep input order.
// Formula: expr + Attack Rate.
//
// Precondition: rng must be non-nil.
// Postcondition: len(result) == len(chars).
func RollInitiative(chars []*character.Character, expr dice.Expression, rng Randomizer) []*Combatant {
	out := make([]*Combatant, 0, len(chars))
	for _, c := range chars {
		out = append(out, &Combatant{
			Character:  c,
			Initiative: rng.Roll(expr).Total() + c.AttackRate(),
		})
	}
	sortByInitiativeDesc(out)
	return out
}

// sortByInitiativeDesc sorts combatants in place, highest initiative first.
func sortByInitiativeDesc(combatants []*Combatant) {
	n := len(combatants)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && combatants[j].Initiative > combatants[j-1].Initiative; j-- {
			combatants[j], combatants[j-1] = combatants[j-1], combatants[j]
		}
	}
}
