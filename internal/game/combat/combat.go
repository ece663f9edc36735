// Package combat drives an encounter: heroes against one or more enemy waves,
// fought in rounds of initiative-ordered turns until one side is wiped or the
// round limit is reached.
package combat

import (
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// Outcome is how a wave or an encounter ended.
type Outcome string

const (
	OutcomeHeroes    Outcome = "heroes"
	OutcomeEnemies   Outcome = "enemies"
	OutcomeStalemate Outcome = "stalemate"
)

// String returns the outcome label.
func (o Outcome) String() string { return string(o) }

// Randomizer is the randomness an encounter needs: initiative rolls and
// uniform draws for targets and abilities.
type Randomizer interface {
	UniformInt(maxInclusive int) int
	Roll(expr dice.Expression) dice.RollResult
}

// Hooks receives encounter lifecycle callbacks. *scripting.Manager satisfies it.
type Hooks interface {
	OnRoundStart(wave, round int)
	OnDeath(name, side string)
	OnWaveEnd(wave int, outcome string)
}

// NopHooks ignores every callback.
type NopHooks struct{}

func (NopHooks) OnRoundStart(int, int) {}
func (NopHooks) OnDeath(string, string) {}
func (NopHooks) OnWaveEnd(int, string) {}

// Combatant pairs a character with its initiative for the current wave.
type Combatant struct {
	*character.Character
	Initiative int
}

// Result summarizes a finished encounter.
type Result struct {
	Outcome Outcome
	// Rounds is the number of rounds fought across all waves.
	Rounds int
	// WavesCleared counts the waves the heroes wiped out.
	WavesCleared int
	// Survivors lists every living character when the encounter ended.
	Survivors []*character.Character
}
