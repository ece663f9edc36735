package combat

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/ability"
	"github.com/cory-johannsen/skirmish/internal/game/character"
)

// turnResolver applies one actor's abilities to the encounter.
type turnResolver struct {
	enc   *Encounter
	actor *character.Character
}

// Resolve picks up to req.Targets distinct living characters on the requested
// side and applies the request to each.
//
// Postcondition: Returns false iff no living target exists.
func (r turnResolver) Resolve(req ability.Request) bool {
	side := r.actor.Side()
	if req.TargetEnemies {
		side = side.Opponent()
	}
	targets := r.enc.pickTargets(side, req.Targets)
	if len(targets) == 0 {
		return false
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	r.enc.sink.Attack(fmt.Sprintf("%s uses %s on %s", r.actor.Name(), req.Description, strings.Join(names, ", ")))

	for _, t := range targets {
		if req.Heal {
			hp := t.ApplyHealing(-req.Magnitude)
			r.enc.sink.Heal(fmt.Sprintf("%s heals %d HP (%d HP)", t.Name(), -req.Magnitude, hp))
			continue
		}
		absorbed, applied := t.ApplyDamage(req.Magnitude, req.Magic)
		r.enc.sink.Damage(fmt.Sprintf("%s takes %d damage (%d absorbed, %d HP)", t.Name(), applied, absorbed, t.HitPoints()))
		if t.IsDead() {
			r.enc.sink.Death(fmt.Sprintf("%s has been slain", t.Name()))
			r.enc.hooks.OnDeath(t.Name(), t.Side().String())
		}
	}
	return true
}

// pickTargets draws up to n distinct living characters of side uniformly.
func (e *Encounter) pickTargets(side character.Side, n int) []*character.Character {
	var pool []*character.Character
	for _, c := range e.order {
		if c.Side() == side && !c.IsDead() {
			pool = append(pool, c.Character)
		}
	}
	k := min(n, len(pool))
	for i := 0; i < k; i++ {
		j := i + e.rng.UniformInt(len(pool)-1-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
