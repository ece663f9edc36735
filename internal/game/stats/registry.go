package stats

import (
	"fmt"
	"strings"
)

// Scaling holds the constants a Registry is seeded from.
type Scaling struct {
	// AttributePerPoint converts one attribute point into base value.
	AttributePerPoint int
	// CombatMultiplier is the k applied to both inputs of a combat stat.
	CombatMultiplier float64
	// Trait seeds, in trait axis order.
	Vitality    int
	Energy      int
	AttackRate  int
	DefenceRate int
}

// Registry owns the complete named stat set of one character.
//
// Invariant: names are unique; iteration order is attribute, trait, combat stat
// per axis. Every combat stat relies on its axis attribute and on Attack Rate.
type Registry struct {
	order []*Stat
	byKey map[string]*Stat
}

// NewRegistry builds the twelve stats from per-axis attribute points.
//
// Precondition: len(points) == Axes.
// Postcondition: Returns a Registry holding every attribute, trait and combat stat name.
func NewRegistry(points []int, sc Scaling) (*Registry, error) {
	if len(points) != Axes {
		return nil, fmt.Errorf("stats: NewRegistry: expected %d attribute points, got %d", Axes, len(points))
	}

	seeds := [Axes]int{sc.Vitality, sc.Energy, sc.AttackRate, sc.DefenceRate}
	traits := make([]*Stat, Axes)
	for i, name := range traitNames {
		traits[i] = NewStat(name, seeds[i])
	}
	attackRate := traits[2]

	r := &Registry{byKey: make(map[string]*Stat, 3*Axes)}
	for i := 0; i < Axes; i++ {
		attr := NewStat(attributeNames[i], points[i]*sc.AttributePerPoint)
		combat := NewDerived(combatStatNames[i], attr, attackRate, sc.CombatMultiplier)
		r.add(attr)
		r.add(traits[i])
		r.add(combat)
	}
	return r, nil
}

func (r *Registry) add(s *Stat) {
	r.order = append(r.order, s)
	r.byKey[s.Name()] = s
}

// Get returns the stat registered under name.
//
// Postcondition: ok is false iff name is not a registered stat.
func (r *Registry) Get(name string) (*Stat, bool) {
	s, ok := r.byKey[name]
	return s, ok
}

// Value returns the modified value of name, or 0 when name is unknown.
func (r *Registry) Value(name string) int {
	if s, ok := r.byKey[name]; ok {
		return s.ModifiedValue()
	}
	return 0
}

// All returns the stats in insertion order.
func (r *Registry) All() []*Stat {
	return append([]*Stat(nil), r.order...)
}

// AdjustStatic adds delta to the static modifier of name.
//
// Postcondition: Returns an error iff name is unknown; no stat changes in that case.
func (r *Registry) AdjustStatic(name string, delta int) error {
	s, ok := r.byKey[name]
	if !ok {
		return fmt.Errorf("stats: Registry.AdjustStatic: unknown stat %q", name)
	}
	s.AdjustStatic(delta)
	return nil
}

// AdjustDynamic adds delta to the dynamic modifier of name.
//
// Postcondition: Returns an error iff name is unknown; no stat changes in that case.
func (r *Registry) AdjustDynamic(name string, delta int) error {
	s, ok := r.byKey[name]
	if !ok {
		return fmt.Errorf("stats: Registry.AdjustDynamic: unknown stat %q", name)
	}
	s.AdjustDynamic(delta)
	return nil
}

func (r *Registry) must(name string) *Stat {
	s, ok := r.byKey[name]
	if !ok {
		panic("stats: registry missing built-in stat " + name)
	}
	return s
}

// CurrentActionPoints returns the modified Action Points value.
func (r *Registry) CurrentActionPoints() int { return r.must(ActionPoints).ModifiedValue() }

// TotalActionPoints returns Action Points before combat events.
func (r *Registry) TotalActionPoints() int { return r.must(ActionPoints).MaxValue() }

// CurrentHitPoints returns the modified Vitality value.
func (r *Registry) CurrentHitPoints() int { return r.must(Vitality).ModifiedValue() }

// TotalHitPoints returns Vitality before combat events.
func (r *Registry) TotalHitPoints() int { return r.must(Vitality).MaxValue() }

// CurrentEnergy returns the modified Energy value.
func (r *Registry) CurrentEnergy() int { return r.must(Energy).ModifiedValue() }

// TotalEnergy returns Energy before combat events.
func (r *Registry) TotalEnergy() int { return r.must(Energy).MaxValue() }

// AttackRate returns the modified Attack Rate.
func (r *Registry) AttackRate() int { return r.must(AttackRate).ModifiedValue() }

// DefenceRate returns the modified Defence Rate.
func (r *Registry) DefenceRate() int { return r.must(DefenceRate).ModifiedValue() }

// PhysicalPower returns the modified Physical Power.
func (r *Registry) PhysicalPower() int { return r.must(PhysicalPower).ModifiedValue() }

// MagicPower returns the modified Magic Power.
func (r *Registry) MagicPower() int { return r.must(MagicPower).ModifiedValue() }

// HealingPower returns the modified Healing Power.
func (r *Registry) HealingPower() int { return r.must(HealingPower).ModifiedValue() }

// AdjustActionPoints adds delta to the Action Points dynamic modifier.
func (r *Registry) AdjustActionPoints(delta int) { r.must(ActionPoints).AdjustDynamic(delta) }

// AdjustHitPoints adds delta to the Vitality dynamic modifier.
func (r *Registry) AdjustHitPoints(delta int) { r.must(Vitality).AdjustDynamic(delta) }

// AdjustEnergy adds delta to the Energy dynamic modifier.
func (r *Registry) AdjustEnergy(delta int) { r.must(Energy).AdjustDynamic(delta) }

// ResetActionPoints zeroes the Action Points dynamic modifier.
func (r *Registry) ResetActionPoints() { r.must(ActionPoints).ResetDynamic() }

// ResetHitPoints zeroes the Vitality dynamic modifier.
func (r *Registry) ResetHitPoints() { r.must(Vitality).ResetDynamic() }

// ResetEnergy zeroes the Energy dynamic modifier.
func (r *Registry) ResetEnergy() { r.must(Energy).ResetDynamic() }

// String renders one line per axis: attribute | trait | combat stat.
func (r *Registry) String() string {
	var b strings.Builder
	for i := 0; i+2 < len(r.order); i += 3 {
		fmt.Fprintf(&b, "%s | %s | %s\n", r.order[i], r.order[i+1], r.order[i+2])
	}
	return b.String()
}
