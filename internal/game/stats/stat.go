// Package stats implements the layered numeric model behind every character:
// a stored or derived base value plus a static channel fed by gear and a
// dynamic channel fed by combat events.
package stats

import (
	"fmt"
	"math"
)

// Kind distinguishes how a Stat obtains its base value.
type Kind int

const (
	// KindStored stats keep the base value they were built with.
	KindStored Kind = iota
	// KindDerived stats recompute their base from an attribute and a trait on every read.
	KindDerived
)

// String returns the lower-case kind label.
func (k Kind) String() string {
	switch k {
	case KindStored:
		return "stored"
	case KindDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Stat is a single named quantity.
//
// Invariant: ModifiedValue() == Base() + StaticModifier() + DynamicModifier().
// The modified value may go negative; callers clamp where they need a count.
type Stat struct {
	name    string
	kind    Kind
	base    int
	static  int
	dynamic int

	// Derived-only inputs.
	attribute  *Stat
	trait      *Stat
	multiplier float64
}

// NewStat returns a stored Stat with the given immutable base value.
//
// Postcondition: both modifiers are zero.
func NewStat(name string, base int) *Stat {
	return &Stat{name: name, kind: KindStored, base: base}
}

// NewDerived returns a Stat whose base is round(k*attribute + k*trait),
// recomputed from the current modified values of its inputs on every read.
//
// Precondition: attribute and trait must be non-nil.
func NewDerived(name string, attribute, trait *Stat, k float64) *Stat {
	if attribute == nil || trait == nil {
		panic(fmt.Sprintf("stats: NewDerived(%q): attribute and trait must be non-nil", name))
	}
	return &Stat{name: name, kind: KindDerived, attribute: attribute, trait: trait, multiplier: k}
}

// Name returns the stat identity.
func (s *Stat) Name() string { return s.name }

// Kind reports whether the stat is stored or derived.
func (s *Stat) Kind() Kind { return s.kind }

// Base returns the unmodified value.
func (s *Stat) Base() int {
	if s.kind == KindDerived {
		a := float64(s.attribute.ModifiedValue()) * s.multiplier
		t := float64(s.trait.ModifiedValue()) * s.multiplier
		return roundHalfUp(a + t)
	}
	return s.base
}

// StaticModifier returns the accumulated gear modifier.
func (s *Stat) StaticModifier() int { return s.static }

// DynamicModifier returns the accumulated combat modifier.
func (s *Stat) DynamicModifier() int { return s.dynamic }

// TotalModifier returns StaticModifier() + DynamicModifier().
func (s *Stat) TotalModifier() int { return s.static + s.dynamic }

// ModifiedValue returns Base() + StaticModifier() + DynamicModifier().
func (s *Stat) ModifiedValue() int { return s.Base() + s.static + s.dynamic }

// MaxValue returns Base() + StaticModifier(), the value before combat events.
func (s *Stat) MaxValue() int { return s.Base() + s.static }

// AdjustStatic adds delta to the static modifier without bounds checks.
func (s *Stat) AdjustStatic(delta int) { s.static += delta }

// AdjustDynamic adds delta to the dynamic modifier without bounds checks.
func (s *Stat) AdjustDynamic(delta int) { s.dynamic += delta }

// ResetDynamic zeroes the dynamic modifier. Calling it twice is the same as calling it once.
func (s *Stat) ResetDynamic() { s.dynamic = 0 }

// String renders the stat as "<name> <modified> +<total modifier>".
func (s *Stat) String() string {
	return fmt.Sprintf("%s %d %+d", s.name, s.ModifiedValue(), s.TotalModifier())
}

// roundHalfUp rounds x to the nearest integer with ties toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
