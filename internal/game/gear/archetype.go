package gear

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchetype is returned when a restriction tag names no hero archetype.
var ErrUnknownArchetype = errors.New("gear: unknown archetype")

// Archetype is the hero class a gear restriction can name.
type Archetype int

const (
	Warrior Archetype = iota
	Wizard
	Ranger
	Cleric
)

var archetypeNames = [...]string{
	Warrior: "Warrior",
	Wizard:  "Wizard",
	Ranger:  "Ranger",
	Cleric:  "Cleric",
}

// Archetypes returns every hero archetype in declaration order.
func Archetypes() []Archetype {
	return []Archetype{Warrior, Wizard, Ranger, Cleric}
}

// String returns the display name of the archetype.
func (a Archetype) String() string {
	if a < 0 || int(a) >= len(archetypeNames) {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// ParseArchetype resolves a tag such as "Warrior" or "warrior".
//
// Postcondition: Returns an error wrapping ErrUnknownArchetype iff tag names no archetype.
func ParseArchetype(tag string) (Archetype, error) {
	tag = strings.TrimSpace(tag)
	for i, name := range archetypeNames {
		if strings.EqualFold(name, tag) {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, tag)
}

// Restriction is the set of archetypes allowed to equip an item.
type Restriction uint8

// RestrictionOf returns the set holding exactly the given archetypes.
func RestrictionOf(archetypes ...Archetype) Restriction {
	var r Restriction
	for _, a := range archetypes {
		r |= 1 << uint(a)
	}
	return r
}

// ParseRestriction parses a comma-separated tag list such as "Warrior,Ranger".
//
// Postcondition: Returns an error wrapping ErrUnknownArchetype if any tag is
// unknown or the list is empty.
func ParseRestriction(s string) (Restriction, error) {
	var r Restriction
	for _, tag := range strings.Split(s, ",") {
		a, err := ParseArchetype(tag)
		if err != nil {
			return 0, err
		}
		r |= 1 << uint(a)
	}
	return r, nil
}

// Allows reports whether a may equip an item carrying r.
func (r Restriction) Allows(a Archetype) bool {
	return r&(1<<uint(a)) != 0
}

// Archetypes returns the members of r in declaration order.
func (r Restriction) Archetypes() []Archetype {
	var out []Archetype
	for _, a := range Archetypes() {
		if r.Allows(a) {
			out = append(out, a)
		}
	}
	return out
}

// String renders r in the comma-separated record form.
func (r Restriction) String() string {
	names := make([]string, 0, len(archetypeNames))
	for _, a := range r.Archetypes() {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
