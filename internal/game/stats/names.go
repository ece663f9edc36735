package stats

// Attribute names.
const (
	Strength     = "Strength"
	Dexterity    = "Dexterity"
	Intelligence = "Intelligence"
	Willpower    = "Willpower"
)

// Trait names.
const (
	Vitality    = "Vitality"
	Energy      = "Energy"
	AttackRate  = "Attack Rate"
	DefenceRate = "Defence Rate"
)

// Combat stat names.
const (
	PhysicalPower = "Physical Power"
	ActionPoints  = "Action Points"
	MagicPower    = "Magic Power"
	HealingPower  = "Healing Power"
)

// Axes is the number of attribute/trait/combat triples in a Registry.
const Axes = 4

var (
	attributeNames  = [Axes]string{Strength, Dexterity, Intelligence, Willpower}
	traitNames      = [Axes]string{Vitality, Energy, AttackRate, DefenceRate}
	combatStatNames = [Axes]string{PhysicalPower, ActionPoints, MagicPower, HealingPower}
)

// Picker draws a uniform int in the closed range [0, maxInclusive].
type Picker interface {
	UniformInt(maxInclusive int) int
}

// AttributeNames returns the attribute names in axis order.
func AttributeNames() []string { return append([]string(nil), attributeNames[:]...) }

// TraitNames returns the trait names in axis order.
func TraitNames() []string { return append([]string(nil), traitNames[:]...) }

// CombatStatNames returns the combat stat names in axis order.
func CombatStatNames() []string { return append([]string(nil), combatStatNames[:]...) }

// RandomAttribute returns a uniformly chosen attribute name.
//
// Precondition: p must be non-nil.
func RandomAttribute(p Picker) string { return attributeNames[p.UniformInt(Axes-1)] }

// RandomTrait returns a uniformly chosen trait name.
//
// Precondition: p must be non-nil.
func RandomTrait(p Picker) string { return traitNames[p.UniformInt(Axes-1)] }

// IsAttribute reports whether name is one of the attribute names.
func IsAttribute(name string) bool { return contains(attributeNames, name) }

// IsTrait reports whether name is one of the trait names.
func IsTrait(name string) bool { return contains(traitNames, name) }

func contains(set [Axes]string, name string) bool {
	for _, n := range set {
		if n == name {
			return true
		}
	}
	return false
}
