package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

var testScaling = stats.Scaling{
	AttributePerPoint: 3,
	CombatMultiplier:  0.5,
	Vitality:          100,
	Energy:            50,
	AttackRate:        5,
	DefenceRate:       3,
}

func newRegistry(t *testing.T) *stats.Registry {
	t.Helper()
	r, err := stats.NewRegistry([]int{6, 3, 1, 2}, testScaling)
	require.NoError(t, err)
	return r
}

func TestNewRegistry_RejectsWrongAxisCount(t *testing.T) {
	_, err := stats.NewRegistry([]int{1, 2, 3}, testScaling)
	assert.Error(t, err)
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := newRegistry(t)
	var names []string
	for _, s := range r.All() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		stats.Strength, stats.Vitality, stats.PhysicalPower,
		stats.Dexterity, stats.Energy, stats.ActionPoints,
		stats.Intelligence, stats.AttackRate, stats.MagicPower,
		stats.Willpower, stats.DefenceRate, stats.HealingPower,
	}, names)
}

func TestRegistry_SeedValues(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, 18, r.Value(stats.Strength))
	assert.Equal(t, 9, r.Value(stats.Dexterity))
	assert.Equal(t, 3, r.Value(stats.Intelligence))
	assert.Equal(t, 6, r.Value(stats.Willpower))

	assert.Equal(t, 100, r.CurrentHitPoints())
	assert.Equal(t, 50, r.CurrentEnergy())
	assert.Equal(t, 5, r.AttackRate())
	assert.Equal(t, 3, r.DefenceRate())

	assert.Equal(t, 12, r.PhysicalPower()) // round(9 + 2.5)
	assert.Equal(t, 7, r.CurrentActionPoints())
	assert.Equal(t, 4, r.MagicPower())   // round(1.5 + 2.5)
	assert.Equal(t, 6, r.HealingPower()) // round(3 + 2.5)
}

func TestRegistry_CombatStatsFollowAttackRate(t *testing.T) {
	r := newRegistry(t)
	before := r.PhysicalPower()
	require.NoError(t, r.AdjustStatic(stats.AttackRate, 4))
	assert.Equal(t, before+2, r.PhysicalPower())
	assert.Equal(t, 9, r.CurrentActionPoints()) // round(4.5 + 4.5)
}

func TestRegistry_UnknownStat(t *testing.T) {
	r := newRegistry(t)
	_, ok := r.Get("Luck")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Value("Luck"))
	assert.Error(t, r.AdjustStatic("Luck", 1))
	assert.Error(t, r.AdjustDynamic("Luck", 1))
}

func TestRegistry_ResourceHelpers(t *testing.T) {
	r := newRegistry(t)
	r.AdjustHitPoints(-30)
	r.AdjustEnergy(-10)
	r.AdjustActionPoints(-5)
	assert.Equal(t, 70, r.CurrentHitPoints())
	assert.Equal(t, 100, r.TotalHitPoints())
	assert.Equal(t, 40, r.CurrentEnergy())
	assert.Equal(t, 50, r.TotalEnergy())
	assert.Equal(t, 2, r.CurrentActionPoints())
	assert.Equal(t, 7, r.TotalActionPoints())

	r.ResetHitPoints()
	r.ResetEnergy()
	r.ResetActionPoints()
	assert.Equal(t, 100, r.CurrentHitPoints())
	assert.Equal(t, 50, r.CurrentEnergy())
	assert.Equal(t, 7, r.CurrentActionPoints())
}

func TestRegistry_TotalIncludesStatic(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.AdjustStatic(stats.Vitality, 20))
	r.AdjustHitPoints(-50)
	assert.Equal(t, 120, r.TotalHitPoints())
	assert.Equal(t, 70, r.CurrentHitPoints())
}

func TestRegistry_String(t *testing.T) {
	r := newRegistry(t)
	s := r.String()
	assert.Contains(t, s, "Strength 18 +0 | Vitality 100 +0 | Physical Power 12 +0")
	assert.Contains(t, s, "Willpower 6 +0 | Defence Rate 3 +0 | Healing Power 6 +0")
}

type fixedPicker int

func (f fixedPicker) UniformInt(maxInclusive int) int {
	if int(f) > maxInclusive {
		return maxInclusive
	}
	return int(f)
}

func TestRandomNames(t *testing.T) {
	assert.Equal(t, stats.Strength, stats.RandomAttribute(fixedPicker(0)))
	assert.Equal(t, stats.Willpower, stats.RandomAttribute(fixedPicker(3)))
	assert.Equal(t, stats.Vitality, stats.RandomTrait(fixedPicker(0)))
	assert.Equal(t, stats.DefenceRate, stats.RandomTrait(fixedPicker(3)))
}

func TestNameLists_AreCopies(t *testing.T) {
	names := stats.AttributeNames()
	names[0] = "Tampered"
	assert.Equal(t, stats.Strength, stats.AttributeNames()[0])
	assert.Len(t, stats.TraitNames(), stats.Axes)
	assert.Len(t, stats.CombatStatNames(), stats.Axes)
}

func TestProperty_RandomNamesAreValid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := fixedPicker(rapid.IntRange(0, 3).Draw(rt, "idx"))
		assert.True(rt, stats.IsAttribute(stats.RandomAttribute(p)))
		assert.True(rt, stats.IsTrait(stats.RandomTrait(p)))
	})
}
