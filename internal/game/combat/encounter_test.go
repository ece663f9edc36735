package combat_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/ability"
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/stats"
	"github.com/cory-johannsen/skirmish/internal/narration"
	"github.com/cory-johannsen/skirmish/internal/scripting"
	"github.com/cory-johannsen/skirmish/internal/testutil"
)

var _ combat.Hooks = (*scripting.Manager)(nil)

func testCombatConfig() config.CombatConfig {
	return config.CombatConfig{
		ActionsPerTurn:         3,
		SingleTargetMultiplier: 2,
		GroupTargets:           3,
		CombatStatMultiplier:   0.5,
		AttributePerPoint:      3,
		TraitBase:              config.TraitBaseConfig{Vitality: 100, Energy: 50, AttackRate: 5, DefenceRate: 3},
		Costs:                  config.CostConfig{LowestAP: 2, MediumAP: 3, HighestAP: 5, LowEnergy: 10, HighEnergy: 25},
		BossHealthMultiplier:   2,
		Initiative:             "1d20",
		MaxRounds:              100,
		MaxEquipAttempts:       64,
	}
}

var book = ability.NewBook(testCombatConfig())

func scaling(vitality int) stats.Scaling {
	return stats.Scaling{
		AttributePerPoint: 3,
		CombatMultiplier:  0.5,
		Vitality:          vitality,
		Energy:            50,
		AttackRate:        5,
		DefenceRate:       3,
	}
}

func newFighter(t testutil.T, name string, side character.Side, vitality int, abilities ...ability.Ability) *character.Character {
	t.Helper()
	kind := character.KindWarrior
	if side == character.Enemies {
		kind = character.KindSkeletonWarrior
	}
	c, err := character.New(character.Params{
		Name:           name,
		Side:           side,
		Kind:           kind,
		Points:         []int{6, 3, 1, 2},
		Scaling:        scaling(vitality),
		Abilities:      abilities,
		ActionsPerTurn: 3,
	})
	require.NoError(t, err)
	return c
}

type hookCall struct {
	hook string
	args string
}

type recordingHooks struct {
	calls []hookCall
}

func (h *recordingHooks) OnRoundStart(wave, round int) {
	h.calls = append(h.calls, hookCall{"round_start", fmt.Sprintf("%d/%d", wave, round)})
}

func (h *recordingHooks) OnDeath(name, side string) {
	h.calls = append(h.calls, hookCall{"death", name + "/" + side})
}

func (h *recordingHooks) OnWaveEnd(wave int, outcome string) {
	h.calls = append(h.calls, hookCall{"wave_end", fmt.Sprintf("%d/%s", wave, outcome)})
}

func (h *recordingHooks) of(hook string) []string {
	var out []string
	for _, c := range h.calls {
		if c.hook == hook {
			out = append(out, c.args)
		}
	}
	return out
}

func runEncounter(t *testing.T, cfg config.CombatConfig, heroes []*character.Character, waves [][]*character.Character) (combat.Result, *narration.Memory, *recordingHooks) {
	t.Helper()
	sink := narration.NewMemory()
	hooks := &recordingHooks{}
	enc, err := combat.NewEncounter(cfg, heroes, waves, testutil.NewSeededRoller(42), sink, hooks, zap.NewNop())
	require.NoError(t, err)
	res, err := enc.Run(context.Background())
	require.NoError(t, err)
	return res, sink, hooks
}

func TestRollInitiative_SortedDescendingWithAttackRate(t *testing.T) {
	a := newFighter(t, "A", character.Heroes, 10)
	b := newFighter(t, "B", character.Heroes, 10)
	c := newFighter(t, "C", character.Enemies, 10)
	// 1d20 rolls 1, 10 and 5; attack rate 5 is added to each.
	order := combat.RollInitiative([]*character.Character{a, b, c}, dice.MustParse("1d20"), testutil.NewRoller(0, 9, 4))

	require.Len(t, order, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{order[0].Name(), order[1].Name(), order[2].Name()})
	assert.Equal(t, []int{15, 10, 6}, []int{order[0].Initiative, order[1].Initiative, order[2].Initiative})
}

func TestRollInitiative_TiesKeepInputOrder(t *testing.T) {
	chars := []*character.Character{
		newFighter(t, "first", character.Heroes, 10),
		newFighter(t, "second", character.Enemies, 10),
		newFighter(t, "third", character.Heroes, 10),
	}
	order := combat.RollInitiative(chars, dice.MustParse("1d20"), testutil.NewRoller(7))
	for i, c := range order {
		assert.Same(t, chars[i], c.Character)
	}
}

func TestProperty_InitiativeNonIncreasing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		chars := make([]*character.Character, n)
		for i := range chars {
			chars[i] = newFighter(rt, fmt.Sprintf("c%d", i), character.Heroes, 10)
		}
		seed := rapid.Uint64().Draw(rt, "seed")
		order := combat.RollInitiative(chars, dice.MustParse("1d20"), testutil.NewSeededRoller(seed))
		require.Len(rt, order, n)
		for i := 1; i < len(order); i++ {
			assert.GreaterOrEqual(rt, order[i-1].Initiative, order[i].Initiative)
		}
	})
}

func TestNewEncounter_Validation(t *testing.T) {
	hero := newFighter(t, "Hero", character.Heroes, 10)
	foe := newFighter(t, "Foe", character.Enemies, 10)
	badInit := testCombatConfig()
	badInit.Initiative = "banana"

	tests := []struct {
		name   string
		cfg    config.CombatConfig
		heroes []*character.Character
		waves  [][]*character.Character
		want   string
	}{
		{"no heroes", testCombatConfig(), nil, [][]*character.Character{{foe}}, "no heroes"},
		{"no waves", testCombatConfig(), []*character.Character{hero}, nil, "no waves"},
		{"empty wave", testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}, {}}, "wave 2 is empty"},
		{"enemy in party", testCombatConfig(), []*character.Character{foe}, [][]*character.Character{{foe}}, "not a hero"},
		{"hero in wave", testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{hero}}, "not an enemy"},
		{"bad initiative", badInit, []*character.Character{hero}, [][]*character.Character{{foe}}, "initiative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := combat.NewEncounter(tc.cfg, tc.heroes, tc.waves, testutil.NewSeededRoller(1), narration.Discard{}, combat.NopHooks{}, zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestEncounter_HeroesWinSingleWave(t *testing.T) {
	hero := newFighter(t, "Conan The Warrior", character.Heroes, 100, book.WeaponAttack())
	foe := newFighter(t, "Skeleton Warrior 1", character.Enemies, 10, book.WeaponAttack())

	res, sink, hooks := runEncounter(t, testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}})

	assert.Equal(t, combat.OutcomeHeroes, res.Outcome)
	assert.Equal(t, 1, res.WavesCleared)
	assert.Equal(t, 1, res.Rounds)
	require.Len(t, res.Survivors, 1)
	assert.Same(t, hero, res.Survivors[0])
	assert.True(t, foe.IsDead())

	assert.Equal(t, []string{"ROUND 1"}, sink.Of(narration.KindRound))
	assert.Equal(t, []string{"Skeleton Warrior 1 has been slain"}, sink.Of(narration.KindDeath))
	assert.Contains(t, sink.Of(narration.KindAttack), "Conan The Warrior uses Weapon Attack (-2 AP, -0 Energy) on Skeleton Warrior 1")
	assert.Equal(t, []string{"1/1"}, hooks.of("round_start"))
	assert.Equal(t, []string{"Skeleton Warrior 1/enemy"}, hooks.of("death"))
	assert.Equal(t, []string{"1/heroes"}, hooks.of("wave_end"))
}

func TestEncounter_TurnHeaderPrecedesActions(t *testing.T) {
	hero := newFighter(t, "Hero", character.Heroes, 100, book.WeaponAttack())
	foe := newFighter(t, "Foe", character.Enemies, 10)

	_, sink, _ := runEncounter(t, testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}})

	lines := sink.Lines()
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, narration.KindRound, lines[0].Kind)
	heroTurn := -1
	for i, l := range lines {
		if l.Kind == narration.KindTurn && l.Text == "[HERO TURN] Hero | 7 AP | 100 HP | 50 Energy" {
			heroTurn = i
			break
		}
	}
	require.NotEqual(t, -1, heroTurn, "hero turn header missing: %v", lines)
	assert.Equal(t, narration.KindAttack, lines[heroTurn+1].Kind)
}

func TestEncounter_StalemateAtMaxRounds(t *testing.T) {
	cfg := testCombatConfig()
	cfg.MaxRounds = 5
	hero := newFighter(t, "Hero", character.Heroes, 10)
	foe := newFighter(t, "Foe", character.Enemies, 10)

	res, sink, hooks := runEncounter(t, cfg, []*character.Character{hero}, [][]*character.Character{{foe}})

	assert.Equal(t, combat.OutcomeStalemate, res.Outcome)
	assert.Equal(t, 5, res.Rounds)
	assert.Equal(t, 0, res.WavesCleared)
	assert.Len(t, res.Survivors, 2)
	assert.Len(t, sink.Of(narration.KindRound), 5)
	assert.Equal(t, []string{"1/stalemate"}, hooks.of("wave_end"))
}

func TestEncounter_HeroesWipedStopsWaves(t *testing.T) {
	hero := newFighter(t, "Hero", character.Heroes, 5)
	foe := newFighter(t, "Foe", character.Enemies, 100, book.WeaponAttack())
	later := newFighter(t, "Later", character.Enemies, 100, book.WeaponAttack())

	res, _, hooks := runEncounter(t, testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}, {later}})

	assert.Equal(t, combat.OutcomeEnemies, res.Outcome)
	assert.Equal(t, 0, res.WavesCleared)
	assert.Equal(t, []string{"1/enemies"}, hooks.of("wave_end"))
	assert.Equal(t, []string{"Hero/hero"}, hooks.of("death"))
	require.Len(t, res.Survivors, 1)
	assert.Same(t, foe, res.Survivors[0])
	assert.Equal(t, 100, later.HitPoints(), "the second wave never fights")
}

func TestEncounter_MultipleWavesRoundNumbering(t *testing.T) {
	hero := newFighter(t, "Hero", character.Heroes, 100, book.WeaponAttack())
	w1 := newFighter(t, "Skeleton Warrior 1", character.Enemies, 10)
	w2 := newFighter(t, "Skeleton Warrior 2", character.Enemies, 10)

	res, sink, hooks := runEncounter(t, testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{w1}, {w2}})

	assert.Equal(t, combat.OutcomeHeroes, res.Outcome)
	assert.Equal(t, 2, res.WavesCleared)
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, []string{"ROUND 1", "ROUND 2"}, sink.Of(narration.KindRound))
	assert.Equal(t, []string{"1/1", "2/1"}, hooks.of("round_start"))
	assert.Equal(t, []string{"1/heroes", "2/heroes"}, hooks.of("wave_end"))
}

func TestEncounter_RestoreBetweenWaves(t *testing.T) {
	for _, restore := range []bool{true, false} {
		t.Run(fmt.Sprintf("restore=%v", restore), func(t *testing.T) {
			cfg := testCombatConfig()
			cfg.MaxRounds = 2
			cfg.RestoreBetweenWaves = restore
			hero := newFighter(t, "Hero", character.Heroes, 100, book.WeaponAttack())
			hero.ApplyDamage(43, true)
			require.Equal(t, 60, hero.HitPoints())
			w1 := newFighter(t, "W1", character.Enemies, 10)
			w2 := newFighter(t, "W2", character.Enemies, 10)

			res, _, _ := runEncounter(t, cfg, []*character.Character{hero}, [][]*character.Character{{w1}, {w2}})

			require.Equal(t, combat.OutcomeHeroes, res.Outcome)
			if restore {
				assert.Equal(t, hero.MaxHitPoints(), hero.HitPoints())
			} else {
				assert.Equal(t, 60, hero.HitPoints())
			}
		})
	}
}

func TestEncounter_CancelledContext(t *testing.T) {
	hero := newFighter(t, "Hero", character.Heroes, 10)
	foe := newFighter(t, "Foe", character.Enemies, 10)
	enc, err := combat.NewEncounter(testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}},
		testutil.NewSeededRoller(1), narration.Discard{}, combat.NopHooks{}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enc.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEncounter_LogsLifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hero := newFighter(t, "Hero", character.Heroes, 100, book.WeaponAttack())
	foe := newFighter(t, "Foe", character.Enemies, 10)
	enc, err := combat.NewEncounter(testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}},
		testutil.NewSeededRoller(3), narration.Discard{}, combat.NopHooks{}, zap.New(core))
	require.NoError(t, err)
	_, err = enc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, logs.FilterMessage("encounter started").All(), 1)
	assert.Len(t, logs.FilterMessage("wave ended").All(), 1)
	finished := logs.FilterMessage("encounter finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "heroes", finished[0].ContextMap()["outcome"])
}

func TestScriptedHooks_NarrateThroughSink(t *testing.T) {
	sink := narration.NewMemory()
	roller := testutil.NewSeededRoller(5)
	mgr := scripting.NewManager(roller, zap.NewNop())
	mgr.Narrate = sink.Script
	dir := t.TempDir()
	require.NoError(t, writeFile(dir, "hooks.lua", `
		function on_death(name, side) engine.narrate(name .. " falls") end
	`))
	require.NoError(t, mgr.Load(dir, 0))
	t.Cleanup(mgr.Close)

	hero := newFighter(t, "Hero", character.Heroes, 100, book.WeaponAttack())
	foe := newFighter(t, "Foe", character.Enemies, 10)
	enc, err := combat.NewEncounter(testCombatConfig(), []*character.Character{hero}, [][]*character.Character{{foe}},
		roller, sink, mgr, zap.NewNop())
	require.NoError(t, err)
	_, err = enc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Foe falls"}, sink.Of(narration.KindScript))
}

func TestProperty_EncounterTerminatesWithinMaxRounds(t *testing.T) {
	abilities := []ability.Ability{
		book.WeaponAttack(), book.HeavyAttack(), book.Whirlwind(), book.FocusedShot(),
		book.SprayOfArrows(), book.ElementalBolt(ability.Fire), book.ElementalBlast(ability.Ice),
		book.FocusedHeal(), book.GroupHeal(),
	}
	rapid.Check(t, func(rt *rapid.T) {
		cfg := testCombatConfig()
		cfg.MaxRounds = rapid.IntRange(1, 30).Draw(rt, "max_rounds")
		cfg.RestoreBetweenWaves = rapid.Bool().Draw(rt, "restore")

		draw := func(label string, side character.Side) *character.Character {
			n := rapid.IntRange(0, 3).Draw(rt, label+"_abilities")
			var set []ability.Ability
			for i := 0; i < n; i++ {
				set = append(set, rapid.SampledFrom(abilities).Draw(rt, label+"_ability"))
			}
			return newFighter(rt, label, side, rapid.IntRange(1, 120).Draw(rt, label+"_vitality"), set...)
		}

		heroes := make([]*character.Character, rapid.IntRange(1, 4).Draw(rt, "heroes"))
		for i := range heroes {
			heroes[i] = draw(fmt.Sprintf("h%d", i), character.Heroes)
		}
		waves := make([][]*character.Character, rapid.IntRange(1, 3).Draw(rt, "waves"))
		for w := range waves {
			waves[w] = make([]*character.Character, rapid.IntRange(1, 4).Draw(rt, fmt.Sprintf("wave%d", w)))
			for i := range waves[w] {
				waves[w][i] = draw(fmt.Sprintf("w%de%d", w, i), character.Enemies)
			}
		}

		enc, err := combat.NewEncounter(cfg, heroes, waves, testutil.NewSeededRoller(rapid.Uint64().Draw(rt, "seed")),
			narration.Discard{}, combat.NopHooks{}, zap.NewNop())
		require.NoError(rt, err)
		res, err := enc.Run(context.Background())
		require.NoError(rt, err)

		assert.LessOrEqual(rt, res.Rounds, cfg.MaxRounds)
		assert.LessOrEqual(rt, res.WavesCleared, len(waves))
		for _, s := range res.Survivors {
			assert.False(rt, s.IsDead())
		}
		switch res.Outcome {
		case combat.OutcomeHeroes:
			assert.Equal(rt, len(waves), res.WavesCleared)
			for _, s := range res.Survivors {
				assert.Equal(rt, character.Heroes, s.Side())
			}
		case combat.OutcomeEnemies:
			for _, s := range res.Survivors {
				assert.Equal(rt, character.Enemies, s.Side())
			}
		case combat.OutcomeStalemate:
			assert.Equal(rt, cfg.MaxRounds, res.Rounds)
		}
	})
}
