package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Gear: GearConfig{
			WeaponsFile: "content/gear/weapons.json",
			ArmorFile:   "content/gear/armor.json",
			WeaponBonus: "1d5",
			ArmorBonus:  "1d4",
		},
		Combat: CombatConfig{
			ActionsPerTurn:         3,
			SingleTargetMultiplier: 2,
			GroupTargets:           3,
			CombatStatMultiplier:   0.5,
			AttributePerPoint:      3,
			TraitBase:              TraitBaseConfig{Vitality: 100, Energy: 50, AttackRate: 5, DefenceRate: 3},
			Costs:                  CostConfig{LowestAP: 2, MediumAP: 3, HighestAP: 5, LowEnergy: 10, HighEnergy: 25},
			BossHealthMultiplier:   2,
			Initiative:             "1d20",
			MaxRounds:              100,
			MaxEquipAttempts:       64,
		},
		Narration: NarrationConfig{Color: true},
		Party:     []HeroConfig{{Name: "Conan", Archetype: "warrior"}},
		Waves:     []WaveConfig{{Enemies: []string{"skeleton_warrior"}}},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
gear:
  weapons_file: weapons.json
  armor_file: armor.json
combat:
  actions_per_turn: 4
  trait_base:
    vitality: 80
narration:
  color: false
  delay: 250ms
party:
  - name: Conan
    archetype: warrior
  - name: Merlin
    archetype: wizard
waves:
  - enemies: [skeleton_warrior, skeleton_mage]
  - enemies: [lich_lord]
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "weapons.json", cfg.Gear.WeaponsFile)
	assert.Equal(t, "1d5", cfg.Gear.WeaponBonus, "default must survive partial gear section")
	assert.Equal(t, 4, cfg.Combat.ActionsPerTurn)
	assert.Equal(t, 80, cfg.Combat.TraitBase.Vitality)
	assert.Equal(t, 50, cfg.Combat.TraitBase.Energy)
	assert.Equal(t, 250*time.Millisecond, cfg.Narration.Delay)
	assert.False(t, cfg.Narration.Color)
	require.Len(t, cfg.Party, 2)
	assert.Equal(t, "wizard", cfg.Party[1].Archetype)
	require.Len(t, cfg.Waves, 2)
	assert.Equal(t, []string{"lich_lord"}, cfg.Waves[1].Enemies)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
party:
  - name: Conan
    archetype: warrior
waves:
  - enemies: [skeleton_warrior]
`), 0644))
	t.Setenv("SKIRMISH_COMBAT_MAX_ROUNDS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Combat.MaxRounds)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateGear_EmptyFiles(t *testing.T) {
	cfg := validConfig()
	cfg.Gear.WeaponsFile = ""
	cfg.Gear.ArmorFile = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gear.weapons_file")
	assert.Contains(t, err.Error(), "gear.armor_file")
}

func TestValidateCombat(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CombatConfig)
		want   string
	}{
		{"zero actions", func(c *CombatConfig) { c.ActionsPerTurn = 0 }, "actions_per_turn"},
		{"zero multiplier", func(c *CombatConfig) { c.SingleTargetMultiplier = 0 }, "single_target_multiplier"},
		{"zero group", func(c *CombatConfig) { c.GroupTargets = 0 }, "group_targets"},
		{"zero k", func(c *CombatConfig) { c.CombatStatMultiplier = 0 }, "combat_stat_multiplier"},
		{"zero vitality", func(c *CombatConfig) { c.TraitBase.Vitality = 0 }, "vitality"},
		{"negative cost", func(c *CombatConfig) { c.Costs.HighEnergy = -1 }, "costs"},
		{"no initiative", func(c *CombatConfig) { c.Initiative = "" }, "initiative"},
		{"zero rounds", func(c *CombatConfig) { c.MaxRounds = 0 }, "max_rounds"},
		{"zero attempts", func(c *CombatConfig) { c.MaxEquipAttempts = 0 }, "max_equip_attempts"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg.Combat)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateRoster(t *testing.T) {
	cfg := validConfig()
	cfg.Party = nil
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Party = []HeroConfig{{Name: "", Archetype: "warrior"}}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Waves = []WaveConfig{{}}
	assert.Error(t, cfg.Validate())
}

func TestValidateNarrationDelay(t *testing.T) {
	cfg := validConfig()
	cfg.Narration.Delay = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidate_MultipleViolationsReported(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "bogus"
	cfg.Combat.MaxRounds = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "combat.max_rounds")
}

func TestProperty_ActionsPerTurnBound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-10, 20).Draw(rt, "actions")
		cfg := validConfig()
		cfg.Combat.ActionsPerTurn = n
		err := cfg.Validate()
		if n >= 1 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
