// Package config provides Viper-based configuration loading for the skirmish simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GearConfig locates the gear catalog record files.
type GearConfig struct {
	// WeaponsFile is the path to the weapon record list (JSON or YAML).
	WeaponsFile string `mapstructure:"weapons_file"`
	// ArmorFile is the path to the armor record list (JSON or YAML).
	ArmorFile string `mapstructure:"armor_file"`
	// WeaponBonus is the dice expression rolled once per weapon for its attribute bonus.
	WeaponBonus string `mapstructure:"weapon_bonus"`
	// ArmorBonus is the dice expression rolled once per armor piece for its trait bonus.
	ArmorBonus string `mapstructure:"armor_bonus"`
}

// TraitBaseConfig holds the seed value of every trait.
type TraitBaseConfig struct {
	Vitality    int `mapstructure:"vitality"`
	Energy      int `mapstructure:"energy"`
	AttackRate  int `mapstructure:"attack_rate"`
	DefenceRate int `mapstructure:"defence_rate"`
}

// CostConfig holds the action point and energy price tiers abilities draw from.
type CostConfig struct {
	LowestAP   int `mapstructure:"lowest_ap"`
	MediumAP   int `mapstructure:"medium_ap"`
	HighestAP  int `mapstructure:"highest_ap"`
	LowEnergy  int `mapstructure:"low_energy"`
	HighEnergy int `mapstructure:"high_energy"`
}

// CombatConfig holds the numeric rules of the stat and ability engine.
type CombatConfig struct {
	// ActionsPerTurn is the number of ability draws a character makes per turn.
	ActionsPerTurn int `mapstructure:"actions_per_turn"`
	// SingleTargetMultiplier scales the power of single-target abilities.
	SingleTargetMultiplier int `mapstructure:"single_target_multiplier"`
	// GroupTargets is the maximum number of characters a group ability reaches.
	GroupTargets int `mapstructure:"group_targets"`
	// CombatStatMultiplier is the k in round(k*attribute + k*trait).
	CombatStatMultiplier float64 `mapstructure:"combat_stat_multiplier"`
	// AttributePerPoint scales each attribute point into the attribute base value.
	AttributePerPoint int             `mapstructure:"attribute_per_point"`
	TraitBase         TraitBaseConfig `mapstructure:"trait_base"`
	Costs             CostConfig      `mapstructure:"costs"`
	// BossHealthMultiplier multiplies the boss vitality into an additional static modifier.
	BossHealthMultiplier int `mapstructure:"boss_health_multiplier"`
	// Initiative is the dice expression rolled per combatant at the start of each wave.
	Initiative string `mapstructure:"initiative"`
	// MaxRounds bounds the rounds of the whole encounter; reaching it ends the
	// current wave in a stalemate.
	MaxRounds int `mapstructure:"max_rounds"`
	// MaxEquipAttempts bounds the random weapon draws while filling weapon slots.
	MaxEquipAttempts int `mapstructure:"max_equip_attempts"`
	// RestoreBetweenWaves resets hero HP, AP and energy after a cleared wave.
	RestoreBetweenWaves bool `mapstructure:"restore_between_waves"`
	// Seed selects a deterministic random source when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// NarrationConfig controls the combat log sink.
type NarrationConfig struct {
	// Color enables ANSI colouring of narrative lines.
	Color bool `mapstructure:"color"`
	// Delay is slept after every narrative line; zero disables it.
	Delay time.Duration `mapstructure:"delay"`
}

// ScriptingConfig controls the optional Lua encounter hooks.
type ScriptingConfig struct {
	// Dir holds *.lua hook scripts; empty disables scripting.
	Dir string `mapstructure:"dir"`
	// InstructionLimit caps opcodes per hook call; 0 uses the scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// HeroConfig names one party member.
type HeroConfig struct {
	Name      string `mapstructure:"name"`
	Archetype string `mapstructure:"archetype"`
}

// WaveConfig lists the enemy kinds of one wave in spawn order.
type WaveConfig struct {
	Enemies []string `mapstructure:"enemies"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Gear      GearConfig      `mapstructure:"gear"`
	Combat    CombatConfig    `mapstructure:"combat"`
	Narration NarrationConfig `mapstructure:"narration"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
	Party     []HeroConfig    `mapstructure:"party"`
	Waves     []WaveConfig    `mapstructure:"waves"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGear(c.Gear); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombat(c.Combat); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Narration.Delay < 0 {
		errs = append(errs, "narration.delay must not be negative")
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}
	if err := validateRoster(c.Party, c.Waves); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGear(g GearConfig) error {
	var errs []string
	if g.WeaponsFile == "" {
		errs = append(errs, "gear.weapons_file must not be empty")
	}
	if g.ArmorFile == "" {
		errs = append(errs, "gear.armor_file must not be empty")
	}
	if g.WeaponBonus == "" {
		errs = append(errs, "gear.weapon_bonus must not be empty")
	}
	if g.ArmorBonus == "" {
		errs = append(errs, "gear.armor_bonus must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.ActionsPerTurn < 1 {
		errs = append(errs, fmt.Sprintf("combat.actions_per_turn must be >= 1, got %d", c.ActionsPerTurn))
	}
	if c.SingleTargetMultiplier < 1 {
		errs = append(errs, fmt.Sprintf("combat.single_target_multiplier must be >= 1, got %d", c.SingleTargetMultiplier))
	}
	if c.GroupTargets < 1 {
		errs = append(errs, fmt.Sprintf("combat.group_targets must be >= 1, got %d", c.GroupTargets))
	}
	if c.CombatStatMultiplier <= 0 {
		errs = append(errs, "combat.combat_stat_multiplier must be > 0")
	}
	if c.AttributePerPoint < 1 {
		errs = append(errs, fmt.Sprintf("combat.attribute_per_point must be >= 1, got %d", c.AttributePerPoint))
	}
	if c.TraitBase.Vitality < 1 {
		errs = append(errs, "combat.trait_base.vitality must be >= 1")
	}
	if c.TraitBase.Energy < 0 || c.TraitBase.AttackRate < 0 || c.TraitBase.DefenceRate < 0 {
		errs = append(errs, "combat.trait_base values must not be negative")
	}
	if c.Costs.LowestAP < 0 || c.Costs.MediumAP < 0 || c.Costs.HighestAP < 0 ||
		c.Costs.LowEnergy < 0 || c.Costs.HighEnergy < 0 {
		errs = append(errs, "combat.costs values must not be negative")
	}
	if c.BossHealthMultiplier < 0 {
		errs = append(errs, "combat.boss_health_multiplier must not be negative")
	}
	if c.Initiative == "" {
		errs = append(errs, "combat.initiative must not be empty")
	}
	if c.MaxRounds < 1 {
		errs = append(errs, fmt.Sprintf("combat.max_rounds must be >= 1, got %d", c.MaxRounds))
	}
	if c.MaxEquipAttempts < 1 {
		errs = append(errs, fmt.Sprintf("combat.max_equip_attempts must be >= 1, got %d", c.MaxEquipAttempts))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRoster(party []HeroConfig, waves []WaveConfig) error {
	var errs []string
	if len(party) == 0 {
		errs = append(errs, "party must not be empty")
	}
	for i, h := range party {
		if h.Name == "" {
			errs = append(errs, fmt.Sprintf("party[%d].name must not be empty", i))
		}
		if h.Archetype == "" {
			errs = append(errs, fmt.Sprintf("party[%d].archetype must not be empty", i))
		}
	}
	if len(waves) == 0 {
		errs = append(errs, "waves must not be empty")
	}
	for i, w := range waves {
		if len(w.Enemies) == 0 {
			errs = append(errs, fmt.Sprintf("waves[%d].enemies must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with SKIRMISH_ prefix
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers the default value of every scalar key on v.
//
// Precondition: v must be non-nil.
func SetDefaults(v *viper.Viper) { setDefaults(v) }

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("gear.weapons_file", "content/gear/weapons.json")
	v.SetDefault("gear.armor_file", "content/gear/armor.json")
	v.SetDefault("gear.weapon_bonus", "1d5")
	v.SetDefault("gear.armor_bonus", "1d4")

	v.SetDefault("combat.actions_per_turn", 3)
	v.SetDefault("combat.single_target_multiplier", 2)
	v.SetDefault("combat.group_targets", 3)
	v.SetDefault("combat.combat_stat_multiplier", 0.5)
	v.SetDefault("combat.attribute_per_point", 3)
	v.SetDefault("combat.trait_base.vitality", 100)
	v.SetDefault("combat.trait_base.energy", 50)
	v.SetDefault("combat.trait_base.attack_rate", 5)
	v.SetDefault("combat.trait_base.defence_rate", 3)
	v.SetDefault("combat.costs.lowest_ap", 2)
	v.SetDefault("combat.costs.medium_ap", 3)
	v.SetDefault("combat.costs.highest_ap", 5)
	v.SetDefault("combat.costs.low_energy", 10)
	v.SetDefault("combat.costs.high_energy", 25)
	v.SetDefault("combat.boss_health_multiplier", 2)
	v.SetDefault("combat.initiative", "1d20")
	v.SetDefault("combat.max_rounds", 100)
	v.SetDefault("combat.max_equip_attempts", 64)
	v.SetDefault("combat.restore_between_waves", true)
	v.SetDefault("combat.seed", 0)

	v.SetDefault("narration.color", true)
	v.SetDefault("narration.delay", "0s")

	v.SetDefault("scripting.dir", "")
	v.SetDefault("scripting.instruction_limit", 0)
}
