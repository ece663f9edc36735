package gear

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

// ErrNoCandidates is returned when a random pick has an empty pool.
var ErrNoCandidates = errors.New("gear: no candidate items")

// Randomizer supplies the draws the catalog needs at load time and for picks.
type Randomizer interface {
	UniformInt(maxInclusive int) int
	Roll(expr dice.Expression) dice.RollResult
}

// Record is one entry of a weapon or armor file. Every value is kept as a
// string so that files written as flat string maps load unchanged.
type Record struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Restriction string `yaml:"restriction"`
	Wield       string `yaml:"wield,omitempty"`
	Damage      string `yaml:"damage,omitempty"`
	Material    string `yaml:"material,omitempty"`
	Protection  string `yaml:"protection,omitempty"`
}

// BonusDice holds the expressions item bonus magnitudes are rolled from.
type BonusDice struct {
	Weapon dice.Expression
	Armor  dice.Expression
}

// Catalog is the immutable set of items loaded at start.
//
// Invariant: weapons and armor keep file order; the catalog is never mutated
// after Build returns. Picks draw from the Randomizer supplied at build time.
type Catalog struct {
	weapons []*Item
	armor   []*Item
	rng     Randomizer
}

// LoadCatalog reads the weapon and armor files named by cfg and builds a Catalog.
//
// The two files are read and decoded concurrently; items are built afterwards
// in file order so a seeded Randomizer produces the same bonuses every run.
//
// Precondition: rng and logger must be non-nil.
// Postcondition: Returns a fully built Catalog or the first read, parse or integrity error.
func LoadCatalog(ctx context.Context, cfg config.GearConfig, rng Randomizer, logger *zap.Logger) (*Catalog, error) {
	weaponBonus, err := dice.Parse(cfg.WeaponBonus)
	if err != nil {
		return nil, fmt.Errorf("gear: LoadCatalog: weapon_bonus: %w", err)
	}
	armorBonus, err := dice.Parse(cfg.ArmorBonus)
	if err != nil {
		return nil, fmt.Errorf("gear: LoadCatalog: armor_bonus: %w", err)
	}

	var weaponRecs, armorRecs []Record
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := readRecords(ctx, cfg.WeaponsFile)
		weaponRecs = recs
		return err
	})
	g.Go(func() error {
		recs, err := readRecords(ctx, cfg.ArmorFile)
		armorRecs = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gear: LoadCatalog: %w", err)
	}

	cat, err := Build(weaponRecs, armorRecs, BonusDice{Weapon: weaponBonus, Armor: armorBonus}, rng)
	if err != nil {
		return nil, fmt.Errorf("gear: LoadCatalog: %w", err)
	}
	logger.Info("gear catalog loaded",
		zap.String("weapons_file", cfg.WeaponsFile),
		zap.String("armor_file", cfg.ArmorFile),
		zap.Int("weapons", len(cat.weapons)),
		zap.Int("armor", len(cat.armor)),
	)
	return cat, nil
}

func readRecords(ctx context.Context, path string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	var recs []Record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return recs, nil
}

// Build turns weapon and armor records into a Catalog, rolling each item's bonus once.
//
// Precondition: bonus expressions must have Min() >= 1; rng must be non-nil.
// Postcondition: Returns an error for any unknown restriction tag, missing
// field, or non-numeric damage/protection; no partial Catalog is returned.
func Build(weapons, armor []Record, bonus BonusDice, rng Randomizer) (*Catalog, error) {
	if bonus.Weapon.Min() < 1 || bonus.Armor.Min() < 1 {
		return nil, fmt.Errorf("gear: Build: bonus dice must roll at least 1 (weapon %q, armor %q)",
			bonus.Weapon.Raw, bonus.Armor.Raw)
	}
	c := &Catalog{rng: rng}
	for i, rec := range weapons {
		item, err := buildItem(rec, KindWeapon)
		if err != nil {
			return nil, fmt.Errorf("gear: Build: weapon %d: %w", i, err)
		}
		item.Bonus = Bonus{Stat: stats.RandomAttribute(rng), Value: rng.Roll(bonus.Weapon).Total()}
		c.weapons = append(c.weapons, item)
	}
	for i, rec := range armor {
		item, err := buildItem(rec, KindArmor)
		if err != nil {
			return nil, fmt.Errorf("gear: Build: armor %d: %w", i, err)
		}
		item.Bonus = Bonus{Stat: stats.RandomTrait(rng), Value: rng.Roll(bonus.Armor).Total()}
		c.armor = append(c.armor, item)
	}
	return c, nil
}

func buildItem(rec Record, kind Kind) (*Item, error) {
	if rec.Name == "" {
		return nil, errors.New("name must not be empty")
	}
	if rec.Type == "" {
		return nil, fmt.Errorf("%q: type must not be empty", rec.Name)
	}
	restriction, err := ParseRestriction(rec.Restriction)
	if err != nil {
		return nil, fmt.Errorf("%q: restriction: %w", rec.Name, err)
	}
	item := &Item{Name: rec.Name, Type: rec.Type, Kind: kind, Restriction: restriction}

	raw, field := rec.Damage, "damage"
	if kind == KindArmor {
		raw, field = rec.Protection, "protection"
		item.Material = rec.Material
	} else {
		item.Wield = rec.Wield
	}
	effect, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%q: %s: %w", rec.Name, field, err)
	}
	item.Effect = effect
	return item, nil
}

// Weapons returns every weapon in file order.
func (c *Catalog) Weapons() []*Item { return append([]*Item(nil), c.weapons...) }

// Armor returns every armor piece in file order.
func (c *Catalog) Armor() []*Item { return append([]*Item(nil), c.armor...) }

// WeaponTypes returns the distinct weapon types in first-seen order.
func (c *Catalog) WeaponTypes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range c.weapons {
		if !seen[w.Type] {
			seen[w.Type] = true
			out = append(out, w.Type)
		}
	}
	return out
}

// WeaponsOfType returns the weapons of type t in file order.
func (c *Catalog) WeaponsOfType(t string) []*Item {
	return filter(c.weapons, func(w *Item) bool { return w.Type == t })
}

// ArmorFor returns every armor piece archetype a may equip.
func (c *Catalog) ArmorFor(a Archetype) []*Item {
	return filter(c.armor, func(i *Item) bool { return i.Allows(a) })
}

// RandomWeapon picks uniformly among the weapons a may equip.
//
// Postcondition: Returns an error wrapping ErrNoCandidates iff no weapon allows a.
func (c *Catalog) RandomWeapon(a Archetype) (*Item, error) {
	return c.pick(filter(c.weapons, func(w *Item) bool { return w.Allows(a) }),
		"weapon for %s", a)
}

// RandomOneHandedWeapon picks uniformly among the one-handed weapons a may equip.
func (c *Catalog) RandomOneHandedWeapon(a Archetype) (*Item, error) {
	return c.pick(filter(c.weapons, func(w *Item) bool { return w.Allows(a) && !w.IsTwoHanded() }),
		"one-handed weapon for %s", a)
}

// RandomWeaponOfTypes picks uniformly among weapons whose type is in types.
// Restrictions are not checked.
func (c *Catalog) RandomWeaponOfTypes(types []string) (*Item, error) {
	return c.pick(filter(c.weapons, func(w *Item) bool { return containsType(types, w.Type) }),
		"weapon of types %v", types)
}

// RandomOneHandedWeaponOfTypes picks uniformly among one-handed weapons whose type is in types.
func (c *Catalog) RandomOneHandedWeaponOfTypes(types []string) (*Item, error) {
	return c.pick(filter(c.weapons, func(w *Item) bool { return containsType(types, w.Type) && !w.IsTwoHanded() }),
		"one-handed weapon of types %v", types)
}

// RandomArmor picks uniformly among armor of slot type slot that a may equip.
// The slot comparison ignores case.
func (c *Catalog) RandomArmor(slot string, a Archetype) (*Item, error) {
	return c.pick(filter(c.armor, func(i *Item) bool { return i.Allows(a) && strings.EqualFold(i.Type, slot) }),
		"%s armor for %s", slot, a)
}

func (c *Catalog) pick(pool []*Item, format string, args ...any) (*Item, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, fmt.Sprintf(format, args...))
	}
	return pool[c.rng.UniformInt(len(pool)-1)], nil
}

func filter(items []*Item, keep func(*Item) bool) []*Item {
	var out []*Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsType(types []string, t string) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
