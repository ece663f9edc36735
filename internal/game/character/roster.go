package character

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/ability"
	"github.com/cory-johannsen/skirmish/internal/game/gear"
	"github.com/cory-johannsen/skirmish/internal/game/stats"
)

var (
	// ErrEquipExhausted is returned when a character's slots cannot be filled.
	ErrEquipExhausted = errors.New("character: equipment slots could not be filled")
	// ErrUnknownKind is returned for a roster kind that does not exist.
	ErrUnknownKind = errors.New("character: unknown kind")
)

// Kind identifies a roster entry.
type Kind string

const (
	KindWarrior         Kind = "warrior"
	KindWizard          Kind = "wizard"
	KindRanger          Kind = "ranger"
	KindCleric          Kind = "cleric"
	KindSkeletonWarrior Kind = "skeleton_warrior"
	KindSkeletonArcher  Kind = "skeleton_archer"
	KindSkeletonMage    Kind = "skeleton_mage"
	KindLichLord        Kind = "lich_lord"
)

type template struct {
	title     string
	side      Side
	points    []int
	abilities func(*ability.Book) []ability.Ability
	// Heroes equip by archetype; enemies by accepted weapon types.
	archetype   gear.Archetype
	weaponTypes []string
	boss        bool
}

var templates = map[Kind]template{
	KindWarrior: {title: "Warrior", side: Heroes, points: []int{6, 3, 1, 2},
		abilities: (*ability.Book).WarriorSet, archetype: gear.Warrior},
	KindWizard: {title: "Wizard", side: Heroes, points: []int{1, 3, 6, 2},
		abilities: (*ability.Book).MageSet, archetype: gear.Wizard},
	KindRanger: {title: "Ranger", side: Heroes, points: []int{3, 6, 1, 2},
		abilities: (*ability.Book).RangerSet, archetype: gear.Ranger},
	KindCleric: {title: "Cleric", side: Heroes, points: []int{2, 3, 2, 5},
		abilities: (*ability.Book).ClericSet, archetype: gear.Cleric},
	KindSkeletonWarrior: {title: "Skeleton Warrior", side: Enemies, points: []int{4, 2, 1, 1},
		abilities: (*ability.Book).WarriorSet, weaponTypes: []string{gear.TypeAxe, gear.TypeSword, gear.TypeShield}},
	KindSkeletonArcher: {title: "Skeleton Archer", side: Enemies, points: []int{2, 4, 1, 1},
		abilities: (*ability.Book).RangerSet, weaponTypes: []string{gear.TypeBow, gear.TypeCrossbow}},
	KindSkeletonMage: {title: "Skeleton Mage", side: Enemies, points: []int{1, 2, 4, 1},
		abilities: (*ability.Book).MageSet, weaponTypes: []string{gear.TypeStaff, gear.TypeWand}},
	KindLichLord: {title: "Lich Lord", side: Enemies, points: []int{4, 3, 5, 3},
		abilities: (*ability.Book).LichLordSet, weaponTypes: []string{gear.TypeAxe, gear.TypeSword, gear.TypeShield}, boss: true},
}

// Kinds returns every roster kind, heroes first.
func Kinds() []Kind {
	return []Kind{
		KindWarrior, KindWizard, KindRanger, KindCleric,
		KindSkeletonWarrior, KindSkeletonArcher, KindSkeletonMage, KindLichLord,
	}
}

// ParseKind resolves a config roster name.
//
// Postcondition: Returns an error wrapping ErrUnknownKind iff s names no kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := templates[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Side returns the party members of this kind fight for.
func (k Kind) Side() Side { return templates[k].side }

// Title returns the display title, e.g. "Skeleton Archer".
func (k Kind) Title() string { return templates[k].title }

// Builder assembles fully equipped characters from the roster templates.
type Builder struct {
	cfg     config.CombatConfig
	book    *ability.Book
	catalog *gear.Catalog
	logger  *zap.Logger
}

// NewBuilder returns a Builder drawing gear from catalog.
//
// Precondition: book, catalog and logger must be non-nil.
func NewBuilder(cfg config.CombatConfig, book *ability.Book, catalog *gear.Catalog, logger *zap.Logger) *Builder {
	return &Builder{cfg: cfg, book: book, catalog: catalog, logger: logger}
}

// Hero builds the named hero of kind k, named "<name> The <Title>".
//
// Postcondition: Returns an error wrapping ErrUnknownKind if k is not a hero
// kind, or ErrEquipExhausted if its slots could not be filled.
func (b *Builder) Hero(name string, k Kind) (*Character, error) {
	tmpl, ok := templates[k]
	if !ok || tmpl.side != Heroes {
		return nil, fmt.Errorf("character: Builder.Hero: %w: %q is not a hero", ErrUnknownKind, k)
	}
	c, err := b.newFromTemplate(fmt.Sprintf("%s The %s", name, tmpl.title), k, tmpl)
	if err != nil {
		return nil, err
	}
	if err := b.equipHero(c, tmpl.archetype); err != nil {
		return nil, err
	}
	return b.finish(c, tmpl)
}

// Enemy builds the enemy of kind k. Regular enemies are named "<Title> <seq>";
// the boss carries its title alone.
//
// Postcondition: Returns an error wrapping ErrUnknownKind if k is not an enemy
// kind, or ErrEquipExhausted if its weapon slots could not be filled.
func (b *Builder) Enemy(k Kind, seq int) (*Character, error) {
	tmpl, ok := templates[k]
	if !ok || tmpl.side != Enemies {
		return nil, fmt.Errorf("character: Builder.Enemy: %w: %q is not an enemy", ErrUnknownKind, k)
	}
	name := fmt.Sprintf("%s %d", tmpl.title, seq)
	if tmpl.boss {
		name = tmpl.title
	}
	c, err := b.newFromTemplate(name, k, tmpl)
	if err != nil {
		return nil, err
	}
	if err := b.equipWeapons(c, func(oneHanded bool) (*gear.Item, error) {
		if oneHanded {
			return b.catalog.RandomOneHandedWeaponOfTypes(tmpl.weaponTypes)
		}
		return b.catalog.RandomWeaponOfTypes(tmpl.weaponTypes)
	}); err != nil {
		return nil, err
	}
	return b.finish(c, tmpl)
}

// Party builds every configured hero in order.
func (b *Builder) Party(heroes []config.HeroConfig) ([]*Character, error) {
	party := make([]*Character, 0, len(heroes))
	for _, h := range heroes {
		k, err := ParseKind(h.Archetype)
		if err != nil {
			return nil, fmt.Errorf("character: Builder.Party: %w", err)
		}
		c, err := b.Hero(h.Name, k)
		if err != nil {
			return nil, err
		}
		party = append(party, c)
	}
	return party, nil
}

// Wave builds the enemies of one wave. Sequence numbers start at 1 per kind.
func (b *Builder) Wave(w config.WaveConfig) ([]*Character, error) {
	seq := make(map[Kind]int)
	enemies := make([]*Character, 0, len(w.Enemies))
	for _, name := range w.Enemies {
		k, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("character: Builder.Wave: %w", err)
		}
		seq[k]++
		c, err := b.Enemy(k, seq[k])
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, c)
	}
	return enemies, nil
}

func (b *Builder) newFromTemplate(name string, k Kind, tmpl template) (*Character, error) {
	return New(Params{
		Name:           name,
		Side:           tmpl.side,
		Kind:           k,
		Points:         tmpl.points,
		Scaling:        ScalingFrom(b.cfg),
		Abilities:      tmpl.abilities(b.book),
		ActionsPerTurn: b.cfg.ActionsPerTurn,
	})
}

func (b *Builder) equipHero(c *Character, a gear.Archetype) error {
	for _, slot := range gear.ArmorSlots() {
		piece, err := b.catalog.RandomArmor(slot, a)
		if err != nil {
			return fmt.Errorf("character: equipping %q: %w: %w", c.name, ErrEquipExhausted, err)
		}
		c.equipment.AddArmorPiece(slot, piece)
	}
	return b.equipWeapons(c, func(oneHanded bool) (*gear.Item, error) {
		if oneHanded {
			return b.catalog.RandomOneHandedWeapon(a)
		}
		return b.catalog.RandomWeapon(a)
	})
}

// equipWeapons draws until both weapon slots are used. When a single slot is
// left only one-handed weapons are drawn, so every draw can be equipped.
func (b *Builder) equipWeapons(c *Character, draw func(oneHanded bool) (*gear.Item, error)) error {
	for attempt := 0; c.equipment.EmptyWeaponSlots() != 0; attempt++ {
		if attempt >= b.cfg.MaxEquipAttempts {
			return fmt.Errorf("character: equipping %q: %w after %d attempts", c.name, ErrEquipExhausted, attempt)
		}
		w, err := draw(c.equipment.EmptyWeaponSlots() == 1)
		if err != nil {
			return fmt.Errorf("character: equipping %q: %w: %w", c.name, ErrEquipExhausted, err)
		}
		c.equipment.AddWeapon(w)
	}
	return nil
}

// finish applies every item bonus as a static modifier, then the boss vitality bonus.
func (b *Builder) finish(c *Character, tmpl template) (*Character, error) {
	items := append(c.equipment.Weapons(), c.equipment.ArmorPieces()...)
	for _, it := range items {
		if err := c.stats.AdjustStatic(it.Bonus.Stat, it.Bonus.Value); err != nil {
			return nil, fmt.Errorf("character: applying bonus of %q to %q: %w", it.Name, c.name, err)
		}
	}
	if tmpl.boss {
		bonus := c.stats.Value(stats.Vitality) * b.cfg.BossHealthMultiplier
		if err := c.stats.AdjustStatic(stats.Vitality, bonus); err != nil {
			return nil, fmt.Errorf("character: boss bonus for %q: %w", c.name, err)
		}
	}
	b.logger.Debug("character built",
		zap.String("id", c.id.String()),
		zap.String("name", c.name),
		zap.String("kind", string(c.kind)),
		zap.Int("weapons", len(c.equipment.weapons)),
		zap.Int("armor", len(c.equipment.armor)),
		zap.Int("hit_points", c.HitPoints()),
	)
	return c, nil
}
