package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/ability"
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/gear"
	"github.com/cory-johannsen/skirmish/internal/narration"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// ConfigPath is the configuration file handed to the injector.
type ConfigPath string

// Seed overrides combat.seed when non-zero.
type Seed uint64

// App holds the single-instance services of one command invocation.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Roller  *dice.Roller
	Catalog *gear.Catalog
	Builder *character.Builder
	Sink    narration.Sink
	Scripts *scripting.Manager
}

func provideConfig(path ConfigPath, s Seed) (config.Config, error) {
	cfg, err := config.Load(string(path))
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if s != 0 {
		cfg.Combat.Seed = uint64(s)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideSource(cfg config.Config) dice.Source {
	if cfg.Combat.Seed != 0 {
		return dice.NewSeededSource(cfg.Combat.Seed)
	}
	return dice.NewCryptoSource()
}

func provideCatalog(ctx context.Context, cfg config.Config, roller *dice.Roller, logger *zap.Logger) (*gear.Catalog, error) {
	return gear.LoadCatalog(ctx, cfg.Gear, roller, logger)
}

func provideBook(cfg config.Config) *ability.Book {
	return ability.NewBook(cfg.Combat)
}

func provideBuilder(cfg config.Config, book *ability.Book, catalog *gear.Catalog, logger *zap.Logger) *character.Builder {
	return character.NewBuilder(cfg.Combat, book, catalog, logger)
}

func provideSink(out io.Writer, cfg config.Config, logger *zap.Logger) narration.Sink {
	return narration.NewConsole(out, cfg.Narration, logger)
}

func provideScripts(cfg config.Config, roller *dice.Roller, sink narration.Sink, logger *zap.Logger) (*scripting.Manager, func(), error) {
	mgr := scripting.NewManager(roller, logger)
	mgr.Narrate = sink.Script
	if cfg.Scripting.Dir != "" {
		if err := mgr.Load(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit); err != nil {
			return nil, nil, err
		}
	}
	return mgr, mgr.Close, nil
}

// appSet wires every provider of this command into an App.
var appSet = wire.NewSet(
	provideConfig,
	provideLogger,
	provideSource,
	dice.NewRoller,
	provideCatalog,
	provideBook,
	provideBuilder,
	provideSink,
	provideScripts,
	wire.Struct(new(App), "*"),
)

// lineup builds the configured party and every wave.
func (a *App) lineup() ([]*character.Character, [][]*character.Character, error) {
	heroes, err := a.Builder.Party(a.Config.Party)
	if err != nil {
		return nil, nil, err
	}
	waves := make([][]*character.Character, 0, len(a.Config.Waves))
	for i, w := range a.Config.Waves {
		enemies, err := a.Builder.Wave(w)
		if err != nil {
			return nil, nil, fmt.Errorf("wave %d: %w", i+1, err)
		}
		waves = append(waves, enemies)
	}
	return heroes, waves, nil
}
