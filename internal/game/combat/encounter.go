package combat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/narration"
)

// Encounter is one run of the party against its waves. It is single-use and
// not safe for concurrent use.
type Encounter struct {
	cfg        config.CombatConfig
	initiative dice.Expression
	heroes     []*character.Character
	waves      [][]*character.Character
	rng        Randomizer
	sink       narration.Sink
	hooks      Hooks
	logger     *zap.Logger

	order  []*Combatant
	rounds int
}

// NewEncounter validates the line-up and prepares an encounter.
//
// Precondition: rng, sink, hooks and logger must be non-nil.
// Postcondition: Returns an error if there are no heroes, no waves, an empty
// wave, a character on the wrong side, or an invalid initiative expression.
func NewEncounter(
	cfg config.CombatConfig,
	heroes []*character.Character,
	waves [][]*character.Character,
	rng Randomizer,
	sink narration.Sink,
	hooks Hooks,
	logger *zap.Logger,
) (*Encounter, error) {
	if len(heroes) == 0 {
		return nil, fmt.Errorf("combat: NewEncounter: no heroes")
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("combat: NewEncounter: no waves")
	}
	for _, h := range heroes {
		if h.Side() != character.Heroes {
			return nil, fmt.Errorf("combat: NewEncounter: %q is not a hero", h.Name())
		}
	}
	for i, w := range waves {
		if len(w) == 0 {
			return nil, fmt.Errorf("combat: NewEncounter: wave %d is empty", i+1)
		}
		for _, c := range w {
			if c.Side() != character.Enemies {
				return nil, fmt.Errorf("combat: NewEncounter: wave %d: %q is not an enemy", i+1, c.Name())
			}
		}
	}
	expr, err := dice.Parse(cfg.Initiative)
	if err != nil {
		return nil, fmt.Errorf("combat: NewEncounter: initiative: %w", err)
	}
	return &Encounter{
		cfg:        cfg,
		initiative: expr,
		heroes:     heroes,
		waves:      waves,
		rng:        rng,
		sink:       sink,
		hooks:      hooks,
		logger:     logger,
	}, nil
}

// Run fights every wave in order. The encounter stops at the first wave the
// heroes do not win, or when the round limit is reached.
//
// Postcondition: Result.Rounds <= cfg.MaxRounds. Returns ctx.Err() if the
// context is cancelled between rounds.
func (e *Encounter) Run(ctx context.Context) (Result, error) {
	e.logger.Info("encounter started",
		zap.Int("heroes", len(e.heroes)),
		zap.Int("waves", len(e.waves)),
		zap.Int("max_rounds", e.cfg.MaxRounds),
	)

	res := Result{Outcome: OutcomeStalemate}
	for i, wave := range e.waves {
		num := i + 1
		if i > 0 && e.cfg.RestoreBetweenWaves {
			for _, h := range e.heroes {
				if !h.IsDead() {
					h.RestoreHero()
				}
			}
		}

		outcome, err := e.fightWave(ctx, num, wave)
		if err != nil {
			return Result{}, err
		}
		e.hooks.OnWaveEnd(num, outcome.String())
		e.logger.Info("wave ended", zap.Int("wave", num), zap.Stringer("outcome", outcome), zap.Int("rounds", e.rounds))

		res.Outcome = outcome
		if outcome != OutcomeHeroes {
			break
		}
		res.WavesCleared++
	}

	res.Rounds = e.rounds
	for _, c := range e.order {
		if !c.IsDead() {
			res.Survivors = append(res.Survivors, c.Character)
		}
	}
	e.logger.Info("encounter finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("rounds", res.Rounds),
		zap.Int("waves_cleared", res.WavesCleared),
		zap.Int("survivors", len(res.Survivors)),
	)
	return res, nil
}

func (e *Encounter) fightWave(ctx context.Context, num int, wave []*character.Character) (Outcome, error) {
	var living []*character.Character
	for _, h := range e.heroes {
		if !h.IsDead() {
			living = append(living, h)
		}
	}
	e.order = RollInitiative(append(living, wave...), e.initiative, e.rng)
	for _, c := range e.order {
		e.logger.Debug("initiative", zap.Int("wave", num), zap.String("name", c.Name()), zap.Int("initiative", c.Initiative))
	}

	for round := 1; ; round++ {
		if o, done := e.decided(); done {
			return o, nil
		}
		if e.rounds >= e.cfg.MaxRounds {
			return OutcomeStalemate, nil
		}
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("combat: Encounter.Run: wave %d round %d: %w", num, round, err)
		}
		e.playRound(num, round)
	}
}

func (e *Encounter) playRound(wave, round int) {
	e.rounds++
	e.sink.Round(fmt.Sprintf("ROUND %d", e.rounds))
	e.hooks.OnRoundStart(wave, round)

	for _, c := range e.order {
		if !c.IsDead() {
			c.RoundReset()
		}
	}
	for _, c := range e.order {
		if c.IsDead() {
			continue
		}
		if _, done := e.decided(); done {
			return
		}
		e.sink.Turn(c.TurnInfo())
		sum := c.TakeTurn(true, turnResolver{enc: e, actor: c.Character}, e.rng)
		e.logger.Debug("turn",
			zap.String("name", c.Name()),
			zap.Int("drawn", sum.Drawn),
			zap.Int("executed", sum.Executed),
			zap.Int("skipped", sum.Skipped),
			zap.Bool("aborted", sum.Aborted),
		)
	}
}

// decided reports whether one side of the current wave has been wiped out.
func (e *Encounter) decided() (Outcome, bool) {
	var heroes, enemies int
	for _, c := range e.order {
		if c.IsDead() {
			continue
		}
		if c.Side() == character.Heroes {
			heroes++
		} else {
			enemies++
		}
	}
	switch {
	case heroes == 0:
		return OutcomeEnemies, true
	case enemies == 0:
		return OutcomeHeroes, true
	default:
		return "", false
	}
}
