package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/gear"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fight the configured encounter",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return withApp(ctx, cmd.OutOrStdout(), func(app *App) error {
			return runEncounter(ctx, app, cmd.OutOrStdout())
		})
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the character sheet of every configured combatant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), cmd.OutOrStdout(), func(app *App) error {
			heroes, waves, err := app.lineup()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSheets(out, heroes)
			for i, w := range waves {
				fmt.Fprintf(out, "\n== WAVE %d ==\n", i+1)
				printSheets(out, w)
			}
			return nil
		})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the loaded weapons and armor with their rolled bonuses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), cmd.OutOrStdout(), func(app *App) error {
			return printCatalog(cmd.OutOrStdout(), app.Catalog)
		})
	},
}

func withApp(ctx context.Context, out io.Writer, fn func(*App) error) error {
	app, cleanup, err := initializeApp(ctx, ConfigPath(configPath), Seed(seed), out)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(app)
}

func runEncounter(ctx context.Context, app *App, out io.Writer) error {
	heroes, waves, err := app.lineup()
	if err != nil {
		return err
	}
	printSheets(out, heroes)

	enc, err := combat.NewEncounter(app.Config.Combat, heroes, waves, app.Roller, app.Sink, app.Scripts, app.Logger)
	if err != nil {
		return err
	}
	res, err := enc.Run(ctx)
	if err != nil {
		return err
	}

	app.Logger.Debug("result", zap.Stringer("outcome", res.Outcome), zap.Int("rounds", res.Rounds))
	fmt.Fprintf(out, "\nOutcome: %s | Rounds: %d | Waves cleared: %d/%d\n",
		res.Outcome, res.Rounds, res.WavesCleared, len(waves))
	names := make([]string, len(res.Survivors))
	for i, s := range res.Survivors {
		names[i] = fmt.Sprintf("%s (%d HP)", s.Name(), s.HitPoints())
	}
	fmt.Fprintf(out, "Survivors: %s\n", strings.Join(names, ", "))
	return nil
}

func printSheets(out io.Writer, chars []*character.Character) {
	for _, c := range chars {
		fmt.Fprintln(out, c.Sheet())
	}
}

func printCatalog(out io.Writer, cat *gear.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tTYPE\tALLOWED\tDETAIL\tEFFECT\tBONUS")
	for _, it := range append(cat.Weapons(), cat.Armor()...) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s %+d\n",
			it.Kind, it.Name, it.Type, it.Restriction, it.Detail(), it.Effect, it.Bonus.Stat, it.Bonus.Value)
	}
	return tw.Flush()
}
