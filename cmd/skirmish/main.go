// Package main is the skirmish command line: it loads the gear catalog, builds
// the configured party and enemy waves, and fights the encounter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:          "skirmish",
	Short:        "Turn-based party combat simulator",
	Long:         `skirmish pits a party of heroes against waves of skeletons and narrates every round.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/dev.yaml", "path to configuration file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed; 0 keeps the configured seed")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(catalogCmd)
}
