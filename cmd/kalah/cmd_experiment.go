package main

import (
	"fmt"

	"kalah/experiments"
	"kalah/searcher"

	"github.com/spf13/cobra"
)

var (
	expGames int
	expOut   string
	expSeed  uint64
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the simulation-budget strength experiment",
	RunE:  runExperiment,
}

func init() {
	experimentCmd.Flags().IntVar(&expGames, "games", 20, "games per matchup")
	experimentCmd.Flags().StringVar(&expOut, "out", "results", "output directory")
	experimentCmd.Flags().Uint64Var(&expSeed, "seed", 1, "random seed")
	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	baseline := experiments.AgentConfig{ID: 0, Simulations: 100, CPuct: searcher.DefaultCPuct}
	configs := []experiments.AgentConfig{
		{ID: 1, Simulations: 250, CPuct: searcher.DefaultCPuct},
		{ID: 2, Simulations: 500, CPuct: searcher.DefaultCPuct},
		{ID: 3, Simulations: 1000, CPuct: searcher.DefaultCPuct},
		{ID: 4, Simulations: 2500, CPuct: searcher.DefaultCPuct},
	}

	summaries, err := experiments.RunStrength("budget_sweep", baseline, configs, expGames, expSeed, expOut)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Printf("agent %d: score %.2f (stddev %.2f) over %d games, avg %.0f moves\n",
			s.Agent, s.MeanScore, s.ScoreStdDev, s.Games, s.MeanMoves)
	}
	return nil
}
