package main

import (
	"fmt"

	"kalah/engine"
	"kalah/game"
	"kalah/searcher"

	"github.com/spf13/cobra"
)

var (
	selfplaySims  int
	selfplayCPuct float64
	selfplaySeed  uint64
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Watch two search bots play one game",
	Run:   runSelfplay,
}

func init() {
	selfplayCmd.Flags().IntVar(&selfplaySims, "sims", 5000, "simulations per move")
	selfplayCmd.Flags().Float64Var(&selfplayCPuct, "cpuct", searcher.DefaultCPuct, "exploration constant")
	selfplayCmd.Flags().Uint64Var(&selfplaySeed, "seed", 0, "random seed, 0 for time-based")
	rootCmd.AddCommand(selfplayCmd)
}

func runSelfplay(cmd *cobra.Command, _ []string) {
	rng := newSeededRand(selfplaySeed)
	bot := func() engine.Agent {
		return engine.NewSearchAgent(searcher.NewMCTS(
			searcher.WithSimulations(selfplaySims),
			searcher.WithCPuct(selfplayCPuct),
			searcher.WithRand(rng),
		))
	}
	e := engine.NewLocal(bot(), bot())

	fmt.Println(game.Render(e.State()))
	for e.Step() {
		fmt.Println(game.Render(e.State()))
	}

	final := e.State()
	fmt.Printf("%s after %d moves (A:%d B:%d)\n",
		final.Outcome(), e.Moves(), final.Store(game.PlayerA), final.Store(game.PlayerB))
}
