package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kalah/game"
	"kalah/searcher"

	"github.com/spf13/cobra"
)

var (
	playSide string
	playSims int
	playSeed uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the search bot on the terminal",
	Run:   runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playSide, "side", "A", "side to play: A or B")
	playCmd.Flags().IntVar(&playSims, "sims", 5000, "bot simulations per move")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "random seed, 0 for time-based")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	you := game.PlayerA
	if strings.EqualFold(playSide, "B") {
		you = game.PlayerB
	}
	bot := searcher.NewMCTS(
		searcher.WithSimulations(playSims),
		searcher.WithRand(newSeededRand(playSeed)),
	)
	scanner := bufio.NewScanner(os.Stdin)

	s := game.NewState()
	fmt.Printf("You are %s. The bot is %s.\n", you, you.Opponent())
	fmt.Println(game.Render(s))

	for !s.IsTerminal() {
		if s.CurrentPlayer() == you {
			fmt.Printf("Your move %v: ", s.LegalMoves())
			if !scanner.Scan() {
				return
			}
			pit, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil {
				fmt.Println("Enter a pit index.")
				continue
			}
			next, ok := s.ChildAfterMove(pit)
			if !ok {
				fmt.Println("Illegal move. Try again.")
				continue
			}
			s = next
		} else {
			report := bot.Search(s)
			if !report.HasMove() {
				break
			}
			next, ok := s.ChildAfterMove(report.Move)
			if !ok {
				panic("search returned an illegal move")
			}
			fmt.Printf("Bot plays pit %d\n", report.Move)
			s = next
		}
		fmt.Println(game.Render(s))
	}

	winner, ok := s.Outcome().Winner()
	switch {
	case ok && winner == you:
		fmt.Println("You win!")
	case ok:
		fmt.Println("The bot wins.")
	default:
		fmt.Println("Draw.")
	}
	fmt.Printf("Final score A:%d B:%d\n", s.Store(game.PlayerA), s.Store(game.PlayerB))
}
