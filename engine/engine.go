package engine

import (
	"kalah/game"
	"kalah/searcher"

	"golang.org/x/exp/rand"
)

// Agent chooses a move for the side to move. The bool result is false when
// the position offers no move.
type Agent interface {
	FindMove(s game.State) (int, bool)
}

// SearchAgent plays moves found by MCTS.
type SearchAgent struct {
	mcts *searcher.MCTS
}

func NewSearchAgent(mcts *searcher.MCTS) *SearchAgent {
	if mcts == nil {
		panic("search agent needs a searcher")
	}
	return &SearchAgent{mcts: mcts}
}

func (a *SearchAgent) FindMove(s game.State) (int, bool) {
	report := a.mcts.Search(s)
	return report.Move, report.HasMove()
}

// RandomAgent plays a uniformly random legal move, the weakest baseline.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		panic("random agent needs a random source")
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) FindMove(s game.State) (int, bool) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return -1, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
