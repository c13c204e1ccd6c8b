package searcher

import (
	"kalah/game"

	"golang.org/x/exp/rand"
)

// Prior is an unnormalized policy weight for one legal move.
type Prior struct {
	Move   int
	Weight float64
}

// Evaluator estimates a position: prior weights over its legal moves and a
// value in [-1, 1] for the side to move at that exact position. Priors need
// not be normalized; consumers normalize. Implementations must have no side
// effects beyond their own randomness, so a trained policy/value function can
// be substituted without touching the search.
type Evaluator interface {
	PolicyValue(s game.State) ([]Prior, float64)
}

// RolloutEvaluator is the baseline evaluator: a uniform prior over legal
// moves, and a value estimated by playing one bounded uniformly-random
// playout from the position. Hitting the cap without a result yields a
// neutral value.
type RolloutEvaluator struct {
	maxPlayoutLen int
	rng           *rand.Rand
}

type RolloutOption func(*RolloutEvaluator)

// WithMaxPlayoutLen caps the number of rollout moves.
func WithMaxPlayoutLen(n int) RolloutOption {
	return func(e *RolloutEvaluator) {
		if n > 0 {
			e.maxPlayoutLen = n
		}
	}
}

// NewRolloutEvaluator builds the baseline evaluator around an injected,
// seedable source of randomness.
func NewRolloutEvaluator(rng *rand.Rand, options ...RolloutOption) *RolloutEvaluator {
	if rng == nil {
		panic("rollout evaluator needs a random source")
	}
	e := &RolloutEvaluator{
		maxPlayoutLen: DefaultMaxPlayoutLen,
		rng:           rng,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *RolloutEvaluator) PolicyValue(s game.State) ([]Prior, float64) {
	legal := s.LegalMoves()
	priors := make([]Prior, len(legal))
	for i, m := range legal {
		priors[i] = Prior{Move: m, Weight: 1 / float64(len(legal))}
	}

	// The value is scored for the side to move at s, not at the rollout leaf.
	mover := s.CurrentPlayer()
	cur := s
	for depth := 0; depth < e.maxPlayoutLen && !cur.IsTerminal(); depth++ {
		moves := cur.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next, ok := cur.ChildAfterMove(moves[e.rng.Intn(len(moves))])
		if !ok {
			panic("legal move rejected during rollout")
		}
		cur = next
	}

	switch cur.Outcome() {
	case game.Win(mover):
		return priors, 1
	case game.Win(mover.Opponent()):
		return priors, -1
	default: // draw, or cap reached with the game still open
		return priors, 0
	}
}
