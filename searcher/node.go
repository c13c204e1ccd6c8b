package searcher

import (
	"math"

	"kalah/game"

	"golang.org/x/exp/rand"
)

// node is one position in the search tree. The whole tree is owned by a
// single Search call and discarded when it returns, so nodes carry no locks.
type node struct {
	state      game.State
	move       int // pit index that produced this node; -1 at the root
	prior      float64
	visits     int
	valueSum   float64
	children   []*node
	unexpanded []Prior
	toMove     game.Player
}

func newNode(state game.State, move int, prior float64, priors []Prior) *node {
	n := &node{
		state:      state,
		move:       move,
		prior:      prior,
		unexpanded: append([]Prior(nil), priors...),
		toMove:     state.CurrentPlayer(),
	}
	n.normalizePriors()
	return n
}

func (n *node) isTerminal() bool {
	return n.state.IsTerminal()
}

// valueMean is the accumulated value from this node's own side-to-move
// perspective, 0 before the first visit.
func (n *node) valueMean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

// normalizePriors scales the unexpanded weights to sum to 1, falling back to
// a uniform prior if the evaluator returned all-zero weights.
func (n *node) normalizePriors() {
	sum := 0.0
	for _, p := range n.unexpanded {
		sum += p.Weight
	}
	if sum > 0 {
		for i := range n.unexpanded {
			n.unexpanded[i].Weight /= sum
		}
	} else if len(n.unexpanded) > 0 {
		u := 1 / float64(len(n.unexpanded))
		for i := range n.unexpanded {
			n.unexpanded[i].Weight = u
		}
	}
}

// puct scores a child from this node's perspective:
// Q + cPuct * P * sqrt(N_parent) / (1 + N_child). A child stores its value
// from its own side-to-move view, so Q is negated when the turn changed.
func (n *node) puct(child *node, cPuct float64) float64 {
	q := child.valueMean()
	if child.toMove != n.toMove {
		q = -q
	}
	parentVisits := float64(max(n.visits, 1))
	return q + cPuct*child.prior*math.Sqrt(parentVisits)/(1+float64(child.visits))
}

// bestChild picks the materialized child with the strictly highest PUCT
// score; ties keep the lowest index.
func (n *node) bestChild(cPuct float64) int {
	best := 0
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		if score := n.puct(child, cPuct); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// expand materializes one unexpanded move, sampled with probability
// proportional to its prior, and returns the new child's index, or -1 when
// there is nothing to expand. Expansion order across simulations is
// therefore stochastic, not left to right.
func (n *node) expand(evaluate Evaluator, rng *rand.Rand) int {
	if n.isTerminal() || len(n.unexpanded) == 0 {
		return -1
	}

	i := samplePrior(n.unexpanded, rng)
	entry := n.unexpanded[i]
	// swap-remove; queue order carries no meaning
	n.unexpanded[i] = n.unexpanded[len(n.unexpanded)-1]
	n.unexpanded = n.unexpanded[:len(n.unexpanded)-1]

	childState, ok := n.state.ChildAfterMove(entry.Move)
	if !ok {
		panic("unexpanded entry holds an illegal move")
	}
	childPriors, _ := evaluate.PolicyValue(childState)
	child := newNode(childState, entry.Move, entry.Weight, childPriors)
	n.children = append(n.children, child)
	return len(n.children) - 1
}

// samplePrior draws an index with probability proportional to weight, each
// weight floored at priorFloor.
func samplePrior(entries []Prior, rng *rand.Rand) int {
	total := 0.0
	for _, e := range entries {
		total += math.Max(e.Weight, priorFloor)
	}
	target := rng.Float64() * total
	for i, e := range entries {
		target -= math.Max(e.Weight, priorFloor)
		if target < 0 {
			return i
		}
	}
	return len(entries) - 1
}
