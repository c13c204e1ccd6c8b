package searcher

import (
	"sort"
	"time"

	"kalah/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MoveVisits reports how often one root move was explored.
type MoveVisits struct {
	Move   int
	Visits int
}

// Report is the result of one Search call. Move is -1 when the root offers
// no legal moves; ChildVisits lists every explored root child in ascending
// move order.
type Report struct {
	Move        int
	RootVisits  int
	ChildVisits []MoveVisits
}

// HasMove reports whether the search produced a move.
func (r Report) HasMove() bool {
	return r.Move >= 0
}

// MCTS runs PUCT-guided Monte-Carlo tree search over Kalah positions. Each
// Search call builds a private tree and discards it on return. One MCTS
// value must not run concurrent Search calls; it shares a single RNG.
type MCTS struct {
	simulations int
	cPuct       float64
	evaluate    Evaluator
	rng         *rand.Rand
	metrics     Collector
}

func WithSimulations(n int) Option {
	return func(m *MCTS) {
		if n >= 0 {
			m.simulations = n
		}
	}
}

func WithCPuct(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.cPuct = c
		}
	}
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithRand injects the randomness behind stochastic expansion and, when no
// evaluator is supplied, the default rollout evaluator. Seed it for
// reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		simulations: DefaultSimulations,
		cPuct:       DefaultCPuct,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if m.evaluate == nil {
		m.evaluate = NewRolloutEvaluator(m.rng)
	}
	return m
}

// Search runs the configured number of simulations from root and returns the
// move with the highest visit count, ties going to the lowest pit index.
func (m *MCTS) Search(root game.State) Report {
	m.metrics.Start(m.simulations, m.cPuct)

	rootPriors, _ := m.evaluate.PolicyValue(root)
	tree := newNode(root, -1, 1, rootPriors)

	for i := 0; i < m.simulations; i++ {
		m.simulate(tree)
	}

	report := Report{Move: -1, RootVisits: tree.visits}
	for _, child := range tree.children {
		report.ChildVisits = append(report.ChildVisits, MoveVisits{Move: child.move, Visits: child.visits})
	}
	sort.Slice(report.ChildVisits, func(i, j int) bool {
		return report.ChildVisits[i].Move < report.ChildVisits[j].Move
	})
	bestVisits := 0
	for _, cv := range report.ChildVisits {
		if cv.Visits > bestVisits {
			bestVisits = cv.Visits
			report.Move = cv.Move
		}
	}

	metric := m.metrics.Complete()
	log.Debug().
		Int("move", report.Move).
		Int("root_visits", report.RootVisits).
		Int("expansions", metric.Expansions).
		Int("max_depth", metric.MaxDepth).
		Dur("elapsed", metric.Duration).
		Msg("search complete")

	return report
}

// simulate runs one selection, expansion, evaluation, backpropagation cycle
// against the shared tree.
func (m *MCTS) simulate(root *node) {
	// Selection: descend only through fully expanded, non-terminal nodes.
	path := make([]*node, 0, 64)
	cur := root
	path = append(path, cur)
	for !cur.isTerminal() && len(cur.unexpanded) == 0 && len(cur.children) > 0 {
		cur = cur.children[cur.bestChild(m.cPuct)]
		path = append(path, cur)
	}

	// Expansion: materialize one sampled child, if any remain.
	if !cur.isTerminal() && len(cur.unexpanded) > 0 {
		if i := cur.expand(m.evaluate, m.rng); i >= 0 {
			cur = cur.children[i]
			path = append(path, cur)
			m.metrics.AddExpansion()
		}
	}

	value := m.evaluateLeaf(cur)
	m.metrics.ObserveDepth(len(path) - 1)

	// Backpropagation: the value is always carried in the perspective of the
	// node it is added to, flipping sign only when the turn changes.
	for i := len(path) - 1; i >= 0; i-- {
		path[i].visits++
		path[i].valueSum += value
		if i > 0 && path[i-1].toMove != path[i].toMove {
			value = -value
		}
	}
}

// evaluateLeaf scores a leaf from its own side-to-move perspective. A decided
// game leaves the nominal side to move without a turn to act, so a terminal
// position whose winner is that side scores -1, not +1; the sign flips during
// backpropagation depend on this convention.
func (m *MCTS) evaluateLeaf(n *node) float64 {
	if n.isTerminal() {
		m.metrics.AddTerminalLeaf()
		winner, ok := n.state.Outcome().Winner()
		switch {
		case !ok:
			return 0
		case winner == n.toMove:
			return -1
		default:
			return 1
		}
	}
	_, value := m.evaluate.PolicyValue(n.state)
	return value
}
