package engine

import (
	"kalah/game"

	"github.com/rs/zerolog/log"
)

// MaxMoves guards against a runaway loop; real games end far below it.
const MaxMoves = 500

// Local drives a complete game between two agents on one machine.
type Local struct {
	agents [2]Agent
	state  game.State
	moves  int
}

func NewLocal(agentA, agentB Agent) *Local {
	if agentA == nil || agentB == nil {
		panic("both sides need an agent")
	}
	return &Local{
		agents: [2]Agent{agentA, agentB},
		state:  game.NewState(),
	}
}

// State returns the current position.
func (e *Local) State() game.State {
	return e.state
}

// Moves returns the number of moves played so far.
func (e *Local) Moves() int {
	return e.moves
}

// Step asks the agent of the side to move for one move and applies it.
// It reports false once the game is over. An illegal choice by an agent is
// logged and replaced with the first legal move.
func (e *Local) Step() bool {
	if e.state.IsTerminal() || e.moves >= MaxMoves {
		return false
	}

	mover := e.state.CurrentPlayer()
	move, ok := e.agents[int(mover)].FindMove(e.state)
	if !ok {
		// Non-terminal positions always offer a move; an agent refusing one
		// is a programming error on its side.
		panic("agent returned no move for an open position")
	}

	next, legal := e.state.ChildAfterMove(move)
	if !legal {
		log.Warn().
			Stringer("player", mover).
			Int("move", move).
			Msg("agent chose an illegal move, falling back to the first legal one")
		fallback := e.state.LegalMoves()
		next, _ = e.state.ChildAfterMove(fallback[0])
		move = fallback[0]
	}

	log.Debug().
		Stringer("player", mover).
		Int("move", move).
		Int("score", next.ScoreFor(mover)).
		Msg("move played")

	e.state = next
	e.moves++
	return true
}

// Run plays the game to the end and returns the final position plus the
// number of moves played.
func (e *Local) Run() (game.State, int) {
	log.Info().Stringer("first", e.state.CurrentPlayer()).Msg("game started")
	for e.Step() {
	}
	log.Info().
		Stringer("outcome", e.state.Outcome()).
		Int("moves", e.moves).
		Int("store_a", e.state.Store(game.PlayerA)).
		Int("store_b", e.state.Store(game.PlayerB)).
		Msg("game over")
	return e.state, e.moves
}
