package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func totalStones(s State) int {
	total := s.Store(PlayerA) + s.Store(PlayerB)
	for _, n := range s.Pits(PlayerA) {
		total += int(n)
	}
	for _, n := range s.Pits(PlayerB) {
		total += int(n)
	}
	return total
}

func TestNewState(t *testing.T) {
	s := NewState()

	require.Equal(t, PlayerA, s.CurrentPlayer(), "Player A should move first")
	require.Equal(t, 0, s.Store(PlayerA), "Stores should start empty")
	require.Equal(t, 0, s.Store(PlayerB), "Stores should start empty")
	for _, side := range []Player{PlayerA, PlayerB} {
		for i, n := range s.Pits(side) {
			require.EqualValues(t, StonesPerPit, n, "Pit %d of %s should hold the initial count", i, side)
		}
	}
	require.Equal(t, TotalStones, totalStones(s), "Initial total should match the constant")
	require.False(t, s.IsTerminal(), "Initial position should not be terminal")
}

func TestLegalMoves(t *testing.T) {
	t.Run("initial position offers every pit", func(t *testing.T) {
		s := NewState()
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.LegalMoves())
	})

	t.Run("empty pits are excluded", func(t *testing.T) {
		var s State
		s.pits[PlayerA.idx()][1] = 2
		s.pits[PlayerA.idx()][4] = 1
		s.pits[PlayerB.idx()][0] = 3
		require.Equal(t, []int{1, 4}, s.LegalMoves(), "Only non-empty pits on the mover's side are playable")
	})

	t.Run("terminal position has none", func(t *testing.T) {
		var s State
		require.True(t, s.IsTerminal())
		require.Empty(t, s.LegalMoves())
		require.Empty(t, s.LegalActions())
	})
}

func TestLegalActionsMatchMoves(t *testing.T) {
	s := NewState()
	moves := s.LegalMoves()
	actions := s.LegalActions()

	require.Len(t, actions, len(moves), "One successor per legal move")
	for i, m := range moves {
		child, ok := s.ChildAfterMove(m)
		require.True(t, ok)
		require.Equal(t, child, actions[i], "Successor %d should correspond to move %d", i, m)
	}
}

func TestChildAfterMoveRejections(t *testing.T) {
	t.Run("out of range index", func(t *testing.T) {
		s := NewState()
		_, ok := s.ChildAfterMove(PitsPerSide)
		require.False(t, ok)
		_, ok = s.ChildAfterMove(-1)
		require.False(t, ok)
	})

	t.Run("empty pit", func(t *testing.T) {
		var s State
		s.pits[PlayerA.idx()][1] = 1
		s.pits[PlayerB.idx()][0] = 1
		_, ok := s.ChildAfterMove(0)
		require.False(t, ok, "Playing an empty pit is illegal")
	})

	t.Run("terminal position", func(t *testing.T) {
		var s State
		_, ok := s.ChildAfterMove(0)
		require.False(t, ok, "No move is legal after the game ends")
	})
}

func TestExtraTurn(t *testing.T) {
	// From the initial position, pit 2 holds 4 stones and its last stone
	// lands exactly in the mover's store.
	s := NewState()

	child, ok := s.ChildAfterMove(2)
	require.True(t, ok)
	require.Equal(t, PlayerA, child.CurrentPlayer(), "Landing in the own store should keep the turn")
	require.Equal(t, 1, child.Store(PlayerA))

	child, ok = s.ChildAfterMove(0)
	require.True(t, ok)
	require.Equal(t, PlayerB, child.CurrentPlayer(), "Landing elsewhere should pass the turn")
}

func TestCapture(t *testing.T) {
	t.Run("last stone into empty own pit captures the opposite pit", func(t *testing.T) {
		var s State
		s.pits[PlayerA.idx()][0] = 1
		s.pits[PlayerB.idx()][PitsPerSide-1-1] = 3
		s.pits[PlayerB.idx()][0] = 1 // keeps B non-empty after the capture

		child, ok := s.ChildAfterMove(0)
		require.True(t, ok)
		require.Equal(t, 4, child.Store(PlayerA), "Store should gain the landed stone plus the opposite pit")
		require.EqualValues(t, 0, child.Pits(PlayerA)[1], "Landing pit should be emptied")
		require.EqualValues(t, 0, child.Pits(PlayerB)[PitsPerSide-1-1], "Opposite pit should be emptied")
	})

	t.Run("no capture when the opposite pit is empty", func(t *testing.T) {
		var s State
		s.pits[PlayerA.idx()][0] = 1
		s.pits[PlayerB.idx()][0] = 1 // non-terminal, opposite of pit 1 stays empty

		child, ok := s.ChildAfterMove(0)
		require.True(t, ok)
		require.Equal(t, 0, child.Store(PlayerA), "Store should be unchanged")
		require.EqualValues(t, 1, child.Pits(PlayerA)[1], "Landed stone should stay in the pit")
	})

	t.Run("no capture when landing on a non-empty own pit", func(t *testing.T) {
		var s State
		s.pits[PlayerA.idx()][0] = 2
		s.pits[PlayerA.idx()][1] = 1
		s.pits[PlayerB.idx()][PitsPerSide-1-1] = 5

		child, ok := s.ChildAfterMove(0)
		require.True(t, ok)
		require.EqualValues(t, 2, child.Pits(PlayerA)[1])
		require.Equal(t, 0, child.Store(PlayerA))
	})
}

func TestSowingSkipsOpponentStore(t *testing.T) {
	t.Run("single lap", func(t *testing.T) {
		var s State
		for i := 0; i < PitsPerSide; i++ {
			s.pits[0][i] = 1
			s.pits[1][i] = 1
		}
		s.pits[PlayerA.idx()][0] = 14 // enough to pass B's store once

		before := totalStones(s)
		child, ok := s.ChildAfterMove(0)
		require.True(t, ok)
		require.Equal(t, 0, child.Store(PlayerB), "Opponent's store should never receive a stone")
		require.Equal(t, before, totalStones(child), "Sowing should conserve stones")
		require.False(t, child.IsTerminal())
	})

	t.Run("full wraparound", func(t *testing.T) {
		var s State
		for i := 0; i < PitsPerSide; i++ {
			s.pits[0][i] = 1
			s.pits[1][i] = 1
		}
		s.pits[PlayerA.idx()][5] = 20

		before := totalStones(s)
		child, ok := s.ChildAfterMove(5)
		require.True(t, ok)
		require.Equal(t, 0, child.Store(PlayerB))
		require.Equal(t, before, totalStones(child))
	})
}

func TestOpponentStoreInvariance(t *testing.T) {
	s := NewState()
	for i := 0; i < PitsPerSide; i++ {
		before := s.Store(s.CurrentPlayer().Opponent())
		child, ok := s.ChildAfterMove(i)
		if !ok {
			continue
		}
		require.Equal(t, before, child.Store(s.CurrentPlayer().Opponent()),
			"Move from pit %d should not feed the opponent's store", i)
	}
}

func TestTerminalSweep(t *testing.T) {
	var s State
	s.pits[PlayerA.idx()][5] = 1
	s.pits[PlayerB.idx()][5] = 1

	child, ok := s.ChildAfterMove(5)
	require.True(t, ok)
	require.True(t, child.IsTerminal(), "Emptying a side should end the game")
	for _, side := range []Player{PlayerA, PlayerB} {
		for i, n := range child.Pits(side) {
			require.EqualValues(t, 0, n, "Pit %d of %s should be swept", i, side)
		}
	}
	require.Equal(t, 2, child.Store(PlayerA)+child.Store(PlayerB), "Swept stones should land in the stores")
}

func TestOutcome(t *testing.T) {
	t.Run("ongoing before the end", func(t *testing.T) {
		require.Equal(t, Ongoing, NewState().Outcome())
	})

	t.Run("larger store wins", func(t *testing.T) {
		var s State
		s.stores[PlayerA.idx()] = 30
		s.stores[PlayerB.idx()] = 18
		require.Equal(t, Win(PlayerA), s.Outcome())

		winner, ok := s.Outcome().Winner()
		require.True(t, ok)
		require.Equal(t, PlayerA, winner)
	})

	t.Run("equal stores draw", func(t *testing.T) {
		var s State
		s.stores[PlayerA.idx()] = 24
		s.stores[PlayerB.idx()] = 24
		require.Equal(t, Draw, s.Outcome())

		_, ok := s.Outcome().Winner()
		require.False(t, ok)
	})
}

func TestScoreFor(t *testing.T) {
	var s State
	s.stores[PlayerA.idx()] = 10
	s.stores[PlayerB.idx()] = 4

	require.Equal(t, 6, s.ScoreFor(PlayerA))
	require.Equal(t, -6, s.ScoreFor(PlayerB))
}

func TestStoneConservation(t *testing.T) {
	// Walk a long deterministic line of play and check the total after every
	// transition.
	s := NewState()
	for i := 0; i < 200; i++ {
		moves := s.LegalMoves()
		if len(moves) == 0 {
			break
		}
		child, ok := s.ChildAfterMove(moves[i%len(moves)])
		require.True(t, ok)
		require.Equal(t, TotalStones, totalStones(child), "Total should be constant after move %d", i)
		s = child
	}
}

func TestStateImmutability(t *testing.T) {
	s := NewState()
	snapshot := s

	_, ok := s.ChildAfterMove(0)
	require.True(t, ok)
	_ = s.LegalActions()
	_ = s.Outcome()
	_ = s.Pits(PlayerA)

	require.Equal(t, snapshot, s, "Queries and transitions should leave the original value untouched")
	require.Equal(t, s.LegalMoves(), s.LegalMoves(), "Repeated queries should agree")
}
