package game

// Board dimensions for the standard game.
const (
	PitsPerSide  = 6
	StonesPerPit = 4
)

// TotalStones is the number of stones on the board, constant for the whole
// game.
const TotalStones = 2 * PitsPerSide * StonesPerPit

// State is an immutable Kalah position. Every transition returns a new value;
// a State handed to a caller is never modified afterwards, so old values stay
// valid and can be queried or shared freely.
type State struct {
	pits   [2][PitsPerSide]uint8
	stores [2]uint8
	toMove Player
}

// NewState returns the standard initial position with PlayerA to move.
func NewState() State {
	var s State
	for side := 0; side < 2; side++ {
		for i := 0; i < PitsPerSide; i++ {
			s.pits[side][i] = StonesPerPit
		}
	}
	return s
}

// CurrentPlayer reports whose turn it is.
func (s State) CurrentPlayer() Player {
	return s.toMove
}

// Pits returns a copy of a side's small-pit counts, indexed in sowing order.
func (s State) Pits(side Player) [PitsPerSide]uint8 {
	return s.pits[side.idx()]
}

// Store returns the number of stones in a side's store.
func (s State) Store(side Player) int {
	return int(s.stores[side.idx()])
}

// LegalMoves lists the playable pit indices for the side to move, in
// ascending order. Terminal positions have no legal moves.
func (s State) LegalMoves() []int {
	if s.IsTerminal() {
		return nil
	}
	side := s.toMove.idx()
	moves := make([]int, 0, PitsPerSide)
	for i := 0; i < PitsPerSide; i++ {
		if s.pits[side][i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// LegalActions returns the successor for every legal move, in the same order
// as LegalMoves.
func (s State) LegalActions() []State {
	moves := s.LegalMoves()
	actions := make([]State, 0, len(moves))
	for _, m := range moves {
		child, ok := s.ChildAfterMove(m)
		if !ok {
			panic("legal move rejected by ChildAfterMove")
		}
		actions = append(actions, child)
	}
	return actions
}

// ChildAfterMove applies one move for the side to move and returns the
// resulting position. It reports false for a terminal position, an
// out-of-range index, or an empty pit; callers must treat that as an illegal
// move, not a fault.
func (s State) ChildAfterMove(pit int) (State, bool) {
	if s.IsTerminal() || pit < 0 || pit >= PitsPerSide {
		return State{}, false
	}
	if s.pits[s.toMove.idx()][pit] == 0 {
		return State{}, false
	}
	child := s
	child.sowFromPit(pit)
	return child, true
}

// IsTerminal reports whether either side's pits are all empty.
func (s State) IsTerminal() bool {
	return s.sideEmpty(PlayerA) || s.sideEmpty(PlayerB)
}

func (s State) sideEmpty(side Player) bool {
	for _, n := range s.pits[side.idx()] {
		if n > 0 {
			return false
		}
	}
	return true
}

// Outcome reports the game result. Non-terminal positions are Ongoing.
func (s State) Outcome() Outcome {
	if !s.IsTerminal() {
		return Ongoing
	}
	a, b := s.stores[PlayerA.idx()], s.stores[PlayerB.idx()]
	switch {
	case a > b:
		return Win(PlayerA)
	case a < b:
		return Win(PlayerB)
	default:
		return Draw
	}
}

// ScoreFor is the signed store difference from player's perspective.
func (s State) ScoreFor(player Player) int {
	return s.Store(player) - s.Store(player.Opponent())
}

// slot is one stop on the sowing ring: a side's pit, or that side's store
// when pit == PitsPerSide.
type slot struct {
	side Player
	pit  int
}

func (l slot) isStore() bool {
	return l.pit == PitsPerSide
}

// next advances one stop around the ring: pits 0..PitsPerSide-1, own store,
// then the opponent's pits.
func (l slot) next() slot {
	if l.pit < PitsPerSide {
		return slot{side: l.side, pit: l.pit + 1}
	}
	return slot{side: l.side.Opponent(), pit: 0}
}

// sowFromPit applies the full move: sowing, capture, turn handling and the
// end-of-game sweep. It mutates s and is only called on the fresh copy made
// by ChildAfterMove, with a pit already checked to be a legal move.
func (s *State) sowFromPit(pit int) {
	mover := s.toMove
	stones := int(s.pits[mover.idx()][pit])
	s.pits[mover.idx()][pit] = 0

	loc := slot{side: mover, pit: pit}
	last := loc
	for stones > 0 {
		loc = loc.next()
		if loc.isStore() && loc.side != mover {
			// The opponent's store never receives a stone.
			loc = loc.next()
		}
		if loc.isStore() {
			s.stores[loc.side.idx()]++
		} else {
			s.pits[loc.side.idx()][loc.pit]++
		}
		stones--
		last = loc
	}

	// Capture: the last stone landed in one of the mover's previously empty
	// pits and the directly opposite pit holds stones. Both pits empty into
	// the mover's store. An empty opposite pit means no capture at all.
	if !last.isStore() && last.side == mover && s.pits[mover.idx()][last.pit] == 1 {
		opp := mover.Opponent()
		oppPit := PitsPerSide - 1 - last.pit
		if captured := s.pits[opp.idx()][oppPit]; captured > 0 {
			s.pits[mover.idx()][last.pit] = 0
			s.pits[opp.idx()][oppPit] = 0
			s.stores[mover.idx()] += captured + 1
		}
	}

	// The mover keeps the turn only when the last stone landed in their own
	// store; this holds whether or not a capture happened.
	if !(last.isStore() && last.side == mover) {
		s.toMove = mover.Opponent()
	}

	// Once either side runs out of stones the game is over: every remaining
	// pit stone on both sides is swept into its owner's store.
	if s.sideEmpty(PlayerA) || s.sideEmpty(PlayerB) {
		for side := 0; side < 2; side++ {
			for i := 0; i < PitsPerSide; i++ {
				s.stores[side] += s.pits[side][i]
				s.pits[side][i] = 0
			}
		}
	}
}
