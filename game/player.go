package game

// Player identifies one of the two sides. The zero value is PlayerA, who
// moves first.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// idx maps a player to its row in the pit and store arrays.
func (p Player) idx() int {
	return int(p)
}
